// Package stats computes the exploratory statistics reported by the
// pipeline: missing values, duplicates, correlations and per-column
// summaries.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func isMissing(v string) bool {
	return v == "" || v == "NA" || v == "NaN"
}

// MissingCounts returns the number of missing cells per column.
func MissingCounts(df dataframe.DataFrame) map[string]int {
	names := df.Names()
	counts := make(map[string]int, len(names))
	for _, name := range names {
		counts[name] = 0
	}
	records := df.Records()
	for _, row := range records[1:] {
		for j, v := range row {
			if isMissing(v) {
				counts[names[j]]++
			}
		}
	}
	return counts
}

// DuplicateCount returns the number of surplus exact duplicate rows,
// i.e. total rows minus distinct rows. Rows are compared on typed
// cell values, the same equality the cleaner uses, so the count
// matches what cleaning would remove.
func DuplicateCount(df dataframe.DataFrame) int {
	n := df.Nrow()
	parts := make([][]string, n)
	for i := range parts {
		parts[i] = make([]string, 0, df.Ncol())
	}
	types := df.Types()
	for j, name := range df.Names() {
		col := df.Col(name)
		if types[j] == series.Float || types[j] == series.Int {
			for i, v := range col.Float() {
				parts[i] = append(parts[i], strconv.FormatFloat(v, 'g', -1, 64))
			}
			continue
		}
		for i, v := range col.Records() {
			parts[i] = append(parts[i], v)
		}
	}
	seen := make(map[string]struct{}, n)
	dupes := 0
	for i := range parts {
		key := strings.Join(parts[i], "\x1f")
		if _, ok := seen[key]; ok {
			dupes++
			continue
		}
		seen[key] = struct{}{}
	}
	return dupes
}

// NumericColumns returns the names of the float and int columns, in
// frame order.
func NumericColumns(df dataframe.DataFrame) []string {
	var numeric []string
	types := df.Types()
	for i, name := range df.Names() {
		if types[i] == series.Float || types[i] == series.Int {
			numeric = append(numeric, name)
		}
	}
	return numeric
}

// CorrelationMatrix computes the Pearson correlation matrix over the
// numeric columns. The returned matrix is symmetric with a unit
// diagonal; the second return value names its rows and columns.
func CorrelationMatrix(df dataframe.DataFrame) (*mat.SymDense, []string, error) {
	cols := NumericColumns(df)
	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("no numeric columns in frame")
	}
	columns := make([][]float64, len(cols))
	for j, name := range cols {
		col := df.Col(name)
		if col.Err != nil {
			return nil, nil, fmt.Errorf("column %q: %w", name, col.Err)
		}
		columns[j] = col.Float()
	}

	// Complete-case: rows with a missing value in any numeric column
	// are excluded from the correlation.
	var complete []int
	for i := 0; i < df.Nrow(); i++ {
		ok := true
		for j := range cols {
			if math.IsNaN(columns[j][i]) {
				ok = false
				break
			}
		}
		if ok {
			complete = append(complete, i)
		}
	}
	if len(complete) == 0 {
		return nil, nil, fmt.Errorf("no complete rows for correlation")
	}

	m := mat.NewDense(len(complete), len(cols), nil)
	for r, i := range complete {
		for j := range cols {
			m.Set(r, j, columns[j][i])
		}
	}

	corr := mat.NewSymDense(len(cols), nil)
	stat.CorrelationMatrix(corr, m, nil)
	// Pin the diagonal and clamp to [-1, 1]: the normalization can
	// overshoot by an ulp for perfectly correlated columns.
	for i := 0; i < len(cols); i++ {
		corr.SetSym(i, i, 1)
		for j := i + 1; j < len(cols); j++ {
			v := corr.At(i, j)
			if v > 1 {
				corr.SetSym(i, j, 1)
			} else if v < -1 {
				corr.SetSym(i, j, -1)
			}
		}
	}
	return corr, cols, nil
}

// ColumnSummary holds descriptive statistics for one numeric column.
type ColumnSummary struct {
	Name   string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe computes per-column summaries over the numeric columns.
func Describe(df dataframe.DataFrame) ([]ColumnSummary, error) {
	cols := NumericColumns(df)
	summaries := make([]ColumnSummary, 0, len(cols))
	for _, name := range cols {
		col := df.Col(name)
		if col.Err != nil {
			return nil, fmt.Errorf("column %q: %w", name, col.Err)
		}
		vals := col.Float()
		// Missing cells parse to NaN; summaries cover present values only.
		present := vals[:0:0]
		for _, v := range vals {
			if !math.IsNaN(v) {
				present = append(present, v)
			}
		}
		vals = present
		if len(vals) == 0 {
			continue
		}
		sorted := make([]float64, len(vals))
		copy(sorted, vals)
		sort.Float64s(sorted)
		summaries = append(summaries, ColumnSummary{
			Name:   name,
			Count:  len(vals),
			Mean:   stat.Mean(vals, nil),
			Std:    stat.StdDev(vals, nil),
			Min:    sorted[0],
			Q25:    stat.Quantile(0.25, stat.Empirical, sorted, nil),
			Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
			Q75:    stat.Quantile(0.75, stat.Empirical, sorted, nil),
			Max:    sorted[len(sorted)-1],
		})
	}
	return summaries, nil
}
