package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/stat"
)

// OutlierCounts counts, per numeric column, the values falling outside
// the 1.5*IQR whiskers. These are the points the box plot draws
// individually.
func OutlierCounts(df dataframe.DataFrame) (map[string]int, error) {
	cols := NumericColumns(df)
	counts := make(map[string]int, len(cols))
	for _, name := range cols {
		col := df.Col(name)
		if col.Err != nil {
			return nil, fmt.Errorf("column %q: %w", name, col.Err)
		}
		vals := col.Float()
		sorted := make([]float64, 0, len(vals))
		for _, v := range vals {
			if !math.IsNaN(v) {
				sorted = append(sorted, v)
			}
		}
		if len(sorted) == 0 {
			counts[name] = 0
			continue
		}
		sort.Float64s(sorted)
		q1 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
		q3 := stat.Quantile(0.75, stat.Empirical, sorted, nil)
		iqr := q3 - q1
		lo, hi := q1-1.5*iqr, q3+1.5*iqr
		c := 0
		for _, v := range vals {
			if v < lo || v > hi {
				c++
			}
		}
		counts[name] = c
	}
	return counts, nil
}
