// Package dataprep prepares the combined wine table for modeling.
package dataprep

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func isMissing(v string) bool {
	return v == "" || v == "NA" || v == "NaN"
}

// rowKeys builds one comparison key per row from the typed cell
// values. Floats are keyed with the shortest round-trip formatting so
// rows differing in any bit stay distinct.
func rowKeys(df dataframe.DataFrame) []string {
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
	keys := make([]string, n)
	for i := range parts {
		keys[i] = strings.Join(parts[i], "\x1f")
	}
	return keys
}

// DropMissing removes every row containing at least one missing cell.
// Surviving rows keep their cell values, types and order; nothing is
// re-parsed.
func DropMissing(df dataframe.DataFrame) dataframe.DataFrame {
	if df.Err != nil {
		return df
	}
	n := df.Nrow()
	missing := make([]bool, n)
	types := df.Types()
	for j, name := range df.Names() {
		col := df.Col(name)
		if types[j] == series.Float || types[j] == series.Int {
			for i, v := range col.Float() {
				if math.IsNaN(v) {
					missing[i] = true
				}
			}
			continue
		}
		for i, v := range col.Records() {
			if isMissing(v) {
				missing[i] = true
			}
		}
	}
	keep := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !missing[i] {
			keep = append(keep, i)
		}
	}
	return df.Subset(keep)
}

// DropDuplicates removes exact full-row duplicates, keeping the first
// occurrence of each row. Equality is over typed cell values, not
// their printed form.
func DropDuplicates(df dataframe.DataFrame) dataframe.DataFrame {
	if df.Err != nil {
		return df
	}
	keys := rowKeys(df)
	seen := make(map[string]struct{}, len(keys))
	keep := make([]int, 0, len(keys))
	for i, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}
	return df.Subset(keep)
}

// Clean drops rows with missing values, then exact duplicates.
// Applying it twice yields the same result as applying it once.
func Clean(df dataframe.DataFrame) dataframe.DataFrame {
	return DropDuplicates(DropMissing(df))
}
