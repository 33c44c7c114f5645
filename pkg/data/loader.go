// Package data loads the raw wine-quality tables into a single frame.
package data

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// TypeColumn is the categorical column distinguishing the two sources.
const TypeColumn = "wine_type"

// readCSV parses one semicolon-delimited wine file.
func readCSV(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.WithDelimiter(';'),
		dataframe.HasHeader(true),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse %s: %w", path, df.Err)
	}
	return df, nil
}

// Load reads the red and white wine files, tags each row with its
// origin and concatenates them, red rows first. The two files must
// share the exact same header; no reconciliation is attempted.
func Load(redPath, whitePath string) (dataframe.DataFrame, error) {
	red, err := readCSV(redPath)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	white, err := readCSV(whitePath)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	if err := sameColumns(red.Names(), white.Names()); err != nil {
		return dataframe.DataFrame{}, err
	}

	red = red.Mutate(constColumn("red", red.Nrow()))
	white = white.Mutate(constColumn("white", white.Nrow()))

	combined := red.RBind(white)
	if combined.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("combine datasets: %w", combined.Err)
	}
	return combined, nil
}

func constColumn(value string, n int) series.Series {
	vals := make([]string, n)
	for i := range vals {
		vals[i] = value
	}
	return series.New(vals, series.String, TypeColumn)
}

func sameColumns(a, b []string) error {
	if len(a) != len(b) {
		return fmt.Errorf("column mismatch: %d columns vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("column mismatch at position %d: %q vs %q", i, a[i], b[i])
		}
	}
	return nil
}
