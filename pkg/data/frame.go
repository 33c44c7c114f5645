package data

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// FeatureColumns is the fixed physicochemical feature set used for
// clustering and regression.
var FeatureColumns = []string{
	"fixed acidity",
	"volatile acidity",
	"citric acid",
	"residual sugar",
	"chlorides",
	"free sulfur dioxide",
	"total sulfur dioxide",
	"density",
	"pH",
	"sulphates",
	"alcohol",
}

// TargetColumn is the supervised regression target.
const TargetColumn = "quality"

// ClusterColumn holds the derived cluster label after clustering.
const ClusterColumn = "cluster"

// Column extracts one numeric column as a float slice.
func Column(df dataframe.DataFrame, name string) ([]float64, error) {
	col := df.Col(name)
	if col.Err != nil {
		return nil, fmt.Errorf("column %q: %w", name, col.Err)
	}
	return col.Float(), nil
}

// Matrix extracts the named columns as a row-major float matrix.
func Matrix(df dataframe.DataFrame, cols []string) ([][]float64, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("empty feature set")
	}
	columns := make([][]float64, len(cols))
	for j, name := range cols {
		vals, err := Column(df, name)
		if err != nil {
			return nil, err
		}
		columns[j] = vals
	}
	n := df.Nrow()
	X := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = columns[j][i]
		}
		X[i] = row
	}
	return X, nil
}
