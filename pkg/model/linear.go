package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearRegression fits an ordinary least squares model with an
// intercept term, solved in closed form.
type LinearRegression struct {
	weights []float64
	bias    float64
	fitted  bool
}

// NewLinearRegression returns an unfitted model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit solves the least squares problem over X (rows of features) and
// the target vector y.
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 {
		return errors.New("training data cannot be empty")
	}
	if len(y) != n {
		return errors.New("feature and target row counts differ")
	}
	p := len(X[0])
	if p == 0 {
		return errors.New("empty feature set")
	}

	// Design matrix with a leading column of ones for the intercept.
	a := mat.NewDense(n, p+1, nil)
	for i, row := range X {
		if len(row) != p {
			return fmt.Errorf("ragged feature row %d", i)
		}
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}
	b := mat.NewVecDense(n, y)

	var beta mat.VecDense
	if err := beta.SolveVec(a, b); err != nil {
		return fmt.Errorf("least squares solve: %w", err)
	}

	m.bias = beta.AtVec(0)
	m.weights = make([]float64, p)
	for j := 0; j < p; j++ {
		m.weights[j] = beta.AtVec(j + 1)
	}
	m.fitted = true
	return nil
}

// Predict returns the fitted model's predictions for rows in X.
func (m *LinearRegression) Predict(X [][]float64) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model has not been fitted")
	}
	pred := make([]float64, len(X))
	for i, row := range X {
		if len(row) != len(m.weights) {
			return nil, fmt.Errorf("feature count mismatch at row %d", i)
		}
		sum := m.bias
		for j, v := range row {
			sum += m.weights[j] * v
		}
		pred[i] = sum
	}
	return pred, nil
}

// Weights returns the fitted coefficients, one per feature.
func (m *LinearRegression) Weights() []float64 { return m.weights }

// Bias returns the fitted intercept.
func (m *LinearRegression) Bias() float64 { return m.bias }
