package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRegressionRecoversCoefficients(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 200
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x1 := rng.Float64() * 10
		x2 := rng.Float64() * 5
		X[i] = []float64{x1, x2}
		y[i] = 3 + 2*x1 - x2 // noiseless
	}

	lr := NewLinearRegression()
	require.NoError(t, lr.Fit(X, y))

	assert.InDelta(t, 3, lr.Bias(), 1e-8)
	require.Len(t, lr.Weights(), 2)
	assert.InDelta(t, 2, lr.Weights()[0], 1e-8)
	assert.InDelta(t, -1, lr.Weights()[1], 1e-8)

	pred, err := lr.Predict(X)
	require.NoError(t, err)
	assert.InDelta(t, 0, MSE(y, pred), 1e-12)
}

func TestLinearRegressionValidation(t *testing.T) {
	lr := NewLinearRegression()
	assert.Error(t, lr.Fit(nil, nil))
	assert.Error(t, lr.Fit([][]float64{{1}}, []float64{1, 2}))
	assert.Error(t, lr.Fit([][]float64{{}}, []float64{1}))

	_, err := lr.Predict([][]float64{{1}})
	assert.Error(t, err, "predict before fit")
}

func TestLinearRegressionFeatureMismatch(t *testing.T) {
	lr := NewLinearRegression()
	require.NoError(t, lr.Fit([][]float64{{1}, {2}, {3}}, []float64{1, 2, 3}))

	_, err := lr.Predict([][]float64{{1, 2}})
	assert.Error(t, err)
}

func TestMetrics(t *testing.T) {
	yTrue := []float64{1, 2, 3}
	yPred := []float64{2, 3, 4}

	assert.Equal(t, 1.0, MSE(yTrue, yPred))
	assert.Equal(t, 1.0, RMSE(yTrue, yPred))

	assert.Equal(t, 1.0, R2(yTrue, yTrue))
	assert.Less(t, R2(yTrue, yPred), 1.0)

	assert.Equal(t, 0.0, MSE(nil, nil))
}
