package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blobs generates three well-separated 2D clusters, 30 points each.
func blobs(seed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))
	centers := [][]float64{{0, 0}, {20, 20}, {-20, 20}}
	var X [][]float64
	var truth []int
	for c, center := range centers {
		for i := 0; i < 30; i++ {
			X = append(X, []float64{
				center[0] + rng.NormFloat64(),
				center[1] + rng.NormFloat64(),
			})
			truth = append(truth, c)
		}
	}
	return X, truth
}

func TestKMeansRecoversBlobs(t *testing.T) {
	X, truth := blobs(1)
	km := NewKMeans(3, 300, 42)
	labels, err := km.FitPredict(X)
	require.NoError(t, err)
	require.Len(t, labels, len(X))

	// Every true cluster maps to exactly one predicted label.
	mapping := map[int]int{}
	for i, l := range labels {
		if prev, ok := mapping[truth[i]]; ok {
			assert.Equal(t, prev, l, "cluster split at point %d", i)
		} else {
			mapping[truth[i]] = l
		}
	}
	assert.Len(t, mapping, 3)
	assert.GreaterOrEqual(t, km.Inertia, 0.0)
}

func TestKMeansDeterministicWithSeed(t *testing.T) {
	X, _ := blobs(2)

	first := NewKMeans(3, 300, 42)
	a, err := first.FitPredict(X)
	require.NoError(t, err)

	second := NewKMeans(3, 300, 42)
	b, err := second.FitPredict(X)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, first.Centroids, second.Centroids)
}

func TestKMeansInputValidation(t *testing.T) {
	km := NewKMeans(3, 10, 1)
	assert.Error(t, km.Fit(nil))
	assert.Error(t, km.Fit([][]float64{{1, 2}}))

	_, err := km.Predict([][]float64{{1, 2}})
	assert.Error(t, err, "predict before fit")
}

func TestElbowSweep(t *testing.T) {
	X, _ := blobs(3)
	inertias, err := ElbowSweep(X, 10, 300, 42)
	require.NoError(t, err)
	require.Len(t, inertias, 10)

	for _, v := range inertias {
		assert.GreaterOrEqual(t, v, 0.0)
	}
	// Splitting well-separated blobs further always reduces SSE.
	assert.Greater(t, inertias[0], inertias[9])
}

func TestSilhouette(t *testing.T) {
	X, truth := blobs(4)
	score, err := Silhouette(X, truth)
	require.NoError(t, err)
	assert.Greater(t, score, 0.8)
	assert.LessOrEqual(t, score, 1.0)
}

func TestSilhouetteSingleCluster(t *testing.T) {
	X, _ := blobs(5)
	labels := make([]int, len(X))
	score, err := Silhouette(X, labels)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestSilhouetteValidation(t *testing.T) {
	_, err := Silhouette(nil, nil)
	assert.Error(t, err)

	_, err = Silhouette([][]float64{{1}}, []int{0, 1})
	assert.Error(t, err)
}
