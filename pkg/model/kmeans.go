// Package model implements the two models the pipeline runs: k-means
// clustering and ordinary least squares regression, plus their
// evaluation metrics.
package model

import (
	"errors"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// KMeans partitions data points into K clusters. A fixed Seed makes
// centroid initialization, and therefore the final labeling,
// reproducible across runs.
type KMeans struct {
	K       int
	MaxIter int
	Seed    int64

	Centroids [][]float64
	Inertia   float64 // Sum of squared distances to nearest centroid

	rng *rand.Rand
}

// NewKMeans creates a KMeans model with the given cluster count,
// iteration cap and random seed.
func NewKMeans(k, maxIter int, seed int64) *KMeans {
	return &KMeans{
		K:       k,
		MaxIter: maxIter,
		Seed:    seed,
	}
}

func euclidSquared(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

// Fit trains the model by iterating assignment and update steps until
// assignments stop changing or MaxIter is reached.
func (m *KMeans) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("input data cannot be empty")
	}
	n, p := len(X), len(X[0])
	if n < m.K {
		return errors.New("number of data points is less than K")
	}

	m.rng = rand.New(rand.NewSource(m.Seed))
	m.initCenters(X)

	assign := make([]int, n)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (n + workers - 1) / workers

	for it := 0; it < m.MaxIter; it++ {
		var changed atomic.Bool

		// Assignment step, parallelized over row chunks.
		for w := 0; w < workers; w++ {
			start := w * rowsPerWorker
			end := start + rowsPerWorker
			if end > n {
				end = n
			}
			if start >= end {
				continue
			}
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for i := start; i < end; i++ {
					best, bestD := -1, math.MaxFloat64
					for k := 0; k < m.K; k++ {
						d := euclidSquared(X[i], m.Centroids[k])
						if d < bestD {
							bestD = d
							best = k
						}
					}
					if assign[i] != best {
						changed.Store(true)
					}
					assign[i] = best
				}
			}(start, end)
		}
		wg.Wait()

		// Update step: each centroid moves to the mean of its points.
		sums := make([][]float64, m.K)
		counts := make([]int, m.K)
		for k := 0; k < m.K; k++ {
			sums[k] = make([]float64, p)
		}
		for i := 0; i < n; i++ {
			k := assign[i]
			counts[k]++
			for j := 0; j < p; j++ {
				sums[k][j] += X[i][j]
			}
		}
		for k := 0; k < m.K; k++ {
			if counts[k] == 0 {
				continue // empty cluster keeps its centroid
			}
			for j := 0; j < p; j++ {
				m.Centroids[k][j] = sums[k][j] / float64(counts[k])
			}
		}

		if !changed.Load() {
			break
		}
	}

	// Final inertia over the converged centroids.
	m.Inertia = 0
	for i := 0; i < n; i++ {
		m.Inertia += euclidSquared(X[i], m.Centroids[assign[i]])
	}
	return nil
}

// Predict assigns each data point to its nearest centroid.
func (m *KMeans) Predict(X [][]float64) ([]int, error) {
	if len(X) == 0 {
		return nil, errors.New("input data for prediction cannot be empty")
	}
	if len(m.Centroids) == 0 {
		return nil, errors.New("model has not been fitted")
	}
	if len(X[0]) != len(m.Centroids[0]) {
		return nil, errors.New("feature count mismatch between input data and model centroids")
	}

	n := len(X)
	assignments := make([]int, n)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				best, bestD := -1, math.MaxFloat64
				for k := 0; k < m.K; k++ {
					d := euclidSquared(X[i], m.Centroids[k])
					if d < bestD {
						bestD = d
						best = k
					}
				}
				assignments[i] = best
			}
		}(start, end)
	}
	wg.Wait()
	return assignments, nil
}

// FitPredict fits the model and returns the training assignments.
func (m *KMeans) FitPredict(X [][]float64) ([]int, error) {
	if err := m.Fit(X); err != nil {
		return nil, err
	}
	return m.Predict(X)
}

// initCenters seeds centroids with the k-means++ strategy: the first
// center is uniform, each further center is drawn proportionally to
// its squared distance from the nearest existing center.
func (m *KMeans) initCenters(X [][]float64) {
	n := len(X)
	m.Centroids = make([][]float64, m.K)

	idx := m.rng.Intn(n)
	m.Centroids[0] = append([]float64{}, X[idx]...)

	for k := 1; k < m.K; k++ {
		distSq := make([]float64, n)
		total := 0.0
		for i, x := range X {
			minDist := math.MaxFloat64
			for _, c := range m.Centroids[:k] {
				if d := euclidSquared(x, c); d < minDist {
					minDist = d
				}
			}
			distSq[i] = minDist
			total += minDist
		}

		r := m.rng.Float64() * total
		cumulative := 0.0
		chosen := n - 1
		for i, d := range distSq {
			cumulative += d
			if cumulative >= r {
				chosen = i
				break
			}
		}
		m.Centroids[k] = append([]float64{}, X[chosen]...)
	}
}

// ElbowSweep fits one model per cluster count in [1, maxK] with the
// given seed and returns the inertia per k. Purely diagnostic; the
// primary labeling is unaffected.
func ElbowSweep(X [][]float64, maxK int, maxIter int, seed int64) ([]float64, error) {
	inertias := make([]float64, 0, maxK)
	for k := 1; k <= maxK; k++ {
		km := NewKMeans(k, maxIter, seed)
		if err := km.Fit(X); err != nil {
			return nil, err
		}
		inertias = append(inertias, km.Inertia)
	}
	return inertias, nil
}
