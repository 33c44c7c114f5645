package model

import (
	"errors"
	"math"
	"runtime"
	"sync"
)

func euclid(a, b []float64) float64 {
	return math.Sqrt(euclidSquared(a, b))
}

// Silhouette computes the mean silhouette coefficient over all points:
// for each point, (b-a)/max(a,b) where a is the mean distance to its
// own cluster and b the smallest mean distance to another cluster.
// The result lies in [-1, 1]; higher means better separated clusters.
// With fewer than two distinct labels the score is defined as 0.
func Silhouette(X [][]float64, labels []int) (float64, error) {
	n := len(X)
	if n == 0 {
		return 0, errors.New("input data cannot be empty")
	}
	if len(labels) != n {
		return 0, errors.New("labels length does not match data")
	}

	clusters := make(map[int][]int)
	for i, l := range labels {
		clusters[l] = append(clusters[l], i)
	}
	if len(clusters) < 2 {
		return 0, nil
	}

	scores := make([]float64, n)
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
				scores[i] = silhouetteOne(X, labels, clusters, i)
			}
		}(start, end)
	}
	wg.Wait()

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(n), nil
}

func silhouetteOne(X [][]float64, labels []int, clusters map[int][]int, i int) float64 {
	own := labels[i]
	if len(clusters[own]) <= 1 {
		// Singleton clusters score 0 by convention.
		return 0
	}

	var a float64
	b := -1.0
	for label, members := range clusters {
		sum := 0.0
		for _, j := range members {
			if j == i {
				continue
			}
			sum += euclid(X[i], X[j])
		}
		if label == own {
			a = sum / float64(len(members)-1)
			continue
		}
		mean := sum / float64(len(members))
		if b < 0 || mean < b {
			b = mean
		}
	}

	max := a
	if b > max {
		max = b
	}
	if max == 0 {
		return 0
	}
	return (b - a) / max
}
