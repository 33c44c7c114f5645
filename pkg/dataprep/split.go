package dataprep

import "math/rand"

// TrainTestSplit splits X, Y into disjoint train and test sets.
// testFrac is the fraction of rows held out (floor rounding); the
// seed makes the shuffle reproducible across runs.
func TrainTestSplit(X [][]float64, Y []float64, testFrac float64, seed int64) (XTrain, XTest [][]float64, YTrain, YTest []float64) {
	n := len(X)
	rng := rand.New(rand.NewSource(seed))
	indices := rng.Perm(n)
	nTest := int(float64(n) * testFrac)
	for i, idx := range indices {
		if i < nTest {
			XTest = append(XTest, X[idx])
			YTest = append(YTest, Y[idx])
		} else {
			XTrain = append(XTrain, X[idx])
			YTrain = append(YTrain, Y[idx])
		}
	}
	return
}
