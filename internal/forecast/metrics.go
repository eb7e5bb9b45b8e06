package forecast

import "math"

// rSquared is the coefficient of determination on the holdout set. When the
// target has zero variance (single-row test sets) it is defined as 0.
func rSquared(actual, predicted []float64) float64 {
	mean := 0.0
	for _, v := range actual {
		mean += v
	}
	mean /= float64(len(actual))

	var ssRes, ssTot float64
	for i, v := range actual {
		ssRes += (v - predicted[i]) * (v - predicted[i])
		ssTot += (v - mean) * (v - mean)
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}

// meanAbsPercentageError skips zero actuals; the load floor keeps actual
// loads positive for any positive baseline.
func meanAbsPercentageError(actual, predicted []float64) float64 {
	sum, n := 0.0, 0
	for i, v := range actual {
		if v == 0 {
			continue
		}
		sum += math.Abs((v - predicted[i]) / v)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func rootMeanSquaredError(actual, predicted []float64) float64 {
	var sum float64
	for i, v := range actual {
		sum += (v - predicted[i]) * (v - predicted[i])
	}
	return math.Sqrt(sum / float64(len(actual)))
}
