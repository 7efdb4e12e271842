package bench

import (
	"math"
	"time"
)

// Mean returns the arithmetic mean of values.
// Returns 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64

	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// MeanStdDev returns the arithmetic mean and population standard deviation.
// Returns (0, 0) for an empty slice.
func MeanStdDev(values []float64) (mean, stddev float64) {
	count := len(values)
	if count == 0 {
		return 0, 0
	}

	mean = Mean(values)

	var sumSq float64

	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}

	return mean, math.Sqrt(sumSq / float64(count))
}

// NormalizedMillis divides elapsed milliseconds by n·log2(n). For a
// Θ(n log n) algorithm the result stays roughly constant as n grows.
// Returns 0 for n < 2, where the divisor degenerates.
func NormalizedMillis(elapsed time.Duration, n int) float64 {
	if n < 2 {
		return 0
	}

	millis := float64(elapsed.Nanoseconds()) / float64(time.Millisecond.Nanoseconds())

	return millis / (float64(n) * math.Log2(float64(n)))
}

// ExpectedGrowthRatio returns the n·log2(n) growth factor between two input
// sizes: the ratio an observed measurement should approach when the
// algorithm is Θ(n log n). Returns 0 when either size is below 2.
func ExpectedGrowthRatio(prevN, curN int) float64 {
	if prevN < 2 || curN < 2 {
		return 0
	}

	return float64(curN) * math.Log2(float64(curN)) / (float64(prevN) * math.Log2(float64(prevN)))
}

// GrowthRatio returns cur/prev as a float ratio. Returns 0 when prev is 0.
func GrowthRatio(prev, cur float64) float64 {
	if prev == 0 {
		return 0
	}

	return cur / prev
}
