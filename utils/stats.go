// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Mean returns the arithmetic mean of xs, or NaN for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// NearestIndex returns the index of the element of xs closest to target.
// Ties resolve to the lowest index. It returns -1 for an empty slice.
func NearestIndex(xs []float64, target float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, x := range xs {
		// Strict comparison keeps the first of equal distances.
		if d := math.Abs(x - target); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best == -1 && len(xs) > 0 {
		// Every distance was NaN.
		return 0
	}
	return best
}

// MinMax returns the smallest and largest values of xs.
// Both are NaN when xs is empty.
func MinMax(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN()
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}
