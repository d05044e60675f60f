// SPDX-License-Identifier: EPL-2.0

package signal

import "math"

// TimeAxis returns n evenly spaced timestamps covering [0, n/rate] with both
// ends included, so timestamp[i] = i * (n/rate) / (n-1).
//
// n <= 1 yields a single 0 timestamp. rate is in Hz and must be positive.
func TimeAxis(n int, rate float64) ([]float64, error) {
	if !(rate > 0) || math.IsInf(rate, 1) {
		return nil, ErrInvalidSampleRate
	}
	if n <= 1 {
		return []float64{0}, nil
	}

	duration := float64(n) / rate
	step := duration / float64(n-1)

	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i) * step
	}
	// Pin the end so rounding in step never shortens the axis.
	axis[n-1] = duration

	return axis, nil
}

// Duration returns the length in seconds of n samples at rate.
func Duration(n int, rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return float64(n) / rate
}
