// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 maps a normalized sample in [-1, 1] onto the PCM16 range.
// Values outside the range are clamped.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing.
	return int16(x * 32767.0)
}

// Float32SliceToInt16 converts src into dst and returns the number of
// values written (the shorter of the two lengths).
func Float32SliceToInt16(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}
	return n
}
