// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{name: "single", xs: []float64{4}, want: 4},
		{name: "ints", xs: []float64{1, 2, 3, 4}, want: 2.5},
		{name: "symmetric", xs: []float64{-3, 3}, want: 0},
		{name: "pcm extremes", xs: []float64{-32768, 32767}, want: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Mean(tt.xs); got != tt.want {
				t.Errorf("Mean(%v) = %v, want %v", tt.xs, got, tt.want)
			}
		})
	}
}

func TestMean_Empty(t *testing.T) {
	t.Parallel()

	if got := Mean(nil); !math.IsNaN(got) {
		t.Errorf("Mean(nil) = %v, want NaN", got)
	}
}

func TestNearestIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		xs     []float64
		target float64
		want   int
	}{
		{name: "exact", xs: []float64{1, 2, 3}, target: 2, want: 1},
		{name: "closest above", xs: []float64{0, 10, 4}, target: 5, want: 2},
		{name: "tie keeps lowest", xs: []float64{1, 3, 1, 3}, target: 2, want: 0},
		{name: "all equal", xs: []float64{7, 7, 7}, target: 7, want: 0},
		{name: "last", xs: []float64{-5, -4, 9}, target: 8, want: 2},
		{name: "empty", xs: nil, target: 1, want: -1},
		{name: "nan target", xs: []float64{1, 2}, target: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NearestIndex(tt.xs, tt.target); got != tt.want {
				t.Errorf("NearestIndex(%v, %v) = %d, want %d", tt.xs, tt.target, got, tt.want)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	lo, hi := MinMax([]float64{3, -2, 8, 0})
	if lo != -2 || hi != 8 {
		t.Errorf("MinMax() = (%v, %v), want (-2, 8)", lo, hi)
	}

	lo, hi = MinMax(nil)
	if !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("MinMax(nil) = (%v, %v), want NaNs", lo, hi)
	}
}
