// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"errors"
	"testing"
)

// indexAxis returns an axis where timestamp i is i, which makes the chosen
// representative index visible in Times.
func indexAxis(n int) []float64 {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i)
	}
	return axis
}

func TestBin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		samples    []float64
		size       int
		gain       float64
		wantValues []float64
		wantTimes  []float64
	}{
		{
			name:       "exact multiple",
			samples:    []float64{1, 3, 5, 7},
			size:       2,
			gain:       1,
			wantValues: []float64{2, 6},
			// |1-2| == |3-2|, lowest offset wins.
			wantTimes: []float64{0, 2},
		},
		{
			name:       "short last bin",
			samples:    []float64{0, 0, 9, 4, 4},
			size:       3,
			gain:       1,
			wantValues: []float64{3, 4},
			wantTimes:  []float64{0, 3},
		},
		{
			name:       "gain scales value only",
			samples:    []float64{10, 20, 30},
			size:       3,
			gain:       0.5,
			wantValues: []float64{10},
			wantTimes:  []float64{1},
		},
		{
			name:       "bin size larger than signal",
			samples:    []float64{4, -4, 8},
			size:       100,
			gain:       2,
			wantValues: []float64{16.0 / 3},
			wantTimes:  []float64{0},
		},
		{
			name:       "bin size one",
			samples:    []float64{5, -5, 7},
			size:       1,
			gain:       -1,
			wantValues: []float64{-5, 5, -7},
			wantTimes:  []float64{0, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Bin(tt.samples, tt.size, tt.gain, indexAxis(len(tt.samples)))
			if err != nil {
				t.Fatalf("Bin() error = %v", err)
			}
			if got.Len() != len(tt.wantValues) || len(got.Times) != len(tt.wantTimes) {
				t.Fatalf("Bin() = %+v, want values %v times %v", got, tt.wantValues, tt.wantTimes)
			}
			for i := range tt.wantValues {
				if got.Values[i] != tt.wantValues[i] {
					t.Errorf("Values[%d] = %v, want %v", i, got.Values[i], tt.wantValues[i])
				}
				if got.Times[i] != tt.wantTimes[i] {
					t.Errorf("Times[%d] = %v, want %v", i, got.Times[i], tt.wantTimes[i])
				}
			}
		})
	}
}

func TestBin_CountAndRange(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 40; n++ {
		samples := make([]float64, n)
		for i := range samples {
			samples[i] = float64((i * 7919) % 23)
		}
		axis := indexAxis(n)

		for size := 1; size <= 12; size++ {
			got, err := Bin(samples, size, 1, axis)
			if err != nil {
				t.Fatalf("Bin(n=%d, size=%d) error = %v", n, size, err)
			}

			want := (n + size - 1) / size
			if got.Len() != want || len(got.Times) != want {
				t.Fatalf("Bin(n=%d, size=%d) bins = %d/%d, want %d", n, size, got.Len(), len(got.Times), want)
			}

			for i, ts := range got.Times {
				start := i * size
				end := min(start+size, n)
				if end-start > size {
					t.Fatalf("bin %d spans %d samples, more than %d", i, end-start, size)
				}
				idx := int(ts)
				if idx < start || idx >= end {
					t.Errorf("Bin(n=%d, size=%d) Times[%d] = %v outside [%d, %d)", n, size, i, ts, start, end)
				}
			}
		}
	}
}

func TestBin_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	samples := []float64{1, 2, 3, 4}
	axis := indexAxis(4)

	if _, err := Bin(samples, 3, 10, axis); err != nil {
		t.Fatal(err)
	}
	for i, v := range []float64{1, 2, 3, 4} {
		if samples[i] != v || axis[i] != float64(i) {
			t.Fatalf("Bin() mutated its input at %d", i)
		}
	}
}

func TestBin_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []float64
		size    int
		axis    []float64
		want    error
	}{
		{name: "zero bin size", samples: []float64{1}, size: 0, axis: []float64{0}, want: ErrInvalidBinSize},
		{name: "negative bin size", samples: []float64{1}, size: -3, axis: []float64{0}, want: ErrInvalidBinSize},
		{name: "empty signal", samples: nil, size: 4, axis: nil, want: ErrEmptySignal},
		{name: "short axis", samples: []float64{1, 2}, size: 1, axis: []float64{0}, want: ErrAxisMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Bin(tt.samples, tt.size, 1, tt.axis)
			if !errors.Is(err, tt.want) {
				t.Errorf("Bin() error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Bin() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestBinCount(t *testing.T) {
	t.Parallel()

	tests := []struct{ n, size, want int }{
		{10, 3, 4},
		{9, 3, 3},
		{1, 5, 1},
		{0, 5, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := BinCount(tt.n, tt.size); got != tt.want {
			t.Errorf("BinCount(%d, %d) = %d, want %d", tt.n, tt.size, got, tt.want)
		}
	}
}

func TestBinned_Clone(t *testing.T) {
	t.Parallel()

	orig := Binned{Values: []float64{1, 2}, Times: []float64{0, 1}}
	cp := orig.Clone()
	cp.Values[0] = 99
	cp.Times[1] = 99

	if orig.Values[0] != 1 || orig.Times[1] != 1 {
		t.Error("Clone() shares storage with the original")
	}
}
