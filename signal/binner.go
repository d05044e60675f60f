// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"github.com/ik5/cubenote/utils"
)

// Binned is one channel reduced to fixed-size bins. Values[i] and Times[i]
// describe the same bin.
type Binned struct {
	Values []float64
	Times  []float64
}

// Len returns the number of bins.
func (b Binned) Len() int { return len(b.Values) }

// Clone returns a copy that shares no storage with b.
func (b Binned) Clone() Binned {
	return Binned{
		Values: append([]float64(nil), b.Values...),
		Times:  append([]float64(nil), b.Times...),
	}
}

// BinCount returns ceil(n/size) for positive size.
func BinCount(n, size int) int {
	if size <= 0 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Bin groups samples into consecutive bins of size samples; the last bin
// holds whatever remains. Each bin's value is its mean times gain. Its
// timestamp is axis at the sample nearest the (unscaled) mean, the earliest
// such sample on ties.
//
// axis must be as long as samples, typically from TimeAxis.
func Bin(samples []float64, size int, gain float64, axis []float64) (Binned, error) {
	if size <= 0 {
		return Binned{}, ErrInvalidBinSize
	}
	if len(samples) == 0 {
		return Binned{}, ErrEmptySignal
	}
	if len(axis) != len(samples) {
		return Binned{}, ErrAxisMismatch
	}

	count := BinCount(len(samples), size)
	out := Binned{
		Values: make([]float64, count),
		Times:  make([]float64, count),
	}

	for i := range count {
		start := i * size
		end := min(start+size, len(samples))
		window := samples[start:end]

		mean := utils.Mean(window)
		out.Values[i] = mean * gain
		out.Times[i] = axis[start+utils.NearestIndex(window, mean)]
	}

	return out, nil
}
