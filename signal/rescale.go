// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"strings"

	"github.com/ik5/cubenote/utils"
)

// FlatPolicy decides what Rescale does with a channel whose values are all
// equal.
type FlatPolicy int

const (
	// FlatFail rejects the channel with ErrFlatChannel.
	FlatFail FlatPolicy = iota
	// FlatZero maps every value to 0.
	FlatZero
)

func (p FlatPolicy) String() string {
	switch p {
	case FlatFail:
		return "fail"
	case FlatZero:
		return "zero"
	default:
		return fmt.Sprintf("FlatPolicy(%d)", int(p))
	}
}

// ParseFlatPolicy accepts "fail" or "zero".
func ParseFlatPolicy(s string) (FlatPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fail", "":
		return FlatFail, nil
	case "zero":
		return FlatZero, nil
	default:
		return FlatFail, fmt.Errorf("%w: unknown flat policy %q", ErrInvalidInput, s)
	}
}

// Rescale maps b's values linearly onto [-1, 1] so the smallest becomes -1
// and the largest 1. Times are copied unchanged. b is not modified.
func Rescale(b Binned, flat FlatPolicy) (Binned, error) {
	if b.Len() == 0 {
		return Binned{}, ErrEmptySignal
	}

	out := b.Clone()
	lo, hi := utils.MinMax(out.Values)

	if hi == lo {
		if flat != FlatZero {
			return Binned{}, ErrFlatChannel
		}
		clear(out.Values)
		return out, nil
	}

	half := (hi - lo) * 0.5
	for i, v := range out.Values {
		out.Values[i] = (v-lo)/half - 1
	}

	return out, nil
}
