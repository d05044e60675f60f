// SPDX-License-Identifier: EPL-2.0

// Package shape reduces a binned channel to its up/down contour.
package shape

import (
	"fmt"
	"strings"

	"github.com/ik5/cubenote/signal"
)

// Direction is the movement between two consecutive bins.
type Direction uint8

const (
	// Down covers both falling and flat transitions.
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Letter returns the one-letter form, "u" or "d".
func (d Direction) Letter() string {
	if d == Up {
		return "u"
	}
	return "d"
}

// Opposite swaps Up and Down.
func (d Direction) Opposite() Direction {
	if d == Up {
		return Down
	}
	return Up
}

// Symbol is one bin-to-bin transition, stamped with the earlier bin's time.
type Symbol struct {
	Dir  Direction
	Time float64
}

// ErrLengthMismatch is returned for a Binned whose Values and Times differ
// in length.
var ErrLengthMismatch = fmt.Errorf("%w: binned values and times differ in length", signal.ErrInvalidInput)

// Extract compares each bin with its successor. The result has one symbol
// fewer than b has bins, and is empty (not nil) for fewer than two bins.
func Extract(b signal.Binned) ([]Symbol, error) {
	if len(b.Values) != len(b.Times) {
		return nil, ErrLengthMismatch
	}

	if b.Len() < 2 {
		return []Symbol{}, nil
	}

	out := make([]Symbol, b.Len()-1)
	for j := range out {
		dir := Down
		if b.Values[j+1] > b.Values[j] {
			dir = Up
		}
		out[j] = Symbol{Dir: dir, Time: b.Times[j]}
	}

	return out, nil
}

// Strip renders symbols as a compact "uudd..." string.
func Strip(symbols []Symbol) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, s := range symbols {
		sb.WriteString(s.Dir.Letter())
	}
	return sb.String()
}

// Count returns how many symbols go up and how many go down.
func Count(symbols []Symbol) (up, down int) {
	for _, s := range symbols {
		if s.Dir == Up {
			up++
		} else {
			down++
		}
	}
	return up, down
}
