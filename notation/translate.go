// SPDX-License-Identifier: EPL-2.0

package notation

import (
	"fmt"
	"strings"

	"github.com/ik5/cubenote/shape"
)

// TailPolicy controls the run still open when the symbols run out.
type TailPolicy int

const (
	// DropOpenTail emits only runs closed by a change of direction, so the
	// last run of every channel is discarded. This is the default.
	DropOpenTail TailPolicy = iota
	// CloseOpenTail also emits the final run.
	CloseOpenTail
)

func (p TailPolicy) String() string {
	switch p {
	case DropOpenTail:
		return "drop"
	case CloseOpenTail:
		return "close"
	default:
		return fmt.Sprintf("TailPolicy(%d)", int(p))
	}
}

// ParseTailPolicy accepts "drop" or "close".
func ParseTailPolicy(s string) (TailPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drop", "":
		return DropOpenTail, nil
	case "close":
		return CloseOpenTail, nil
	default:
		return DropOpenTail, fmt.Errorf("%w: %q", ErrTailPolicy, s)
	}
}

// Run is a maximal stretch of equal symbols. Time is the timestamp of its
// first symbol.
type Run struct {
	Dir    shape.Direction
	Length int
	Time   float64
}

// Reduced is a run after the modulo 4 reduction: a quarter (1) or half (2)
// turn in Dir.
type Reduced struct {
	Dir   shape.Direction
	Turns int
	Time  float64
}

// Translation holds the moves for one channel together with the two
// intermediate lists, kept for inspection.
type Translation struct {
	Runs    []Run
	Reduced []Reduced
	Moves   []Move
}

type options struct {
	tail TailPolicy
}

// Option configures Translate.
type Option func(*options)

// WithTailPolicy selects how the final open run is handled.
func WithTailPolicy(p TailPolicy) Option {
	return func(o *options) { o.tail = p }
}

// Encode splits symbols into runs, scanning left to right.
func Encode(symbols []shape.Symbol, tail TailPolicy) []Run {
	runs := []Run{}
	if len(symbols) == 0 {
		return runs
	}

	start := 0
	for i := 1; i < len(symbols); i++ {
		if symbols[i].Dir == symbols[start].Dir {
			continue
		}
		runs = append(runs, Run{
			Dir:    symbols[start].Dir,
			Length: i - start,
			Time:   symbols[start].Time,
		})
		start = i
	}

	if tail == CloseOpenTail {
		runs = append(runs, Run{
			Dir:    symbols[start].Dir,
			Length: len(symbols) - start,
			Time:   symbols[start].Time,
		})
	}

	return runs
}

// Reduce folds each run length modulo 4:
//
//	1 -> quarter turn in the run's direction
//	2 -> half turn
//	3 -> quarter turn in the opposite direction
//	0 -> nothing
func Reduce(runs []Run) []Reduced {
	out := make([]Reduced, 0, len(runs))
	for _, r := range runs {
		switch r.Length % 4 {
		case 1:
			out = append(out, Reduced{Dir: r.Dir, Turns: 1, Time: r.Time})
		case 2:
			out = append(out, Reduced{Dir: r.Dir, Turns: 2, Time: r.Time})
		case 3:
			out = append(out, Reduced{Dir: r.Dir.Opposite(), Turns: 1, Time: r.Time})
		}
	}
	return out
}

// Notate turns reduced runs into moves of face.
func Notate(reduced []Reduced, face Face) []Move {
	out := make([]Move, 0, len(reduced))
	for _, r := range reduced {
		m := Move{Face: face, Time: r.Time}
		switch {
		case r.Turns == 2:
			m.Suffix = Double
		case r.Dir == shape.Down:
			m.Suffix = Prime
		}
		out = append(out, m)
	}
	return out
}

// Translate runs Encode, Reduce and Notate over one channel's symbols.
func Translate(symbols []shape.Symbol, face Face, opts ...Option) (Translation, error) {
	if !face.Valid() {
		return Translation{}, fmt.Errorf("%w: %q", ErrInvalidFace, string(face))
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.tail != DropOpenTail && o.tail != CloseOpenTail {
		return Translation{}, fmt.Errorf("%w: %v", ErrTailPolicy, o.tail)
	}

	runs := Encode(symbols, o.tail)
	reduced := Reduce(runs)

	return Translation{
		Runs:    runs,
		Reduced: reduced,
		Moves:   Notate(reduced, face),
	}, nil
}
