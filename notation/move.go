// SPDX-License-Identifier: EPL-2.0

package notation

import (
	"cmp"
	"slices"
	"strings"
)

// Suffix modifies a face turn.
type Suffix string

const (
	// Clockwise quarter turn.
	Quarter Suffix = ""
	// Counter-clockwise quarter turn.
	Prime Suffix = "'"
	// Half turn.
	Double Suffix = "2"
)

// Move is one notation token and the time (seconds) it was taken from.
type Move struct {
	Face   Face    `json:"face"`
	Suffix Suffix  `json:"suffix"`
	Time   float64 `json:"time"`
}

// String returns the token, e.g. "R", "U2" or "L'".
func (m Move) String() string { return string(m.Face) + string(m.Suffix) }

// Merge interleaves the move lists of several channels into one list ordered
// by time. Moves with equal times keep the order of tracks.
func Merge(tracks ...[]Move) []Move {
	total := 0
	for _, t := range tracks {
		total += len(t)
	}

	out := make([]Move, 0, total)
	for _, t := range tracks {
		out = append(out, t...)
	}

	slices.SortStableFunc(out, func(a, b Move) int {
		return cmp.Compare(a.Time, b.Time)
	})
	return out
}

// Format joins the move tokens with single spaces.
func Format(moves []Move) string {
	tokens := make([]string, len(moves))
	for i, m := range moves {
		tokens[i] = m.String()
	}
	return strings.Join(tokens, " ")
}
