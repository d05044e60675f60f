// SPDX-License-Identifier: EPL-2.0

// Package notation maps up/down contours onto cube moves.
//
// A channel's symbols are run-length encoded, each run length is reduced
// modulo 4 and the survivors become moves of the channel's face:
//
//	u u d u u u u d d d
//	runs:    (u,2) (d,1) (u,4) (d,3)
//	reduced: half   quarter-d  -  quarter-u
//	moves:   F2     F'            F
//
// By default the last run of a channel is not emitted (DropOpenTail), so
// the (d,3) run above only appears with WithTailPolicy(CloseOpenTail).
package notation
