// SPDX-License-Identifier: EPL-2.0

package visual

import (
	"fmt"
	"io"
	"strings"

	"github.com/ik5/cubenote/notation"
	"github.com/ik5/cubenote/shape"
)

// Shapes draws a contour as a strip of rising and falling strokes, wrapped
// at DefaultWidth symbols per line.
func Shapes(w io.Writer, symbols []shape.Symbol) error {
	if len(symbols) == 0 {
		_, err := fmt.Fprintln(w, "(no symbols)")
		return err
	}

	var sb strings.Builder
	for i, s := range symbols {
		if i > 0 && i%DefaultWidth == 0 {
			sb.WriteByte('\n')
		}
		if s.Dir == shape.Up {
			sb.WriteRune('╱')
		} else {
			sb.WriteRune('╲')
		}
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// Timeline lists moves with their timestamps, several per line.
func Timeline(w io.Writer, moves []notation.Move) error {
	if len(moves) == 0 {
		_, err := fmt.Fprintln(w, "(no moves)")
		return err
	}

	const perLine = 8
	for i, m := range moves {
		sep := " "
		if (i+1)%perLine == 0 || i == len(moves)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%7.3fs %-3s%s", m.Time, m.String(), sep); err != nil {
			return err
		}
	}
	return nil
}
