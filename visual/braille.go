// SPDX-License-Identifier: EPL-2.0

package visual

import (
	"fmt"
	"io"
	"strings"

	"github.com/ik5/cubenote/utils"
)

// Default plot size in character cells.
const (
	DefaultWidth  = 64
	DefaultHeight = 8
)

// Options sizes a plot. Zero fields take the defaults.
type Options struct {
	Width  int // cells per row
	Height int // rows
	Title  string
}

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// canvas is a grid of braille dots, two per cell across and four down.
type canvas struct {
	cols, rows int // in dots
	cells      [][]uint
}

func newCanvas(width, height int) *canvas {
	cells := make([][]uint, height)
	for i := range cells {
		cells[i] = make([]uint, width)
	}
	return &canvas{cols: width * 2, rows: height * 4, cells: cells}
}

func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.cells[y/4][x/2] |= 1 << brailleBits[x%2][y%4]
}

// vline sets every dot in column x between y0 and y1 inclusive.
func (c *canvas) vline(x, y0, y1 int) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.set(x, y)
	}
}

func (c *canvas) lines() []string {
	out := make([]string, len(c.cells))
	for i, row := range c.cells {
		var sb strings.Builder
		for _, pattern := range row {
			sb.WriteRune(rune(0x2800 + pattern))
		}
		out[i] = sb.String()
	}
	return out
}

// Plot draws values as a braille line chart, left to right, scaled so the
// smallest value sits on the bottom dot row and the largest on the top.
// A constant series is drawn through the middle.
func Plot(w io.Writer, values []float64, opts Options) error {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	if opts.Title != "" {
		if _, err := fmt.Fprintln(w, opts.Title); err != nil {
			return err
		}
	}

	if len(values) == 0 {
		_, err := fmt.Fprintln(w, "(no data)")
		return err
	}

	lo, hi := utils.MinMax(values)
	c := newCanvas(width, height)

	// Short series use one dot column per value instead of stretching.
	cols := min(c.cols, len(values))

	prev := -1
	for x := range cols {
		v := values[x*len(values)/cols]

		y := c.rows / 2
		if hi > lo {
			y = c.rows - 1 - int((v-lo)/(hi-lo)*float64(c.rows-1)+0.5)
		}

		if prev < 0 {
			c.set(x, y)
		} else {
			c.vline(x, prev, y)
		}
		prev = y
	}

	label := labelWidth(lo, hi)
	for i, line := range c.lines() {
		var tag string
		switch i {
		case 0:
			tag = formatLabel(hi)
		case height - 1:
			tag = formatLabel(lo)
		}
		if _, err := fmt.Fprintf(w, "%*s ┤%s\n", label, tag, line); err != nil {
			return err
		}
	}

	return nil
}

func formatLabel(v float64) string { return fmt.Sprintf("%.4g", v) }

func labelWidth(lo, hi float64) int {
	return max(len(formatLabel(lo)), len(formatLabel(hi)))
}
