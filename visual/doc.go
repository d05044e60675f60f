// SPDX-License-Identifier: EPL-2.0

// Package visual renders pipeline data as text for terminals.
//
// Plot draws a series with Unicode braille characters, each cell holding a
// 2x4 grid of dots:
//
//	visual.Plot(os.Stdout, ch.Binned.Values, visual.Options{Title: "binned"})
//
// Shapes draws an up/down contour and Timeline lists moves with their
// times. Nothing here feeds back into the notation.
package visual
