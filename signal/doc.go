// SPDX-License-Identifier: EPL-2.0

// Package signal turns raw channel samples into binned series.
//
// It covers the first two numeric stages of the notation pipeline:
//
//	axis, _ := signal.TimeAxis(len(samples), 44100)
//	binned, _ := signal.Bin(samples, 2048, 1.0, axis)
//	scaled, _ := signal.Rescale(binned, signal.FlatFail)
//
// Every function returns fresh slices and leaves its arguments untouched.
//
// # Errors
//
// ErrInvalidInput and ErrDegenerateData are the roots of the module's error
// taxonomy; the other packages wrap them.
package signal
