// SPDX-License-Identifier: EPL-2.0

// Package cubenote turns recorded audio into Rubik's cube move notation.
//
// A recording is split into channels, each channel is averaged into bins,
// the bins are reduced to an up/down contour and runs of that contour are
// mapped to turns of the face assigned to the channel. The result is a
// sequence such as "L2 R L' R2".
//
// # Supported Formats
//
// Decoding is handled by the formats subpackages:
//   - WAV (PCM 16-bit) via formats/wav
//   - AIFF (PCM 16-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Quick Start
//
//	res, err := cubenote.TranscribeFile("take1.wav", cubenote.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Notation())
//
// # Pipeline
//
// Each stage lives in its own package and can be used on its own:
//
//	axis, _ := signal.TimeAxis(len(samples), 44100)
//	bins, _ := signal.Bin(samples, 2048, 1, axis)
//	symbols, _ := shape.Extract(bins)
//	tr, _ := notation.Translate(symbols, notation.Left)
//
// # Run Lengths
//
// Runs of equal direction are reduced modulo 4, since four quarter turns
// return a face to where it started:
//
//	1 -> quarter turn ("R" going up, "R'" going down)
//	2 -> half turn ("R2")
//	3 -> quarter turn the other way
//	0 -> no move
//
// By default the final run of each channel is never emitted, since only a
// change of direction closes a run. Set Options.Tail to
// notation.CloseOpenTail to keep it.
//
// # Errors
//
// Failures match ErrInvalidInput, ErrDegenerateData or ErrUnsupportedFormat
// with errors.Is. Nothing is returned alongside an error.
//
// See the individual subpackages for more detailed documentation.
package cubenote
