// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into an audio.Source.
//
// Parsing is done by github.com/go-audio/wav, so files with extra chunks
// (LIST, fact, ...) before the data chunk are handled.
//
// # Supported Formats
//
// Only uncompressed PCM with 16 bits per sample is accepted, at any
// sample rate and channel count. Everything else is rejected with
// ErrOnlyPCM16bitSupported, which matches audio.ErrUnsupportedFormat:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    // not something the notation pipeline can read
//	}
//
// # Reading
//
// The decoder needs to seek. An *os.File is used directly; other readers
// are buffered in memory first.
package wav
