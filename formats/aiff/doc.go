// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files.
//
// This package uses github.com/go-audio/aiff for chunk parsing. AIFF sound
// data is big-endian; the decoder hands out native int16 values.
//
// Only 16-bit PCM is accepted:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrOnlyPCM16bitSupported) {
//	    // 8/24/32-bit file
//	}
package aiff
