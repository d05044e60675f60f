// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III streams.
//
// This package uses github.com/hajimehoshi/go-mp3, which already emits
// little-endian 16-bit stereo PCM, so samples reach the pipeline without
// any float round trip. Mono files come out with both channels equal.
package mp3
