// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis decodes to
// floating point, so samples are quantized to 16-bit PCM (clamped to
// ±32767) before they reach the notation pipeline.
package vorbis
