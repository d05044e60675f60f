// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// DefaultBufSize is the number of int16 values Collect requests per read.
const DefaultBufSize = 4096

// Signal is a fully decoded recording split into channels.
// Channels[c][i] is the PCM16 value of channel c at frame i.
type Signal struct {
	Channels   [][]float64
	SampleRate int
}

// Frames returns the number of samples per channel.
func (s Signal) Frames() int {
	if len(s.Channels) == 0 {
		return 0
	}
	return len(s.Channels[0])
}

// Collect drains src and deinterleaves it into one slice per channel.
// A trailing partial frame is discarded. bufSize <= 0 selects DefaultBufSize.
//
// Collect does not close src.
func Collect(src Source, bufSize int) (Signal, error) {
	channels := src.Channels()
	if channels <= 0 {
		return Signal{}, ErrNoChannels
	}
	if bufSize <= 0 {
		bufSize = DefaultBufSize
	}
	// Round down to whole frames, but always fit at least one.
	bufSize = max(bufSize-bufSize%channels, channels)

	buf := make([]int16, bufSize)
	var interleaved []int16

	for {
		n, err := src.ReadPCM(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return Signal{}, fmt.Errorf("collect pcm: %w", err)
		}

		if n == 0 {
			// A source that returns nothing without an error is done.
			break
		}
	}

	frames := len(interleaved) / channels
	out := Signal{
		Channels:   make([][]float64, channels),
		SampleRate: src.SampleRate(),
	}
	for c := range channels {
		out.Channels[c] = make([]float64, frames)
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			out.Channels[c][f] = float64(interleaved[base+c])
		}
	}

	return out, nil
}
