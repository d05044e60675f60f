// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV writes channels as a PCM WAV file at path with the given bit
// depth. Channels are interleaved in argument order.
func WriteWAV(path string, sampleRate, bitDepth int, channels ...[]int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create fixture: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, len(channels), 1)
	if err := enc.Write(interleave(sampleRate, bitDepth, channels)); err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}

	return enc.Close()
}

func interleave(sampleRate, bitDepth int, channels [][]int16) *goaudio.IntBuffer {
	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}

	data := make([]int, 0, frames*len(channels))
	for i := range frames {
		for _, ch := range channels {
			data = append(data, int(ch[i]))
		}
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: len(channels),
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}

// ReadFile returns the bytes of a fixture written by WriteWAV or WriteAIFF.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return data, nil
}
