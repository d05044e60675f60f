// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"os"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// WriteAIFF writes channels as a PCM AIFF file at path with the given bit
// depth. Channels are interleaved in argument order.
func WriteAIFF(path string, sampleRate, bitDepth int, channels ...[]int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create fixture: %w", err)
	}
	defer f.Close()

	enc := aiff.NewEncoder(f, sampleRate, bitDepth, len(channels))
	if err := enc.Write(interleave(sampleRate, bitDepth, channels)); err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}

	return enc.Close()
}
