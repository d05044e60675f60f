// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/cubenote/audio"
	"github.com/ik5/cubenote/formats/internal/intpcm"
)

// pcmFormat is the WAVE_FORMAT_PCM tag in the fmt chunk.
const pcmFormat = 1

type Decoder struct{}

// Decode parses the RIFF header of r and returns a Source over its data
// chunk. Only uncompressed 16-bit PCM is accepted.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != pcmFormat || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	return intpcm.NewSource(dec, int(dec.SampleRate), int(dec.NumChans)), nil
}
