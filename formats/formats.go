// SPDX-License-Identifier: EPL-2.0

// Package formats assembles the decoders that can feed the notation
// pipeline.
package formats

import (
	"fmt"
	"os"

	"github.com/ik5/cubenote/audio"
	"github.com/ik5/cubenote/formats/aiff"
	"github.com/ik5/cubenote/formats/mp3"
	"github.com/ik5/cubenote/formats/vorbis"
	"github.com/ik5/cubenote/formats/wav"
)

// Default returns a registry with every bundled decoder.
func Default() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

// fileSource closes the backing file together with the decoded source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	srcErr := s.Source.Close()
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.f.Name(), err)
	}
	return srcErr
}

// Open decodes the file at path with the decoder registered in reg for its
// extension. A nil reg uses Default. Closing the returned Source closes
// the file.
func Open(reg *audio.Registry, path string) (audio.Source, error) {
	if reg == nil {
		reg = Default()
	}

	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}
