// SPDX-License-Identifier: EPL-2.0

package config

import (
	"github.com/ik5/cubenote"
	"github.com/ik5/cubenote/notation"
	"github.com/ik5/cubenote/signal"
)

// Options converts the pipeline section into transcription options.
func (c *Config) Options() (cubenote.Options, error) {
	opts := cubenote.DefaultOptions()
	p := c.Pipeline

	opts.BinSize = p.BinSize
	opts.Gain = p.Gain
	opts.Rescale = p.Rescale
	opts.Mixdown = p.Mixdown

	if len(p.Faces) > 0 {
		faces, err := notation.ParseFaceMap(p.Faces...)
		if err != nil {
			return cubenote.Options{}, err
		}
		opts.Faces = faces
	}

	var err error
	if opts.RescaleFlat, err = signal.ParseFlatPolicy(p.RescaleFlat); err != nil {
		return cubenote.Options{}, err
	}
	if opts.Tail, err = notation.ParseTailPolicy(p.Tail); err != nil {
		return cubenote.Options{}, err
	}

	return opts, nil
}
