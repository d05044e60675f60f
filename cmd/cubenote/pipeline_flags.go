// SPDX-License-Identifier: EPL-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/ik5/cubenote"
	"github.com/ik5/cubenote/notation"
	"github.com/ik5/cubenote/signal"
)

// pipelineFlags override the [pipeline] section for one run.
type pipelineFlags struct {
	binSize     int
	gain        float64
	faces       []string
	rescale     bool
	rescaleFlat string
	tail        string
	mixdown     bool
}

func (p *pipelineFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&p.binSize, "bin-size", "b", cubenote.DefaultBinSize, "Samples per bin")
	f.Float64VarP(&p.gain, "gain", "g", 1, "Multiplier applied to bin means")
	f.StringSliceVarP(&p.faces, "faces", "f", nil, "Face per channel in order, e.g. L,R")
	f.BoolVar(&p.rescale, "rescale", false, "Rescale bins to [-1, 1] before shape extraction")
	f.StringVar(&p.rescaleFlat, "rescale-flat", "fail", "Constant channel under --rescale: fail or zero")
	f.StringVar(&p.tail, "tail", "drop", "Final run of each channel: drop or close")
	f.BoolVar(&p.mixdown, "mixdown", false, "Average all channels into one")
}

// apply returns base with every flag the user set on cmd applied.
func (p *pipelineFlags) apply(cmd *cobra.Command, base cubenote.Options) (cubenote.Options, error) {
	opts := base
	f := cmd.Flags()

	if f.Changed("bin-size") {
		opts.BinSize = p.binSize
	}
	if f.Changed("gain") {
		opts.Gain = p.gain
	}
	if f.Changed("faces") {
		faces, err := notation.ParseFaceMap(p.faces...)
		if err != nil {
			return cubenote.Options{}, err
		}
		opts.Faces = faces
	}
	if f.Changed("rescale") {
		opts.Rescale = p.rescale
	}
	if f.Changed("rescale-flat") {
		flat, err := signal.ParseFlatPolicy(p.rescaleFlat)
		if err != nil {
			return cubenote.Options{}, err
		}
		opts.RescaleFlat = flat
	}
	if f.Changed("tail") {
		tail, err := notation.ParseTailPolicy(p.tail)
		if err != nil {
			return cubenote.Options{}, err
		}
		opts.Tail = tail
	}
	if f.Changed("mixdown") {
		opts.Mixdown = p.mixdown
	}

	return opts, nil
}

// transcribe runs the pipeline over path with config and flag settings.
func (c *commandContext) transcribe(cmd *cobra.Command, p *pipelineFlags, path string) (cubenote.Result, error) {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return cubenote.Result{}, err
	}

	base, err := cfg.Options()
	if err != nil {
		return cubenote.Result{}, err
	}

	opts, err := p.apply(cmd, base)
	if err != nil {
		return cubenote.Result{}, err
	}

	logger := c.logger.With().Str("file", path).Logger()
	opts.Logger = &logger

	res, err := cubenote.TranscribeFile(path, opts)
	if err != nil {
		logger.Error().Err(err).Msg("transcription failed")
		return cubenote.Result{}, err
	}

	logger.Info().
		Str("run", res.ID.String()).
		Int("channels", len(res.Channels)).
		Int("moves", len(res.Moves)).
		Msg("transcribed")

	return res, nil
}
