// SPDX-License-Identifier: EPL-2.0

package cubenote

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ik5/cubenote/audio"
	"github.com/ik5/cubenote/formats"
	"github.com/ik5/cubenote/notation"
	"github.com/ik5/cubenote/shape"
	"github.com/ik5/cubenote/signal"
)

// DefaultBinSize is the number of samples averaged into one bin.
const DefaultBinSize = 2048

// Options controls a transcription. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	// BinSize is the number of samples per bin. Must be positive.
	BinSize int
	// Gain multiplies every bin mean.
	Gain float64
	// Faces assigns a face to each channel, in channel order. When empty,
	// channels take L, R, F, B, U, D in turn.
	Faces notation.FaceMap
	// Rescale maps each channel's bins onto [-1, 1] before shape extraction.
	Rescale bool
	// RescaleFlat decides what Rescale does with a constant channel.
	RescaleFlat signal.FlatPolicy
	// Tail decides whether the final run of each channel is emitted.
	Tail notation.TailPolicy
	// Mixdown averages all channels into one before binning.
	Mixdown bool
	// BufSize is the read size passed to audio.Collect.
	BufSize int
	// Logger receives progress at debug level. nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns bins of 2048 samples, unit gain, no rescale, the
// final run dropped and L/R faces for a stereo take.
func DefaultOptions() Options {
	return Options{
		BinSize: DefaultBinSize,
		Gain:    1,
		BufSize: audio.DefaultBufSize,
	}
}

// ChannelResult holds every intermediate stage of one channel.
type ChannelResult struct {
	Face notation.Face
	// Samples and Axis are the channel signal and its time axis.
	Samples []float64
	Axis    []float64
	// Binned is the binner output; Rescaled is set only when Options.Rescale
	// is enabled and is what shape extraction then reads.
	Binned   signal.Binned
	Rescaled signal.Binned
	Symbols  []shape.Symbol
	notation.Translation
}

// Result is a finished transcription.
type Result struct {
	ID         uuid.UUID
	SampleRate int
	Channels   []ChannelResult
	// Moves merges the moves of all channels ordered by time.
	Moves []notation.Move
}

// Notation returns the merged moves as a space-separated string.
func (r Result) Notation() string { return notation.Format(r.Moves) }

// DefaultFaces returns the face map used when Options.Faces is empty.
func DefaultFaces(channels int) (notation.FaceMap, error) {
	if channels > len(notation.Faces) {
		return nil, fmt.Errorf("%w: %d channels", ErrTooManyChannels, channels)
	}
	return append(notation.FaceMap(nil), notation.Faces[:channels]...), nil
}

// TranscribeFile opens path with the bundled decoders and transcribes it.
func TranscribeFile(path string, opts Options) (Result, error) {
	src, err := formats.Open(nil, path)
	if err != nil {
		return Result{}, err
	}
	defer src.Close()

	return Transcribe(src, opts)
}

// Transcribe reads src to the end and converts it into cube moves.
//
// The pipeline per channel is:
//  1. build the time axis from the sample rate
//  2. average the samples into bins of Options.BinSize
//  3. optionally rescale the bins to [-1, 1]
//  4. reduce the bins to up/down symbols
//  5. run-length encode the symbols and map each run to a move
//
// The per-channel moves are then merged by time. Transcribe does not close
// src.
//
// Example:
//
//	src, _ := formats.Open(nil, "take1.wav")
//	defer src.Close()
//	res, err := cubenote.Transcribe(src, cubenote.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Notation()) // e.g. "L2 R L' R2"
func Transcribe(src audio.Source, opts Options) (Result, error) {
	if opts.Mixdown {
		src = audio.NewMonoMixer(src)
	}

	sig, err := audio.Collect(src, opts.BufSize)
	if err != nil {
		return Result{}, err
	}

	return TranscribeChannels(sig, opts)
}

// TranscribeChannels runs the pipeline over already decoded channels.
// Options.Mixdown is ignored; sig is used as is.
func TranscribeChannels(sig audio.Signal, opts Options) (Result, error) {
	if len(sig.Channels) == 0 {
		return Result{}, fmt.Errorf("%w: no channels", ErrInvalidInput)
	}
	if math.IsNaN(opts.Gain) || math.IsInf(opts.Gain, 0) {
		return Result{}, ErrInvalidGain
	}

	faces := opts.Faces
	if len(faces) == 0 {
		var err error
		if faces, err = DefaultFaces(len(sig.Channels)); err != nil {
			return Result{}, err
		}
	}
	if err := faces.Check(len(sig.Channels)); err != nil {
		return Result{}, err
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	res := Result{
		ID:         uuid.New(),
		SampleRate: sig.SampleRate,
		Channels:   make([]ChannelResult, len(sig.Channels)),
	}
	log = log.With().Str("run", res.ID.String()).Logger()

	log.Debug().
		Int("channels", len(sig.Channels)).
		Int("frames", sig.Frames()).
		Int("rate", sig.SampleRate).
		Int("bin_size", opts.BinSize).
		Msg("transcribe")

	tracks := make([][]notation.Move, len(sig.Channels))
	for c, samples := range sig.Channels {
		ch, err := transcribeChannel(samples, sig.SampleRate, faces[c], opts)
		if err != nil {
			return Result{}, fmt.Errorf("channel %d: %w", c, err)
		}

		log.Debug().
			Int("channel", c).
			Str("face", string(ch.Face)).
			Int("bins", ch.Binned.Len()).
			Int("symbols", len(ch.Symbols)).
			Int("runs", len(ch.Runs)).
			Int("moves", len(ch.Moves)).
			Msg("channel done")

		res.Channels[c] = ch
		tracks[c] = ch.Moves
	}

	res.Moves = notation.Merge(tracks...)
	return res, nil
}

func transcribeChannel(samples []float64, rate int, face notation.Face, opts Options) (ChannelResult, error) {
	if len(samples) == 0 {
		return ChannelResult{}, signal.ErrEmptySignal
	}

	axis, err := signal.TimeAxis(len(samples), float64(rate))
	if err != nil {
		return ChannelResult{}, err
	}

	binned, err := signal.Bin(samples, opts.BinSize, opts.Gain, axis)
	if err != nil {
		return ChannelResult{}, err
	}

	ch := ChannelResult{
		Face:    face,
		Samples: samples,
		Axis:    axis,
		Binned:  binned,
	}

	shaped := binned
	if opts.Rescale {
		if ch.Rescaled, err = signal.Rescale(binned, opts.RescaleFlat); err != nil {
			return ChannelResult{}, err
		}
		shaped = ch.Rescaled
	}

	if ch.Symbols, err = shape.Extract(shaped); err != nil {
		return ChannelResult{}, err
	}

	if ch.Translation, err = notation.Translate(ch.Symbols, face, notation.WithTailPolicy(opts.Tail)); err != nil {
		return ChannelResult{}, err
	}

	return ch, nil
}
