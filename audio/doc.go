// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-provider side of the notation pipeline.
//
// This package contains the building blocks that turn an encoded file into
// numeric channel data:
//   - Source interface for decoded 16-bit PCM
//   - Collect for draining a Source into per-channel signals
//   - MonoMixer for channel mixing
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the boundary between format decoders and the
// rest of the module:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadPCM(dst []int16) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved, so a stereo stream yields L R L R ...
//
// # Collecting
//
// Collect reads a Source to the end and splits it into channels:
//
//	sig, err := audio.Collect(source, audio.DefaultBufSize)
//	left, right := sig.Channels[0], sig.Channels[1]
//
// Values keep their PCM16 scale ([-32768, 32767]); no normalization is
// applied.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	sig, err := audio.Collect(mono, 0)
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("take1.WAV")
//
// Unknown extensions fail with an error matching ErrUnsupportedFormat.
//
// # Error Handling
//
// ReadPCM returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadPCM(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
