// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates 16-bit PCM for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // Total frames to generate
	generated  int // Frames generated so far
	waveform   func(frame int, channel int) int16
	closed     bool
}

// NewMockSource creates a new mock audio source.
// frames is the number of samples per channel to generate.
// waveform returns the sample for a given frame index and channel.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) int16) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, frames int, value int16) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) int16 {
		return value
	})
}

// NewSineSource creates a mock source that generates a sine wave at
// amplitude (PCM16 units).
func NewSineSource(sampleRate, channels, frames int, frequency float64, amplitude int16) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, channel int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(float64(amplitude) * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewSliceSource replays per-channel sample slices. All channels must have
// the same length.
func NewSliceSource(sampleRate int, channels ...[]int16) *MockSource {
	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}
	return NewMockSource(sampleRate, len(channels), frames, func(frame int, channel int) int16 {
		return channels[channel][frame]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { m.closed = true; return nil }

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated frame counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadPCM(dst []int16) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.frames-m.generated)

	for frame := range framesToWrite {
		index := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(index, ch)
		}
	}

	m.generated += framesToWrite
	written := framesToWrite * m.channels

	if m.generated >= m.frames {
		return written, io.EOF
	}

	return written, nil
}
