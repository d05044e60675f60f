// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds every frame of src into a single channel by averaging.
// Samples of a frame split across two reads of src are held until the
// frame is complete.
type MonoMixer struct {
	src     Source
	tmp     []int16
	pending int // samples of an incomplete frame at the start of tmp
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]int16, DefaultBufSize),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadPCM writes at most len(dst) mono samples.
func (m *MonoMixer) ReadPCM(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 0 {
		return 0, ErrNoChannels
	}
	if channels == 1 {
		return m.src.ReadPCM(dst)
	}

	needed := len(dst) * channels
	if cap(m.tmp) < needed {
		tmp := make([]int16, needed)
		copy(tmp, m.tmp[:m.pending])
		m.tmp = tmp
	}
	m.tmp = m.tmp[:needed]

	// Read until at least one whole frame is buffered, so a short read
	// is never reported as an empty one.
	var err error
	for {
		var n int
		n, err = m.src.ReadPCM(m.tmp[m.pending:])
		m.pending += n
		if m.pending >= channels || err != nil || n == 0 {
			break
		}
	}

	total := m.pending
	frames := total / channels

	for f := range frames {
		base := f * channels
		var sum int32
		for c := range channels {
			sum += int32(m.tmp[base+c])
		}
		dst[f] = int16(sum / int32(channels))
	}

	// Keep the incomplete frame for the next call.
	m.pending = copy(m.tmp, m.tmp[frames*channels:total])

	return frames, err
}
