// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/cubenote/internal/audiotest"
)

// failingSource errors after the first read.
type failingSource struct {
	reads int
}

func (s *failingSource) SampleRate() int { return 8000 }
func (s *failingSource) Channels() int   { return 1 }
func (s *failingSource) Close() error    { return nil }
func (s *failingSource) ReadPCM(dst []int16) (int, error) {
	s.reads++
	if s.reads > 1 {
		return 0, errors.New("device unplugged")
	}
	for i := range dst {
		dst[i] = 1
	}
	return len(dst), nil
}

func TestCollect_Stereo(t *testing.T) {
	t.Parallel()

	left := []int16{1, 2, 3, 4, 5}
	right := []int16{-1, -2, -3, -4, -5}
	src := audiotest.NewSliceSource(8000, left, right)

	sig, err := Collect(src, 4)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if sig.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", sig.SampleRate)
	}
	if len(sig.Channels) != 2 {
		t.Fatalf("len(Channels) = %d, want 2", len(sig.Channels))
	}
	if sig.Frames() != 5 {
		t.Fatalf("Frames() = %d, want 5", sig.Frames())
	}

	for i := range left {
		if sig.Channels[0][i] != float64(left[i]) {
			t.Errorf("Channels[0][%d] = %v, want %v", i, sig.Channels[0][i], left[i])
		}
		if sig.Channels[1][i] != float64(right[i]) {
			t.Errorf("Channels[1][%d] = %v, want %v", i, sig.Channels[1][i], right[i])
		}
	}
}

func TestCollect_OddBufferSize(t *testing.T) {
	t.Parallel()

	// 3 channels with a buffer of 1 still has to read whole frames.
	src := audiotest.NewMockSource(8000, 3, 10, func(frame, channel int) int16 {
		return int16(frame*10 + channel)
	})

	sig, err := Collect(src, 1)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if sig.Frames() != 10 {
		t.Fatalf("Frames() = %d, want 10", sig.Frames())
	}
	if got := sig.Channels[2][7]; got != 72 {
		t.Errorf("Channels[2][7] = %v, want 72", got)
	}
}

func TestCollect_DefaultBufSize(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 1, 10000, 440, 10000)
	sig, err := Collect(src, 0)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if sig.Frames() != 10000 {
		t.Errorf("Frames() = %d, want 10000", sig.Frames())
	}
}

func TestCollect_Empty(t *testing.T) {
	t.Parallel()

	sig, err := Collect(audiotest.NewSilentSource(8000, 2, 0), 0)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if sig.Frames() != 0 || len(sig.Channels) != 2 {
		t.Errorf("Collect() = %d channels x %d frames, want 2 x 0", len(sig.Channels), sig.Frames())
	}
}

func TestCollect_NoChannels(t *testing.T) {
	t.Parallel()

	_, err := Collect(audiotest.NewSilentSource(8000, 0, 10), 0)
	if !errors.Is(err, ErrNoChannels) {
		t.Errorf("Collect() error = %v, want ErrNoChannels", err)
	}
}

func TestCollect_PropagatesError(t *testing.T) {
	t.Parallel()

	_, err := Collect(&failingSource{}, 16)
	if err == nil {
		t.Fatal("Collect() error = nil, want error")
	}
	if errors.Is(err, io.EOF) {
		t.Errorf("Collect() error = %v, should not be io.EOF", err)
	}
}

func TestSignal_FramesEmpty(t *testing.T) {
	t.Parallel()

	if (Signal{}).Frames() != 0 {
		t.Error("Frames() on zero Signal != 0")
	}
}
