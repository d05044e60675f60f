// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/cubenote/audio"
)

// mockOggVorbisReader simulates oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.samples) == 0 {
		return 0, io.EOF
	}
	n := copy(buf, m.samples)
	m.samples = m.samples[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	if !errors.Is(err, ErrNotVorbisFile) {
		t.Errorf("Decode() error = %v, want ErrNotVorbisFile", err)
	}
	if !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("Decode() error = %v, want audio.ErrUnsupportedFormat", err)
	}
}

func TestSource_ReadPCM_Stereo(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0, 1, -1, 0.5, 2, -2},
	})

	if src.SampleRate() != 48000 || src.Channels() != 2 {
		t.Fatalf("metadata = %d Hz x %d", src.SampleRate(), src.Channels())
	}

	// Odd buffer length is trimmed to whole frames.
	dst := make([]int16, 5)
	n, err := src.ReadPCM(dst)
	if err != nil || n != 4 {
		t.Fatalf("ReadPCM() = (%d, %v), want (4, nil)", n, err)
	}
	want := []int16{0, 32767, -32767, 16383}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}

	n, err = src.ReadPCM(dst)
	if err != nil || n != 2 || dst[0] != 32767 || dst[1] != -32767 {
		t.Errorf("clamped ReadPCM() = (%d, %v, %v)", n, err, dst[:n])
	}

	n, err = src.ReadPCM(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("drained ReadPCM() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadPCM_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad packet")
	src := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 1, err: boom})

	_, err := src.ReadPCM(make([]int16, 4))
	if !errors.Is(err, boom) {
		t.Errorf("ReadPCM() error = %v, want %v", err, boom)
	}
}

func TestSource_ReadPCM_TooSmall(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 2, samples: []float32{0, 0}})
	n, err := src.ReadPCM(make([]int16, 1))
	if n != 0 || !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadPCM(1) = (%d, %v), want (0, ErrInvalidDstSize)", n, err)
	}

	n, err = src.ReadPCM(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadPCM(nil) = (%d, %v), want (0, nil)", n, err)
	}
}
