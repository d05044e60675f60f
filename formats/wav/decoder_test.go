// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/ik5/cubenote/audio"
	"github.com/ik5/cubenote/internal/audiotest"
)

// fixture writes channels to a temporary WAV file and returns its bytes.
func fixture(t *testing.T, sampleRate, bitDepth int, channels ...[]int16) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.wav")
	if err := audiotest.WriteWAV(path, sampleRate, bitDepth, channels...); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}
	data, err := audiotest.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	data := fixture(t, 8000, 16, []int16{0, 100, 200, -100, -200, 0})

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
}

func TestDecoder_StereoRoundTrip(t *testing.T) {
	t.Parallel()

	left := []int16{100, 300, 500, -32768}
	right := []int16{200, 400, 600, 32767}
	data := fixture(t, 44100, 16, left, right)

	// Force the in-memory path by hiding the Seeker.
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Channels() != 2 || src.SampleRate() != 44100 {
		t.Fatalf("metadata = %d Hz x %d", src.SampleRate(), src.Channels())
	}

	sig, err := audio.Collect(src, 3)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	for i := range left {
		if sig.Channels[0][i] != float64(left[i]) || sig.Channels[1][i] != float64(right[i]) {
			t.Errorf("frame %d = (%v, %v), want (%v, %v)",
				i, sig.Channels[0][i], sig.Channels[1][i], left[i], right[i])
		}
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE DATA, JUST SOME BYTES")))

	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
	if !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("Decode() error = %v, want audio.ErrUnsupportedFormat", err)
	}
}

func TestDecoder_Non16BitPCM(t *testing.T) {
	t.Parallel()

	data := fixture(t, 8000, 8, []int16{1, 2, 3, 4})

	_, err := Decoder{}.Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrOnlyPCM16bitSupported) {
		t.Errorf("Decode() error = %v, want ErrOnlyPCM16bitSupported", err)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err         error
		msg         string
		unsupported bool
	}{
		{ErrNotWavFile, "unsupported audio format: not a WAV file", true},
		{ErrOnlyPCM16bitSupported, "unsupported audio format: only PCM 16-bit supported", true},
		{ErrUnsupportedWavLayout, "unsupported audio format: WAV header has no channels or sample rate", true},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.msg {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.msg)
		}
		if errors.Is(tt.err, audio.ErrUnsupportedFormat) != tt.unsupported {
			t.Errorf("errors.Is(%v, ErrUnsupportedFormat) = %v", tt.err, !tt.unsupported)
		}
	}
}
