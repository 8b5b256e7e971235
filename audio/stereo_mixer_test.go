// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"
)

func TestStereoMixer_MonoDuplicates(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	mixer := NewStereoMixer(src)

	if mixer.Channels() != 2 {
		t.Errorf("StereoMixer.Channels() = %d, want 2", mixer.Channels())
	}

	buf := make([]float32, 20)
	n, err := mixer.ReadSamples(buf)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 20 {
		t.Errorf("ReadSamples() n = %d, want 20", n)
	}

	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestStereoMixer_StereoPassthrough(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 100, func(sample int, channel int) float32 {
		if channel == 0 {
			return 0.4 // Left channel
		}
		return 0.6 // Right channel
	})

	mixer := NewStereoMixer(src)

	buf := make([]float32, 20)
	n, err := mixer.ReadSamples(buf)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 20 {
		t.Errorf("ReadSamples() n = %d, want 20", n)
	}

	// Channels must stay distinct: pass-through does not mix.
	for f := range n / 2 {
		if buf[f*2] != 0.4 || buf[f*2+1] != 0.6 {
			t.Errorf("frame %d = (%v, %v), want (0.4, 0.6)", f, buf[f*2], buf[f*2+1])
		}
	}
}

func TestStereoMixer_MonoSineDuplicates(t *testing.T) {
	t.Parallel()

	// A varying waveform catches duplication bugs a constant source
	// would mask: every frame's left and right must match the input.
	src := newSineSource(8000, 1, 64, 440)
	mixer := NewStereoMixer(src)

	buf := make([]float32, 32)
	n, err := mixer.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for f := range n / 2 {
		want := float32(math.Sin(2 * math.Pi * 440 * float64(f) / 8000))
		if buf[f*2] != want || buf[f*2+1] != buf[f*2] {
			t.Errorf("frame %d = (%v, %v), want both %v", f, buf[f*2], buf[f*2+1], want)
		}
	}
}

func TestStereoMixer_MultiChannelDownmix(t *testing.T) {
	t.Parallel()

	// 4-channel source: average lands on both output channels.
	src := newMockSource(8000, 4, 100, func(sample int, channel int) float32 {
		return float32(channel) / 10.0 // 0.0, 0.1, 0.2, 0.3
	})

	mixer := NewStereoMixer(src)

	buf := make([]float32, 20)
	n, err := mixer.ReadSamples(buf)

	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 20 {
		t.Errorf("ReadSamples() n = %d, want 20", n)
	}

	expected := float32(0.15) // (0.0 + 0.1 + 0.2 + 0.3) / 4
	for i := range n {
		if math.Abs(float64(buf[i]-expected)) > 0.001 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], expected)
		}
	}
}

func TestStereoMixer_EOF(t *testing.T) {
	t.Parallel()

	// Source with only 5 frames
	src := newSilentSource(8000, 1, 5)
	mixer := NewStereoMixer(src)

	buf := make([]float32, 20)
	n, err := mixer.ReadSamples(buf)

	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10 (5 frames of stereo)", n)
	}
}

func TestStereoMixer_OddDstSize(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 100)
	mixer := NewStereoMixer(src)

	buf := make([]float32, 7)
	_, err := mixer.ReadSamples(buf)
	if !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestStereoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 100)
	mixer := NewStereoMixer(src)

	n, err := mixer.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestStereoMixer_Queries(t *testing.T) {
	t.Parallel()

	src := newSilentSource(16000, 1, 100)
	mixer := NewStereoMixer(src)

	if got := mixer.SampleRate(); got != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", got)
	}
	if got := mixer.BufSize(); got != src.BufSize() {
		t.Errorf("BufSize() = %d, want %d", got, src.BufSize())
	}
	if err := mixer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
