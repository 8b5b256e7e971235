// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

// rampPCM builds interleaved stereo PCM where both channels of frame i hold
// float32(i).
func rampPCM(frames int) []float32 {
	data := make([]float32, frames*StereoChannels)
	for f := range frames {
		data[f*StereoChannels] = float32(f)
		data[f*StereoChannels+1] = float32(f)
	}
	return data
}

func TestMemorySource_ReadBlockAdvancesCursor(t *testing.T) {
	t.Parallel()

	mem := NewMemorySourceFromPCM(rampPCM(20), 8000)

	buf := make([]float32, 5*StereoChannels)
	if err := mem.ReadBlock(BlockInfo{Buffer: buf, NumFrames: 5}); err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}

	for f := range 5 {
		if buf[f*StereoChannels] != float32(f) {
			t.Errorf("frame %d = %v, want %v", f, buf[f*StereoChannels], float32(f))
		}
	}

	if pos := mem.ReadPosition(); pos != 5 {
		t.Errorf("ReadPosition() = %d, want 5", pos)
	}
}

func TestMemorySource_StartFrameOffset(t *testing.T) {
	t.Parallel()

	mem := NewMemorySourceFromPCM(rampPCM(20), 8000)
	mem.SetReadPosition(7)

	buf := make([]float32, 10*StereoChannels)
	// Poison the buffer so untouched regions are detectable.
	for i := range buf {
		buf[i] = -99
	}

	if err := mem.ReadBlock(BlockInfo{Buffer: buf, StartFrame: 4, NumFrames: 6}); err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}

	for f := range 4 {
		if buf[f*StereoChannels] != -99 {
			t.Errorf("frame %d before offset was written: %v", f, buf[f*StereoChannels])
		}
	}
	for f := 4; f < 10; f++ {
		want := float32(7 + f - 4)
		if buf[f*StereoChannels] != want {
			t.Errorf("frame %d = %v, want %v", f, buf[f*StereoChannels], want)
		}
	}
}

func TestMemorySource_ZeroFillPastEnd(t *testing.T) {
	t.Parallel()

	mem := NewMemorySourceFromPCM(rampPCM(8), 8000)
	mem.SetReadPosition(5)

	buf := make([]float32, 6*StereoChannels)
	for i := range buf {
		buf[i] = -99
	}

	if err := mem.ReadBlock(BlockInfo{Buffer: buf, NumFrames: 6}); err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}

	for f, want := range []float32{5, 6, 7, 0, 0, 0} {
		if buf[f*StereoChannels] != want {
			t.Errorf("frame %d = %v, want %v", f, buf[f*StereoChannels], want)
		}
	}

	// Cursor keeps advancing even past the data.
	if pos := mem.ReadPosition(); pos != 11 {
		t.Errorf("ReadPosition() = %d, want 11", pos)
	}
}

func TestMemorySource_ShortDestination(t *testing.T) {
	t.Parallel()

	mem := NewMemorySourceFromPCM(rampPCM(8), 8000)

	buf := make([]float32, 4*StereoChannels)
	err := mem.ReadBlock(BlockInfo{Buffer: buf, StartFrame: 2, NumFrames: 4})
	if !errors.Is(err, ErrShortBuffer) {
		t.Errorf("ReadBlock() error = %v, want ErrShortBuffer", err)
	}
}

func TestMemorySource_NegativeSeekClamps(t *testing.T) {
	t.Parallel()

	mem := NewMemorySourceFromPCM(rampPCM(8), 8000)
	mem.SetReadPosition(-3)

	if pos := mem.ReadPosition(); pos != 0 {
		t.Errorf("ReadPosition() = %d, want 0", pos)
	}
}

func TestMemorySource_TotalLengthAndQueries(t *testing.T) {
	t.Parallel()

	mem := NewMemorySourceFromPCM(rampPCM(42), 44100)

	if got := mem.TotalLength(); got != 42 {
		t.Errorf("TotalLength() = %d, want 42", got)
	}
	if got := mem.SampleRate(); got != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", got)
	}
	if mem.Looping() {
		t.Error("Looping() = true, want false")
	}
	if err := mem.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestMemorySource_DropsTrailingOddSample(t *testing.T) {
	t.Parallel()

	data := make([]float32, 9) // 4 whole frames + 1 stray sample
	mem := NewMemorySourceFromPCM(data, 8000)

	if got := mem.TotalLength(); got != 4 {
		t.Errorf("TotalLength() = %d, want 4", got)
	}
}

func TestNewMemorySource_DrainsMonoToStereo(t *testing.T) {
	t.Parallel()

	// Mono ramp: the mixer duplicates each sample onto both channels.
	src := newMockSource(8000, 1, 16, func(sample, channel int) float32 {
		return float32(sample) / 100
	})

	mem, err := NewMemorySource(src)
	if err != nil {
		t.Fatalf("NewMemorySource() error = %v", err)
	}

	if got := mem.TotalLength(); got != 16 {
		t.Fatalf("TotalLength() = %d, want 16", got)
	}

	buf := make([]float32, 16*StereoChannels)
	if err := mem.ReadBlock(BlockInfo{Buffer: buf, NumFrames: 16}); err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}
	for f := range 16 {
		want := float32(f) / 100
		if buf[f*StereoChannels] != want || buf[f*StereoChannels+1] != want {
			t.Errorf("frame %d = (%v, %v), want (%v, %v)",
				f, buf[f*StereoChannels], buf[f*StereoChannels+1], want, want)
		}
	}
}
