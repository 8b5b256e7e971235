package audio

import (
	"io"
	"math"
)

// mockSource is a test helper that generates audio data for testing.
// It implements the Source interface and can generate various waveforms.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
}

// newMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		generated:    0,
		waveform:     waveform,
	}
}

// newSilentSource creates a mock source that generates silence (all zeros).
func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// newSineSource creates a mock source that generates a sine wave.
func newSineSource(sampleRate, channels, totalSamples int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// newConstantSource creates a mock source with constant value.
func newConstantSource(sampleRate, channels, totalSamples int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalSamples - m.generated
	framesToWrite := framesRequested
	if framesToWrite > framesAvailable {
		framesToWrite = framesAvailable
	}

	// Generate samples
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// rampSource is a positionable stereo source whose sample value equals the
// frame index on both channels. It records the calls it receives so tests
// can assert on propagation and cursor rewrites.
type rampSource struct {
	length int64 // 0 = unbounded
	pos    int64

	prepares    int
	releases    int
	closed      bool
	seeks       []int64
	blockReads  []int // NumFrames of each ReadBlock
	blockFrames int
	sampleRate  int
	readErr     error
}

func newRampSource(length int64) *rampSource {
	return &rampSource{length: length}
}

func (r *rampSource) Prepare(blockFrames, sampleRate int) {
	r.prepares++
	r.blockFrames = blockFrames
	r.sampleRate = sampleRate
}

func (r *rampSource) Release() { r.releases++ }

func (r *rampSource) ReadBlock(info BlockInfo) error {
	if r.readErr != nil {
		return r.readErr
	}
	r.blockReads = append(r.blockReads, info.NumFrames)
	dst := info.Buffer[info.StartFrame*StereoChannels : (info.StartFrame+info.NumFrames)*StereoChannels]
	for f := 0; f < info.NumFrames; f++ {
		v := float32(r.pos + int64(f))
		if r.length > 0 && r.pos+int64(f) >= r.length {
			v = 0
		}
		dst[f*StereoChannels] = v
		dst[f*StereoChannels+1] = v
	}
	r.pos += int64(info.NumFrames)
	return nil
}

func (r *rampSource) ReadPosition() int64 { return r.pos }

func (r *rampSource) SetReadPosition(pos int64) {
	r.seeks = append(r.seeks, pos)
	r.pos = pos
}

func (r *rampSource) TotalLength() int64 { return r.length }
func (r *rampSource) Looping() bool      { return false }
func (r *rampSource) Close() error       { r.closed = true; return nil }
