// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a finite streaming source whose samples come from a
// waveform function. It implements the audio.Source interface (without
// importing it to avoid cycles) and is mainly used to feed MemorySource
// staging in tests and examples.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	emitted     int
	waveform    func(frame, channel int) float32
}

// NewMockSource creates a source that emits totalFrames frames, asking
// waveform for the value of each frame and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSineSource creates a source that emits a sine tone at the given
// frequency on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.emitted >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if rest := m.totalFrames - m.emitted; frames > rest {
		frames = rest
	}

	for frame := 0; frame < frames; frame++ {
		for ch := 0; ch < m.channels; ch++ {
			dst[frame*m.channels+ch] = m.waveform(m.emitted+frame, ch)
		}
	}
	m.emitted += frames

	n := frames * m.channels
	if m.emitted >= m.totalFrames {
		return n, io.EOF
	}
	return n, nil
}
