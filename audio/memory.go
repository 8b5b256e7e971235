// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"sync"
)

// MemorySource is a PositionableSource over fully-decoded interleaved stereo
// PCM. It is the staging point between the streaming decoders and the
// looping engine: decode once, then seek and re-read freely.
//
// Reads past the end of the data are zero-filled and the cursor keeps
// advancing, so a decorator may park the cursor anywhere it likes.
type MemorySource struct {
	data       []float32 // interleaved stereo
	sampleRate int

	mu  sync.Mutex
	pos int64 // frames
}

var _ PositionableSource = (*MemorySource)(nil)

// NewMemorySource drains src into memory, staged through a StereoMixer so
// any channel count ends up as interleaved stereo.
func NewMemorySource(src Source) (*MemorySource, error) {
	stereo := NewStereoMixer(src)
	rate := stereo.SampleRate()

	data := make([]float32, 0, 4096*StereoChannels)
	buf := make([]float32, 4096*StereoChannels)
	for {
		n, err := stereo.ReadSamples(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return &MemorySource{data: data, sampleRate: rate}, nil
}

// NewMemorySourceFromPCM wraps interleaved stereo PCM directly. A trailing
// odd sample is dropped so the data always holds whole frames.
func NewMemorySourceFromPCM(data []float32, sampleRate int) *MemorySource {
	frames := len(data) / StereoChannels
	return &MemorySource{data: data[:frames*StereoChannels], sampleRate: sampleRate}
}

// SampleRate reports the rate the PCM was decoded at.
func (m *MemorySource) SampleRate() int { return m.sampleRate }

// Prepare is a no-op: the data is already in memory at its decode rate.
func (m *MemorySource) Prepare(blockFrames, sampleRate int) {}

// Release is a no-op; the backing PCM stays valid until Close.
func (m *MemorySource) Release() {}

// ReadBlock copies the next info.NumFrames frames into the designated region
// of info.Buffer, zero-filling whatever lies past the end of the data, and
// advances the cursor.
func (m *MemorySource) ReadBlock(info BlockInfo) error {
	if info.NumFrames <= 0 {
		return nil
	}
	if (info.StartFrame+info.NumFrames)*StereoChannels > len(info.Buffer) {
		return ErrShortBuffer
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	dst := info.Buffer[info.StartFrame*StereoChannels : (info.StartFrame+info.NumFrames)*StereoChannels]
	totalFrames := int64(len(m.data)) / StereoChannels

	copied := 0
	if m.pos >= 0 && m.pos < totalFrames {
		avail := totalFrames - m.pos
		frames := int64(info.NumFrames)
		if frames > avail {
			frames = avail
		}
		off := m.pos * StereoChannels
		copied = copy(dst, m.data[off:off+frames*StereoChannels])
	}
	for i := copied; i < len(dst); i++ {
		dst[i] = 0
	}

	m.pos += int64(info.NumFrames)
	return nil
}

// ReadPosition reports the cursor in frames.
func (m *MemorySource) ReadPosition() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pos
}

// SetReadPosition moves the cursor. Negative positions clamp to the start.
func (m *MemorySource) SetReadPosition(pos int64) {
	if pos < 0 {
		pos = 0
	}
	m.mu.Lock()
	m.pos = pos
	m.mu.Unlock()
}

// TotalLength reports the decoded length in frames.
func (m *MemorySource) TotalLength() int64 {
	return int64(len(m.data)) / StereoChannels
}

// Looping reports false: the raw PCM does not repeat on its own.
func (m *MemorySource) Looping() bool { return false }

// Close releases nothing; the PCM is garbage-collected with the source.
func (m *MemorySource) Close() error { return nil }
