// SPDX-License-Identifier: EPL-2.0

package beepadapt

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep/v2"

	"github.com/TexasRemington/drowaudio/audio"
)

// Source adapts a beep.StreamSeeker to audio.PositionableSource, so beep
// decoders and effect chains can feed a LoopingSource or Player.
type Source struct {
	mu      sync.Mutex
	s       beep.StreamSeeker
	scratch [][2]float64
}

var _ audio.PositionableSource = (*Source)(nil)

// Wrap adapts s. The adapter does not take ownership of the streamer
// unless it also implements beep.StreamSeekCloser, in which case Close
// forwards to it.
func Wrap(s beep.StreamSeeker) *Source {
	if s == nil {
		panic("beepadapt: streamer must not be nil")
	}
	return &Source{s: s}
}

func (a *Source) Prepare(blockFrames, sampleRate int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.scratch) < blockFrames {
		a.scratch = make([][2]float64, blockFrames)
	}
}

func (a *Source) Release() {}

func (a *Source) ReadBlock(info audio.BlockInfo) error {
	if info.NumFrames <= 0 {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.scratch) < info.NumFrames {
		a.scratch = make([][2]float64, info.NumFrames)
	}
	frames := a.scratch[:info.NumFrames]

	// beep streamers may return short reads near the end; anything the
	// streamer did not produce plays as silence
	n, _ := a.s.Stream(frames)
	for i := n; i < info.NumFrames; i++ {
		frames[i] = [2]float64{}
	}

	dst := info.Buffer[info.StartFrame*audio.StereoChannels:]
	for i, f := range frames {
		dst[i*audio.StereoChannels] = float32(f[0])
		dst[i*audio.StereoChannels+1] = float32(f[1])
	}

	return a.s.Err()
}

func (a *Source) ReadPosition() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return int64(a.s.Position())
}

func (a *Source) SetReadPosition(pos int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if pos < 0 {
		pos = 0
	}
	// Seek errors surface through Err() on the next ReadBlock
	_ = a.s.Seek(int(pos))
}

func (a *Source) TotalLength() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return int64(a.s.Len())
}

func (a *Source) Looping() bool { return false }

func (a *Source) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if c, ok := a.s.(beep.StreamSeekCloser); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}
