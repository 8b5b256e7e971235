// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
)

const defaultScratchFrames = 512

// LoopingSource decorates a PositionableSource with a bounded loop region.
// While looping is enabled, reads are confined to [loopStart, loopEnd) and
// wrap around the region boundary without a gap; while disabled it is a pure
// pass-through. The inner source stays the single owner of the read cursor:
// LoopingSource only reads it and rewrites it at wrap points.
//
// ReadBlock is meant to run on a real-time producer thread while
// SetLoopRegion and the looping toggle are driven from a control thread.
// One mutex guards the loop bounds and is held across the whole block
// computation, so a concurrent region change is never observed torn.
type LoopingSource struct {
	input     PositionableSource
	ownership Ownership

	looping atomic.Bool

	mu              sync.Mutex
	loopStartTime   float64
	loopEndTime     float64
	loopStartSample int64
	loopEndSample   int64
	sampleRate      float64
	scratch         []float32 // interleaved stereo, grown only by Prepare
}

var _ PositionableSource = (*LoopingSource)(nil)

// NewLoopingSource wraps input. Looping starts disabled and no region is
// set; call Prepare and SetLoopRegion before enabling the loop.
func NewLoopingSource(input PositionableSource, ownership Ownership) *LoopingSource {
	if input == nil {
		panic("audio: NewLoopingSource with nil input")
	}
	return &LoopingSource{
		input:     input,
		ownership: ownership,
		scratch:   make([]float32, StereoChannels*defaultScratchFrames),
	}
}

// Prepare propagates to the inner source, records the sample rate, refreshes
// the loop sample bounds at the new rate and grows the scratch buffer if
// blockFrames exceeds its high-water mark. The scratch buffer never shrinks,
// so after the largest expected block has been announced the produce path
// allocates nothing.
func (l *LoopingSource) Prepare(blockFrames, sampleRate int) {
	l.input.Prepare(blockFrames, sampleRate)

	l.mu.Lock()
	l.sampleRate = float64(sampleRate)
	l.recomputeBounds()
	if len(l.scratch) < StereoChannels*blockFrames {
		l.scratch = make([]float32, StereoChannels*blockFrames)
	}
	l.mu.Unlock()
}

// Release propagates the resource-release notification to the inner source.
func (l *LoopingSource) Release() {
	l.input.Release()
}

// recomputeBounds derives the loop sample bounds from the loop times at the
// current rate. Caller must hold mu.
func (l *LoopingSource) recomputeBounds() {
	l.loopStartSample = int64(l.loopStartTime * l.sampleRate)
	l.loopEndSample = int64(l.loopEndTime * l.sampleRate)
	if l.loopEndTime > l.loopStartTime && l.loopEndSample <= l.loopStartSample {
		// Rounding collapsed the region; keep it one frame long so the
		// wrap arithmetic on the produce path stays defined.
		l.loopEndSample = l.loopStartSample + 1
	}
}

// SetLoopRegion sets the loop window in seconds. endTime must be strictly
// after startTime; violating that is a programming error and panics. The
// current read cursor is re-wrapped against the new bounds, so playback that
// was inside the old region stays inside the new one.
func (l *LoopingSource) SetLoopRegion(startTime, endTime float64) {
	if endTime <= startTime {
		panic("audio: loop region end must be after start")
	}

	l.mu.Lock()
	l.loopStartTime = startTime
	l.loopEndTime = endTime
	l.recomputeBounds()
	l.setReadPositionLocked(l.input.ReadPosition())
	l.mu.Unlock()
}

// LoopRegion returns the current loop window in seconds.
func (l *LoopingSource) LoopRegion() (startTime, endTime float64) {
	l.mu.Lock()
	startTime, endTime = l.loopStartTime, l.loopEndTime
	l.mu.Unlock()
	return startTime, endTime
}

// SetLoopEnabled toggles the wraparound logic. The flag is atomic: a reader
// mid-block keeps the state it started with, which only gates behavior, not
// sample correctness.
func (l *LoopingSource) SetLoopEnabled(enabled bool) {
	l.looping.Store(enabled)
}

// LoopEnabled reports whether the loop window is applied.
func (l *LoopingSource) LoopEnabled() bool {
	return l.looping.Load()
}

// ReadBlock produces the next block. With looping disabled the call forwards
// straight to the inner source. With looping enabled the request is split at
// every crossing of the loop boundary: each segment is read into the scratch
// buffer, the cursor is rewound to the region start whenever it lands on the
// end, and the assembled frames are copied to the caller's buffer. A loop
// shorter than the block therefore repeats within the block. A block that
// ends flush on the boundary still wraps the cursor, so the next read
// continues from the region start.
func (l *LoopingSource) ReadBlock(info BlockInfo) error {
	if info.NumFrames <= 0 {
		return nil
	}
	if !l.looping.Load() {
		return l.input.ReadBlock(info)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	start, end := l.loopStartSample, l.loopEndSample
	if end <= start {
		// No region has been set yet; pass through rather than wrap
		// against an empty window.
		return l.input.ReadBlock(info)
	}

	pos := l.input.ReadPosition()
	if pos+int64(info.NumFrames) < end {
		// The block stays clear of the boundary.
		return l.input.ReadBlock(info)
	}

	if StereoChannels*info.NumFrames > len(l.scratch) {
		panic("audio: block exceeds prepared size")
	}

	written := 0
	remaining := info.NumFrames
	for remaining > 0 {
		run := end - pos
		if run > int64(remaining) {
			run = int64(remaining)
		}
		if run > 0 {
			err := l.input.ReadBlock(BlockInfo{
				Buffer:     l.scratch,
				StartFrame: written,
				NumFrames:  int(run),
			})
			if err != nil {
				return fmt.Errorf("%w", err)
			}
			pos += run
			written += int(run)
			remaining -= int(run)
		}
		if pos >= end {
			l.input.SetReadPosition(start)
			pos = start
		}
	}

	dst := info.Buffer[info.StartFrame*StereoChannels:]
	copy(dst, l.scratch[:info.NumFrames*StereoChannels])
	return nil
}

// SetReadPosition moves the read cursor. When looping is enabled and the
// cursor currently sits strictly inside the region, pos is wrapped into
// [loopStart, loopEnd) by the loop length; otherwise it passes through
// unchanged.
func (l *LoopingSource) SetReadPosition(pos int64) {
	l.mu.Lock()
	l.setReadPositionLocked(pos)
	l.mu.Unlock()
}

// setReadPositionLocked holds the wrap logic shared by SetReadPosition and
// SetLoopRegion's re-validation pass. Caller must hold mu.
func (l *LoopingSource) setReadPositionLocked(pos int64) {
	if l.looping.Load() {
		cur := l.input.ReadPosition()
		if cur > l.loopStartSample && cur < l.loopEndSample {
			length := l.loopEndSample - l.loopStartSample
			if pos > l.loopEndSample {
				pos = l.loopStartSample + (pos-l.loopEndSample)%length
			} else if pos < l.loopStartSample {
				pos = l.loopEndSample - (l.loopStartSample-pos)%length
			}
		}
	}

	l.input.SetReadPosition(pos)
}

// ReadPosition reports the inner source's read cursor.
func (l *LoopingSource) ReadPosition() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.input.ReadPosition()
}

// TotalLength reports the inner source's length; the loop window imposed on
// a source does not change how long it is.
func (l *LoopingSource) TotalLength() int64 {
	return l.input.TotalLength()
}

// Looping reports whether the inner source loops on its own.
func (l *LoopingSource) Looping() bool {
	return l.input.Looping()
}

// Close closes the inner source when it is Owned; a Borrowed source is left
// to its owner.
func (l *LoopingSource) Close() error {
	if l.ownership != Owned {
		return nil
	}
	if err := l.input.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
