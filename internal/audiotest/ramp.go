// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"github.com/TexasRemington/drowaudio/audio"
)

// RampSource is a positionable stereo source whose sample value at frame i
// is float32(i) on both channels, so any skipped or duplicated frame is
// visible in the output. Frames at or past length read as silence; a length
// of 0 means unbounded.
type RampSource struct {
	length int64
	pos    int64
}

var _ audio.PositionableSource = (*RampSource)(nil)

// NewRampSource creates a ramp source with the given length in frames.
func NewRampSource(length int64) *RampSource {
	return &RampSource{length: length}
}

func (r *RampSource) Prepare(blockFrames, sampleRate int) {}
func (r *RampSource) Release()                            {}

func (r *RampSource) ReadBlock(info audio.BlockInfo) error {
	if info.NumFrames <= 0 {
		return nil
	}
	dst := info.Buffer[info.StartFrame*audio.StereoChannels : (info.StartFrame+info.NumFrames)*audio.StereoChannels]
	for f := 0; f < info.NumFrames; f++ {
		v := float32(r.pos + int64(f))
		if r.length > 0 && r.pos+int64(f) >= r.length {
			v = 0
		}
		dst[f*audio.StereoChannels] = v
		dst[f*audio.StereoChannels+1] = v
	}
	r.pos += int64(info.NumFrames)
	return nil
}

func (r *RampSource) ReadPosition() int64 { return r.pos }

func (r *RampSource) SetReadPosition(pos int64) { r.pos = pos }

func (r *RampSource) TotalLength() int64 { return r.length }
func (r *RampSource) Looping() bool      { return false }
func (r *RampSource) Close() error       { return nil }
