// SPDX-License-Identifier: EPL-2.0

package audio

// StereoChannels is the channel count of every block exchanged with the
// looping engine. Sources with other channel counts are staged through
// StereoMixer before they reach a PositionableSource.
const StereoChannels = 2

// BlockInfo designates the destination of one block read: an interleaved
// stereo buffer, a start offset within it (in frames) and a frame count.
type BlockInfo struct {
	// Buffer holds interleaved stereo float32 samples in [-1, 1],
	// StereoChannels values per frame.
	Buffer []float32
	// StartFrame is the frame offset inside Buffer where writing begins.
	StartFrame int
	// NumFrames is the number of frames to produce.
	NumFrames int
}

// PositionableSource produces audio blocks on demand and exposes a read
// cursor in frames since the start of the stream. It is the contract the
// looping engine both consumes and re-exposes, so positionable sources
// compose as decorators.
//
// Prepare must be called before the first ReadBlock and again whenever the
// expected block size or the sample rate changes. It must not be called
// concurrently with ReadBlock. Prepare and Release carry no error return:
// they only size buffers and signal resource teardown, matching the
// real-time setup protocol; failures surface from ReadBlock.
type PositionableSource interface {
	// Prepare announces the largest block size that will be requested and
	// the sample rate playback will run at.
	Prepare(blockFrames, sampleRate int)
	// Release tells the source playback has stopped and buffers may be
	// freed. Safe to call more than once.
	Release()
	// ReadBlock fills the designated region of info.Buffer with the next
	// info.NumFrames frames and advances the read cursor. A non-positive
	// frame count is a no-op.
	ReadBlock(info BlockInfo) error
	// ReadPosition reports the current read cursor in frames.
	ReadPosition() int64
	// SetReadPosition moves the read cursor.
	SetReadPosition(pos int64)
	// TotalLength reports the stream length in frames, 0 when unknown
	// (live or unbounded sources).
	TotalLength() int64
	// Looping reports whether the source repeats on its own.
	Looping() bool
	// Close releases any resources held by the source.
	Close() error
}

// Ownership states whether a decorator owns its inner source. An Owned
// inner source is closed when the decorator is closed; a Borrowed one is
// left to its real owner.
type Ownership int

const (
	Borrowed Ownership = iota
	Owned
)
