// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level building blocks of the looping
// engine.
//
// This package contains the core primitives:
//   - Source interface for streaming decoder output
//   - PositionableSource interface for seekable block producers
//   - LoopingSource for gapless loop-windowed playback
//   - MemorySource as the positionable staging area for decoded PCM
//   - StereoMixer for channel normalization
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is how decoded audio streams into the engine:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Every format decoder implements it. Sources are one-way streams; to seek
// in them, stage them through a MemorySource first.
//
// # Positionable Sources
//
// A PositionableSource produces fixed-size blocks on demand and owns a read
// cursor measured in frames. Positionable sources compose as decorators, so
// a LoopingSource can be handed to anything expecting a plain
// PositionableSource.
//
//	src, _ := audio.NewMemorySource(decoded)
//	loop := audio.NewLoopingSource(src, audio.Owned)
//	loop.Prepare(1024, src.SampleRate())
//	loop.SetLoopRegion(10, 20) // seconds
//	loop.SetLoopEnabled(true)
//
//	buf := make([]float32, 1024*audio.StereoChannels)
//	err := loop.ReadBlock(audio.BlockInfo{Buffer: buf, NumFrames: 1024})
//
// # Looping Semantics
//
// The loop window is the half-open frame range [start, end). When a block
// request straddles the boundary, LoopingSource splits it: the tail of the
// region and the head of the next pass are read back-to-back into a scratch
// buffer and handed to the caller as one gapless block. A loop shorter than
// the block repeats as many times as needed within it.
//
// Loop bounds may be changed from a control thread while a producer thread
// reads blocks. One mutex is held across the whole block computation, so a
// block is always produced against a single consistent set of bounds.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Block buffers are interleaved stereo, StereoChannels values per frame.
//
// # Performance Considerations
//
// The block path is designed for real-time producer callbacks:
//   - The scratch buffer grows only in Prepare and never shrinks
//   - ReadBlock allocates nothing once the high-water mark is reached
//   - The critical section covers position arithmetic and the inner reads,
//     nothing more
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available. Block
// reads return errors only when the inner source fails; contract violations
// (inverted loop region, nil inner source, block larger than prepared)
// panic.
package audio
