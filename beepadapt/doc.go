// SPDX-License-Identifier: EPL-2.0

// Package beepadapt bridges github.com/gopxl/beep/v2 streamers into the
// block-based source pipeline.
//
// Any beep.StreamSeeker (a beep decoder, or an effect chain that keeps
// seeking intact) becomes a positionable source that a LoopingSource can
// wrap:
//
//	streamer, format, _ := wav.Decode(f) // gopxl/beep/v2/wav
//	src := beepadapt.Wrap(streamer)
//	loop := audio.NewLoopingSource(src, audio.Owned)
//	loop.Prepare(1024, int(format.SampleRate))
//
// beep uses [2]float64 frames; the adapter converts to interleaved
// float32 and pads short reads with silence so block sizes stay exact.
package beepadapt
