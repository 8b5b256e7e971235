// SPDX-License-Identifier: EPL-2.0

// Package drowaudio provides seamless audio loop playback utilities for Go
// applications.
//
// This package offers convenient functions for opening audio files and
// cycling a region of them gaplessly, the way a sampler or DAW transport
// loops a bar. It's designed to be simple to use while maintaining
// real-time-safe behavior on the audio path.
//
// # Supported Formats
//
// The package supports decoding the following audio formats:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// The simplest way to loop a region of a file is OpenLoop:
//
//	// Loop seconds 1.0 to 3.0 of the file, reading 1024-frame blocks
//	loop, _ := drowaudio.OpenLoop("drums.wav", 1.0, 3.0, 1024)
//	defer loop.Close()
//
//	// Render ten seconds of the looped region
//	out, _ := drowaudio.RenderFrames(loop, 10*44100, 1024)
//
// # Looping Pipeline
//
// For more control, build the pipeline from the audio subpackage:
//
//	// Stage a decoded file in memory
//	mem, _ := audio.NewMemorySource(src)
//
//	// Wrap it in a looping source
//	loop := audio.NewLoopingSource(mem, audio.Owned)
//	loop.Prepare(1024, mem.SampleRate())
//	loop.SetLoopRegion(1.0, 3.0)
//	loop.SetLoopEnabled(true)
//
//	// Read blocks
//	buf := make([]float32, 1024*audio.StereoChannels)
//	err := loop.ReadBlock(audio.BlockInfo{Buffer: buf, NumFrames: 1024})
//
// The loop region and enable flag can be changed from a control
// goroutine while another goroutine reads blocks.
//
// # Format Decoders
//
// Each format has its own decoder returning an audio.Source:
//
//	wavDecoder := wav.Decoder{}
//	src, _ := wavDecoder.Decode(reader)
//
// Open picks the right decoder by file extension using DefaultRegistry
// and stages the stream as a positionable in-memory source.
//
// # Playback and Interop
//
// The playback subpackage renders any positionable source to the default
// audio device, and beepadapt wraps gopxl/beep streamers so they can feed
// the same pipeline.
//
// # Writing WAV Files
//
// Rendered loops can be written back out as PCM WAV:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	wav.WritePCM16(file, 44100, 2, samples)
//
// See the individual subpackages for more detailed documentation.
package drowaudio
