// SPDX-License-Identifier: EPL-2.0

package drowaudio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TexasRemington/drowaudio/audio"
	"github.com/TexasRemington/drowaudio/formats/aiff"
	"github.com/TexasRemington/drowaudio/formats/flac"
	"github.com/TexasRemington/drowaudio/formats/mp3"
	"github.com/TexasRemington/drowaudio/formats/vorbis"
	"github.com/TexasRemington/drowaudio/formats/wav"
)

var (
	ErrUnsupportedFormat = errors.New("no decoder registered for file extension")
	ErrInvalidLoopRegion = errors.New("loop region end must be after start")
)

// DefaultRegistry holds the decoders for every format this library
// ships. Keys are lowercase file extensions without the dot.
var DefaultRegistry = func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("flac", flac.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	return r
}()

// Open decodes an audio file into memory as a positionable stereo
// source, picking the decoder from DefaultRegistry by file extension.
//
// The whole file is staged up front, so the returned source supports
// random access at the cost of holding the decoded PCM in memory. Mono
// files are duplicated to both channels and wider layouts are downmixed.
//
// Example:
//
//	src, err := drowaudio.Open("drums.wav")
//	if err != nil {
//	    panic(err)
//	}
//	// src.TotalLength() frames of stereo float32 at src.SampleRate()
func Open(path string) (*audio.MemorySource, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	decoder, ok := DefaultRegistry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := decoder.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	return audio.NewMemorySource(src)
}

// OpenLoop is a high-level convenience function that opens an audio
// file and wraps it in a looping source cycling over [startTime,
// endTime) seconds, ready for block reads.
//
// This function builds the pipeline:
//  1. Decodes the file into an in-memory stereo source (see Open)
//  2. Wraps it in a LoopingSource that owns the memory source
//  3. Prepares the pipeline for blockFrames-sized reads at the file's
//     sample rate, enables looping, and seeks to the region start
//
// Parameters:
//   - path: Audio file; the decoder is chosen by extension
//   - startTime, endTime: Loop region in seconds; endTime must be
//     greater than startTime
//   - blockFrames: Largest block the caller will request per read
//     (e.g., 512, 1024)
//
// Returns the looping source or an error. Closing the returned source
// releases the in-memory audio.
//
// Example:
//
//	loop, err := drowaudio.OpenLoop("drums.wav", 1.0, 3.0, 1024)
//	if err != nil {
//	    panic(err)
//	}
//	defer loop.Close()
//
//	buf := make([]float32, 1024*audio.StereoChannels)
//	for {
//	    loop.ReadBlock(audio.BlockInfo{Buffer: buf, NumFrames: 1024})
//	    // buf cycles over the region seamlessly
//	}
func OpenLoop(path string, startTime, endTime float64, blockFrames int) (*audio.LoopingSource, error) {
	if endTime <= startTime {
		return nil, fmt.Errorf("%w: [%v, %v)", ErrInvalidLoopRegion, startTime, endTime)
	}

	mem, err := Open(path)
	if err != nil {
		return nil, err
	}

	loop := audio.NewLoopingSource(mem, audio.Owned)
	loop.Prepare(blockFrames, mem.SampleRate())
	loop.SetLoopRegion(startTime, endTime)
	loop.SetLoopEnabled(true)
	loop.SetReadPosition(int64(startTime * float64(mem.SampleRate())))

	return loop, nil
}

// RenderFrames pulls numFrames of stereo audio from src in blocks of at
// most blockFrames, returning the interleaved samples. The source must
// already be prepared for blocks of blockFrames.
func RenderFrames(src audio.PositionableSource, numFrames, blockFrames int) ([]float32, error) {
	if numFrames < 0 || blockFrames <= 0 {
		return nil, fmt.Errorf("invalid render size: %d frames in blocks of %d", numFrames, blockFrames)
	}

	out := make([]float32, numFrames*audio.StereoChannels)

	for done := 0; done < numFrames; {
		n := blockFrames
		if rest := numFrames - done; n > rest {
			n = rest
		}

		err := src.ReadBlock(audio.BlockInfo{
			Buffer:     out,
			StartFrame: done,
			NumFrames:  n,
		})
		if err != nil {
			return nil, err
		}
		done += n
	}

	return out, nil
}
