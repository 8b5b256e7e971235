// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio decoding.
//
// This package uses github.com/mewkiz/flac. Frames are parsed lazily and
// their per-channel subframes interleaved into float32 samples, normalized
// to [-1.0, 1.0] by the stream's bit depth.
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The file's channel count and sample rate are preserved. FLAC writing is
// not supported.
package flac
