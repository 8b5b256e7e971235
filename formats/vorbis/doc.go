// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, which already yields
// interleaved float32 samples; the decoder reads straight into the
// caller's buffer, trimmed to whole frames.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Output is interleaved float32 in [-1.0, 1.0], preserving the file's
// channel count and sample rate. Vorbis writing is not supported.
package vorbis
