// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding.
//
// This package uses github.com/go-audio/aiff and handles PCM AIFF files at
// 8, 16, 24 and 32 bits. Samples are normalized to interleaved float32 in
// [-1.0, 1.0].
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Non-seekable readers are buffered into memory first, since the underlying
// library needs an io.ReadSeeker. AIFF writing is not supported.
package aiff
