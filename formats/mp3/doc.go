// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// This package uses github.com/hajimehoshi/go-mp3. Output is always stereo
// interleaved float32 in [-1.0, 1.0] at the file's sample rate.
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// To loop a region of an MP3, stage the source into an
// audio.MemorySource and wrap it in an audio.LoopingSource; the root
// drowaudio package does both in one call.
//
// MP3 writing is not supported (decoding only).
package mp3
