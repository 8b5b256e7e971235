// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav and handles PCM WAV files at
// 8, 16, 24 and 32 bits, any channel count and any sample rate. Encoding
// writes canonical 16-bit PCM files and is what the loop-render tools use to
// put assembled audio back on disk.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source yielding interleaved float32 samples
// normalized to [-1, 1]. Non-seekable readers are buffered into memory
// first, since the underlying library needs to seek between chunks.
//
// # Encoding
//
//	var out bytes.Buffer
//	err := wav.WritePCM16(&out, 44100, 2, samples)
//
// samples is interleaved int16 PCM, channels values per frame.
package wav
