// SPDX-License-Identifier: EPL-2.0

// Package playback renders block-based sources to the default audio
// device using github.com/ebitengine/oto/v3.
//
//	loop, _ := drowaudio.OpenLoop("drums.wav", 1.0, 3.0, 1024)
//	player, err := playback.NewPlayer(loop, 44100)
//	if err != nil {
//	    // Handle error
//	}
//	player.Start()
//	...
//	player.Close()
//
// The device consumes stereo little-endian float32. Sources are pulled
// one block at a time from the device's mixer goroutine, so all source
// methods invoked during playback must be safe for concurrent use with
// control calls such as SetLoopRegion.
package playback
