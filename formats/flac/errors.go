// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrInconsistentChannels is returned when a frame's channel layout
	// does not match the stream's declared layout
	ErrInconsistentChannels = errors.New("flac frame channel layout does not match stream info")
)
