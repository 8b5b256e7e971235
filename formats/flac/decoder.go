// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/TexasRemington/drowaudio/audio"
)

// flacStream is an interface over flac.Stream to allow testing
type flacStream interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	dec        flacStream
	sampleRate int
	channels   int

	// leftover samples from the last parsed frame that did not fit dst
	buf []float32
	off int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	written := 0
	for written < len(dst) {
		// Drain leftover samples first
		if s.off < len(s.buf) {
			n := copy(dst[written:], s.buf[s.off:])
			s.off += n
			written += n
			continue
		}

		frame, err := s.dec.ParseNext()
		if err != nil {
			if err == io.EOF {
				if written == 0 {
					return 0, io.EOF
				}
				return written, nil
			}
			return written, fmt.Errorf("%w", err)
		}

		if err := s.interleave(frame); err != nil {
			return written, err
		}
	}

	return written, nil
}

// interleave converts a parsed frame into normalized interleaved samples in s.buf
func (s *source) interleave(fr *frame.Frame) error {
	if len(fr.Subframes) != s.channels {
		return ErrInconsistentChannels
	}

	frameLen := len(fr.Subframes[0].Samples)
	total := frameLen * s.channels

	if cap(s.buf) < total {
		s.buf = make([]float32, total)
	}
	s.buf = s.buf[:total]
	s.off = 0

	// FLAC samples are signed integers scaled by the stream's bit depth
	scale := float32(int64(1) << (fr.BitsPerSample - 1))

	for ch, sub := range fr.Subframes {
		if len(sub.Samples) != frameLen {
			return ErrInconsistentChannels
		}
		for i, v := range sub.Samples {
			s.buf[i*s.channels+ch] = float32(v) / scale
		}
	}

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := goflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	if info.NChannels == 0 {
		return nil, ErrInconsistentChannels
	}

	return &source{
		dec:        stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
	}, nil
}
