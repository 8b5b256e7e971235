// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/TexasRemington/drowaudio/audio"
	"github.com/TexasRemington/drowaudio/utils"
)

// pcmReader is the slice of go-mp3's decoder the source needs, kept as an
// interface to allow testing.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// source adapts go-mp3's 16-bit little-endian PCM byte stream to
// audio.Source. go-mp3 always emits stereo frames.
type source struct {
	dec        pcmReader
	sampleRate int
	pcm        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return audio.StereoChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.pcm) / 2 } // sample capacity, not bytes

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Two bytes of PCM per requested sample
	need := len(dst) * 2
	if cap(s.pcm) < need {
		s.pcm = make([]byte, need)
	}
	s.pcm = s.pcm[:need]

	n, err := s.dec.Read(s.pcm)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.pcm[2*i:]))
		dst[i] = utils.Int16ToFloat32(v)
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		pcm:        make([]byte, 8192),
	}, nil
}
