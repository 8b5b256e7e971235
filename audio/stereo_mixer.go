package audio

import "fmt"

// StereoMixer normalizes any Source to interleaved stereo. Mono input is
// duplicated onto both channels, stereo passes through untouched, and wider
// layouts are averaged down to a center mix on both channels. The looping
// engine's buffers are fixed at two channels, so every decoder is staged
// through one of these.
type StereoMixer struct {
	src Source
	tmp []float32
}

func NewStereoMixer(src Source) *StereoMixer {
	return &StereoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *StereoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoMixer) Channels() int   { return StereoChannels }
func (m *StereoMixer) BufSize() int    { return m.src.BufSize() }
func (m *StereoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with interleaved stereo samples and returns the
// number of float32 values written. dst length must be a multiple of two.
func (m *StereoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%StereoChannels != 0 {
		return 0, ErrInvalidDstSize
	}

	channels := m.src.Channels()
	if channels == StereoChannels {
		// Pass-through: source is already stereo
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / StereoChannels
	samplesNeeded := frames * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		newCap := samplesNeeded
		if newCap < 8192 {
			newCap = 8192 // Reasonable minimum
		}
		m.tmp = make([]float32, newCap)
	} else if len(m.tmp) < samplesNeeded {
		m.tmp = m.tmp[:samplesNeeded]
	}

	n, err := m.src.ReadSamples(m.tmp[:samplesNeeded])
	if n == 0 {
		return 0, err
	}
	framesRead := n / channels

	switch channels {
	case 1: // Mono: duplicate onto both channels
		for f := range framesRead {
			v := m.tmp[f]
			dst[f*2] = v
			dst[f*2+1] = v
		}
	default: // Wider layouts: center mix on both channels
		invChannels := float32(1.0) / float32(channels)
		for f := range framesRead {
			sum := float32(0)
			baseIdx := f * channels
			for c := range channels {
				sum += m.tmp[baseIdx+c]
			}
			v := sum * invChannels
			dst[f*2] = v
			dst[f*2+1] = v
		}
	}

	return framesRead * StereoChannels, err
}
