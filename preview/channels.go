// SPDX-License-Identifier: EPL-2.0

package preview

import "github.com/ik5/noteshift/audio"

// fitChannels adapts src to the device channel count. Mono is averaged
// down; anything else is spread by repeating source channels.
func fitChannels(src audio.Source, channels int) audio.Source {
	switch {
	case src.Channels() == channels:
		return src
	case channels == 1:
		return audio.NewDownmix(src)
	default:
		return &spread{src: src, channels: channels}
	}
}

// spread maps output channel c to source channel c % srcChannels.
type spread struct {
	src      audio.Source
	channels int
	tmp      []float32
}

func (s *spread) SampleRate() int { return s.src.SampleRate() }
func (s *spread) Channels() int   { return s.channels }
func (s *spread) BufSize() int    { return s.src.BufSize() }
func (s *spread) Close() error    { return s.src.Close() }

func (s *spread) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	in := s.src.Channels()
	need := len(dst) / s.channels * in
	if cap(s.tmp) < need {
		s.tmp = make([]float32, need)
	}
	s.tmp = s.tmp[:need]

	n, err := s.src.ReadSamples(s.tmp)
	frames := n / in

	for f := range frames {
		for c := range s.channels {
			dst[f*s.channels+c] = s.tmp[f*in+c%in]
		}
	}

	return frames * s.channels, err
}
