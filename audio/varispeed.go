// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/ik5/noteshift/utils"
)

// Varispeed plays a SeekableSource back at a variable rate using linear
// interpolation between neighbouring frames.
//
// The reported sample rate is the source's own. Traversing the source faster
// or slower than real time while keeping that label is what shifts the pitch
// once the output is played or encoded.
//
// Varispeed owns the source: Close closes it. All methods are safe for
// concurrent use, so a playback callback may read while another goroutine
// changes the rate.
type Varispeed struct {
	mtx sync.Mutex

	src      SeekableSource
	channels int
	rate     float64

	// fractional read cursor, in source frames
	pos float64

	// two frames: tmp[:channels] is base, tmp[channels:] is base+1
	tmp []float32

	closed bool
}

// NewVarispeed wraps src with an initial playback rate.
// rate must be strictly positive.
func NewVarispeed(src SeekableSource, rate float64) (*Varispeed, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	if !validRate(rate) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}

	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	return &Varispeed{
		src:      src,
		channels: channels,
		rate:     rate,
		tmp:      make([]float32, channels*2),
	}, nil
}

func (v *Varispeed) SampleRate() int { return v.src.SampleRate() }
func (v *Varispeed) Channels() int   { return v.channels }
func (v *Varispeed) BufSize() int    { return v.src.BufSize() }

// Rate returns the current playback rate.
func (v *Varispeed) Rate() float64 {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	return v.rate
}

// SetRate changes the playback rate. The new rate applies from the next
// ReadSamples call; an invalid rate leaves the current one untouched.
func (v *Varispeed) SetRate(rate float64) error {
	if !validRate(rate) {
		return fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}

	v.mtx.Lock()
	defer v.mtx.Unlock()

	v.rate = rate
	return nil
}

// Reset moves the cursor back to the first frame.
func (v *Varispeed) Reset() {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	v.pos = 0
}

// ReadSamples fills dst with interleaved samples.
//
// It returns len(dst) when dst could be filled, a shorter count when the end
// of the source was reached part way, and 0 with io.EOF when the cursor was
// already past the last readable frame. A frame is only produced while
// floor(pos) is at most Frames()-2, so the two frames used for interpolation
// are always in range. The cursor itself may end past that point.
func (v *Varispeed) ReadSamples(dst []float32) (int, error) {
	if len(dst)%v.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	v.mtx.Lock()
	defer v.mtx.Unlock()

	if v.closed {
		return 0, ErrClosed
	}

	last := v.src.Frames() - 2
	framesNeeded := len(dst) / v.channels
	written := 0

	for written < framesNeeded {
		base := int64(math.Floor(v.pos))
		frac := float32(v.pos - float64(base))

		if base > last {
			break
		}

		if v.src.Position() != base {
			if err := v.src.SeekFrame(base); err != nil {
				return written * v.channels, fmt.Errorf("varispeed: seek to frame %d: %w", base, err)
			}
		}

		n, err := v.readFrames()
		if err != nil {
			return written * v.channels, err
		}
		if n < v.channels {
			break
		}

		out := dst[written*v.channels : (written+1)*v.channels]
		for c := range v.channels {
			s0 := v.tmp[c]
			s1 := s0
			if n >= v.channels+c+1 {
				s1 = v.tmp[v.channels+c]
			}
			out[c] = utils.Lerp(s0, s1, frac)
		}

		written++
		v.pos += v.rate
	}

	if written == 0 && framesNeeded > 0 {
		return 0, io.EOF
	}

	return written * v.channels, nil
}

// readFrames reads up to two frames into tmp. io.EOF is not an error here;
// a short read is reported through the count.
func (v *Varispeed) readFrames() (int, error) {
	total := 0
	for total < len(v.tmp) {
		n, err := v.src.ReadSamples(v.tmp[total:])
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, fmt.Errorf("varispeed: read: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return total, nil
}

// Close closes the owned source. Only the first call reaches the source.
func (v *Varispeed) Close() error {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	if v.closed {
		return nil
	}
	v.closed = true

	if err := v.src.Close(); err != nil {
		return fmt.Errorf("varispeed: close source: %w", err)
	}
	return nil
}

func validRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 1)
}
