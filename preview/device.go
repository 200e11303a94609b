// SPDX-License-Identifier: EPL-2.0

package preview

import (
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Stream is one running playback.
type Stream interface {
	IsPlaying() bool
	Close() error
}

// Device plays 16-bit little-endian interleaved PCM at a fixed format.
type Device interface {
	SampleRate() int
	Channels() int
	// Start begins pulling PCM from r on the device's own goroutine.
	Start(r io.Reader) (Stream, error)
}

// oto allows a single context per process.
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error
	otoRate int
	otoCh   int
)

// OtoDevice is the system audio output.
type OtoDevice struct {
	ctx        *oto.Context
	sampleRate int
	channels   int
}

// NewOtoDevice opens the audio output. Later calls share the first context
// and fail if they ask for a different format.
func NewOtoDevice(sampleRate, channels int) (*OtoDevice, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			otoErr = fmt.Errorf("failed to create oto context: %w", err)
			return
		}
		<-ready

		otoCtx, otoRate, otoCh = ctx, sampleRate, channels
	})

	if otoErr != nil {
		return nil, otoErr
	}
	if otoRate != sampleRate || otoCh != channels {
		return nil, fmt.Errorf("%w: %d Hz %d ch", ErrDeviceFormat, otoRate, otoCh)
	}

	return &OtoDevice{ctx: otoCtx, sampleRate: sampleRate, channels: channels}, nil
}

func (d *OtoDevice) SampleRate() int { return d.sampleRate }
func (d *OtoDevice) Channels() int   { return d.channels }

func (d *OtoDevice) Start(r io.Reader) (Stream, error) {
	src := &detachableReader{r: r}
	player := d.ctx.NewPlayer(src)
	player.Play()

	return otoStream{player: player, src: src}, nil
}

// otoStream stops by pausing. oto only frees a player once it is garbage
// collected, so Close also detaches the PCM chain from it.
type otoStream struct {
	player *oto.Player
	src    *detachableReader
}

func (s otoStream) IsPlaying() bool { return s.player.IsPlaying() }

func (s otoStream) Close() error {
	s.player.Pause()
	s.src.Detach()
	return s.player.Err()
}

// detachableReader forwards to r until Detach, then reports io.EOF and
// holds no reference to r.
type detachableReader struct {
	mtx sync.Mutex
	r   io.Reader
}

func (d *detachableReader) Read(p []byte) (int, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.r == nil {
		return 0, io.EOF
	}
	return d.r.Read(p)
}

func (d *detachableReader) Detach() {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.r = nil
}
