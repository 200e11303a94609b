// SPDX-License-Identifier: EPL-2.0

package preview

import (
	"fmt"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ik5/noteshift/audio"
	"github.com/ik5/noteshift/formats/vorbis"
	"github.com/ik5/noteshift/formats/wav"
)

// pcmChunk is the number of samples converted per device read.
const pcmChunk = 2048

// Player previews one clip at a time with an adjustable pitch.
type Player struct {
	mtx sync.Mutex

	device   Device
	fs       afero.Fs
	registry *audio.Registry
	log      *zap.Logger

	path   string
	clip   *audio.MemorySource
	v      *audio.Varispeed
	stream Stream
	closed bool
}

// Option configures a Player.
type Option func(*Player)

func WithFs(fs afero.Fs) Option {
	return func(p *Player) {
		if fs != nil {
			p.fs = fs
		}
	}
}

func WithRegistry(r *audio.Registry) Option {
	return func(p *Player) {
		if r != nil {
			p.registry = r
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

func New(device Device, opts ...Option) *Player {
	reg := audio.NewRegistry()
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("wav", wav.Decoder{})

	p := &Player{
		device:   device,
		fs:       afero.NewOsFs(),
		registry: reg,
		log:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Load decodes path into memory and makes it the current clip. Whatever was
// playing stops.
func (p *Player) Load(path string) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed {
		return ErrPlayerClosed
	}

	dec, ok := p.registry.ForPath(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := p.fs.Open(path)
	if err != nil {
		return fmt.Errorf("open clip: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	clip, err := audio.Buffer(src)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	prev := p.path
	if err := multierr.Append(p.stopLocked(), p.releaseLocked()); err != nil {
		p.log.Warn("previous clip not released cleanly", zap.String("file", prev), zap.Error(err))
	}

	p.path = path
	p.clip = clip

	p.log.Debug("clip loaded",
		zap.String("file", path),
		zap.Int64("frames", clip.Frames()),
		zap.Int("sample_rate", clip.SampleRate()),
		zap.Int("channels", clip.Channels()),
	)

	return nil
}

// Play starts the current clip from the beginning, shifted by cents.
func (p *Player) Play(cents int) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed {
		return ErrPlayerClosed
	}
	if p.clip == nil {
		return ErrNothingLoaded
	}

	rate := audio.CentsToRate(audio.ClampCents(cents))

	if p.v == nil {
		v, err := audio.NewVarispeed(p.clip, rate)
		if err != nil {
			return err
		}
		p.v = v
	} else if err := p.v.SetRate(rate); err != nil {
		return err
	}

	if err := p.stopLocked(); err != nil {
		p.log.Warn("restarting playback", zap.String("file", p.path), zap.Error(err))
	}
	p.v.Reset()

	var src audio.Source = fitChannels(p.v, p.device.Channels())
	if src.SampleRate() != p.device.SampleRate() {
		src = audio.NewRateConverter(src, p.device.SampleRate())
	}

	stream, err := p.device.Start(audio.NewPCMReader(src, pcmChunk))
	if err != nil {
		return fmt.Errorf("start playback: %w", err)
	}
	p.stream = stream

	p.log.Debug("playing",
		zap.String("file", p.path),
		zap.Int("cents", audio.ClampCents(cents)),
		zap.Float64("rate", rate),
	)

	return nil
}

// SetCents changes the pitch of the running playback without restarting it.
func (p *Player) SetCents(cents int) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.v == nil {
		return ErrNothingLoaded
	}
	return p.v.SetRate(audio.CentsToRate(audio.ClampCents(cents)))
}

// Playing reports whether a stream is running.
func (p *Player) Playing() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.stream != nil && p.stream.IsPlaying()
}

// Stop halts playback. The clip stays loaded.
func (p *Player) Stop() error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.stopLocked()
}

// Close stops playback and frees the clip. Later calls do nothing.
func (p *Player) Close() error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	return multierr.Append(p.stopLocked(), p.releaseLocked())
}

func (p *Player) stopLocked() error {
	if p.stream == nil {
		return nil
	}

	err := p.stream.Close()
	p.stream = nil

	if err != nil {
		return fmt.Errorf("stop playback: %w", err)
	}
	return nil
}

// releaseLocked drops the current clip. The Varispeed owns the clip once it
// exists, so only one of them is closed.
func (p *Player) releaseLocked() error {
	var err error
	switch {
	case p.v != nil:
		err = p.v.Close()
	case p.clip != nil:
		err = p.clip.Close()
	}

	p.v = nil
	p.clip = nil
	p.path = ""

	if err != nil {
		return fmt.Errorf("release clip: %w", err)
	}
	return nil
}
