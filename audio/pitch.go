// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// Pitch range in cents; 1200 cents is one octave.
const (
	MinCents = -1200
	MaxCents = 1200
)

// Playback rate bounds applied before a batch conversion.
const (
	MinRate = 0.05
	MaxRate = 20.0
)

// CentsToRate converts a pitch offset in cents to a playback-rate multiplier.
func CentsToRate(cents int) float64 {
	if cents == 0 {
		return 1
	}
	return math.Pow(2, float64(cents)/1200)
}

// ClampCents limits cents to [MinCents, MaxCents].
func ClampCents(cents int) int {
	return min(max(cents, MinCents), MaxCents)
}

// ClampRate limits rate to [MinRate, MaxRate].
func ClampRate(rate float64) float64 {
	return min(max(rate, MinRate), MaxRate)
}

// ParseCents parses text as an integer number of cents and clamps it into
// range. Surrounding whitespace is ignored.
func ParseCents(text string) (int, error) {
	cents, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCents, text)
	}
	return ClampCents(cents), nil
}

// PitchControl holds the last valid pitch setting of a control surface.
// Invalid input leaves the setting unchanged.
type PitchControl struct {
	mtx   sync.Mutex
	cents int
}

func NewPitchControl(cents int) *PitchControl {
	return &PitchControl{cents: ClampCents(cents)}
}

func (p *PitchControl) Cents() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.cents
}

// Rate is CentsToRate of the current setting.
func (p *PitchControl) Rate() float64 {
	return CentsToRate(p.Cents())
}

// Set stores cents after clamping and returns the stored value.
func (p *PitchControl) Set(cents int) int {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.cents = ClampCents(cents)
	return p.cents
}

// Add moves the setting by delta cents, clamped.
func (p *PitchControl) Add(delta int) int {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.cents = ClampCents(p.cents + delta)
	return p.cents
}

// SetText parses text as cents. On success the clamped value is stored; on
// failure the previous value is kept. Either way the value to display is
// returned.
func (p *PitchControl) SetText(text string) (int, error) {
	cents, err := ParseCents(text)

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if err != nil {
		return p.cents, err
	}

	p.cents = cents
	return p.cents, nil
}

// String renders the setting the way the control displays it.
func (p *PitchControl) String() string {
	return strconv.Itoa(p.Cents())
}
