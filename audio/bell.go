// Package audio rings an audible bell for rejected widget input.
//
// Tones are generated with beep; playback goes through a Player so the bell
// can be tested or muted without a sound device.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/tuikit/config"
	"github.com/lixenwraith/tuikit/logger"
)

const SampleRate = beep.SampleRate(48000)

// Player consumes finished streamers
type Player interface {
	Play(s beep.Streamer) error
}

type BellOptions struct {
	Frequency float64       `validate:"gt=20,lte=20000"`
	Duration  time.Duration `validate:"gt=0,lte=2s"`
	Volume    float64       `validate:"gte=0,lte=1"`
}

// DefaultBellOptions is a short A5 ding
func DefaultBellOptions() BellOptions {
	return BellOptions{Frequency: 880, Duration: 80 * time.Millisecond, Volume: 0.5}
}

// Bell plays a tone on every Ring
type Bell struct {
	opts   BellOptions
	player Player
	log    *logger.Logger
}

func NewBell(player Player, opts BellOptions, log *logger.Logger) (*Bell, error) {
	if player == nil {
		return nil, config.NewValidationError("player", "is required", nil)
	}
	if err := config.Validate(opts); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Bell{opts: opts, player: player, log: log.With("component", "bell")}, nil
}

// Ring plays the tone; failures are logged since callers are input handlers
func (b *Bell) Ring() {
	s, err := Tone(b.opts.Frequency, b.opts.Duration, b.opts.Volume, SampleRate)
	if err != nil {
		b.log.Error(err, "bell tone")
		return
	}
	if err := b.player.Play(s); err != nil {
		b.log.Error(err, "bell playback")
	}
}

// Tone is a sine of freq Hz lasting d, shaped with a short attack and release
func Tone(freq float64, d time.Duration, volume float64, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	edge := min(d/8, 5*time.Millisecond)
	shaped := newEnvelope(beep.Take(rate.N(d), sine), d, edge, edge*2, rate)
	return newVolume(shaped, volume), nil
}
