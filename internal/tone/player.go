package tone

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/cymatics/internal/config"
	"github.com/iburimskiy/cymatics/internal/log"
)

// ErrSuspended is returned when playback is requested before the output has
// been resumed by a user gesture.
var ErrSuspended = errors.New("audio output suspended")

// State is the availability of an audio output.
type State int

const (
	Suspended State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "suspended"
}

// Output plays looped sample buffers.
type Output interface {
	State() State
	Resume() error
	Play(samples []float64, sampleRate int) (Voice, error)
}

// Voice is one looping buffer on an Output.
type Voice interface {
	Stop()
}

type Phase int

const (
	Stopped Phase = iota
	Building
	Playing
)

func (p Phase) String() string {
	switch p {
	case Building:
		return "building"
	case Playing:
		return "playing"
	default:
		return "stopped"
	}
}

// Player keeps at most one voice alive on its output. Every parameter change
// goes through a full stop, rebuild and play cycle.
type Player struct {
	out     Output
	voice   Voice
	phase   Phase
	samples []float64
	level   float64
}

func NewPlayer(out Output) *Player {
	return &Player{out: out}
}

func (p *Player) Phase() Phase { return p.phase }

// Active reports whether a voice is currently sounding.
func (p *Player) Active() bool { return p.voice != nil }

// Level is the measured amplitude of the current buffer, 0 when stopped.
func (p *Player) Level() float64 { return p.level }

// Samples returns the current buffer, nil when stopped.
func (p *Player) Samples() []float64 { return p.samples }

// Start stops any current voice, builds a fresh buffer from params and
// plays it on a loop.
func (p *Player) Start(params config.Params) error {
	p.Stop()
	if p.out.State() != Running {
		return ErrSuspended
	}

	p.phase = Building
	buf, err := Build(params.Frequency, params.SampleRate, params.Duration)
	if err != nil {
		p.phase = Stopped
		return fmt.Errorf("build tone: %w", err)
	}
	v, err := p.out.Play(buf, params.SampleRate)
	if err != nil {
		p.phase = Stopped
		return fmt.Errorf("play tone: %w", err)
	}

	p.voice = v
	p.samples = buf
	p.phase = Playing
	if lvl, err := Level(buf, params.Frequency, params.SampleRate); err == nil {
		p.level = lvl
	} else {
		p.level = 0
		log.Warn("tone level: " + err.Error())
	}
	log.Tone("tone_started", params.Frequency, params.SampleRate, params.Duration, len(buf))
	return nil
}

func (p *Player) Stop() {
	if p.voice != nil {
		p.voice.Stop()
		p.voice = nil
		log.Debug("tone_stopped")
	}
	p.samples = nil
	p.level = 0
	p.phase = Stopped
}
