package tone

import (
	"errors"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/cymatics/internal/config"
	"github.com/iburimskiy/cymatics/internal/log"
)

const resampleQuality = 4

// Speaker is the beep-backed Output. The device is opened on the first
// Resume and stays at that rate; buffers at other rates are resampled.
type Speaker struct {
	gain       float64
	deviceRate beep.SampleRate
	ready      bool
	tap        *Tap
}

// NewSpeaker returns a suspended speaker that will open the device at
// sampleRate and attenuate everything it plays by gain.
func NewSpeaker(sampleRate int, gain float64) *Speaker {
	return &Speaker{
		gain:       gain,
		deviceRate: beep.SampleRate(sampleRate),
	}
}

func (s *Speaker) State() State {
	if s.ready {
		return Running
	}
	return Suspended
}

func (s *Speaker) Resume() error {
	if s.ready {
		return nil
	}
	if s.deviceRate <= 0 {
		return errors.New("speaker: no device sample rate")
	}
	bufferSize := s.deviceRate.N(time.Second / 20)
	if err := speaker.Init(s.deviceRate, bufferSize); err != nil {
		return err
	}
	s.ready = true
	log.Infof("speaker opened at %d Hz", int(s.deviceRate))
	return nil
}

func (s *Speaker) Play(samples []float64, sampleRate int) (Voice, error) {
	if !s.ready {
		return nil, ErrSuspended
	}
	if len(samples) == 0 {
		return nil, errors.New("speaker: empty buffer")
	}

	rate := beep.SampleRate(sampleRate)
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2})
	buf.Append(monoStreamer(samples))

	// Chain: looped buffer -> resample -> gain -> tap -> ctrl
	var st beep.Streamer = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	if rate != s.deviceRate {
		st = beep.Resample(resampleQuality, rate, s.deviceRate, st)
	}
	st = &effects.Gain{Streamer: st, Gain: s.gain - 1}
	t := NewTap(st, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t}

	s.tap = t
	speaker.Play(ctrl)
	return &speakerVoice{ctrl: ctrl}, nil
}

// Recent returns the last n samples sent to the device by the newest voice.
func (s *Speaker) Recent(n int) [][2]float64 {
	if s.tap == nil {
		return nil
	}
	return s.tap.Snapshot(n)
}

type speakerVoice struct {
	ctrl *beep.Ctrl
}

// Stop detaches the streamer; the mixer drops a drained Ctrl on its next pass.
func (v *speakerVoice) Stop() {
	speaker.Lock()
	v.ctrl.Streamer = nil
	speaker.Unlock()
}

func monoStreamer(samples []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copyMono(out, samples[pos:])
		pos += n
		return n, true
	})
}

func copyMono(out [][2]float64, src []float64) int {
	n := min(len(out), len(src))
	for i := 0; i < n; i++ {
		out[i][0] = src[i]
		out[i][1] = src[i]
	}
	return n
}
