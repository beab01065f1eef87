package config

import (
	"errors"
	"fmt"
)

var ErrSampleRate = errors.New("sample rate must be positive")

// Params is the mutable knob set shared by synthesis and the particle update.
type Params struct {
	SampleRate int
	Duration   float64
	Frequency  int
	Playing    bool
}

func DefaultParams() Params {
	return Params{
		SampleRate: DefaultSampleRate,
		Duration:   DefaultDuration,
		Frequency:  DefaultFrequency,
		Playing:    true,
	}
}

// BufferLen is the number of samples in one loop of the tone.
func (p Params) BufferLen() int {
	return roundInt(float64(p.SampleRate) * p.Duration)
}

func (p Params) Validate() error {
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrSampleRate, p.SampleRate)
	}
	return nil
}

func ClampDuration(d float64) float64 {
	if d != d || d < MinDuration { // NaN falls to the floor
		return MinDuration
	}
	if d > MaxDuration {
		return MaxDuration
	}
	return d
}

func ClampFrequency(f int) int {
	if f < MinFrequency {
		return MinFrequency
	}
	if f > MaxFrequency {
		return MaxFrequency
	}
	return f
}

// StepSampleRate moves to the next (dir > 0) or previous (dir < 0) entry of
// SampleRates relative to current.
func StepSampleRate(current, dir int) int {
	if dir > 0 {
		for _, sr := range SampleRates {
			if sr > current {
				return sr
			}
		}
		return SampleRates[len(SampleRates)-1]
	}
	for i := len(SampleRates) - 1; i >= 0; i-- {
		if SampleRates[i] < current {
			return SampleRates[i]
		}
	}
	return SampleRates[0]
}

func roundInt(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
