// Package tone builds and plays the looping sine buffer that accompanies the
// particle field.
package tone

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/signal"
	"github.com/cwbudde/algo-dsp/dsp/spectrum"

	"github.com/iburimskiy/cymatics/internal/config"
)

// Build returns round(sampleRate*duration) samples of
// Amplitude*sin(2π·freq·i/sampleRate).
func Build(freq, sampleRate int, duration float64) ([]float64, error) {
	p := config.Params{SampleRate: sampleRate, Duration: duration, Frequency: freq}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	gen := signal.NewGenerator(core.WithSampleRate(float64(sampleRate)))
	samples, err := gen.Sine(float64(freq), config.Amplitude, p.BufferLen())
	if err != nil {
		return nil, fmt.Errorf("sine %d Hz: %w", freq, err)
	}
	return samples, nil
}

// Level estimates the amplitude of the freq component in samples using a
// single Goertzel bin. For a buffer holding a whole number of cycles of a
// pure tone it equals the tone's peak amplitude.
func Level(samples []float64, freq, sampleRate int) (float64, error) {
	if len(samples) == 0 {
		return 0, nil
	}
	g, err := spectrum.NewGoertzel(float64(freq), float64(sampleRate))
	if err != nil {
		return 0, err
	}
	g.ProcessBlock(samples)
	return 2 * g.Magnitude() / float64(len(samples)), nil
}
