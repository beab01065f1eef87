package config

import "time"

const (
	WindowWidth  = 960
	WindowHeight = 720

	ScopeHeight     = 60
	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Side panel
	PanelWidth      = 300
	PanelSlideSpeed = 40
	MenuButtonX     = 12
	MenuButtonY     = 12
	MenuButtonW     = 70
	MenuButtonH     = 28

	// Particle field
	ParticleCount  = 2000
	ParticleRadius = 2.0

	// Tone defaults and bounds
	DefaultSampleRate = 44100
	DefaultDuration   = 0.1
	DefaultFrequency  = 1400
	MinDuration       = 0.01
	MaxDuration       = 1.0
	DurationStep      = 0.01
	MinFrequency      = 20
	MaxFrequency      = 4000
	Amplitude         = 0.1
	OutputGain        = 0.1

	// How long the "Updating ..." indicator stays up after a rebuild.
	StatusDelay = 500 * time.Millisecond
)

// SampleRates are the stepping stops used by keyboard controls.
var SampleRates = []int{8000, 11025, 16000, 22050, 32000, 44100, 48000, 96000}
