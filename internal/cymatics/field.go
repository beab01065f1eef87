package cymatics

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-dsp/dsp/core"
)

// Drift is the explicit Euler step size applied to every particle each frame.
const Drift = 0.01

// Particle is a point in the [-π, π] x [-π, π] plate domain.
type Particle struct {
	X, Y float64
}

// Field is a fixed set of particles. It is never resized after creation.
type Field struct {
	Particles []Particle
}

// NewField scatters n particles uniformly over the plate.
func NewField(n int, rng *rand.Rand) *Field {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			X: (rng.Float64() - 0.5) * 2 * math.Pi,
			Y: (rng.Float64() - 0.5) * 2 * math.Pi,
		}
	}
	return &Field{Particles: ps}
}

// Step advances every particle one frame under the mode pair for freq and
// returns that pair.
func (f *Field) Step(freq int) Modes {
	md := ModesFromFrequency(freq)
	m, n := float64(md.M), float64(md.N)
	for i := range f.Particles {
		p := &f.Particles[i]
		v := math.Sin(m*p.X) * math.Sin(n*p.Y)
		p.X += -Drift * v * sign(p.X)
		p.Y += -Drift * v * sign(p.Y)
		p.X = core.Clamp(p.X, -math.Pi, math.Pi)
		p.Y = core.Clamp(p.Y, -math.Pi, math.Pi)
	}
	return md
}

// Snapshot copies the current positions.
func (f *Field) Snapshot() []Particle {
	out := make([]Particle, len(f.Particles))
	copy(out, f.Particles)
	return out
}

// sign returns -1, 0 or 1; a particle on an axis does not move along it.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
