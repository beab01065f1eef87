// Package render rasterises a particle field onto a drawing surface.
package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/cymatics/internal/config"
	"github.com/iburimskiy/cymatics/internal/cymatics"
)

// Surface is the minimal drawing target a front end has to provide.
type Surface interface {
	Size() (w, h int)
	Clear(c color.Color)
	FillCircle(x, y, r float64, c color.Color)
}

type Style struct {
	Background color.Color
	Particle   color.Color
	Radius     float64
}

func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff},
		Particle:   color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
		Radius:     config.ParticleRadius,
	}
}

// ToScreen maps a plate coordinate in [-π, π]² to pixel space [0,w]x[0,h].
func ToScreen(p cymatics.Particle, w, h int) (float64, float64) {
	sx := (p.X + math.Pi) * float64(w) / (2 * math.Pi)
	sy := (p.Y + math.Pi) * float64(h) / (2 * math.Pi)
	return sx, sy
}

// Draw clears s and plots every particle as a filled disk.
func Draw(s Surface, particles []cymatics.Particle, st Style) {
	w, h := s.Size()
	s.Clear(st.Background)
	for _, p := range particles {
		x, y := ToScreen(p, w, h)
		s.FillCircle(x, y, st.Radius, st.Particle)
	}
}
