package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/iburimskiy/cymatics/internal/cymatics"
)

type circle struct {
	x, y, r float64
	c       color.Color
}

type recordingSurface struct {
	w, h    int
	clears  []color.Color
	circles []circle
}

func (s *recordingSurface) Size() (int, int)     { return s.w, s.h }
func (s *recordingSurface) Clear(c color.Color) { s.clears = append(s.clears, c) }
func (s *recordingSurface) FillCircle(x, y, r float64, c color.Color) {
	s.circles = append(s.circles, circle{x, y, r, c})
}

func TestToScreenCorners(t *testing.T) {
	tests := []struct {
		p      cymatics.Particle
		wx, wy float64
	}{
		{cymatics.Particle{X: -math.Pi, Y: -math.Pi}, 0, 0},
		{cymatics.Particle{X: math.Pi, Y: math.Pi}, 800, 600},
		{cymatics.Particle{X: 0, Y: 0}, 400, 300},
		{cymatics.Particle{X: math.Pi / 2, Y: -math.Pi / 2}, 600, 150},
	}
	for _, tt := range tests {
		x, y := ToScreen(tt.p, 800, 600)
		if math.Abs(x-tt.wx) > 1e-9 || math.Abs(y-tt.wy) > 1e-9 {
			t.Errorf("ToScreen(%+v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.wx, tt.wy)
		}
	}
}

func TestDrawClearsThenPlotsEveryParticle(t *testing.T) {
	s := &recordingSurface{w: 200, h: 100}
	ps := []cymatics.Particle{{X: 0, Y: 0}, {X: -math.Pi, Y: math.Pi}, {X: 1, Y: 1}}
	st := DefaultStyle()

	Draw(s, ps, st)

	if len(s.clears) != 1 || s.clears[0] != st.Background {
		t.Fatalf("clears = %v", s.clears)
	}
	if len(s.circles) != len(ps) {
		t.Fatalf("drew %d circles, want %d", len(s.circles), len(ps))
	}
	if c := s.circles[0]; !near(c.x, 100) || !near(c.y, 50) || c.r != st.Radius || c.c != st.Particle {
		t.Errorf("first circle = %+v", c)
	}
	if c := s.circles[1]; !near(c.x, 0) || !near(c.y, 100) {
		t.Errorf("second circle = %+v", c)
	}
}

func TestDefaultStyleColors(t *testing.T) {
	st := DefaultStyle()
	if st.Background != (color.RGBA{0x1a, 0x1a, 0x1a, 0xff}) {
		t.Errorf("background = %v", st.Background)
	}
	if st.Particle != (color.RGBA{0x4c, 0xaf, 0x50, 0xff}) {
		t.Errorf("particle = %v", st.Particle)
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
