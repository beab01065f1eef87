package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface adapts an ebiten image to render.Surface.
type screenSurface struct {
	img *ebiten.Image
}

func (s screenSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s screenSurface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s screenSurface) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}
