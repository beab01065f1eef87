package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/cymatics/internal/config"
	"github.com/iburimskiy/cymatics/internal/ui"
)

var (
	panelBg     = color.RGBA{R: 34, G: 34, B: 34, A: 245}
	panelBorder = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	accent      = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 255}
	trackColor  = color.RGBA{R: 60, G: 66, B: 80, A: 255}
)

func (g *Game) drawPanel(screen *ebiten.Image) {
	if !g.panel.Visible() {
		return
	}

	// Overlay dims the field while the panel is out.
	alpha := uint8(140 * g.panel.Overlay())
	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.WindowHeight, color.RGBA{A: alpha}, false)

	px := g.panel.X()
	vector.DrawFilledRect(screen, float32(px), 0, config.PanelWidth, config.WindowHeight, panelBg, false)
	vector.StrokeLine(screen, float32(px+config.PanelWidth), 0, float32(px+config.PanelWidth), config.WindowHeight, 2, panelBorder, false)

	x := int(px)
	ebitenutil.DebugPrintAt(screen, "Cymatics Controls", x+20, 18)
	g.drawButton(screen, g.closeBtn, px)

	ebitenutil.DebugPrintAt(screen, "Sample rate (Hz)", x+20, 60)
	g.drawField(screen, &g.rateField, px)
	ebitenutil.DebugPrintAt(screen, g.ctrl.SampleRateLabel(), x+int(g.rateField.Bounds.X+g.rateField.Bounds.W)+10, int(g.rateField.Bounds.Y)+5)

	ebitenutil.DebugPrintAt(screen, "Duration", x+20, 120)
	g.drawSlider(screen, &g.durSlider, px)
	ebitenutil.DebugPrintAt(screen, g.ctrl.DurationLabel(), x+int(g.durSlider.Bounds.X+g.durSlider.Bounds.W)+12, int(g.durSlider.Bounds.Y))

	ebitenutil.DebugPrintAt(screen, "Frequency", x+20, 174)
	g.drawSlider(screen, &g.freqSlider, px)
	ebitenutil.DebugPrintAt(screen, g.ctrl.FrequencyLabel(), x+int(g.freqSlider.Bounds.X+g.freqSlider.Bounds.W)+12, int(g.freqSlider.Bounds.Y))
	ebitenutil.DebugPrintAt(screen, g.ctrl.ModeLabel(), x+20, 220)

	g.drawButton(screen, g.playBtn, px)
	g.drawButton(screen, g.exportBtn, px)

	help := []string{
		"Space      play / pause",
		"Up/Down    frequency +/-10 Hz",
		"Left/Right frequency +/-50 Hz",
		"Esc        close panel",
		"Q          quit",
	}
	for i, line := range help {
		ebitenutil.DebugPrintAt(screen, line, x+20, 310+i*16)
	}
}

func (g *Game) drawButton(screen *ebiten.Image, b ui.Button, shift float64) {
	r := b.Bounds.Shift(shift)
	mx, my := ebiten.CursorPosition()
	hovered := r.Contains(float64(mx), float64(my))

	var bg color.Color
	switch {
	case hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	tx := int(r.X) + (int(r.W)-textWidth(b.Label))/2
	ty := int(r.Y) + (int(r.H)-16)/2
	ebitenutil.DebugPrintAt(screen, b.Label, tx, ty)
}

func (g *Game) drawSlider(screen *ebiten.Image, s *ui.Slider, shift float64) {
	r := s.Bounds.Shift(shift)
	cy := float32(r.Y + r.H/2)
	vector.DrawFilledRect(screen, float32(r.X), cy-3, float32(r.W), 6, trackColor, false)
	fill := float32(r.W * s.Ratio())
	vector.DrawFilledRect(screen, float32(r.X), cy-3, fill, 6, accent, false)
	vector.DrawFilledCircle(screen, float32(r.X)+fill, cy, 7, color.White, true)
}

func (g *Game) drawField(screen *ebiten.Image, f *ui.NumberField, shift float64) {
	r := f.Bounds.Shift(shift)
	border := panelBorder
	if f.Focused {
		border = accent
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color.RGBA{R: 20, G: 20, B: 24, A: 255}, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, border, false)
	text := f.Text
	if f.Focused {
		text += "_"
	}
	ebitenutil.DebugPrintAt(screen, text, int(r.X)+6, int(r.Y)+5)
}
