package game

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/cymatics/internal/app"
	"github.com/iburimskiy/cymatics/internal/config"
	"github.com/iburimskiy/cymatics/internal/log"
	"github.com/iburimskiy/cymatics/internal/tone"
	"github.com/iburimskiy/cymatics/internal/ui"
)

const colorShiftSpeed = 0.002

// Scope provides recently played samples for the oscilloscope strip.
type Scope interface {
	Recent(n int) [][2]float64
}

// Game is the windowed front end. It translates ebiten input into
// controller calls and draws the field, the scope and the side panel.
type Game struct {
	ctrl  *app.Controller
	scope Scope
	loops int

	panel      *ui.Panel
	menuBtn    ui.Button
	closeBtn   ui.Button
	playBtn    ui.Button
	exportBtn  ui.Button
	rateField  ui.NumberField
	durSlider  ui.Slider
	freqSlider ui.Slider

	scopeData  []float64
	colorPhase float64

	chars []rune
	keys  []ebiten.Key
}

// NewGame builds the window state around ctrl. scope may be nil.
func NewGame(ctrl *app.Controller, scope Scope, exportLoops int) *Game {
	p := ctrl.Params()
	g := &Game{
		ctrl:  ctrl,
		scope: scope,
		loops: exportLoops,
		panel: ui.NewPanel(config.PanelWidth, config.PanelSlideSpeed),
		menuBtn: ui.Button{
			Bounds: ui.Rect{X: config.MenuButtonX, Y: config.MenuButtonY, W: config.MenuButtonW, H: config.MenuButtonH},
			Label:  "Menu",
		},
		closeBtn:  ui.Button{Bounds: ui.Rect{X: config.PanelWidth - 40, Y: 12, W: 28, H: 24}, Label: "X"},
		playBtn:   ui.Button{Bounds: ui.Rect{X: 20, Y: 250, W: 120, H: 32}},
		exportBtn: ui.Button{Bounds: ui.Rect{X: 156, Y: 250, W: 120, H: 32}, Label: "Export WAV"},
		rateField: ui.NumberField{Bounds: ui.Rect{X: 20, Y: 78, W: 150, H: 24}, MaxLen: 6},
		durSlider: ui.Slider{
			Bounds: ui.Rect{X: 20, Y: 140, W: 200, H: 16},
			Min:    config.MinDuration,
			Max:    config.MaxDuration,
			Step:   config.DurationStep,
			Value:  p.Duration,
		},
		freqSlider: ui.Slider{
			Bounds: ui.Rect{X: 20, Y: 194, W: 200, H: 16},
			Min:    config.MinFrequency,
			Max:    config.MaxFrequency,
			Step:   1,
			Value:  float64(p.Frequency),
		},
	}
	g.rateField.SetInt(p.SampleRate)
	return g
}

func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	if clicked || len(g.keys) > 0 {
		g.ctrl.Gesture()
	}

	if g.rateField.Focused {
		g.updateRateField()
	} else {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.ctrl.TogglePlay()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.panel.IsOpen() {
			g.panel.Close()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		g.handleFrequencyKeys()
	}

	if clicked {
		g.handleClick(x, y)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.durSlider.Drag(x) {
			g.durSlider.Value = g.ctrl.SetDuration(g.durSlider.Value)
		}
		if g.freqSlider.Drag(x) {
			g.freqSlider.Value = float64(g.ctrl.SetFrequency(int(g.freqSlider.Value)))
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.durSlider.Release()
		g.freqSlider.Release()
	}
	g.syncControls()

	g.panel.Tick()
	g.ctrl.Update()
	g.colorPhase += colorShiftSpeed
	g.updateScope()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ctrl.Draw(screenSurface{img: screen})
	g.drawScope(screen)
	g.drawHUD(screen)
	g.drawPanel(screen)
	g.drawStatus(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) handleFrequencyKeys() {
	f := g.ctrl.Params().Frequency
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.ctrl.SetFrequency(f + 10)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.ctrl.SetFrequency(f - 10)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.ctrl.SetFrequency(f + 50)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.ctrl.SetFrequency(f - 50)
	}
}

func (g *Game) handleClick(x, y float64) {
	if !g.panel.IsOpen() {
		if g.menuBtn.Bounds.Contains(x, y) {
			g.panel.Open()
		}
		return
	}

	px := g.panel.X()
	if !g.panel.Bounds(config.WindowHeight).Contains(x, y) {
		// Overlay click.
		g.commitRate()
		g.panel.Close()
		return
	}

	if g.rateField.Bounds.Shift(px).Contains(x, y) {
		g.rateField.Focus()
		return
	}
	g.commitRate()

	switch {
	case g.closeBtn.Bounds.Shift(px).Contains(x, y):
		g.panel.Close()
	case g.playBtn.Bounds.Shift(px).Contains(x, y):
		g.ctrl.TogglePlay()
	case g.exportBtn.Bounds.Shift(px).Contains(x, y):
		if err := g.exportDialog(); err != nil {
			g.ctrl.ReportError(fmt.Errorf("export: %w", err))
		}
	case g.durSlider.Press(x, y, px):
		g.durSlider.Value = g.ctrl.SetDuration(g.durSlider.Value)
	case g.freqSlider.Press(x, y, px):
		g.freqSlider.Value = float64(g.ctrl.SetFrequency(int(g.freqSlider.Value)))
	}
}

func (g *Game) updateRateField() {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	g.rateField.Type(g.chars)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.rateField.Backspace()
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		g.commitRate()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.rateField.Blur()
		g.rateField.SetInt(g.ctrl.Params().SampleRate)
	}
}

// commitRate applies the sample rate field if it was being edited.
func (g *Game) commitRate() {
	if !g.rateField.Blur() {
		return
	}
	n, err := g.rateField.Int()
	if err != nil {
		g.ctrl.ReportError(fmt.Errorf("sample rate %q: %w", g.rateField.Text, err))
	} else {
		_ = g.ctrl.SetSampleRate(n)
	}
	g.rateField.SetInt(g.ctrl.Params().SampleRate)
}

// syncControls mirrors controller state into idle widgets, e.g. after a
// keyboard change.
func (g *Game) syncControls() {
	p := g.ctrl.Params()
	if !g.durSlider.Dragging() {
		g.durSlider.Value = p.Duration
	}
	if !g.freqSlider.Dragging() {
		g.freqSlider.Value = float64(p.Frequency)
	}
	if !g.rateField.Focused {
		g.rateField.SetInt(p.SampleRate)
	}
	g.playBtn.Label = g.ctrl.PlayLabel()
}

func (g *Game) exportDialog() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export Tone"),
		zenity.Filename("tone.wav"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "WAV audio",
			Patterns: []string{"*.wav"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if filepath.Ext(path) == "" {
		path += ".wav"
	}
	log.Infof("exporting tone to %s", path)
	return g.ctrl.Export(path, g.loops)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	g.drawButton(screen, g.menuBtn, 0)

	state := "Paused - Space to play"
	if g.ctrl.Playing() {
		state = "Playing - Space to pause"
	}
	line := fmt.Sprintf("%s | %s | %s", g.ctrl.FrequencyLabel(), g.ctrl.ModeLabel(), state)
	if g.ctrl.AudioState() == tone.Suspended {
		line += " | Click or press a key to enable audio"
	} else if g.ctrl.ToneActive() {
		line += fmt.Sprintf(" | level %.3f", g.ctrl.ToneLevel())
	}
	if err := g.ctrl.Err(); err != nil {
		line += " | Error: " + err.Error()
	}
	ebitenutil.DebugPrintAt(screen, line, config.MenuButtonX+config.MenuButtonW+12, config.MenuButtonY+6)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	text, visible := g.ctrl.Status()
	if !visible {
		return
	}
	w := float32(textWidth(text) + 24)
	x := float32(config.WindowWidth)/2 - w/2
	y := float32(config.WindowHeight) / 2
	vector.DrawFilledRect(screen, x, y-16, w, 32, color.RGBA{R: 0, G: 0, B: 0, A: 200}, false)
	vector.StrokeRect(screen, x, y-16, w, 32, 1, color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, text, int(x)+12, int(y)-8)
}
