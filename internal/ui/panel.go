package ui

// Panel is a slide-out drawer anchored to the left edge. Its left edge moves
// between -Width (closed) and 0 (open) by Speed pixels per tick.
type Panel struct {
	Width float64
	Speed float64
	open  bool
	x     float64
}

func NewPanel(width, speed float64) *Panel {
	return &Panel{Width: width, Speed: speed, x: -width}
}

func (p *Panel) Open()        { p.open = true }
func (p *Panel) Close()       { p.open = false }
func (p *Panel) IsOpen() bool { return p.open }

func (p *Panel) Toggle() {
	p.open = !p.open
}

// X is the current left edge; widgets are laid out relative to it.
func (p *Panel) X() float64 { return p.x }

// Visible reports whether any part of the panel is on screen.
func (p *Panel) Visible() bool { return p.x > -p.Width }

// Bounds is the on-screen area of the panel for a window of height h.
func (p *Panel) Bounds(h float64) Rect {
	return Rect{X: p.x, Y: 0, W: p.Width, H: h}
}

// Tick advances the slide animation one frame.
func (p *Panel) Tick() {
	target := -p.Width
	if p.open {
		target = 0
	}
	switch {
	case p.x < target:
		p.x = min(target, p.x+p.Speed)
	case p.x > target:
		p.x = max(target, p.x-p.Speed)
	}
}

// Overlay is the dimming fraction (0..1) for the area outside the panel.
func (p *Panel) Overlay() float64 {
	if p.Width <= 0 {
		return 0
	}
	return clamp01((p.x + p.Width) / p.Width)
}
