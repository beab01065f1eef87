package app

import "github.com/iburimskiy/cymatics/internal/render"

// Driver is the two-state animation loop: while playing a frame advances the
// field and then renders; while paused it only renders. The host calls Frame
// (or Advance then Render) once per tick.
type Driver struct {
	playing bool
	step    func()
	draw    func(render.Surface)
	frames  uint64
}

func NewDriver(playing bool, step func(), draw func(render.Surface)) *Driver {
	return &Driver{playing: playing, step: step, draw: draw}
}

func (d *Driver) Playing() bool { return d.playing }

func (d *Driver) SetPlaying(v bool) { d.playing = v }

func (d *Driver) Toggle() bool {
	d.playing = !d.playing
	return d.playing
}

// Frames counts rendered frames.
func (d *Driver) Frames() uint64 { return d.frames }

// Advance runs the update half of a frame.
func (d *Driver) Advance() {
	if d.playing && d.step != nil {
		d.step()
	}
}

// Render runs the draw half of a frame.
func (d *Driver) Render(s render.Surface) {
	if d.draw != nil {
		d.draw(s)
	}
	d.frames++
}

func (d *Driver) Frame(s render.Surface) {
	d.Advance()
	d.Render(s)
}
