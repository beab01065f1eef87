// Package app ties the parameter state, the particle field and the tone
// player together behind the handlers that the front ends call.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/iburimskiy/cymatics/internal/config"
	"github.com/iburimskiy/cymatics/internal/cymatics"
	"github.com/iburimskiy/cymatics/internal/log"
	"github.com/iburimskiy/cymatics/internal/render"
	"github.com/iburimskiy/cymatics/internal/tone"
)

// Controller owns all mutable state. It is not safe for concurrent use; the
// front end calls it from its single update goroutine.
type Controller struct {
	params *config.Params
	field  *cymatics.Field
	out    tone.Output
	player *tone.Player
	driver *Driver
	style  render.Style
	modes  cymatics.Modes

	statusText string
	statusTill time.Time
	now        func() time.Time

	gestured bool
	lastErr  error
}

func New(params config.Params, field *cymatics.Field, out tone.Output) *Controller {
	p := params
	c := &Controller{
		params: &p,
		field:  field,
		out:    out,
		player: tone.NewPlayer(out),
		style:  render.DefaultStyle(),
		modes:  cymatics.ModesFromFrequency(p.Frequency),
		now:    time.Now,
	}
	c.driver = NewDriver(p.Playing, c.step, c.draw)
	return c
}

func (c *Controller) step() {
	c.modes = c.field.Step(c.params.Frequency)
}

func (c *Controller) draw(s render.Surface) {
	render.Draw(s, c.field.Particles, c.style)
}

// Update is the per-tick update half: expire the status line and, if
// playing, advance the particles.
func (c *Controller) Update() {
	c.expireStatus()
	c.driver.Advance()
}

// Draw is the per-tick render half.
func (c *Controller) Draw(s render.Surface) {
	c.driver.Render(s)
}

// Frame runs Update then Draw.
func (c *Controller) Frame(s render.Surface) {
	c.Update()
	c.Draw(s)
}

func (c *Controller) Params() config.Params  { return *c.params }
func (c *Controller) Field() *cymatics.Field { return c.field }
func (c *Controller) Modes() cymatics.Modes  { return c.modes }
func (c *Controller) Playing() bool          { return c.params.Playing }
func (c *Controller) ToneActive() bool       { return c.player.Active() }
func (c *Controller) ToneLevel() float64     { return c.player.Level() }
func (c *Controller) AudioState() tone.State { return c.out.State() }
func (c *Controller) Frames() uint64         { return c.driver.Frames() }
func (c *Controller) Err() error             { return c.lastErr }
func (c *Controller) ClearErr()              { c.lastErr = nil }

// ReportError records an input error raised by the front end.
func (c *Controller) ReportError(err error) { c.setErr(err) }

// Gesture handles the first user interaction: the output may only be resumed
// from one. Later calls are no-ops.
func (c *Controller) Gesture() {
	if c.gestured {
		return
	}
	c.gestured = true
	if err := c.resume(); err != nil {
		return
	}
	if c.params.Playing && !c.player.Active() {
		c.setErr(c.player.Start(*c.params))
	}
}

func (c *Controller) TogglePlay() {
	c.params.Playing = c.driver.Toggle()
	if c.params.Playing {
		log.Info("play")
		if err := c.resume(); err != nil {
			return
		}
		if !c.player.Active() {
			c.setErr(c.player.Start(*c.params))
		}
		return
	}
	log.Info("pause")
	c.player.Stop()
}

func (c *Controller) SetSampleRate(sr int) error {
	if sr <= 0 {
		err := fmt.Errorf("%w: %d", config.ErrSampleRate, sr)
		c.setErr(err)
		return err
	}
	c.params.SampleRate = sr
	c.retune("Updating sample rate...")
	return nil
}

// SetDuration stores d clamped to [MinDuration, MaxDuration] and returns the
// stored value.
func (c *Controller) SetDuration(d float64) float64 {
	c.params.Duration = config.ClampDuration(d)
	c.retune("Updating duration...")
	return c.params.Duration
}

// SetFrequency stores f clamped to the control range and returns it.
func (c *Controller) SetFrequency(f int) int {
	c.params.Frequency = config.ClampFrequency(f)
	c.modes = cymatics.ModesFromFrequency(c.params.Frequency)
	c.retune("Updating frequency...")
	return c.params.Frequency
}

// Export writes loops repetitions of the current tone to a WAV file.
func (c *Controller) Export(path string, loops int) error {
	if err := tone.ExportFile(path, *c.params, loops); err != nil {
		c.setErr(err)
		return err
	}
	log.Infof("exported tone to %s", path)
	c.showStatus("Exported " + path)
	return nil
}

// Status returns the indicator text and whether it is visible.
func (c *Controller) Status() (string, bool) {
	c.expireStatus()
	return c.statusText, c.statusText != ""
}

func (c *Controller) FrequencyLabel() string  { return fmt.Sprintf("%d Hz", c.params.Frequency) }
func (c *Controller) SampleRateLabel() string { return fmt.Sprintf("%d Hz", c.params.SampleRate) }
func (c *Controller) DurationLabel() string   { return fmt.Sprintf("%.2fs", c.params.Duration) }
func (c *Controller) ModeLabel() string       { return c.modes.String() }

func (c *Controller) PlayLabel() string {
	if c.params.Playing {
		return "Pause"
	}
	return "Play"
}

// retune rebuilds the tone after a parameter change if one is sounding.
// The indicator is hidden on a fixed delay, not on completion.
func (c *Controller) retune(msg string) {
	if !c.params.Playing || !c.player.Active() {
		return
	}
	c.showStatus(msg)
	c.setErr(c.player.Start(*c.params))
}

func (c *Controller) resume() error {
	if c.out.State() == tone.Running {
		return nil
	}
	if err := c.out.Resume(); err != nil {
		c.setErr(fmt.Errorf("resume audio: %w", err))
		return err
	}
	return nil
}

func (c *Controller) showStatus(msg string) {
	c.statusText = msg
	c.statusTill = c.now().Add(config.StatusDelay)
}

func (c *Controller) expireStatus() {
	if c.statusText != "" && !c.now().Before(c.statusTill) {
		c.statusText = ""
	}
}

func (c *Controller) setErr(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, tone.ErrSuspended) {
		log.Debug("tone deferred until audio resumes")
		return
	}
	c.lastErr = err
	log.Error(err.Error())
}
