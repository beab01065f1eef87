package app

import (
	"errors"
	"image/color"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/iburimskiy/cymatics/internal/config"
	"github.com/iburimskiy/cymatics/internal/cymatics"
	"github.com/iburimskiy/cymatics/internal/render"
	"github.com/iburimskiy/cymatics/internal/tone"
)

type fakeVoice struct {
	out     *fakeOutput
	stopped bool
}

func (v *fakeVoice) Stop() {
	if !v.stopped {
		v.stopped = true
		v.out.active--
	}
}

type fakeOutput struct {
	state     tone.State
	resumeErr error
	resumes   int
	active    int
	maxActive int
	plays     int
	lastRate  int
	lastLen   int
}

func (o *fakeOutput) State() tone.State { return o.state }

func (o *fakeOutput) Resume() error {
	o.resumes++
	if o.resumeErr != nil {
		return o.resumeErr
	}
	o.state = tone.Running
	return nil
}

func (o *fakeOutput) Play(samples []float64, sampleRate int) (tone.Voice, error) {
	o.plays++
	o.active++
	o.maxActive = max(o.maxActive, o.active)
	o.lastRate = sampleRate
	o.lastLen = len(samples)
	return &fakeVoice{out: o}, nil
}

type countingSurface struct {
	clears, circles int
}

func (s *countingSurface) Size() (int, int)                          { return 100, 100 }
func (s *countingSurface) Clear(color.Color)                         { s.clears++ }
func (s *countingSurface) FillCircle(_, _, _ float64, _ color.Color) { s.circles++ }

func newTestController(t *testing.T) (*Controller, *fakeOutput, *time.Time) {
	t.Helper()
	out := &fakeOutput{}
	field := cymatics.NewField(config.ParticleCount, rand.New(rand.NewSource(1)))
	c := New(config.DefaultParams(), field, out)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }
	return c, out, &clock
}

func TestGestureStartsToneOnce(t *testing.T) {
	c, out, _ := newTestController(t)
	if c.ToneActive() {
		t.Fatal("tone active before any gesture")
	}
	c.Gesture()
	c.Gesture()
	if out.resumes != 1 || out.plays != 1 {
		t.Errorf("resumes = %d plays = %d, want 1 and 1", out.resumes, out.plays)
	}
	if !c.ToneActive() {
		t.Error("tone not active after gesture")
	}
}

func TestParamChangesBeforeGestureDoNotPlay(t *testing.T) {
	c, out, _ := newTestController(t)
	c.SetFrequency(800)
	c.SetDuration(0.5)
	if err := c.SetSampleRate(22050); err != nil {
		t.Fatal(err)
	}
	if out.plays != 0 {
		t.Errorf("plays = %d, want 0", out.plays)
	}
	if _, visible := c.Status(); visible {
		t.Error("status shown with nothing to rebuild")
	}
}

func TestSetDurationClamps(t *testing.T) {
	c, _, _ := newTestController(t)
	if got := c.SetDuration(1.5); got != 1.0 {
		t.Errorf("SetDuration(1.5) = %v", got)
	}
	if got := c.SetDuration(-1); got != 0.01 {
		t.Errorf("SetDuration(-1) = %v", got)
	}
	if c.Params().Duration != 0.01 {
		t.Errorf("stored duration = %v", c.Params().Duration)
	}
	if got := c.DurationLabel(); got != "0.01s" {
		t.Errorf("label = %q", got)
	}
}

func TestSetFrequencyUpdatesModesAndRebuilds(t *testing.T) {
	c, out, clock := newTestController(t)
	c.Gesture()

	if got := c.SetFrequency(50); got != 50 {
		t.Fatalf("SetFrequency = %d", got)
	}
	if c.Modes() != (cymatics.Modes{M: 2, N: 1}) {
		t.Errorf("modes = %+v", c.Modes())
	}
	if c.ModeLabel() != "Modes: m=2, n=1" || c.FrequencyLabel() != "50 Hz" {
		t.Errorf("labels = %q %q", c.ModeLabel(), c.FrequencyLabel())
	}
	if out.plays != 2 || out.maxActive != 1 {
		t.Errorf("plays = %d maxActive = %d", out.plays, out.maxActive)
	}

	text, visible := c.Status()
	if !visible || text != "Updating frequency..." {
		t.Errorf("status = %q %v", text, visible)
	}
	*clock = clock.Add(config.StatusDelay - time.Millisecond)
	if _, visible := c.Status(); !visible {
		t.Error("status hidden early")
	}
	*clock = clock.Add(time.Millisecond)
	if _, visible := c.Status(); visible {
		t.Error("status still visible after delay")
	}
}

func TestSetSampleRate(t *testing.T) {
	c, out, _ := newTestController(t)
	c.Gesture()
	if err := c.SetSampleRate(8000); err != nil {
		t.Fatal(err)
	}
	if out.lastRate != 8000 || out.lastLen != 800 {
		t.Errorf("played %d samples at %d Hz", out.lastLen, out.lastRate)
	}
	if c.SampleRateLabel() != "8000 Hz" {
		t.Errorf("label = %q", c.SampleRateLabel())
	}

	err := c.SetSampleRate(0)
	if !errors.Is(err, config.ErrSampleRate) {
		t.Fatalf("got %v, want ErrSampleRate", err)
	}
	if c.Params().SampleRate != 8000 {
		t.Errorf("rate changed on invalid input: %d", c.Params().SampleRate)
	}
	if !errors.Is(c.Err(), config.ErrSampleRate) {
		t.Errorf("last error = %v", c.Err())
	}
	c.ClearErr()
	if c.Err() != nil {
		t.Error("ClearErr did not clear")
	}
}

func TestTogglePlay(t *testing.T) {
	c, out, _ := newTestController(t)
	c.Gesture()

	c.TogglePlay()
	if c.Playing() || c.ToneActive() || out.active != 0 {
		t.Fatalf("after pause: playing=%v active=%v voices=%d", c.Playing(), c.ToneActive(), out.active)
	}
	if c.PlayLabel() != "Play" {
		t.Errorf("label = %q", c.PlayLabel())
	}

	// Changes while paused are stored but do not sound.
	c.SetFrequency(900)
	if out.plays != 1 {
		t.Errorf("plays = %d after paused change", out.plays)
	}

	c.TogglePlay()
	if !c.Playing() || !c.ToneActive() {
		t.Fatal("not playing after resume")
	}
	if out.plays != 2 || out.maxActive != 1 {
		t.Errorf("plays = %d maxActive = %d", out.plays, out.maxActive)
	}
	if c.PlayLabel() != "Pause" {
		t.Errorf("label = %q", c.PlayLabel())
	}
}

func TestToggleBeforeGestureResumesOutput(t *testing.T) {
	c, out, _ := newTestController(t)
	c.TogglePlay() // pause
	c.TogglePlay() // play
	if out.resumes != 1 || !c.ToneActive() {
		t.Errorf("resumes = %d active = %v", out.resumes, c.ToneActive())
	}
}

func TestResumeFailureIsReported(t *testing.T) {
	c, out, _ := newTestController(t)
	out.resumeErr = errors.New("no device")
	c.Gesture()
	if c.Err() == nil || c.ToneActive() {
		t.Errorf("err = %v active = %v", c.Err(), c.ToneActive())
	}
}

func TestFramesFrozenWhilePaused(t *testing.T) {
	c, _, _ := newTestController(t)
	s := &countingSurface{}

	c.Frame(s)
	c.TogglePlay()
	c.TogglePlay()
	c.TogglePlay() // paused

	before := c.Field().Snapshot()
	c.Frame(s)
	c.Frame(s)
	after := c.Field().Snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("particle %d moved while paused", i)
		}
	}
	if s.clears != 3 || s.circles != 3*config.ParticleCount {
		t.Errorf("clears = %d circles = %d", s.clears, s.circles)
	}
	if c.Frames() != 3 {
		t.Errorf("frames = %d", c.Frames())
	}

	c.TogglePlay()
	c.Frame(s)
	moved := false
	for i, p := range c.Field().Particles {
		if p != after[i] {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("no particle moved after resuming")
	}
}

func TestExport(t *testing.T) {
	c, _, _ := newTestController(t)
	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := c.Export(path, 2); err != nil {
		t.Fatal(err)
	}
	if text, _ := c.Status(); text != "Exported "+path {
		t.Errorf("status = %q", text)
	}
}

func TestDriver(t *testing.T) {
	steps, draws := 0, 0
	d := NewDriver(false, func() { steps++ }, func(render.Surface) { draws++ })
	d.Frame(nil)
	if steps != 0 || draws != 1 {
		t.Fatalf("paused frame: steps = %d draws = %d", steps, draws)
	}
	if !d.Toggle() {
		t.Fatal("Toggle should report playing")
	}
	d.Frame(nil)
	if steps != 1 || draws != 2 || d.Frames() != 2 {
		t.Errorf("steps = %d draws = %d frames = %d", steps, draws, d.Frames())
	}
}
