// Package ui holds the host-independent state of the on-screen controls:
// hit testing, slider values, the numeric text field and the slide-out panel.
// Drawing and input polling live in the front end.
package ui

import (
	"math"
	"strconv"
	"strings"
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Shift moves r horizontally by dx.
func (r Rect) Shift(dx float64) Rect {
	r.X += dx
	return r
}

type Button struct {
	Bounds Rect
	Label  string
}

// Slider is a horizontal range control snapped to Step.
type Slider struct {
	Bounds    Rect
	Min, Max  float64
	Step      float64
	Value     float64
	dragging  bool
	dragShift float64
}

func (s *Slider) Ratio() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return clamp01((s.Value - s.Min) / (s.Max - s.Min))
}

// ValueAt maps a screen x inside the (shifted) track to a snapped value.
func (s *Slider) ValueAt(x, shift float64) float64 {
	r := s.Bounds.Shift(shift)
	ratio := 0.0
	if r.W > 0 {
		ratio = clamp01((x - r.X) / r.W)
	}
	v := s.Min + ratio*(s.Max-s.Min)
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		// Trim float noise such as 0.30000000000000004.
		p := math.Pow(10, float64(decimals(s.Step)))
		v = math.Round(v*p) / p
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Press starts a drag when (x, y) hits the track and reports whether the
// value changed.
func (s *Slider) Press(x, y, shift float64) bool {
	if !s.Bounds.Shift(shift).Contains(x, y) {
		return false
	}
	s.dragging = true
	s.dragShift = shift
	return s.set(s.ValueAt(x, shift))
}

// Drag follows the cursor while a drag is active.
func (s *Slider) Drag(x float64) bool {
	if !s.dragging {
		return false
	}
	return s.set(s.ValueAt(x, s.dragShift))
}

func (s *Slider) Release() { s.dragging = false }

func (s *Slider) Dragging() bool { return s.dragging }

func (s *Slider) set(v float64) bool {
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// NumberField is a single-line numeric input that commits on Enter or blur.
type NumberField struct {
	Bounds  Rect
	Text    string
	MaxLen  int
	Focused bool
}

func (f *NumberField) Focus() { f.Focused = true }

// Blur drops focus and reports whether the field was focused, i.e. whether
// the caller should commit its value.
func (f *NumberField) Blur() bool {
	was := f.Focused
	f.Focused = false
	return was
}

// Type appends the digits among rs; anything else is ignored.
func (f *NumberField) Type(rs []rune) {
	if !f.Focused {
		return
	}
	var b strings.Builder
	b.WriteString(f.Text)
	for _, r := range rs {
		if r < '0' || r > '9' {
			continue
		}
		if f.MaxLen > 0 && b.Len() >= f.MaxLen {
			break
		}
		b.WriteRune(r)
	}
	f.Text = b.String()
}

func (f *NumberField) Backspace() {
	if f.Focused && len(f.Text) > 0 {
		f.Text = f.Text[:len(f.Text)-1]
	}
}

func (f *NumberField) Int() (int, error) {
	return strconv.Atoi(f.Text)
}

func (f *NumberField) SetInt(v int) {
	f.Text = strconv.Itoa(v)
}

func decimals(step float64) int {
	d := 0
	for step < 1 && d < 6 {
		step *= 10
		d++
	}
	return d
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
