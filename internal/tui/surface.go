package tui

import (
	"fmt"
	"image/color"
	"strings"
)

// density maps hit counts per cell to glyphs.
var density = []rune{' ', '.', ':', '*', '*', '#', '#', '#', '#', '@'}

// Surface is a character-cell render.Surface. Each cell counts the
// particles that land in it.
type Surface struct {
	cols, rows int
	cells      []int
	bg, fg     string
}

func NewSurface(cols, rows int) *Surface {
	s := &Surface{}
	s.Resize(cols, rows)
	return s
}

func (s *Surface) Resize(cols, rows int) {
	s.cols = max(cols, 1)
	s.rows = max(rows, 1)
	s.cells = make([]int, s.cols*s.rows)
}

func (s *Surface) Size() (int, int) { return s.cols, s.rows }

func (s *Surface) Clear(c color.Color) {
	clear(s.cells)
	s.bg = hex(c)
}

// FillCircle marks the cell under (x, y); the radius is below one cell.
func (s *Surface) FillCircle(x, y, _ float64, c color.Color) {
	cx := min(max(int(x), 0), s.cols-1)
	cy := min(max(int(y), 0), s.rows-1)
	s.cells[cy*s.cols+cx]++
	s.fg = hex(c)
}

// Count returns the hits in cell (col, row).
func (s *Surface) Count(col, row int) int {
	return s.cells[row*s.cols+col]
}

// Colors returns the last background and particle colors as #rrggbb.
func (s *Surface) Colors() (bg, fg string) { return s.bg, s.fg }

// String renders the grid, one line per row.
func (s *Surface) String() string {
	var b strings.Builder
	b.Grow((s.cols + 1) * s.rows)
	for row := 0; row < s.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < s.cols; col++ {
			n := s.cells[row*s.cols+col]
			b.WriteRune(density[min(n, len(density)-1)])
		}
	}
	return b.String()
}

func hex(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
