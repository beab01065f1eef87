// Package cymatics holds the standing-wave particle model: the mapping from a
// tone frequency to a plate mode pair and the per-frame drift of the particles.
package cymatics

import "fmt"

// Modes is the (m, n) index pair of a 2D standing-wave pattern.
type Modes struct {
	M, N int
}

func (md Modes) String() string {
	return fmt.Sprintf("Modes: m=%d, n=%d", md.M, md.N)
}

// ModesFromFrequency maps a frequency in Hz to a mode pair. Every 50 Hz bumps
// m through 1..8; n advances at half that rate. Both are always >= 1.
func ModesFromFrequency(freq int) Modes {
	scale := floorDiv(freq, 50)
	m := max(1, floorMod(scale, 8)+1)
	n := max(1, floorMod(floorDiv(scale, 2), 8)+1)
	return Modes{M: m, N: n}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}
