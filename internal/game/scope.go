package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/cymatics/internal/config"
)

const (
	scopePoints  = 256
	scopeSamples = 1024
)

// updateScope pulls the latest played samples and folds them into the
// smoothed scope trace.
func (g *Game) updateScope() {
	if g.scope == nil {
		return
	}
	samples := g.scope.Recent(scopeSamples)
	if len(samples) == 0 {
		return
	}
	if len(g.scopeData) != scopePoints {
		g.scopeData = make([]float64, scopePoints)
	}

	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs((s[0]+s[1])*0.5))
	}
	if peak == 0 {
		peak = 1
	}

	step := float64(len(samples)) / scopePoints
	for i := range g.scopeData {
		s := samples[int(float64(i)*step)]
		mono := (s[0] + s[1]) * 0.5 / peak
		g.scopeData[i] = config.SmoothingFactor*g.scopeData[i] + (1-config.SmoothingFactor)*mono
	}
}

func (g *Game) drawScope(screen *ebiten.Image) {
	if len(g.scopeData) == 0 || !g.ctrl.ToneActive() {
		return
	}

	barY := float32(config.WindowHeight - config.ScopeHeight - 10)
	barW := float32(config.WindowWidth - 40)
	barX := float32(20)
	mid := barY + config.ScopeHeight/2

	vector.DrawFilledRect(screen, barX, barY, barW, config.ScopeHeight, color.RGBA{R: 20, G: 25, B: 35, A: 160}, false)
	vector.StrokeLine(screen, barX, mid, barX+barW, mid, 1, color.RGBA{R: 100, G: 110, B: 130, A: 100}, false)

	dx := barW / float32(len(g.scopeData)-1)
	amp := float32(config.ScopeHeight) * 0.45
	for i := 1; i < len(g.scopeData); i++ {
		x1 := barX + float32(i-1)*dx
		x2 := barX + float32(i)*dx
		y1 := mid - float32(clamp(g.scopeData[i-1]))*amp
		y2 := mid - float32(clamp(g.scopeData[i]))*amp
		hue := (g.colorPhase + float64(i)/float64(len(g.scopeData))*0.5) * 360
		vector.StrokeLine(screen, x1, y1, x2, y2, 2, hueColor(hue, 220), true)
	}
}

func clamp(v float64) float64 {
	return clamp01((v+1)/2)*2 - 1
}
