// Package suppression models the aerial and ground firefighting
// response as an effectiveness grid applied on top of the field
// solver's ROS, per spec.md §4.8 step 6: "the suppression grid
// attenuates spread rate as R_suppressed = R*(1-effectiveness) and
// evaporates/degrades over time." Agent properties (application rate,
// coating duration, degradation rate) follow the reference engine's
// suppression/agent.rs bundle for water, foam and retardant.
package suppression

import "math"

// Grid tracks per-cell suppression effectiveness over the same
// dimensions as the field solver's grid, decaying each cell's
// effectiveness toward zero over time as the applied agent evaporates
// or degrades under UV.
type Grid struct {
	w, h          int
	effectiveness []float64
	decayPerSec   []float64
}

// NewGrid allocates a suppression grid matching a w*h field.
func NewGrid(w, h int) *Grid {
	return &Grid{
		w:             w,
		h:             h,
		effectiveness: make([]float64, w*h),
		decayPerSec:   make([]float64, w*h),
	}
}

func (g *Grid) index(x, y int) int { return y*g.w + x }

func (g *Grid) inBounds(x, y int) bool { return x >= 0 && x < g.w && y >= 0 && y < g.h }

// Attenuate applies spec.md §4.8 step 6's formula, returning the
// suppressed spread rate at cell (x, y).
func (g *Grid) Attenuate(x, y int, ros float64) float64 {
	if !g.inBounds(x, y) {
		return ros
	}
	return ros * (1 - g.effectiveness[g.index(x, y)])
}

// EffectivenessAt returns the current effectiveness (0..1) at a cell.
func (g *Grid) EffectivenessAt(x, y int) float64 {
	if !g.inBounds(x, y) {
		return 0
	}
	return g.effectiveness[g.index(x, y)]
}

// apply raises a disk of cells to at least effectiveness, and sets their
// decay rate so the coating lasts roughly coatingDurationSec before
// reaching negligible effectiveness (exponential decay to 1/e at that
// time constant).
func (g *Grid) apply(cx, cy, radius, effectiveness, coatingDurationSec float64, cellSize float64) {
	if coatingDurationSec <= 0 {
		coatingDurationSec = 1
	}
	decayRate := 1.0 / coatingDurationSec

	x0 := int((cx - radius) / cellSize)
	x1 := int((cx + radius) / cellSize)
	y0 := int((cy - radius) / cellSize)
	y1 := int((cy + radius) / cellSize)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !g.inBounds(x, y) {
				continue
			}
			wx, wy := float64(x)*cellSize, float64(y)*cellSize
			dx, dy := wx-cx, wy-cy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			i := g.index(x, y)
			if effectiveness > g.effectiveness[i] {
				g.effectiveness[i] = effectiveness
				g.decayPerSec[i] = decayRate
			}
		}
	}
}

// Advance decays every cell's effectiveness exponentially by dt seconds.
func (g *Grid) Advance(dt float64) {
	for i, e := range g.effectiveness {
		if e <= 0 {
			continue
		}
		decayed := e * math.Exp(-g.decayPerSec[i]*dt)
		if decayed < 1e-4 {
			decayed = 0
		}
		g.effectiveness[i] = decayed
	}
}
