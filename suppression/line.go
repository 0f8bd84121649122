package suppression

import "math"

// lineEffectiveness and lineDurationSec model a hand/dozer containment
// line: near-total combustion inhibition (the fuel bed is physically
// cleared or scraped to mineral soil) that degrades slowly, since the
// line persists as long as the crew maintains it rather than evaporating
// like a liquid agent.
const (
	lineEffectiveness = 0.95
	lineDurationSec   = 7200
)

// Line is a crew or dozer containment line: a sequence of points
// (the line's path) with a width, applied as a capsule of effectiveness
// along each segment.
type Line struct {
	Points [][2]float64
	WidthM float64
}

// Apply paints the line's capsule footprint onto the grid by treating
// each segment as a chain of overlapping drops of radius WidthM/2.
func (l Line) Apply(g *Grid, cellSize float64) {
	if l.WidthM <= 0 {
		return
	}
	radius := l.WidthM / 2
	for i := 0; i < len(l.Points); i++ {
		p := l.Points[i]
		g.apply(p[0], p[1], radius, lineEffectiveness, lineDurationSec, cellSize)
		if i+1 >= len(l.Points) {
			continue
		}
		q := l.Points[i+1]
		sampleSegment(p, q, radius, func(x, y float64) {
			g.apply(x, y, radius, lineEffectiveness, lineDurationSec, cellSize)
		})
	}
}

// sampleSegment walks from p to q in steps of roughly one radius,
// invoking fn at each sample point so a capsule shape (not just the
// endpoints) gets painted.
func sampleSegment(p, q [2]float64, step float64, fn func(x, y float64)) {
	dx, dy := q[0]-p[0], q[1]-p[1]
	length := math.Hypot(dx, dy)
	if length < 1e-9 || step <= 0 {
		return
	}
	n := int(length/step) + 1
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		fn(p[0]+dx*t, p[1]+dy*t)
	}
}
