package atmosphere

import "math"

// downdraftLifetimeSeconds is how long a downdraft's wind modification
// decays before it is considered fully dissipated.
const downdraftLifetimeSeconds = 900.0

// downdraftPeakMPS is the wind speed contribution at t=0, decaying
// exponentially thereafter.
const downdraftPeakMPS = 15.0

// downdraftRadiusM is the radius within which a downdraft perturbs wind.
const downdraftRadiusM = 3000.0

// Downdraft exposes a time-decaying, spatially bounded wind modification
// field spawned when a PyroCbSystem event collapses, per spec.md §4.6.
type Downdraft struct {
	PositionX, PositionY float64
	ambientTempK          float64
	age                   float64
}

// NewDowndraft spawns a downdraft at position from the mid-level of a
// collapsing pyroCb column.
func NewDowndraft(x, y, ambientTempK float64) *Downdraft {
	return &Downdraft{PositionX: x, PositionY: y, ambientTempK: ambientTempK}
}

// Advance ages the downdraft by dt seconds.
func (d *Downdraft) Advance(dt float64) { d.age += dt }

// Dissipated reports whether the downdraft has decayed past its lifetime.
func (d *Downdraft) Dissipated() bool { return d.age >= downdraftLifetimeSeconds }

// WindModificationAt returns the (x,y) wind perturbation this downdraft
// contributes at the given query position: a radially outward burst,
// strongest at the center and decaying both with distance and with age.
func (d *Downdraft) WindModificationAt(x, y float64) (float64, float64) {
	if d.Dissipated() {
		return 0, 0
	}
	dx, dy := x-d.PositionX, y-d.PositionY
	r := math.Hypot(dx, dy)
	if r > downdraftRadiusM || r < 1e-6 {
		return 0, 0
	}

	ageDecay := math.Exp(-d.age / (downdraftLifetimeSeconds / 3))
	radialFalloff := 1 - r/downdraftRadiusM
	magnitude := downdraftPeakMPS * ageDecay * radialFalloff

	return magnitude * dx / r, magnitude * dy / r
}
