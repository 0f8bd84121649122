// Package ember keeps a capped pool of lofted embers external to the
// field solver, per spec.md §1 ("embers only to the extent the core must
// consume or produce them") and §9's Open Question, decided in
// DESIGN.md: embers drive ignite_at calls on landing and do not inject a
// temperature perturbation into the field directly. Trajectory physics
// are the pure closures in the physics package (Albini lofting, drag,
// buoyancy); this package only owns the pool's bookkeeping.
package ember

import (
	"math"
	"math/rand"

	"github.com/blazeforge/ember/physics"
	"github.com/blazeforge/ember/units"
)

// defaultDiameterM and defaultDensityKgM3 are representative bark-ember
// values used when a caller doesn't specify per-spawn particle size.
const (
	defaultDiameterM   = 0.01
	defaultDensityKgM3 = 400.0
)

// Ember is one tracked lofted particle.
type Ember struct {
	ID    uint32
	State physics.EmberState
	alive bool
}

// LandingEvent reports where and when an ember reached the ground.
type LandingEvent struct {
	EmberID uint32
	X, Y    float64
}

// Pool holds at most Capacity embers; a spawn that would exceed it is
// dropped and the existing embers are kept.
type Pool struct {
	Capacity int

	embers []Ember
	nextID uint32
	rng    *rand.Rand
}

// NewPool creates an empty pool with the given capacity and a
// deterministic spawn-scatter RNG seeded from seed.
func NewPool(capacity int, seed int64) *Pool {
	return &Pool{Capacity: capacity, rng: rand.New(rand.NewSource(seed))}
}

// Spawn lofts a new ember from a point on the fire front, using Albini's
// loft-height relation to set the initial upward velocity needed to
// coast to that height under gravity alone; the front's temperature
// seeds the ember's temperature, which drives buoyancy once it is aloft.
// Returns the new ember's id and whether it was actually spawned (spawns
// are dropped, not queued, once the pool is at capacity -- a dropped
// ember does not silently reduce determinism since embers are already
// outside the replicated φ path).
func (p *Pool) Spawn(x, y, intensityKWm, plumeHeightM, slopeDegrees, wind10mX, wind10mY, frontTempK float64) (uint32, bool) {
	if len(p.embers) >= p.Capacity {
		return 0, false
	}

	loft := physics.LoftHeight(intensityKWm, plumeHeightM)

	// Initial vertical speed sufficient to coast to the loft height under
	// gravity alone (v^2 = 2*g*h), a simple ballistic seed before drag and
	// buoyancy take over in StepEmberTrajectory.
	vz := 0.0
	if loft > 0 {
		vz = math.Sqrt(2 * units.GravityAccel * loft)
	}

	scatter := (p.rng.Float64() - 0.5) * 2.0 // +/-1, lateral scatter jitter
	state := physics.EmberState{
		X: x, Y: y, Z: 1.0,
		VX:          wind10mX*0.3 + scatter,
		VY:          wind10mY * 0.3,
		VZ:          vz,
		TempK:       frontTempK,
		DiameterM:   defaultDiameterM,
		DensityKgM3: defaultDensityKgM3,
	}

	p.nextID++
	id := p.nextID
	p.embers = append(p.embers, Ember{ID: id, State: state, alive: true})
	return id, true
}

// Step advances every alive ember by dt seconds and returns landing
// events for embers that reached the ground this step; landed embers are
// then removed from the pool.
func (p *Pool) Step(dt, windX, windY float64) []LandingEvent {
	var landings []LandingEvent
	live := p.embers[:0]
	for _, e := range p.embers {
		if !e.alive {
			continue
		}
		wasAloft := e.State.Z > 0
		e.State = physics.StepEmberTrajectory(e.State, windX, windY, dt)
		if wasAloft && e.State.Z <= 0 {
			landings = append(landings, LandingEvent{EmberID: e.ID, X: e.State.X, Y: e.State.Y})
			continue
		}
		live = append(live, e)
	}
	p.embers = live
	return landings
}

// Count returns the number of currently aloft embers.
func (p *Pool) Count() int { return len(p.embers) }
