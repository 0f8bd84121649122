// Package atmosphere models the convective plume above an active fire,
// the pyroconvective-cloud (pyroCb) lifecycle it can trigger, and the
// downdraft a collapsing pyroCb spawns, per spec.md §4.6. Every quantity
// here is derived from the pure closures in package physics; atmosphere
// adds only the stateful bookkeeping (active plume/event/downdraft
// lists) those closures don't carry themselves.
package atmosphere

import "github.com/blazeforge/ember/physics"

// ConvectionColumn holds the derived geometry of a single fire's
// convective plume, rebuilt each tick from the current fire-power
// aggregate.
type ConvectionColumn struct {
	PositionX, PositionY float64
	IntensityKWm         float64
	FireLengthM          float64
	AmbientTempK         float64
	WindMPS              float64

	PlumeHeightM  float64
	UpdraftMPS    float64
	BaseRadiusM   float64
}

// NewConvectionColumn derives plume height, updraft and base radius from
// the fire's aggregate intensity, length, ambient temperature and wind,
// using the Briggs closures in package physics.
func NewConvectionColumn(x, y, intensityKWm, fireLengthM, ambientTempK, windMPS float64) ConvectionColumn {
	totalPowerW := intensityKWm * 1000.0 * fireLengthM
	fb := physics.BuoyancyFlux(totalPowerW, ambientTempK)
	plumeHeight := physics.PlumeHeight(fb, windMPS)

	baseRadius := fireLengthM / (2 * 3.141592653589793)
	if baseRadius < 10 {
		baseRadius = 10
	}

	deltaTemp := ambientTempK * 0.1 // representative near-surface excess above ambient
	updraft := physics.UpdraftVelocity(plumeHeight, deltaTemp, ambientTempK)

	return ConvectionColumn{
		PositionX:    x,
		PositionY:    y,
		IntensityKWm: intensityKWm,
		FireLengthM:  fireLengthM,
		AmbientTempK: ambientTempK,
		WindMPS:      windMPS,
		PlumeHeightM: plumeHeight,
		UpdraftMPS:   updraft,
		BaseRadiusM:  baseRadius,
	}
}

// EntrainmentAt returns the radial entrainment velocity (m/s) into the
// column at distance r from its axis.
func (c ConvectionColumn) EntrainmentAt(r float64) float64 {
	return physics.EntrainmentVelocity(r, c.BaseRadiusM, c.UpdraftMPS)
}

// TotalPowerW returns the fire's aggregate convective power in watts.
func (c ConvectionColumn) TotalPowerW() float64 {
	return c.IntensityKWm * 1000.0 * c.FireLengthM
}
