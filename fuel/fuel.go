// Package fuel holds the per-fuel-type parameter bundle consumed by the
// physics closures, and the registry of standard fuel models. Bundles are
// immutable value types shared read-only for the lifetime of a
// simulation, the way the reference codebase shares its fuel-type
// bundles across cells (components/body.go) without per-cell copies.
package fuel

// TimelagSpectrum holds the four Nelson timelag moisture classes, in
// fractional size-class weights that sum to 1.
type TimelagSpectrum struct {
	OneHour     float64
	TenHour     float64
	HundredHour float64
	ThousandHour float64
}

// SizeClassWeights returns the four timelag weights as a slice, ordered
// 1h, 10h, 100h, 1000h.
func (s TimelagSpectrum) SizeClassWeights() [4]float64 {
	return [4]float64{s.OneHour, s.TenHour, s.HundredHour, s.ThousandHour}
}

// Model is an immutable bundle of fuel parameters. All physics closures
// take a Model value plus environmental scalars; Model itself holds no
// per-cell or per-tick state.
type Model struct {
	Name string

	// Combustion thermochemistry.
	HeatContent    float64 // kJ/kg
	IgnitionTempC  float64 // degrees C
	MineralDamping float64 // eta_s, dimensionless (0..1)
	SpecificHeat   float64 // kJ/(kg*K), c_p of the fuel bed

	// Structure.
	SurfaceAreaToVolume float64 // sigma, m^-1
	BulkDensity         float64 // kg/m^3
	ParticleDensity     float64 // kg/m^3
	FuelBedDepth        float64 // meters
	PackingRatio        float64 // beta = bulk_density / particle_density
	OptimumPackingRatio float64 // beta_op
	EffectiveHeating    float64 // epsilon, dimensionless (0.3-0.5)

	// Moisture.
	MoistureOfExtinction float64 // m_x, fraction
	Timelag              TimelagSpectrum

	// Crown properties.
	CrownBulkDensity   float64 // kg/m^3 (CBD)
	CrownBaseHeight    float64 // meters (CBH)
	CrownFireThreshold float64 // kW/m, hard cap on I_crit for this fuel

	// Ember interaction.
	EmberProduction  float64 // relative ember generation rate (0..1+)
	EmberReceptivity float64 // how readily embers landing on this fuel ignite it (0..1)

	// RothermelCalibration is the empirical regional calibration factor
	// (spec.md documents 0.05 as an "Australian calibration"). Left
	// per-bundle and configurable rather than a single global constant
	// (spec.md §9 Open Question), default set by Standard() bundles and
	// overridable via WithCalibration or cmd/calibrate.
	RothermelCalibration float64
}

// WithCalibration returns a copy of m with RothermelCalibration replaced.
func (m Model) WithCalibration(k float64) Model {
	m.RothermelCalibration = k
	return m
}

// PackingRatioComputed returns bulk_density/particle_density, recomputed
// from the structural fields rather than trusting a possibly-stale
// PackingRatio field.
func (m Model) PackingRatioComputed() float64 {
	if m.ParticleDensity <= 0 {
		return 0
	}
	return m.BulkDensity / m.ParticleDensity
}
