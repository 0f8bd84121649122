// Package physics implements the pure, stateless closures that supply the
// field solver's per-cell rate and intensity terms: Rothermel surface
// spread, Van Wagner crown transition, Nelson fuel-moisture lag, Albini
// ember lofting, Briggs plume rise, the Byram-number regime
// discriminator, slope/terrain factors, the VLS detector and the
// junction-zone detector. Every function here is a pure function of
// (fuel, environment scalars); none holds state, matching spec.md §3's
// ownership note ("Physics closures are pure functions ... they hold no
// state") and the reference codebase's split between stateless systems
// functions (systems/energy.go, systems/math.go) and stateful systems
// structs.
package physics

import (
	"math"

	"github.com/blazeforge/ember/fuel"
)

// RothermelInputs bundles the scalar environment the Rothermel closure
// needs, beyond the fuel bundle itself.
type RothermelInputs struct {
	MoistureFraction float64 // 0..1
	WindSpeedMPS     float64 // midflame wind, m/s
	SlopeDegrees     float64
	AmbientTempC     float64
}

// RothermelSpreadRate computes the Rothermel (1972) surface fire spread
// rate in m/min, with the Australian empirical calibration factor carried
// per-fuel-bundle (spec.md §9 Open Question; see fuel.Model.RothermelCalibration).
//
// Returns 0 when moisture is at or above the fuel's moisture of
// extinction. Never fails: out-of-range inputs clamp rather than error,
// per spec.md §7's propagation policy for physics closures.
func RothermelSpreadRate(f fuel.Model, in RothermelInputs) float64 {
	if in.MoistureFraction >= f.MoistureOfExtinction {
		return 0
	}

	reactionIntensity := reactionIntensity(f, in.MoistureFraction)
	propagatingFlux := propagatingFluxRatio(f)
	windCoeff := windCoefficient(f, in.WindSpeedMPS)
	slopeCoeff := slopeCoefficientRothermel(in.SlopeDegrees)
	heatPreignition := heatOfPreignition(f, in.MoistureFraction, in.AmbientTempC)

	if f.BulkDensity <= 0 || f.EffectiveHeating <= 0 || heatPreignition <= 0 {
		return 0
	}

	k := f.RothermelCalibration
	if k == 0 {
		k = 0.05
	}

	r := (reactionIntensity * propagatingFlux * (1 + windCoeff + slopeCoeff)) /
		(f.BulkDensity * f.EffectiveHeating * heatPreignition) * k

	return math.Max(r, 0)
}

// reactionIntensity is I_R = Gamma' * w_n * h * eta_M * eta_s.
func reactionIntensity(f fuel.Model, moisture float64) float64 {
	sigma := f.SurfaceAreaToVolume
	sigma15 := math.Pow(sigma, 1.5)
	gammaMax := sigma15 / (495.0 + 0.0594*sigma15)

	betaRatio := f.PackingRatio
	reactionVelocity := gammaMax * betaRatio

	fuelLoading := f.BulkDensity * f.FuelBedDepth
	moistureDamping := moistureDampingCoefficient(moisture, f.MoistureOfExtinction)

	return reactionVelocity * fuelLoading * f.HeatContent * moistureDamping * f.MineralDamping
}

// moistureDampingCoefficient is eta_M, clamped to [0,1].
func moistureDampingCoefficient(moisture, extinction float64) float64 {
	if extinction <= 0 {
		return 1
	}
	r := math.Min(moisture/extinction, 1.0)
	eta := 1 - 2.59*r + 5.11*r*r - 3.52*r*r*r
	return clamp(eta, 0, 1)
}

// propagatingFluxRatio is xi.
func propagatingFluxRatio(f fuel.Model) float64 {
	sigma := f.SurfaceAreaToVolume
	beta := f.PackingRatioComputed()
	if beta <= 0 {
		beta = f.PackingRatio
	}
	beta = math.Min(beta, 1.0)

	numerator := math.Exp((0.792 + 0.681*math.Sqrt(sigma)) * (beta + 0.1))
	denominator := 192.0 + 0.2595*sigma
	if denominator <= 0 {
		return 0
	}
	return clamp(numerator/denominator, 0, 1)
}

// windCoefficient is Phi_w.
func windCoefficient(f fuel.Model, windMPS float64) float64 {
	sigma := f.SurfaceAreaToVolume
	beta := f.PackingRatioComputed()
	if beta <= 0 {
		beta = f.PackingRatio
	}
	betaOp := f.OptimumPackingRatio
	if betaOp <= 0 {
		betaOp = beta
	}

	c := 7.47 * math.Exp(-0.133*math.Pow(sigma, 0.55))
	b := 0.02526 * math.Pow(sigma, 0.54)
	windFPM := 60.0 * windMPS // feet-per-minute-equivalent convention per spec, ft/min scaling of m/s wind

	if windFPM < 0 {
		windFPM = 0
	}
	if betaOp <= 0 {
		return 0
	}
	return c * math.Pow(windFPM, b) * math.Pow(beta/betaOp, -0.3)
}

// slopeCoefficientRothermel is Phi_s, the Rothermel-specific slope term
// (distinct from the more general slope_factor used in §4.2's slope/aspect
// section, which modulates the emergent ROS field rather than the
// Rothermel closure itself).
func slopeCoefficientRothermel(slopeDegrees float64) float64 {
	if slopeDegrees <= 0 {
		return 0
	}
	theta := slopeDegrees * math.Pi / 180.0
	tanTheta := math.Tan(theta)
	return 5.275 * 1.25 * tanTheta * tanTheta
}

// heatOfPreignition is Q_ig.
func heatOfPreignition(f fuel.Model, moisture, ambientTempC float64) float64 {
	return f.SpecificHeat*(f.IgnitionTempC-ambientTempC) + moisture*2260.0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
