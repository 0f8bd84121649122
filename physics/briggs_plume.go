package physics

import (
	"math"

	"github.com/blazeforge/ember/units"
)

const maxPlumeHeightM = 15000.0

// BuoyancyFlux computes the Briggs buoyancy flux parameter F_b from total
// fire power (W) and ambient temperature (K).
func BuoyancyFlux(totalPowerW, ambientTempK float64) float64 {
	if ambientTempK <= 0 {
		return 0
	}
	rho := units.AirDensity
	cp := units.AirSpecificHeat * 1000.0
	return (units.GravityAccel * totalPowerW) / (rho * cp * ambientTempK)
}

// PlumeHeight computes the Briggs plume rise z_max (m), capped at 15 km.
func PlumeHeight(buoyancyFlux, windMPS float64) float64 {
	u := math.Max(windMPS, 0.5)
	z := 3.8 * math.Pow(math.Max(buoyancyFlux, 0), 0.6) / u
	return math.Min(z, maxPlumeHeightM)
}

// UpdraftVelocity computes the convection column updraft speed (m/s),
// clamped to [0, 50].
func UpdraftVelocity(referenceHeightM, deltaTempK, ambientTempK float64) float64 {
	if ambientTempK <= 0 || deltaTempK <= 0 || referenceHeightM <= 0 {
		return 0
	}
	w := math.Sqrt(2 * units.GravityAccel * referenceHeightM * deltaTempK / ambientTempK)
	return units.Clamp(w, 0, 50)
}

// EntrainmentVelocity computes the radial entrainment velocity into the
// convection column at radial distance r from the column axis, given
// base radius R and updraft speed w. Zero outside [R, 10R].
func EntrainmentVelocity(r, baseRadius, updraft float64) float64 {
	if baseRadius <= 0 || r < baseRadius || r > 10*baseRadius {
		return 0
	}
	return 0.1 * math.Cbrt(updraft) * baseRadius / r
}

// PyroCbColumnGate reports whether the convection column alone satisfies
// the pyroCb formation gate (plume height and intensity thresholds),
// independent of the system-level power/Haines gate in PyroCbSystemGate.
func PyroCbColumnGate(plumeHeightM, intensityKWm float64) bool {
	return plumeHeightM > 8000 && intensityKWm > 50000
}

// PyroCbSystemGate reports whether the system-level pyroCb formation gate
// is satisfied: total fire power above threshold (W) and Haines index at
// or above 5, in addition to the column gate.
func PyroCbSystemGate(plumeHeightM, intensityKWm, totalPowerW, haines, thresholdW float64) bool {
	return PyroCbColumnGate(plumeHeightM, intensityKWm) && totalPowerW >= thresholdW && haines >= 5
}
