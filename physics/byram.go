package physics

import (
	"math"

	"github.com/blazeforge/ember/units"
)

// FireRegime classifies a fire's coupling to the ambient wind field via
// the Byram convection number.
type FireRegime int

const (
	RegimeWindDriven FireRegime = iota
	RegimeTransitional
	RegimePlumeDominated
)

func (r FireRegime) String() string {
	switch r {
	case RegimeWindDriven:
		return "wind_driven"
	case RegimeTransitional:
		return "transitional"
	case RegimePlumeDominated:
		return "plume_dominated"
	default:
		return "unknown"
	}
}

// RegimeResult bundles the Byram regime classification with its
// downstream behavioral consequences.
type RegimeResult struct {
	ConvectionNumber   float64 // N_c
	Regime             FireRegime
	DirectionUncertaintyDeg float64
	Predictability     float64 // 0..1
}

// ByramConvectionNumber computes N_c = (2*g*I)/(rho*c_p*T*U^3), returning
// +Inf when wind speed is below 0.5 m/s (plume-dominated regardless of
// intensity), matching spec.md's explicit guard.
func ByramConvectionNumber(intensityKWm, ambientTempK, windMPS float64) float64 {
	if windMPS < 0.5 {
		return math.Inf(1)
	}
	rho := units.AirDensity
	cp := units.AirSpecificHeat * 1000.0 // kJ/(kg*K) -> J/(kg*K)
	intensityWm := intensityKWm * 1000.0
	denom := rho * cp * ambientTempK * windMPS * windMPS * windMPS
	if denom <= 0 {
		return math.Inf(1)
	}
	return (2 * units.GravityAccel * intensityWm) / denom
}

// ByramFirelineIntensity computes Byram's (1959) fireline intensity
// I = H*w*R (kW/m) from the fuel's heat content (kJ/kg), the mass of
// fuel consumed per unit area (kg/m^2), and the spread rate (m/s).
func ByramFirelineIntensity(heatContentKJkg, fuelConsumedKgM2, rosMPerS float64) float64 {
	if heatContentKJkg < 0 || fuelConsumedKgM2 < 0 || rosMPerS < 0 {
		return 0
	}
	return heatContentKJkg * fuelConsumedKgM2 * rosMPerS
}

// ByramRegime classifies the fire regime from the convection number and
// returns the associated direction-uncertainty and predictability values.
func ByramRegime(intensityKWm, ambientTempK, windMPS float64) RegimeResult {
	nc := ByramConvectionNumber(intensityKWm, ambientTempK, windMPS)

	var regime FireRegime
	var uncertainty, predictability float64
	switch {
	case nc < 1:
		regime = RegimeWindDriven
		uncertainty, predictability = 15, 1.0
	case nc <= 10:
		regime = RegimeTransitional
		uncertainty, predictability = 60, 0.5
	default:
		regime = RegimePlumeDominated
		uncertainty, predictability = 180, 0.2
	}

	return RegimeResult{
		ConvectionNumber:        nc,
		Regime:                  regime,
		DirectionUncertaintyDeg: uncertainty,
		Predictability:          predictability,
	}
}
