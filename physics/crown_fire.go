package physics

import (
	"math"

	"github.com/blazeforge/ember/fuel"
)

// CrownFireRegime classifies a fire's relationship to the canopy.
type CrownFireRegime int

const (
	CrownFireSurface CrownFireRegime = iota
	CrownFirePassive
	CrownFireActive
)

func (r CrownFireRegime) String() string {
	switch r {
	case CrownFireSurface:
		return "surface"
	case CrownFirePassive:
		return "passive"
	case CrownFireActive:
		return "active"
	default:
		return "unknown"
	}
}

// CrownFireResult is the output of the Van Wagner crown-fire transition
// closure.
type CrownFireResult struct {
	Regime                   CrownFireRegime
	CriticalSurfaceIntensity float64 // I_crit, kW/m
	CriticalCrownSpreadRate  float64 // R_crit_crown, m/min
	CrownFractionBurned      float64 // CFB, 0..1
	BurnRateMultiplier       float64 // enhancement applied to the surface ROS
}

// VanWagnerCrownTransition evaluates whether a surface fire of the given
// intensity and active spread rate transitions to passive or active crown
// fire, per Van Wagner (1977, 1993).
//
// CBH is crown base height (m), FMCPercent is foliar moisture content as a
// percentage (e.g. 100 for 100%), CBD is crown bulk density (kg/m^3).
func VanWagnerCrownTransition(f fuel.Model, surfaceIntensityKWm, activeSpreadRateMMin, cbh, fmcPercent, cbd float64) CrownFireResult {
	iCrit := math.Pow(0.010*cbh*(460+25.9*fmcPercent), 1.5)
	if f.CrownFireThreshold > 0 {
		iCrit = math.Min(iCrit, f.CrownFireThreshold)
	}

	rCritCrown := 0.0
	if cbd > 0 {
		rCritCrown = 3.0 / cbd
	}

	result := CrownFireResult{
		CriticalSurfaceIntensity: iCrit,
		CriticalCrownSpreadRate:  rCritCrown,
	}

	switch {
	case surfaceIntensityKWm < iCrit:
		result.Regime = CrownFireSurface
		result.BurnRateMultiplier = 1.0
	case activeSpreadRateMMin < rCritCrown:
		result.Regime = CrownFirePassive
		ratio := 0.0
		if iCrit > 0 {
			ratio = surfaceIntensityKWm/iCrit - 1
		}
		result.BurnRateMultiplier = 1.0 + 0.5*ratio
	default:
		result.Regime = CrownFireActive
		cfb := 1 - math.Exp(-0.23*(activeSpreadRateMMin-rCritCrown))
		cfb = clamp(cfb, 0, 1)
		result.CrownFractionBurned = cfb
		result.BurnRateMultiplier = 2.0 + 2.0*cfb
	}

	return result
}
