package physics

import (
	"math"

	"github.com/blazeforge/ember/fuel"
)

// TimelagHours are the nominal Nelson timelag constants, in hours.
var TimelagHours = [4]float64{1, 10, 100, 1000}

// SimardEMC computes the Simard equilibrium moisture content (fraction)
// from ambient temperature (deg C) and relative humidity (0..100), using
// the adsorption or desorption branch depending on the sign of
// (currentAverage - desorptionEMC), matching Nelson's hysteresis
// convention.
func SimardEMC(tempC, relHumidityPct, currentAverage float64) float64 {
	desorb := simardEMC(tempC, relHumidityPct, true)
	adsorb := simardEMC(tempC, relHumidityPct, false)
	if currentAverage-desorb >= 0 {
		return desorb
	}
	return adsorb
}

// simardEMC implements the Simard (1968) piecewise EMC curve. The
// adsorption/desorption distinction applies a small offset consistent
// with the known hysteresis gap (adsorption EMC runs slightly below
// desorption EMC at the same RH).
func simardEMC(tempC, rh float64, desorption bool) float64 {
	h := clamp(rh, 0, 100)
	t := tempC

	var emc float64
	switch {
	case h < 10:
		emc = 0.03229 + 0.281073*h - 0.000578*h*t
	case h < 50:
		emc = 2.22749 + 0.160107*h - 0.014784*t
	default:
		emc = 21.0606 + 0.005565*h*h - 0.00035*h*t - 0.483199*h
	}
	emc /= 100.0

	if !desorption {
		emc *= 0.92 // adsorption runs below desorption at equal RH
	}
	return math.Max(emc, 0.01)
}

// NelsonLagUpdate advances a single timelag class toward its equilibrium
// moisture content over dtSeconds, per M(t+dt) = Me + (M(t)-Me)*exp(-dt/tau).
func NelsonLagUpdate(current, equilibrium, tauHours, dtSeconds float64) float64 {
	if tauHours <= 0 {
		return equilibrium
	}
	tauSeconds := tauHours * 3600.0
	return equilibrium + (current-equilibrium)*math.Exp(-dtSeconds/tauSeconds)
}

// UpdateMoistureState advances all four timelag classes of a
// fuel.MoistureState by dtSeconds given ambient temperature and relative
// humidity, and returns the updated state.
func UpdateMoistureState(state fuel.MoistureState, tempC, relHumidityPct, dtSeconds float64) fuel.MoistureState {
	avg := (state.OneHour + state.TenHour + state.HundredHour + state.ThousandHour) / 4.0
	emc := SimardEMC(tempC, relHumidityPct, avg)

	return fuel.MoistureState{
		OneHour:      clamp(NelsonLagUpdate(state.OneHour, emc, TimelagHours[0], dtSeconds), 0.01, 1.0),
		TenHour:      clamp(NelsonLagUpdate(state.TenHour, emc, TimelagHours[1], dtSeconds), 0.01, 1.0),
		HundredHour:  clamp(NelsonLagUpdate(state.HundredHour, emc, TimelagHours[2], dtSeconds), 0.01, 1.0),
		ThousandHour: clamp(NelsonLagUpdate(state.ThousandHour, emc, TimelagHours[3], dtSeconds), 0.01, 1.0),
	}
}
