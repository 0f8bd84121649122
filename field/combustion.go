package field

import (
	"github.com/blazeforge/ember/fuel"
	"github.com/blazeforge/ember/units"
)

// stepCombustion advances fuel, moisture and oxygen for every burning
// cell (phi < 0), in this order: moisture evaporates first, by at most
// the latent heat that the cell's heat above ambient could supply (the
// cell's temperature is not lowered by the heat spent on evaporation);
// burn rate then gates on temperature and moisture; oxygen availability
// scales burn down when starved; and the heat released is queued for the
// next heat-transfer call rather than applied immediately.
func (f *Field) stepCombustion(dt float64) {
	dims := f.dims
	area := dims.CellArea()
	airColumnVolume := area * 1.0 // 1m column height, per spec.md 4.4 step 4

	f.pool.forEachRow(dims.H, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < dims.W; x++ {
				i := dims.Index(x, y)
				if f.phi[i] >= 0 {
					continue
				}
				m := f.fuelModel[i]
				moisture := f.moisture[i].WeightedAverage(m)

				// 1. Evaporation first, apportioned from heat above ambient.
				w := moisture * f.fuelFraction[i] * m.BulkDensity * m.FuelBedDepth * area
				heatAboveAmbient := (f.t[i] - f.tAmbient) * thermalMass(m) * area
				if heatAboveAmbient < 0 {
					heatAboveAmbient = 0
				}
				evapDemand := w * units.LatentHeatVaporization
				evapUsed := evapDemand
				if evapUsed > heatAboveAmbient {
					evapUsed = heatAboveAmbient
				}
				if evapDemand > 0 && w > 0 {
					fractionEvaporated := evapUsed / evapDemand
					newMoisture := moisture * (1 - fractionEvaporated)
					f.moisture[i] = scaleMoisture(f.moisture[i], newMoisture, moisture)
				}

				// 3. Burn rate gated on ignition temperature and extinction moisture.
				tIgK := m.IgnitionTempC + 273.15
				ignitionMoisture := f.moisture[i].WeightedAverage(m)
				var burnRate float64
				if f.t[i] >= tIgK && ignitionMoisture < m.MoistureOfExtinction {
					tempRamp := (f.t[i] - tIgK) / 500
					if tempRamp > 1 {
						tempRamp = 1
					}
					moistureFactor := 1 - ignitionMoisture/m.MoistureOfExtinction
					baseRate := baseConsumptionRate(m)
					burnRate = moistureFactor * tempRamp * baseRate
				}

				// 4. Oxygen gating.
				if burnRate > 0 {
					o2Required := burnRate * area * units.StoichiometricOxygenRatio
					o2Available := f.oxygen[i] * units.AirDensity * airColumnVolume / dt
					if o2Required > o2Available && o2Required > 0 {
						burnRate *= o2Available / o2Required
					}
				}

				// 5. Decrement fuel and oxygen.
				fuelConsumedFraction := 0.0
				if burnRate > 0 {
					fullLoad := m.BulkDensity * m.FuelBedDepth
					consumedMass := burnRate * area * dt
					if fullLoad*area > 0 {
						fuelConsumedFraction = consumedMass / (fullLoad * area)
					}
					f.fuelFraction[i] -= fuelConsumedFraction
					if f.fuelFraction[i] < 0 {
						f.fuelFraction[i] = 0
					}
					o2Loss := consumedMass * units.StoichiometricOxygenRatio / (units.AirDensity * airColumnVolume)
					f.oxygen[i] -= o2Loss
					if f.oxygen[i] < 0 {
						f.oxygen[i] = 0
					}

					// 6. Heat released, queued for the next heat-transfer step.
					heatReleased := consumedMass * m.HeatContent * f.cfg.SelfHeatingFraction
					f.heatForcing[i] += heatReleased / area
				}
			}
		}
	})
}

// baseConsumptionRate returns a per-area burn rate ceiling (kg/(m^2*s))
// derived from the fuel bed's structure, used as the unscaled rate in
// the temperature/moisture-gated burn-rate formula.
func baseConsumptionRate(m fuel.Model) float64 {
	fullLoad := m.BulkDensity * m.FuelBedDepth
	// A fully-involved bed of this load burns out in roughly 120 seconds;
	// faster for fine, high-surface-area fuels.
	burnoutSeconds := 120.0 * (1500.0 / maxFloat(m.SurfaceAreaToVolume, 1))
	if burnoutSeconds < 20 {
		burnoutSeconds = 20
	}
	return fullLoad / burnoutSeconds
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// scaleMoisture applies a uniform fractional reduction (derived from the
// weighted-average change) across all four timelag classes, preserving
// their relative spread.
func scaleMoisture(s fuel.MoistureState, newWeighted, oldWeighted float64) fuel.MoistureState {
	if oldWeighted <= 0 {
		return s
	}
	ratio := newWeighted / oldWeighted
	s.OneHour *= ratio
	s.TenHour *= ratio
	s.HundredHour *= ratio
	s.ThousandHour *= ratio
	return s
}
