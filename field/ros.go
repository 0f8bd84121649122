package field

import (
	"github.com/blazeforge/ember/units"
)

// refreshROS recomputes the emergent rate-of-spread field used by the
// level-set step, per spec.md §4.4: for each cell, ROS is the heat flux
// from the hottest neighbour times cell size, divided by the sensible
// plus latent heat required to bring that cell to ignition, clamped to
// [0, 10] m/s. This decouples phi's evolution from the Rothermel closure
// -- Rothermel and the other physics closures instead shape the heat
// source terms and the ignition threshold that this flux is measured
// against.
func (f *Field) refreshROS() {
	dims := f.dims
	dx := dims.Dx
	sigma := units.StefanBoltzmann

	f.pool.forEachRow(dims.H, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < dims.W; x++ {
				i := dims.Index(x, y)
				t := f.t[i]

				hottestT := t
				for _, off := range neighbor8Offsets {
					nx, ny := x+off[0], y+off[1]
					if !dims.InBounds(nx, ny) {
						continue
					}
					nt := f.t[dims.Index(nx, ny)]
					if nt > hottestT {
						hottestT = nt
					}
				}

				if hottestT <= t {
					f.ros[i] = 0
					continue
				}

				m := f.fuelModel[i]
				emissivity := 0.7
				if f.phi[i] < 0 {
					emissivity = 0.9
				}
				flux := emissivity * sigma * (hottestT*hottestT*hottestT*hottestT - t*t*t*t)
				alpha := thermalDiffusivity(m)
				flux += alpha * (hottestT - t) / dx

				tIgK := m.IgnitionTempC + 273.15
				deltaT := tIgK - t
				if deltaT < 1 {
					deltaT = 1
				}
				fullLoad := m.BulkDensity * m.FuelBedDepth * f.fuelFraction[i]
				sensible := thermalMass(m) * deltaT
				moisture := f.moisture[i].WeightedAverage(m)
				latent := moisture * fullLoad * units.LatentHeatVaporization

				denom := sensible + latent
				if denom <= 0 {
					f.ros[i] = 0
					continue
				}

				r := flux * dx / denom
				if r < 0 {
					r = 0
				}
				if r > 10 {
					r = 10
				}
				f.ros[i] = r
			}
		}
	})
}
