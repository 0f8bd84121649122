package field

import "github.com/blazeforge/ember/physics"

// stepMoisture relaxes every cell's moisture state toward the
// relative-humidity-and-temperature-driven equilibrium using the Nelson
// timelag model (physics.UpdateMoistureState), independent of whether
// the cell is currently burning -- unburned fuel still dries or wets
// toward ambient conditions between ignition events.
func (f *Field) stepMoisture(dt float64, relHumidityPct float64) {
	dims := f.dims
	f.pool.forEachRow(dims.H, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < dims.W; x++ {
				i := dims.Index(x, y)
				tempC := f.t[i] - 273.15
				f.moisture[i] = physics.UpdateMoistureState(f.moisture[i], tempC, relHumidityPct, dt)
			}
		}
	})
}
