package field

// stepIgnitionSync ignites unburned cells (phi > 0) that have at least
// one burned 4-neighbour, have reached ignition temperature, and are
// below moisture of extinction, per spec.md §4.4. Ignition sets
// phi <- -Dx/2, pulling the cell just inside the burned region without
// requiring a full level-set relaxation to catch up.
func (f *Field) stepIgnitionSync() {
	dims := f.dims
	half := -dims.Dx / 2

	type ignitionEvent struct{ idx int }
	var toIgnite []ignitionEvent

	for y := 0; y < dims.H; y++ {
		for x := 0; x < dims.W; x++ {
			i := dims.Index(x, y)
			if f.phi[i] <= 0 {
				continue
			}

			burningNeighbor := false
			if x > 0 && f.phi[dims.Index(x-1, y)] < 0 {
				burningNeighbor = true
			}
			if !burningNeighbor && x < dims.W-1 && f.phi[dims.Index(x+1, y)] < 0 {
				burningNeighbor = true
			}
			if !burningNeighbor && y > 0 && f.phi[dims.Index(x, y-1)] < 0 {
				burningNeighbor = true
			}
			if !burningNeighbor && y < dims.H-1 && f.phi[dims.Index(x, y+1)] < 0 {
				burningNeighbor = true
			}
			if !burningNeighbor {
				continue
			}

			m := f.fuelModel[i]
			tIgK := m.IgnitionTempC + 273.15
			if f.t[i] < tIgK {
				continue
			}
			moisture := f.moisture[i].WeightedAverage(m)
			if moisture >= m.MoistureOfExtinction {
				continue
			}

			toIgnite = append(toIgnite, ignitionEvent{idx: i})
		}
	}

	for _, e := range toIgnite {
		f.phi[e.idx] = half
	}
}
