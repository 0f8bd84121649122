package field

import "github.com/blazeforge/ember/fuel"

// worldToCell converts world coordinates to the nearest in-bounds cell
// index, clamping at the grid edge the way Terrain.idx does.
func (f *Field) worldToCell(worldX, worldY float64) (int, int) {
	x := int(worldX / f.dims.Dx)
	y := int(worldY / f.dims.Dx)
	if x < 0 {
		x = 0
	}
	if x > f.dims.W-1 {
		x = f.dims.W - 1
	}
	if y < 0 {
		y = 0
	}
	if y > f.dims.H-1 {
		y = f.dims.H - 1
	}
	return x, y
}

// ROSAt satisfies front.CellSampler: the emergent spread rate nearest a
// world-space point.
func (f *Field) ROSAt(worldX, worldY float64) float64 {
	x, y := f.worldToCell(worldX, worldY)
	return f.ros[f.dims.Index(x, y)]
}

// PhiAt satisfies front.CellSampler: the level-set value nearest a
// world-space point. Points outside the grid clamp to the nearest edge
// cell rather than extrapolating, which is adequate for the small
// curvature probe offsets front.AnnotateKinematics uses.
func (f *Field) PhiAt(worldX, worldY float64) float64 {
	x, y := f.worldToCell(worldX, worldY)
	return f.phi[f.dims.Index(x, y)]
}

// FuelAt satisfies front.CellSampler.
func (f *Field) FuelAt(worldX, worldY float64) fuel.Model {
	x, y := f.worldToCell(worldX, worldY)
	return f.fuelModel[f.dims.Index(x, y)]
}

// FuelConsumedPerAreaAt satisfies front.CellSampler: the fuel mass
// consumed so far in the cell nearest a world-space point, per unit
// area, the per-cell analogue of Field.FuelConsumed's total.
func (f *Field) FuelConsumedPerAreaAt(worldX, worldY float64) float64 {
	x, y := f.worldToCell(worldX, worldY)
	i := f.dims.Index(x, y)
	m := f.fuelModel[i]
	fullLoad := m.BulkDensity * m.FuelBedDepth
	return fullLoad * (1 - f.fuelFraction[i])
}
