package physics

// CanopyLayer is one of the three vertical fuel strata a stand's fire can
// climb through on its way to becoming a crown fire, per Van Wagner
// (1977), Cruz et al. (2006) and Cheney et al. (2012).
type CanopyLayer uint8

const (
	// CanopyUnderstory is ground-level grass/litter, 0-2m.
	CanopyUnderstory CanopyLayer = iota
	// CanopyMidstory is shrubs, bark strips and ladder fuels, 2-8m.
	CanopyMidstory
	// CanopyOverstory is crown/foliage, 8m and above.
	CanopyOverstory
)

// HeightRangeM returns the (min, max) height in meters this layer spans.
func (l CanopyLayer) HeightRangeM() (float64, float64) {
	switch l {
	case CanopyUnderstory:
		return 0.0, 2.0
	case CanopyMidstory:
		return 2.0, 8.0
	default:
		return 8.0, 50.0
	}
}

// ContainsHeight reports whether heightM falls within this layer's range.
func (l CanopyLayer) ContainsHeight(heightM float64) bool {
	lo, hi := l.HeightRangeM()
	return heightM >= lo && heightM < hi
}

// CanopyStructure describes a stand's fuel load, bulk density and
// moisture by vertical layer, plus how continuous the ladder fuel is
// between layers.
type CanopyStructure struct {
	UnderstoryLoadKgM2, MidstoryLoadKgM2, OverstoryLoadKgM2          float64
	UnderstoryDensityKgM3, MidstoryDensityKgM3, OverstoryDensityKgM3 float64
	UnderstoryMoisture, MidstoryMoisture, OverstoryMoisture          float64

	// LadderFuelFactor is 0..1, how continuously fuel bridges understory
	// to midstory to overstory (bark strips, hanging dead material).
	LadderFuelFactor float64
}

// EucalyptusStringybarkCanopy is a stringybark stand: fibrous hanging
// bark gives it very high vertical continuity, a low crown base and a
// dense midstory, the combination behind its fast crown-fire transitions.
func EucalyptusStringybarkCanopy() CanopyStructure {
	return CanopyStructure{
		UnderstoryLoadKgM2: 1.5, MidstoryLoadKgM2: 3.0, OverstoryLoadKgM2: 4.5,
		UnderstoryDensityKgM3: 0.3, MidstoryDensityKgM3: 0.5, OverstoryDensityKgM3: 0.2,
		UnderstoryMoisture: 0.10, MidstoryMoisture: 0.15, OverstoryMoisture: 0.90,
		LadderFuelFactor: 0.9,
	}
}

// EucalyptusSmoothBarkCanopy is a smooth-bark stand: minimal ladder fuel,
// a higher crown base and gaps between layers slow vertical transition.
func EucalyptusSmoothBarkCanopy() CanopyStructure {
	return CanopyStructure{
		UnderstoryLoadKgM2: 1.2, MidstoryLoadKgM2: 1.0, OverstoryLoadKgM2: 4.0,
		UnderstoryDensityKgM3: 0.25, MidstoryDensityKgM3: 0.15, OverstoryDensityKgM3: 0.15,
		UnderstoryMoisture: 0.10, MidstoryMoisture: 0.20, OverstoryMoisture: 0.95,
		LadderFuelFactor: 0.3,
	}
}

// GrasslandCanopy is a single-layer stand with no vertical structure.
func GrasslandCanopy() CanopyStructure {
	return CanopyStructure{
		UnderstoryLoadKgM2:    0.8,
		UnderstoryDensityKgM3: 0.2,
		UnderstoryMoisture:    0.05,
		LadderFuelFactor:      0.0,
	}
}

// LoadAtLayer returns the fuel load (kg/m^2) for layer.
func (c CanopyStructure) LoadAtLayer(layer CanopyLayer) float64 {
	switch layer {
	case CanopyUnderstory:
		return c.UnderstoryLoadKgM2
	case CanopyMidstory:
		return c.MidstoryLoadKgM2
	default:
		return c.OverstoryLoadKgM2
	}
}

// MoistureAtLayer returns the moisture fraction for layer.
func (c CanopyStructure) MoistureAtLayer(layer CanopyLayer) float64 {
	switch layer {
	case CanopyUnderstory:
		return c.UnderstoryMoisture
	case CanopyMidstory:
		return c.MidstoryMoisture
	default:
		return c.OverstoryMoisture
	}
}

// layerTransitionBaseThresholdKWm is the fireline intensity (kW/m) a
// lower layer must sustain before fire can climb to the named upper
// layer, before the ladder-fuel-continuity adjustment.
func layerTransitionBaseThresholdKWm(from, to CanopyLayer) (float64, bool) {
	switch {
	case from == CanopyUnderstory && to == CanopyMidstory:
		return 500.0, true
	case from == CanopyMidstory && to == CanopyOverstory:
		return 2000.0, true
	case from == CanopyUnderstory && to == CanopyOverstory:
		return 5000.0, true // direct jump, rare
	default:
		return 0, false
	}
}

// LayerTransitionProbability returns the 0..1 probability that fire
// burning in from at lowerLayerIntensityKWm climbs to to this tick.
// Only upward transitions are supported; a denser ladder-fuel factor
// lowers the effective threshold, and moisture in the target layer
// damps the probability once the threshold is cleared.
func LayerTransitionProbability(lowerLayerIntensityKWm float64, canopy CanopyStructure, from, to CanopyLayer) float64 {
	base, ok := layerTransitionBaseThresholdKWm(from, to)
	if !ok {
		return 0
	}

	threshold := base * (1.0 - canopy.LadderFuelFactor*0.7)
	moistureFactor := 1.0 - canopy.MoistureAtLayer(to)
	if moistureFactor < 0 {
		moistureFactor = 0
	}

	switch {
	case lowerLayerIntensityKWm < threshold*0.5:
		return 0
	case lowerLayerIntensityKWm > threshold*2.0:
		return moistureFactor
	default:
		intensityFactor := (lowerLayerIntensityKWm - threshold*0.5) / (threshold * 1.5)
		return intensityFactor * moistureFactor
	}
}
