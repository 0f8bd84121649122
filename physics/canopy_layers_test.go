package physics

import "testing"

func TestCanopyLayerHeightRanges(t *testing.T) {
	if !CanopyUnderstory.ContainsHeight(1.0) {
		t.Errorf("understory should contain 1.0m")
	}
	if CanopyUnderstory.ContainsHeight(2.5) {
		t.Errorf("understory should not contain 2.5m")
	}
	if !CanopyMidstory.ContainsHeight(5.0) {
		t.Errorf("midstory should contain 5.0m")
	}
	if !CanopyOverstory.ContainsHeight(15.0) {
		t.Errorf("overstory should contain 15.0m")
	}
}

func TestCanopyStructureConstructors(t *testing.T) {
	stringy := EucalyptusStringybarkCanopy()
	smooth := EucalyptusSmoothBarkCanopy()
	grass := GrasslandCanopy()

	if stringy.LadderFuelFactor <= smooth.LadderFuelFactor {
		t.Errorf("stringybark ladder fuel factor (%v) should exceed smooth bark (%v)",
			stringy.LadderFuelFactor, smooth.LadderFuelFactor)
	}
	if grass.LoadAtLayer(CanopyMidstory) != 0 || grass.LoadAtLayer(CanopyOverstory) != 0 {
		t.Errorf("grassland should carry no mid/overstory load")
	}
}

func TestLayerTransitionProbabilityBelowThreshold(t *testing.T) {
	canopy := EucalyptusStringybarkCanopy()
	p := LayerTransitionProbability(10.0, canopy, CanopyUnderstory, CanopyMidstory)
	if p != 0 {
		t.Errorf("low intensity should give zero transition probability, got %v", p)
	}
}

func TestLayerTransitionProbabilityLadderFuelEffect(t *testing.T) {
	stringy := EucalyptusStringybarkCanopy()
	smooth := EucalyptusSmoothBarkCanopy()

	pStringy := LayerTransitionProbability(1000.0, stringy, CanopyUnderstory, CanopyMidstory)
	pSmooth := LayerTransitionProbability(1000.0, smooth, CanopyUnderstory, CanopyMidstory)

	if pStringy <= 0.1 {
		t.Errorf("stringybark transition probability at 1000 kW/m = %v, want > 0.1", pStringy)
	}
	if pStringy <= pSmooth {
		t.Errorf("denser ladder fuel should transition more readily: stringy=%v smooth=%v", pStringy, pSmooth)
	}
}

func TestLayerTransitionProbabilityNoDownwardTransition(t *testing.T) {
	canopy := EucalyptusStringybarkCanopy()
	p := LayerTransitionProbability(10000.0, canopy, CanopyMidstory, CanopyUnderstory)
	if p != 0 {
		t.Errorf("downward transition should be zero regardless of intensity, got %v", p)
	}
}

func TestLayerTransitionProbabilitySaturatesAboveThreshold(t *testing.T) {
	canopy := EucalyptusSmoothBarkCanopy()
	p := LayerTransitionProbability(1e6, canopy, CanopyMidstory, CanopyOverstory)
	want := 1.0 - canopy.MoistureAtLayer(CanopyOverstory)
	if p != want {
		t.Errorf("saturated transition probability = %v, want %v", p, want)
	}
}
