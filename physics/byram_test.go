package physics

import "testing"

func TestByramRegimePlumeDominatedBelowWindThreshold(t *testing.T) {
	for _, intensity := range []float64{0, 1000, 1e9} {
		res := ByramRegime(intensity, 300, 0.4)
		if res.Regime != RegimePlumeDominated {
			t.Errorf("intensity=%v: regime = %v, want plume_dominated (wind<0.5)", intensity, res.Regime)
		}
	}
}

func TestByramRegimeWindDriven(t *testing.T) {
	res := ByramRegime(500, 300, 10)
	if res.Regime != RegimeWindDriven {
		t.Errorf("regime = %v, want wind_driven", res.Regime)
	}
}

func TestByramRegimeTransitional(t *testing.T) {
	// Find a combination that lands Nc in [1,10].
	res := ByramRegime(5000, 300, 4)
	if res.ConvectionNumber < 1 || res.ConvectionNumber > 10 {
		t.Skipf("convection number %v not in transitional range for this fixture", res.ConvectionNumber)
	}
	if res.Regime != RegimeTransitional {
		t.Errorf("regime = %v, want transitional", res.Regime)
	}
}
