package physics

import (
	"math"
	"testing"

	"github.com/blazeforge/ember/fuel"
)

func TestVanWagnerCriticalIntensityReferenceCase(t *testing.T) {
	// spec.md §8: CBH=5m, FMC=100%, CBD=0.15 -> I_crit ~ 18300 kW/m (+-2%)
	res := VanWagnerCrownTransition(fuel.Model{}, 0, 0, 5, 100, 0.15)
	want := 18300.0
	tol := want * 0.02
	if math.Abs(res.CriticalSurfaceIntensity-want) > tol {
		t.Errorf("I_crit = %v, want ~%v (+-2%%)", res.CriticalSurfaceIntensity, want)
	}
}

func TestVanWagnerClassifiesActiveCrownFire(t *testing.T) {
	res := VanWagnerCrownTransition(fuel.Model{}, 20000, 20, 3, 90, 0.2)
	if res.Regime != CrownFireActive {
		t.Errorf("regime = %v, want active", res.Regime)
	}
	if res.BurnRateMultiplier < 2.0 {
		t.Errorf("active crown fire burn rate multiplier = %v, want >= 2.0", res.BurnRateMultiplier)
	}
}

func TestVanWagnerSurfaceBelowThreshold(t *testing.T) {
	res := VanWagnerCrownTransition(fuel.Model{}, 100, 0.1, 10, 60, 0.1)
	if res.Regime != CrownFireSurface {
		t.Errorf("regime = %v, want surface", res.Regime)
	}
	if res.BurnRateMultiplier != 1.0 {
		t.Errorf("surface multiplier = %v, want 1.0", res.BurnRateMultiplier)
	}
}

func TestVanWagnerPassiveBetweenThresholds(t *testing.T) {
	res := VanWagnerCrownTransition(fuel.Model{}, 19000, 0.5, 5, 100, 0.15)
	if res.Regime != CrownFirePassive {
		t.Errorf("regime = %v, want passive", res.Regime)
	}
}
