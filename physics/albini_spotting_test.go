package physics

import "testing"

func TestLoftHeightIncreasesWithIntensity(t *testing.T) {
	low := LoftHeight(1000, 0)
	high := LoftHeight(50000, 0)
	if high <= low {
		t.Errorf("loft height should increase with intensity: low=%v high=%v", low, high)
	}
}

func TestLoftHeightCappedByColumn(t *testing.T) {
	h := LoftHeight(1e9, 500)
	if h > 500 {
		t.Errorf("loft height = %v, want <= column cap 500", h)
	}
}

func TestTerrainFactorBoundedBelow(t *testing.T) {
	f := TerrainFactor(-1000)
	if f < 0.5 {
		t.Errorf("terrain factor = %v, want >= 0.5", f)
	}
}

func TestStepEmberTrajectoryFallsUnderGravity(t *testing.T) {
	s := EmberState{Z: 100, TempK: 293.15, DiameterM: 0.01, DensityKgM3: 400}
	next := StepEmberTrajectory(s, 0, 0, 0.1)
	if next.VZ >= s.VZ {
		t.Errorf("expected downward acceleration, VZ went from %v to %v", s.VZ, next.VZ)
	}
}

func TestStepEmberTrajectoryHotEmberFallsSlowerThanCold(t *testing.T) {
	hot := EmberState{Z: 100, TempK: 900, DiameterM: 0.01, DensityKgM3: 400}
	cold := EmberState{Z: 100, TempK: 293.15, DiameterM: 0.01, DensityKgM3: 400}

	var hotZ, coldZ = hot, cold
	for i := 0; i < 20; i++ {
		hotZ = StepEmberTrajectory(hotZ, 0, 0, 0.1)
		coldZ = StepEmberTrajectory(coldZ, 0, 0, 0.1)
	}
	if hotZ.Z <= coldZ.Z {
		t.Errorf("hot ember (buoyant) should fall slower: hotZ=%v coldZ=%v", hotZ.Z, coldZ.Z)
	}
}

func TestStepEmberTrajectoryNeverGoesBelowGround(t *testing.T) {
	s := EmberState{Z: 0.05, TempK: 293.15, DiameterM: 0.01, DensityKgM3: 400, VZ: -10}
	next := StepEmberTrajectory(s, 0, 0, 1.0)
	if next.Z < 0 {
		t.Errorf("ember Z = %v, want >= 0", next.Z)
	}
}
