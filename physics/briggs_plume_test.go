package physics

import "testing"

func TestPlumeHeightCapped(t *testing.T) {
	h := PlumeHeight(1e12, 1)
	if h > 15000 {
		t.Errorf("plume height = %v, want <= 15000", h)
	}
}

func TestUpdraftVelocityClamped(t *testing.T) {
	w := UpdraftVelocity(1e9, 1e9, 300)
	if w > 50 {
		t.Errorf("updraft velocity = %v, want <= 50", w)
	}
}

func TestEntrainmentVelocityZeroOutsideRange(t *testing.T) {
	if v := EntrainmentVelocity(0.5, 10, 20); v != 0 {
		t.Errorf("entrainment inside R = %v, want 0", v)
	}
	if v := EntrainmentVelocity(200, 10, 20); v != 0 {
		t.Errorf("entrainment beyond 10R = %v, want 0", v)
	}
	if v := EntrainmentVelocity(50, 10, 20); v <= 0 {
		t.Errorf("entrainment within [R,10R] = %v, want > 0", v)
	}
}

func TestPyroCbGatesRequireBothColumnAndSystem(t *testing.T) {
	if PyroCbSystemGate(8500, 60000, 1e9, 6, 5e9) {
		t.Error("expected system gate to fail: total power below threshold")
	}
	if !PyroCbSystemGate(8500, 60000, 6e9, 6, 5e9) {
		t.Error("expected system gate to pass")
	}
	if PyroCbColumnGate(7000, 60000) {
		t.Error("expected column gate to fail below 8km plume")
	}
}
