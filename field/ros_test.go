package field

import "testing"

func TestRefreshROSZeroWithoutTemperatureGradient(t *testing.T) {
	f := testField(t, 10, 10)
	f.refreshROS()
	for i, r := range f.ros {
		if r != 0 {
			t.Fatalf("expected zero ROS in isothermal field, got %v at cell %d", r, i)
		}
	}
}

func TestRefreshROSPositiveNearHotNeighbor(t *testing.T) {
	f := testField(t, 10, 10)
	hot := f.dims.Index(5, 5)
	cool := f.dims.Index(6, 5)
	f.t[hot] = 900
	f.refreshROS()
	if f.ros[cool] <= 0 {
		t.Errorf("expected positive ROS adjacent to a hot cell, got %v", f.ros[cool])
	}
}

func TestRefreshROSClampedToTenMetersPerSecond(t *testing.T) {
	f := testField(t, 10, 10)
	hot := f.dims.Index(5, 5)
	f.t[hot] = 2000
	f.refreshROS()
	for _, r := range f.ros {
		if r > 10 {
			t.Fatalf("ROS = %v exceeds the 10 m/s clamp", r)
		}
	}
}
