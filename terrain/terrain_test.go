package terrain

import "testing"

func TestFlatTerrainHasNoSlope(t *testing.T) {
	tr := NewFlat(16, 16, 10.0, 100.0)
	for y := 2; y < 14; y++ {
		for x := 2; x < 14; x++ {
			if s := tr.CachedSlope(x, y); s > 1e-6 {
				t.Fatalf("flat terrain slope at (%d,%d) = %v, want ~0", x, y, s)
			}
		}
	}
}

func TestElevationAtBilinearInterpolation(t *testing.T) {
	tr := New(4, 4, 1.0)
	tr.SetElevation(0, 0, 0)
	tr.SetElevation(1, 0, 10)
	tr.SetElevation(0, 1, 0)
	tr.SetElevation(1, 1, 10)

	got := tr.ElevationAt(0.5, 0.5)
	if got != 5 {
		t.Errorf("ElevationAt(0.5,0.5) = %v, want 5", got)
	}
}

func TestElevationAtClampsToBounds(t *testing.T) {
	tr := NewFlat(4, 4, 1.0, 50.0)
	if got := tr.ElevationAt(-10, -10); got != 50 {
		t.Errorf("out-of-bounds ElevationAt = %v, want 50", got)
	}
	if got := tr.ElevationAt(100, 100); got != 50 {
		t.Errorf("out-of-bounds ElevationAt = %v, want 50", got)
	}
}

func TestAspectConventionDownslope(t *testing.T) {
	// Elevation increases with y (south edge lower, north edge higher):
	// downslope should point toward -y i.e. south, aspect ~ 180.
	tr := New(8, 8, 1.0)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			tr.SetElevation(x, y, float64(y)*10)
		}
	}
	tr.BuildCache()
	aspect := tr.CachedAspect(4, 4)
	if diff := angularDiff(aspect, 180); diff > 5 {
		t.Errorf("aspect = %v, want ~180 (downslope south)", aspect)
	}
}

func angularDiff(a, b float64) float64 {
	d := a - b
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}
	if d < 0 {
		d = -d
	}
	return d
}

func TestSolarRadiationFactorNonNegative(t *testing.T) {
	tr := NewSingleHill(32, 32, 5.0, HillParams{PeakHeight: 50, PeakX: 16, PeakY: 16, Radius: 8})
	for y := 1; y < 31; y++ {
		for x := 1; x < 31; x++ {
			f := tr.SolarRadiationFactor(x, y, 270, 10)
			if f < 0 {
				t.Fatalf("solar radiation factor at (%d,%d) = %v, want >= 0", x, y, f)
			}
		}
	}
}

func TestNewFromHeightmapRejectsMismatchedLength(t *testing.T) {
	_, err := NewFromHeightmap(4, 4, 1.0, make([]float64, 10))
	if err == nil {
		t.Fatal("expected error for mismatched heightmap length")
	}
}
