package field

import (
	"math"
	"testing"
)

func TestFixedSqrtMatchesMathSqrtWithinFixedPointTolerance(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1, 2, 9, 1024, 1e6} {
		got := fixedSqrt(v)
		want := math.Sqrt(v)
		if math.Abs(got-want) > 0.05 {
			t.Errorf("fixedSqrt(%v) = %v, want ~%v", v, got, want)
		}
	}
}

func TestFixedSqrtNonPositiveIsZero(t *testing.T) {
	if fixedSqrt(0) != 0 || fixedSqrt(-5) != 0 {
		t.Error("fixedSqrt of non-positive input should be 0")
	}
}

func TestGodunovGradientMagnitudeFlatFieldIsZero(t *testing.T) {
	dims := Dimensions{W: 5, H: 5, Dx: 1}
	phi := make([]float64, 25)
	for i := range phi {
		phi[i] = 3.0
	}
	if g := godunovGradientMagnitude(phi, dims, 2, 2, 1); g != 0 {
		t.Errorf("gradient of flat field = %v, want 0", g)
	}
}

func TestGodunovGradientMagnitudeLinearRamp(t *testing.T) {
	dims := Dimensions{W: 5, H: 5, Dx: 1}
	phi := make([]float64, 25)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			phi[y*5+x] = float64(x)
		}
	}
	g := godunovGradientMagnitude(phi, dims, 2, 2, 1)
	if g < 0.9 || g > 1.1 {
		t.Errorf("gradient of unit ramp = %v, want ~1", g)
	}
}

func TestCurvatureFlatIsZero(t *testing.T) {
	dims := Dimensions{W: 5, H: 5, Dx: 1}
	phi := make([]float64, 25)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			phi[y*5+x] = float64(x)
		}
	}
	if c := curvature(phi, dims, 2, 2, 1); c != 0 {
		t.Errorf("curvature of a flat plane = %v, want 0", c)
	}
}

func TestCurvatureCircleIsPositiveInward(t *testing.T) {
	dims := Dimensions{W: 21, H: 21, Dx: 1}
	phi := make([]float64, 21*21)
	cx, cy, r := 10.0, 10.0, 6.0
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			d := dx*dx + dy*dy
			phi[y*21+x] = sqrtApprox(d) - r
		}
	}
	c := curvature(phi, dims, 10, 4, 1) // point on circle boundary, north side
	if c <= 0 {
		t.Errorf("expected positive curvature on a circular front, got %v", c)
	}
}

func sqrtApprox(v float64) float64 {
	if v <= 0 {
		return 0
	}
	lo, hi := 0.0, v+1
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		if mid*mid > v {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

func TestMaxCFLZeroWhenNoSpread(t *testing.T) {
	f := testField(t, 10, 10)
	if cfl := f.MaxCFL(0.1); cfl != 0 {
		t.Errorf("MaxCFL with zero ROS = %v, want 0", cfl)
	}
}

func TestReinitializePreservesSign(t *testing.T) {
	f := testField(t, 30, 30)
	f.IgniteAt(30, 30, 5)
	before := make([]bool, len(f.phi))
	for i, v := range f.phi {
		before[i] = v < 0
	}
	f.Reinitialize(5)
	for i, v := range f.phi {
		if (v < 0) != before[i] {
			t.Fatalf("reinitialize flipped sign at cell %d", i)
		}
	}
}
