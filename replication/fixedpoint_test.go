package replication

import (
	"math"
	"testing"

	"github.com/blazeforge/ember/units"
)

func TestQuantizePhiRoundTrip(t *testing.T) {
	cases := []float64{0, 1.5, -3.25, 100.0, -0.001}
	for _, phi := range cases {
		q := QuantizePhi(phi)
		back := DequantizePhi(q)
		if math.Abs(back-phi) > 1.0/units.PhiFixedPointScale {
			t.Errorf("QuantizePhi(%v) round-trip = %v, want within one quantum", phi, back)
		}
	}
}

func TestQuantizeFieldLength(t *testing.T) {
	phi := []float64{1, 2, 3, 4}
	q := QuantizeField(phi)
	if len(q) != len(phi) {
		t.Fatalf("QuantizeField length = %d, want %d", len(q), len(phi))
	}
	back := DequantizeField(q)
	for i := range phi {
		if math.Abs(back[i]-phi[i]) > 1.0/units.PhiFixedPointScale {
			t.Errorf("element %d round-trip = %v, want %v", i, back[i], phi[i])
		}
	}
}

func TestFixedSqrtPerfectSquares(t *testing.T) {
	scale := float64(units.PhiFixedPointScale)
	for _, real := range []float64{0, 1, 4, 9, 16, 25, 100} {
		xFixed := int64(real * scale)
		got := FixedSqrt(xFixed)
		wantReal := math.Sqrt(real)
		wantFixed := int64(wantReal * scale)
		tolerance := int64(scale / 64)
		if diff := got - wantFixed; diff < -tolerance || diff > tolerance {
			t.Errorf("FixedSqrt(%d) = %d, want ~%d (sqrt(%v))", xFixed, got, wantFixed, real)
		}
	}
}

func TestFixedSqrtZeroAndNegative(t *testing.T) {
	if got := FixedSqrt(0); got != 0 {
		t.Errorf("FixedSqrt(0) = %d, want 0", got)
	}
	if got := FixedSqrt(-5); got != 0 {
		t.Errorf("FixedSqrt(-5) = %d, want 0", got)
	}
}

func TestFixedSqrtMonotonic(t *testing.T) {
	scale := float64(units.PhiFixedPointScale)
	prev := FixedSqrt(int64(1 * scale))
	for _, real := range []float64{2, 5, 10, 50, 200} {
		got := FixedSqrt(int64(real * scale))
		if got < prev {
			t.Errorf("FixedSqrt not monotonic: sqrt(%v) fixed=%d < previous %d", real, got, prev)
		}
		prev = got
	}
}
