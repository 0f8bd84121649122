package telemetry

import (
	"math"
	"testing"
)

func TestComputeRolling(t *testing.T) {
	samples := []float64{10, 20, 30, 40, 50}
	got := ComputeRolling(samples)

	if math.Abs(got.Mean-30) > 0.001 {
		t.Errorf("mean = %v, want 30", got.Mean)
	}
	if got.StdDev <= 0 {
		t.Error("expected a positive standard deviation for a varying sample set")
	}
}

func TestComputeRollingEmpty(t *testing.T) {
	got := ComputeRolling(nil)
	if got.Mean != 0 || got.StdDev != 0 {
		t.Error("empty sample set should return the zero value")
	}
}

func TestComputeRollingConstant(t *testing.T) {
	got := ComputeRolling([]float64{5, 5, 5, 5})
	if got.Mean != 5 {
		t.Errorf("mean = %v, want 5", got.Mean)
	}
	if got.StdDev != 0 {
		t.Errorf("stddev = %v, want 0 for a constant sample set", got.StdDev)
	}
}
