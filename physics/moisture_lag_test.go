package physics

import (
	"math"
	"testing"

	"github.com/blazeforge/ember/fuel"
)

func TestNelsonLagConvergesToEquilibrium(t *testing.T) {
	m := NelsonLagUpdate(0.3, 0.1, 1, 3600*10) // 10 tau
	if math.Abs(m-0.1) > 0.01 {
		t.Errorf("after 10 tau, moisture = %v, want ~0.1", m)
	}
}

func TestNelsonLagNoChangeAtZeroDt(t *testing.T) {
	m := NelsonLagUpdate(0.3, 0.1, 10, 0)
	if m != 0.3 {
		t.Errorf("moisture with dt=0 = %v, want unchanged 0.3", m)
	}
}

func TestUpdateMoistureStateStaysInBounds(t *testing.T) {
	state := fuel.Uniform(0.5)
	for i := 0; i < 100; i++ {
		state = UpdateMoistureState(state, 35, 20, 60)
		for _, v := range []float64{state.OneHour, state.TenHour, state.HundredHour, state.ThousandHour} {
			if v < 0.01 || v > 1.0 {
				t.Fatalf("moisture out of bounds: %v", v)
			}
		}
	}
}

func TestOneHourClassRespondsFasterThanThousandHour(t *testing.T) {
	state := fuel.Uniform(0.5)
	next := UpdateMoistureState(state, 35, 10, 3600) // 1 hour
	d1 := math.Abs(next.OneHour - state.OneHour)
	d1000 := math.Abs(next.ThousandHour - state.ThousandHour)
	if d1 <= d1000 {
		t.Errorf("1h class should move faster than 1000h class in one hour: d1=%v d1000=%v", d1, d1000)
	}
}
