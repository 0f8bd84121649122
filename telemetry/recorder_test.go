package telemetry

import (
	"testing"

	"github.com/blazeforge/ember/sim"
)

func TestRecorderNilIsNoOp(t *testing.T) {
	var r *Recorder
	r.StartTick()
	r.StartPhase(PhaseFieldTick)
	r.EndTick(1)
	if err := r.Sample(sim.Stats{}, sim.Diagnostics{}); err != nil {
		t.Fatalf("nil recorder Sample: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("nil recorder Close: %v", err)
	}
}

func TestRecorderSampleFlushesOnWindowBoundary(t *testing.T) {
	r, err := NewRecorder("", 1.0, 1.0, 5)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	r.StartTick()
	r.StartPhase(PhaseFieldTick)
	r.EndTick(0)
	if err := r.Sample(sim.Stats{SimTimeSeconds: 0}, sim.Diagnostics{}); err != nil {
		t.Fatalf("Sample before window close: %v", err)
	}

	r.StartTick()
	r.StartPhase(PhaseFieldTick)
	r.EndTick(1)
	if err := r.Sample(sim.Stats{SimTimeSeconds: 1, BurningCells: 3, TotalIgnitions: 2}, sim.Diagnostics{}); err != nil {
		t.Fatalf("Sample at window close: %v", err)
	}
}
