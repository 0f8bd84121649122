package suppression

import "testing"

func TestAttenuateUnaffectedCellReturnsFullROS(t *testing.T) {
	g := NewGrid(10, 10)
	if got := g.Attenuate(5, 5, 2.0); got != 2.0 {
		t.Errorf("Attenuate on untouched cell = %v, want 2.0", got)
	}
}

func TestDropAttenuatesWithinFootprint(t *testing.T) {
	g := NewGrid(20, 20)
	cellSize := 2.0
	d := Drop{CenterX: 20, CenterY: 20, RadiusM: 6, Agent: LongTermRetardant}
	d.Apply(g, cellSize)

	cx, cy := 10, 10 // cell under drop center (20/2, 20/2)
	if e := g.EffectivenessAt(cx, cy); e <= 0 {
		t.Fatalf("expected nonzero effectiveness under drop, got %v", e)
	}
	ros := g.Attenuate(cx, cy, 1.0)
	if ros >= 1.0 {
		t.Errorf("Attenuate under drop = %v, want < 1.0", ros)
	}
}

func TestDropOutsideFootprintUnaffected(t *testing.T) {
	g := NewGrid(50, 50)
	d := Drop{CenterX: 10, CenterY: 10, RadiusM: 5, Agent: Water}
	d.Apply(g, 1.0)

	if e := g.EffectivenessAt(45, 45); e != 0 {
		t.Errorf("expected zero effectiveness far from drop, got %v", e)
	}
}

func TestAgentEffectivenessOrdering(t *testing.T) {
	// Long-term retardant inhibits combustion more strongly than water,
	// matching the reference engine's suppression/agent.rs bundle.
	water := agentTable[Water]
	ltr := agentTable[LongTermRetardant]
	if ltr.combustionInhibition <= water.combustionInhibition {
		t.Errorf("long-term retardant inhibition %v should exceed water's %v", ltr.combustionInhibition, water.combustionInhibition)
	}
	if ltr.coatingDurationSec <= water.coatingDurationSec {
		t.Errorf("long-term retardant should coat longer than water")
	}
}

func TestAdvanceDecaysEffectiveness(t *testing.T) {
	g := NewGrid(10, 10)
	d := Drop{CenterX: 10, CenterY: 10, RadiusM: 4, Agent: WettingAgent}
	d.Apply(g, 2.0)

	before := g.EffectivenessAt(5, 5)
	g.Advance(60) // wetting agent decays with a 600s time constant, so ~10% goes
	after := g.EffectivenessAt(5, 5)

	if after >= before {
		t.Errorf("expected effectiveness to decay: before=%v after=%v", before, after)
	}
}

func TestAdvanceEventuallyZeroesOutEffectiveness(t *testing.T) {
	g := NewGrid(10, 10)
	d := Drop{CenterX: 10, CenterY: 10, RadiusM: 4, Agent: Water}
	d.Apply(g, 2.0)

	for i := 0; i < 100; i++ {
		g.Advance(30)
	}
	if e := g.EffectivenessAt(5, 5); e != 0 {
		t.Errorf("expected effectiveness to reach zero eventually, got %v", e)
	}
}

func TestLineAppliesHighEffectivenessAlongPath(t *testing.T) {
	g := NewGrid(30, 30)
	l := Line{Points: [][2]float64{{0, 10}, {20, 10}}, WidthM: 4}
	l.Apply(g, 1.0)

	if e := g.EffectivenessAt(10, 10); e < lineEffectiveness-1e-9 {
		t.Errorf("expected near-total effectiveness along containment line, got %v", e)
	}
}

func TestLineZeroWidthNoOp(t *testing.T) {
	g := NewGrid(10, 10)
	l := Line{Points: [][2]float64{{0, 0}, {5, 5}}, WidthM: 0}
	l.Apply(g, 1.0)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if g.EffectivenessAt(x, y) != 0 {
				t.Fatalf("expected no effect from a zero-width line at (%d,%d)", x, y)
			}
		}
	}
}

func TestSecondStrongerApplicationOverridesWeaker(t *testing.T) {
	g := NewGrid(10, 10)
	Drop{CenterX: 10, CenterY: 10, RadiusM: 4, Agent: Water}.Apply(g, 2.0)
	weaker := g.EffectivenessAt(5, 5)

	Drop{CenterX: 10, CenterY: 10, RadiusM: 4, Agent: LongTermRetardant}.Apply(g, 2.0)
	stronger := g.EffectivenessAt(5, 5)

	if stronger <= weaker {
		t.Errorf("expected a stronger agent to raise effectiveness: weaker=%v stronger=%v", weaker, stronger)
	}
}
