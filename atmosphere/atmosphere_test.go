package atmosphere

import "testing"

func TestNewConvectionColumnPlumeHeightPositive(t *testing.T) {
	col := NewConvectionColumn(0, 0, 50000, 500, 300, 5)
	if col.PlumeHeightM <= 0 {
		t.Errorf("expected positive plume height, got %v", col.PlumeHeightM)
	}
	if col.UpdraftMPS <= 0 {
		t.Errorf("expected positive updraft, got %v", col.UpdraftMPS)
	}
}

func TestConvectionColumnEntrainmentZeroInsideBase(t *testing.T) {
	col := NewConvectionColumn(0, 0, 50000, 500, 300, 5)
	if e := col.EntrainmentAt(col.BaseRadiusM / 2); e != 0 {
		t.Errorf("entrainment inside base radius = %v, want 0", e)
	}
}

func TestPyroCbSystemFormsEventWhenThresholdsMet(t *testing.T) {
	sys := NewPyroCbSystem(5e9)
	col := NewConvectionColumn(0, 0, 100000, 2000, 300, 10)
	col.PlumeHeightM = 10000
	col.IntensityKWm = 60000

	e := sys.CheckFormation(col, 6, 0)
	if e == nil {
		t.Fatal("expected pyroCb event to form when all gates pass")
	}
	if len(sys.ActiveEvents()) != 1 {
		t.Errorf("expected 1 active event, got %d", len(sys.ActiveEvents()))
	}
}

func TestPyroCbSystemRejectsBelowThreshold(t *testing.T) {
	sys := NewPyroCbSystem(5e9)
	col := NewConvectionColumn(0, 0, 1000, 50, 300, 10)
	e := sys.CheckFormation(col, 2, 0)
	if e != nil {
		t.Error("expected no event when thresholds are not met")
	}
}

func TestPyroCbSystemRejectsWithinExclusionRadius(t *testing.T) {
	sys := NewPyroCbSystem(5e9)
	col := NewConvectionColumn(0, 0, 100000, 2000, 300, 10)
	col.PlumeHeightM = 10000
	col.IntensityKWm = 60000

	first := sys.CheckFormation(col, 6, 0)
	if first == nil {
		t.Fatal("expected first event to form")
	}

	nearCol := col
	nearCol.PositionX = 1000 // within 5km exclusion radius
	second := sys.CheckFormation(nearCol, 6, 10)
	if second != nil {
		t.Error("expected no second event within the exclusion radius")
	}
}

func TestPyroCbSystemMaturesAndCollapses(t *testing.T) {
	sys := NewPyroCbSystem(5e9)
	col := NewConvectionColumn(0, 0, 100000, 2000, 300, 10)
	col.PlumeHeightM = 10000
	col.IntensityKWm = 60000
	sys.CheckFormation(col, 6, 0)

	sys.Advance(1799, 1799, 300)
	if sys.events[0].State != EventMaturing {
		t.Fatal("event should still be maturing just before the threshold")
	}

	sys.Advance(1801, 2, 300)
	if sys.events[0].State != EventCollapsing {
		t.Fatal("event should start collapsing once matured")
	}
	if sys.events[0].Downdraft == nil {
		t.Fatal("expected a downdraft to be spawned on collapse")
	}
}

func TestPyroCbSystemRetiresDissipatedEvents(t *testing.T) {
	sys := NewPyroCbSystem(5e9)
	col := NewConvectionColumn(0, 0, 100000, 2000, 300, 10)
	col.PlumeHeightM = 10000
	col.IntensityKWm = 60000
	sys.CheckFormation(col, 6, 0)

	sys.Advance(1801, 1801, 300) // triggers collapse
	sys.Advance(3000, downdraftLifetimeSeconds+100, 300)

	if len(sys.ActiveEvents()) != 0 {
		t.Errorf("expected event to retire after downdraft dissipates, got %d active", len(sys.ActiveEvents()))
	}
}

func TestDowndraftWindModificationDecaysWithDistance(t *testing.T) {
	d := NewDowndraft(0, 0, 300)
	near := magnitudeAt(d, 100, 0)
	far := magnitudeAt(d, 2000, 0)
	if far >= near {
		t.Errorf("expected wind modification to fall off with distance: near=%v far=%v", near, far)
	}
}

func TestDowndraftDissipatesAfterLifetime(t *testing.T) {
	d := NewDowndraft(0, 0, 300)
	d.Advance(downdraftLifetimeSeconds + 1)
	if !d.Dissipated() {
		t.Error("expected downdraft to be dissipated past its lifetime")
	}
	wx, wy := d.WindModificationAt(100, 0)
	if wx != 0 || wy != 0 {
		t.Error("dissipated downdraft should contribute zero wind modification")
	}
}

func magnitudeAt(d *Downdraft, x, y float64) float64 {
	wx, wy := d.WindModificationAt(x, y)
	return wx*wx + wy*wy
}
