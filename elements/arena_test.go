package elements

import "testing"

func TestAddAndGet(t *testing.T) {
	a := NewArena()
	id := a.Add(Position{X: 1, Y: 2}, "eucalypt_trunk", 500, PartTrunk, nil)

	pos, body, thermal, parent, err := a.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("Position = %+v, want {1 2 0}", pos)
	}
	if body.FuelType != "eucalypt_trunk" || body.MassKg != 500 {
		t.Errorf("Body = %+v", body)
	}
	if thermal.MoistureFraction != 0.15 {
		t.Errorf("default MoistureFraction = %v, want 0.15", thermal.MoistureFraction)
	}
	if parent.HasParent {
		t.Error("expected no parent for a root element")
	}
}

func TestAddWithParent(t *testing.T) {
	a := NewArena()
	trunkID := a.Add(Position{}, "trunk", 1000, PartTrunk, nil)
	branchID := a.Add(Position{}, "branch", 10, PartBranch, &trunkID)

	_, _, _, parent, err := a.Get(branchID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !parent.HasParent || parent.ID != trunkID {
		t.Errorf("Parent = %+v, want HasParent=true ID=%d", parent, trunkID)
	}
}

func TestGetUnknownIDErrors(t *testing.T) {
	a := NewArena()
	if _, _, _, _, err := a.Get(999); err == nil {
		t.Error("expected error for an unknown element id")
	}
}

func TestRemoveDropsElement(t *testing.T) {
	a := NewArena()
	id := a.Add(Position{}, "bark", 1, PartBark, nil)
	if err := a.Remove(id); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if a.Count() != 0 {
		t.Errorf("Count() after remove = %d, want 0", a.Count())
	}
	if _, _, _, _, err := a.Get(id); err == nil {
		t.Error("expected Get to fail after Remove")
	}
}

func TestRemoveUnknownIDErrors(t *testing.T) {
	a := NewArena()
	if err := a.Remove(42); err == nil {
		t.Error("expected error removing an unknown element id")
	}
}

func TestSetThermalUpdatesState(t *testing.T) {
	a := NewArena()
	id := a.Add(Position{}, "litter", 2, PartLitter, nil)
	if err := a.SetThermal(id, Thermal{TemperatureC: 400, Burning: true}); err != nil {
		t.Fatalf("SetThermal: %v", err)
	}
	_, _, thermal, _, _ := a.Get(id)
	if thermal.TemperatureC != 400 || !thermal.Burning {
		t.Errorf("Thermal = %+v, want TemperatureC=400 Burning=true", thermal)
	}
}

func TestSnapshotsReflectLiveElements(t *testing.T) {
	a := NewArena()
	id1 := a.Add(Position{}, "trunk", 100, PartTrunk, nil)
	id2 := a.Add(Position{}, "branch", 5, PartBranch, &id1)
	a.SetThermal(id2, Thermal{TemperatureC: 300, Burning: true})

	snaps := a.Snapshots()
	if len(snaps) != 2 {
		t.Fatalf("Snapshots() length = %d, want 2", len(snaps))
	}

	found := false
	for _, s := range snaps {
		if s.ID == id2 {
			found = true
			if !s.Burning || s.TemperatureC != 300 {
				t.Errorf("Snapshot for id2 = %+v, want Burning=true TemperatureC=300", s)
			}
		}
	}
	if !found {
		t.Error("expected a snapshot for id2")
	}
}

func TestWalkToRootFollowsParentChain(t *testing.T) {
	a := NewArena()
	trunkID := a.Add(Position{}, "trunk", 1000, PartTrunk, nil)
	branchID := a.Add(Position{}, "branch", 10, PartBranch, &trunkID)
	barkID := a.Add(Position{}, "bark", 1, PartBark, &branchID)

	chain := a.WalkToRoot(barkID)
	want := []uint32{barkID, branchID, trunkID}
	if len(chain) != len(want) {
		t.Fatalf("WalkToRoot chain = %v, want %v", chain, want)
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Errorf("chain[%d] = %d, want %d", i, chain[i], want[i])
		}
	}
}

func TestWalkToRootStopsOnBrokenLink(t *testing.T) {
	a := NewArena()
	ghostParent := uint32(9999)
	id := a.Add(Position{}, "branch", 5, PartBranch, &ghostParent)

	chain := a.WalkToRoot(id)
	if len(chain) != 1 || chain[0] != id {
		t.Errorf("WalkToRoot with a dangling parent = %v, want [%d]", chain, id)
	}
}
