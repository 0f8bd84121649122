package replication

import (
	"reflect"
	"testing"
)

func TestTilesAcrossRoundsUp(t *testing.T) {
	if got := TilesAcross(128); got != 2 {
		t.Errorf("TilesAcross(128) = %d, want 2", got)
	}
	if got := TilesAcross(130); got != 3 {
		t.Errorf("TilesAcross(130) = %d, want 3", got)
	}
}

func TestDirtyMaskDetectsChangedTile(t *testing.T) {
	w, h := 128, 64
	prev := make([]int32, w*h)
	cur := make([]int32, w*h)
	cur[0] = 5 // inside tile (0,0)

	dirty := DirtyMask(prev, cur, w, h)
	tilesX := TilesAcross(w)
	if !dirty[0] {
		t.Error("expected tile (0,0) to be dirty")
	}
	for i := 1; i < len(dirty); i++ {
		if dirty[i] {
			t.Errorf("tile %d unexpectedly dirty", i)
		}
	}
	if len(dirty) != tilesX*TilesAcross(h) {
		t.Errorf("dirty mask length = %d, want %d", len(dirty), tilesX*TilesAcross(h))
	}
}

func TestDirtyMaskRLERoundTrip(t *testing.T) {
	dirty := []bool{false, false, false, true, true, false, true, true, true}
	runs := EncodeDirtyMaskRLE(dirty)

	back, err := DecodeDirtyMaskRLE(runs, len(dirty))
	if err != nil {
		t.Fatalf("DecodeDirtyMaskRLE: %v", err)
	}
	if !reflect.DeepEqual(back, dirty) {
		t.Errorf("round trip = %v, want %v", back, dirty)
	}
}

func TestDirtyMaskRLEWrongTotalTilesErrors(t *testing.T) {
	runs := EncodeDirtyMaskRLE([]bool{true, true, false})
	if _, err := DecodeDirtyMaskRLE(runs, 10); err == nil {
		t.Error("expected error when decoded tile count mismatches totalTiles")
	}
}

func TestEncodeDecodeFrameDeltaRoundTrip(t *testing.T) {
	d := FrameDelta{
		FrameNumber: 42,
		Dirty: []DirtyMaskRun{
			{Value: 0, RunLength: 3},
			{Value: 1, RunLength: 2},
		},
		Patches: []TilePatch{
			{TileIdx: 5, PhiValues: []int32{-100, 0, 250}},
			{TileIdx: 9, PhiValues: []int32{1}},
		},
		Elements: []ElementChange{
			{ID: 7, TempX100: 45000, MoistureX10000: 1200, Burning: 1},
			{ID: 8, TempX100: 29800, MoistureX10000: 5000, Burning: 0},
		},
	}

	buf := EncodeFrameDelta(d)
	back, err := DecodeFrameDelta(buf)
	if err != nil {
		t.Fatalf("DecodeFrameDelta: %v", err)
	}
	if !reflect.DeepEqual(back, d) {
		t.Errorf("round trip = %+v, want %+v", back, d)
	}
}

func TestEncodeFrameDeltaEmpty(t *testing.T) {
	d := FrameDelta{FrameNumber: 1}
	buf := EncodeFrameDelta(d)
	back, err := DecodeFrameDelta(buf)
	if err != nil {
		t.Fatalf("DecodeFrameDelta: %v", err)
	}
	if back.FrameNumber != 1 || len(back.Dirty) != 0 || len(back.Patches) != 0 || len(back.Elements) != 0 {
		t.Errorf("expected empty delta fields, got %+v", back)
	}
}

func TestDecodeFrameDeltaTruncatedBuffer(t *testing.T) {
	if _, err := DecodeFrameDelta([]byte{1, 2, 3}); err == nil {
		t.Error("expected error decoding a truncated buffer")
	}
}
