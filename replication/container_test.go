package replication

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFileAddSnapshotUpdatesMetadata(t *testing.T) {
	f := New("test scenario", 1000, 1000, time.Unix(0, 0))
	f.AddSnapshot(Snapshot{Frame: 100, SimTime: 10})

	if f.Metadata.TotalFrames != 100 {
		t.Errorf("TotalFrames = %d, want 100", f.Metadata.TotalFrames)
	}
	if f.Metadata.DurationSeconds != 10 {
		t.Errorf("DurationSeconds = %v, want 10", f.Metadata.DurationSeconds)
	}
}

func TestSnapshotAtFrameFindsLatestAtOrBefore(t *testing.T) {
	f := New("s", 1, 1, time.Unix(0, 0))
	f.AddSnapshot(Snapshot{Frame: 10})
	f.AddSnapshot(Snapshot{Frame: 50})
	f.AddSnapshot(Snapshot{Frame: 100})

	s, ok := f.SnapshotAtFrame(75)
	if !ok || s.Frame != 50 {
		t.Errorf("SnapshotAtFrame(75) = %+v, %v, want frame 50", s, ok)
	}

	_, ok = f.SnapshotAtFrame(5)
	if ok {
		t.Error("expected no snapshot before the first recorded frame")
	}
}

func TestDeltasBetweenFiltersByFrameRange(t *testing.T) {
	f := New("s", 1, 1, time.Unix(0, 0))
	f.AddDelta(FrameDelta{FrameNumber: 1})
	f.AddDelta(FrameDelta{FrameNumber: 5})
	f.AddDelta(FrameDelta{FrameNumber: 10})

	got := f.DeltasBetween(2, 9)
	if len(got) != 1 || got[0].FrameNumber != 5 {
		t.Errorf("DeltasBetween(2,9) = %+v, want single delta at frame 5", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	f := New("round trip", 2048, 2048, time.Unix(1700000000, 0))
	f.AddSnapshot(Snapshot{
		Frame:    50,
		SimTime:  5,
		PhiField: []int32{1000, 2000, 3000},
		ElementStates: []ElementState{
			{ID: 1, Temperature: 60000, Moisture: 500, IsBurning: true},
		},
	})
	f.AddDelta(FrameDelta{FrameNumber: 51, Elements: []ElementChange{{ID: 1, TempX100: 61000}}})

	path := filepath.Join(t.TempDir(), "test.bin")
	if err := f.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Metadata.ScenarioName != "round trip" {
		t.Errorf("ScenarioName = %q, want %q", loaded.Metadata.ScenarioName, "round trip")
	}
	if len(loaded.Snapshots) != 1 || loaded.Snapshots[0].Frame != 50 {
		t.Errorf("Snapshots = %+v, want one snapshot at frame 50", loaded.Snapshots)
	}
	if len(loaded.Deltas) != 1 || loaded.Deltas[0].FrameNumber != 51 {
		t.Errorf("Deltas = %+v, want one delta at frame 51", loaded.Deltas)
	}
}

func TestEncodeDecodeDeltaFrameRoundTrip(t *testing.T) {
	d := FrameDelta{FrameNumber: 7, Elements: []ElementChange{{ID: 3, TempX100: 12345, Burning: 1}}}

	compressed, err := EncodeDeltaFrame(d)
	if err != nil {
		t.Fatalf("EncodeDeltaFrame: %v", err)
	}
	back, err := DecodeDeltaFrame(compressed)
	if err != nil {
		t.Fatalf("DecodeDeltaFrame: %v", err)
	}
	if back.FrameNumber != d.FrameNumber || len(back.Elements) != 1 || back.Elements[0].ID != 3 {
		t.Errorf("round trip = %+v, want %+v", back, d)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.bin")); err == nil {
		t.Error("expected error loading a missing replay file")
	}
}
