package replication

import (
	"testing"
	"time"
)

func testFile() *File {
	f := New("s", 1, 1, time.Unix(0, 0))
	f.AddSnapshot(Snapshot{Frame: 0})
	f.AddSnapshot(Snapshot{Frame: 10})
	f.AddSnapshot(Snapshot{Frame: 20})
	return f
}

func TestPlayerStepToFrameClampsToTotal(t *testing.T) {
	p := NewPlayer(testFile())
	s, ok := p.StepToFrame(1000)
	if !ok || s.Frame != 20 {
		t.Errorf("StepToFrame(1000) = %+v, %v, want clamped to frame 20", s, ok)
	}
	if p.CurrentFrame() != 20 {
		t.Errorf("CurrentFrame() = %d, want 20", p.CurrentFrame())
	}
}

func TestPlayerStepForwardBackward(t *testing.T) {
	p := NewPlayer(testFile())
	p.StepToFrame(10)

	s, ok := p.StepForward()
	if !ok || s.Frame != 10 || p.CurrentFrame() != 11 {
		t.Errorf("StepForward() = %+v, %v, frame %d", s, ok, p.CurrentFrame())
	}

	p.StepToFrame(0)
	_, ok = p.StepBackward()
	if ok {
		t.Error("expected StepBackward to fail at frame 0")
	}
}

func TestPlayerStepForwardStopsAtEnd(t *testing.T) {
	p := NewPlayer(testFile())
	p.StepToFrame(20)
	if _, ok := p.StepForward(); ok {
		t.Error("expected StepForward to fail past the last frame")
	}
}

func TestPlayerSpeedClamped(t *testing.T) {
	p := NewPlayer(testFile())
	p.SetSpeed(50)
	if p.Speed() != 10 {
		t.Errorf("Speed() = %v, want clamped to 10", p.Speed())
	}
	p.SetSpeed(-5)
	if p.Speed() != 0.1 {
		t.Errorf("Speed() = %v, want clamped to 0.1", p.Speed())
	}
}

func TestPlayerPauseResumeReset(t *testing.T) {
	p := NewPlayer(testFile())
	p.StepToFrame(15)
	p.Pause()
	if !p.IsPaused() {
		t.Error("expected player to be paused")
	}
	p.Resume()
	if p.IsPaused() {
		t.Error("expected player to be resumed")
	}
	p.Reset()
	if p.CurrentFrame() != 0 || p.IsPaused() {
		t.Errorf("Reset() left frame=%d paused=%v, want 0/false", p.CurrentFrame(), p.IsPaused())
	}
}
