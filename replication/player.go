package replication

// Player is a replay playback state machine over a loaded File: step to
// a frame, advance/rewind one frame at a time, and track speed/pause
// state for a UI driving the playback clock.
type Player struct {
	file   *File
	frame  uint32
	speed  float64
	paused bool
}

// NewPlayer starts a player at frame 0, unpaused, at 1x speed.
func NewPlayer(file *File) *Player {
	return &Player{file: file, speed: 1.0}
}

// StepToFrame jumps to frame (clamped to the file's total frame count)
// and returns the latest snapshot at or before it.
func (p *Player) StepToFrame(frame uint32) (Snapshot, bool) {
	if frame > p.file.Metadata.TotalFrames {
		frame = p.file.Metadata.TotalFrames
	}
	p.frame = frame
	return p.file.SnapshotAtFrame(p.frame)
}

// StepForward advances one frame, returning false if already at the end.
func (p *Player) StepForward() (Snapshot, bool) {
	if p.frame >= p.file.Metadata.TotalFrames {
		return Snapshot{}, false
	}
	p.frame++
	return p.file.SnapshotAtFrame(p.frame)
}

// StepBackward retreats one frame, returning false if already at frame 0.
func (p *Player) StepBackward() (Snapshot, bool) {
	if p.frame == 0 {
		return Snapshot{}, false
	}
	p.frame--
	return p.file.SnapshotAtFrame(p.frame)
}

// CurrentFrame returns the player's current frame number.
func (p *Player) CurrentFrame() uint32 { return p.frame }

// TotalFrames returns the underlying file's total frame count.
func (p *Player) TotalFrames() uint32 { return p.file.Metadata.TotalFrames }

// SetSpeed clamps speed to [0.1, 10] per spec.md §4.7.
func (p *Player) SetSpeed(speed float64) {
	if speed < 0.1 {
		speed = 0.1
	}
	if speed > 10 {
		speed = 10
	}
	p.speed = speed
}

// Speed returns the current playback speed multiplier.
func (p *Player) Speed() float64 { return p.speed }

// Pause halts playback without resetting position.
func (p *Player) Pause() { p.paused = true }

// Resume continues playback from the current position.
func (p *Player) Resume() { p.paused = false }

// IsPaused reports the player's pause state.
func (p *Player) IsPaused() bool { return p.paused }

// Reset returns the player to frame 0, unpaused.
func (p *Player) Reset() {
	p.frame = 0
	p.paused = false
}
