// Package replication frames the field solver's state for network
// replication and on-disk replay, per spec.md §4.7. Anything crossing a
// host boundary goes through fixed-point phi quantisation so that two
// hosts with different floating-point units reach bit-identical state;
// the solver's internal floating-point representation never leaves this
// package.
package replication

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/blazeforge/ember/simerr"
)

// FileVersion is incremented whenever the replay container layout
// changes in an incompatible way.
const FileVersion = 1

// Metadata describes a replay file independent of its frame payload.
type Metadata struct {
	Version         int       `json:"version"`
	ScenarioName    string    `json:"scenario_name"`
	DurationSeconds float64   `json:"duration_seconds"`
	TotalFrames     uint32    `json:"total_frames"`
	RecordedAt      time.Time `json:"recorded_at"`
	TerrainWidth    float64   `json:"terrain_width"`
	TerrainHeight   float64   `json:"terrain_height"`
}

// ElementState is a fuel element's replicated state at a snapshot frame.
type ElementState struct {
	ID          uint32 `json:"id"`
	Temperature int32  `json:"temperature"`      // celsius x100
	Moisture    uint16 `json:"moisture"`         // fraction x10000
	IsBurning   bool   `json:"is_burning"`
}

// Snapshot is a full keyframe of the field solver's state.
type Snapshot struct {
	Frame         uint32         `json:"frame"`
	SimTime       float64        `json:"sim_time"`
	PhiField      []int32        `json:"phi_field"`
	ElementStates []ElementState `json:"element_states"`
	WindField     [][2]float32   `json:"wind_field,omitempty"`
}

// File is the in-memory form of a replay container: one set of metadata,
// a sparse sequence of full keyframe snapshots, and the deltas recorded
// between them.
type File struct {
	Metadata  Metadata
	Snapshots []Snapshot
	Deltas    []FrameDelta
}

// New starts an empty replay file for the named scenario.
func New(scenarioName string, terrainWidth, terrainHeight float64, recordedAt time.Time) *File {
	return &File{
		Metadata: Metadata{
			Version:       FileVersion,
			ScenarioName:  scenarioName,
			RecordedAt:    recordedAt,
			TerrainWidth:  terrainWidth,
			TerrainHeight: terrainHeight,
		},
	}
}

// AddSnapshot appends a keyframe and advances the file's recorded frame
// count and duration.
func (f *File) AddSnapshot(s Snapshot) {
	f.Metadata.TotalFrames = s.Frame
	f.Metadata.DurationSeconds = s.SimTime
	f.Snapshots = append(f.Snapshots, s)
}

// AddDelta appends an incremental frame delta.
func (f *File) AddDelta(d FrameDelta) {
	f.Deltas = append(f.Deltas, d)
}

// SnapshotAtFrame returns the latest snapshot at or before frame, or
// false if the file has no snapshot that old.
func (f *File) SnapshotAtFrame(frame uint32) (Snapshot, bool) {
	for i := len(f.Snapshots) - 1; i >= 0; i-- {
		if f.Snapshots[i].Frame <= frame {
			return f.Snapshots[i], true
		}
	}
	return Snapshot{}, false
}

// DeltasBetween returns every delta with a frame number in [start, end].
func (f *File) DeltasBetween(start, end uint32) []FrameDelta {
	var out []FrameDelta
	for _, d := range f.Deltas {
		if d.FrameNumber >= start && d.FrameNumber <= end {
			out = append(out, d)
		}
	}
	return out
}

type fileBody struct {
	Metadata  Metadata     `json:"metadata"`
	Snapshots []Snapshot   `json:"snapshots"`
	Deltas    []FrameDelta `json:"deltas"`
}

// Save writes the replay as zstd-compressed JSON at the given path,
// using zstd level 9, a high level, since replay files are written once
// and read many times.
func (f *File) Save(path string) error {
	body := fileBody{Metadata: f.Metadata, Snapshots: f.Snapshots, Deltas: f.Deltas}
	raw, err := json.Marshal(body)
	if err != nil {
		return simerr.Wrap(simerr.IOError, "marshal replay file", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(9)))
	if err != nil {
		return simerr.Wrap(simerr.IOError, "create zstd encoder", err)
	}
	compressed := enc.EncodeAll(raw, nil)
	if err := enc.Close(); err != nil {
		return simerr.Wrap(simerr.IOError, "close zstd encoder", err)
	}

	if err := os.WriteFile(path, compressed, 0644); err != nil {
		return simerr.Wrap(simerr.IOError, "write replay file", err)
	}
	return nil
}

// Load reads and decompresses a replay file written by Save.
func Load(path string) (*File, error) {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return nil, simerr.Wrap(simerr.IOError, "read replay file", err)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, simerr.Wrap(simerr.IOError, "create zstd decoder", err)
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, simerr.Wrap(simerr.IOError, "decompress replay file", err)
	}

	var body fileBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, simerr.Wrap(simerr.IOError, "unmarshal replay file", err)
	}

	return &File{Metadata: body.Metadata, Snapshots: body.Snapshots, Deltas: body.Deltas}, nil
}

// EncodeDeltaFrame zstd-compresses one delta at level 3, the fast level
// spec.md §4.7 calls for on the hot recording path (as opposed to the
// level-9 whole-file compression Save uses once at the end of a run).
func EncodeDeltaFrame(d FrameDelta) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, simerr.Wrap(simerr.IOError, "create zstd encoder", err)
	}
	defer enc.Close()
	return enc.EncodeAll(EncodeFrameDelta(d), nil), nil
}

// DecodeDeltaFrame reverses EncodeDeltaFrame.
func DecodeDeltaFrame(compressed []byte) (FrameDelta, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return FrameDelta{}, simerr.Wrap(simerr.IOError, "create zstd decoder", err)
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return FrameDelta{}, simerr.Wrap(simerr.IOError, "decompress delta frame", err)
	}
	d, err := DecodeFrameDelta(raw)
	if err != nil {
		return FrameDelta{}, fmt.Errorf("decode delta frame: %w", err)
	}
	return d, nil
}
