package sim

import (
	"github.com/blazeforge/ember/elements"
	"github.com/blazeforge/ember/replication"
)

// recordFrame appends either a full keyframe snapshot or an incremental
// delta for the frame just advanced, per spec.md §4.7: snapshots land
// every config.Cfg().Replay.SnapshotIntervalFrames frames, deltas every
// frame in between.
func (s *Simulation) recordFrame() {
	phiQuant := replication.QuantizeField(s.backend.ReadLevelSet())
	elementStates := elementStatesFor(s.arena.Snapshots())

	snapshotEvery := s.snapshotEvery
	if snapshotEvery <= 0 {
		snapshotEvery = 1
	}
	if s.frameNumber%uint32(snapshotEvery) == 0 || s.lastPhiQuant == nil {
		s.recorder.AddSnapshot(replication.Snapshot{
			Frame:         s.frameNumber,
			SimTime:       s.backend.SimTime(),
			PhiField:      append([]int32(nil), phiQuant...),
			ElementStates: elementStates,
		})
	} else {
		dirty := replication.DirtyMask(s.lastPhiQuant, phiQuant, s.dims.W, s.dims.H)
		tilesX := replication.TilesAcross(s.dims.W)
		tilesY := replication.TilesAcross(s.dims.H)

		var patches []replication.TilePatch
		for ty := 0; ty < tilesY; ty++ {
			for tx := 0; tx < tilesX; tx++ {
				if !dirty[ty*tilesX+tx] {
					continue
				}
				patches = append(patches, replication.TilePatch{
					TileIdx:   uint16(ty*tilesX + tx),
					PhiValues: extractTile(phiQuant, s.dims.W, s.dims.H, tx, ty),
				})
			}
		}

		s.recorder.AddDelta(replication.FrameDelta{
			FrameNumber: s.frameNumber,
			Dirty:       replication.EncodeDirtyMaskRLE(dirty),
			Patches:     patches,
			Elements:    elementChangesFor(elementStates),
		})
	}

	s.lastPhiQuant = phiQuant
	s.frameNumber++
}

// extractTile copies the quantised phi values for one TileSize x TileSize
// tile (cropped at the grid edge) out of the full field in row-major
// order.
func extractTile(phiQuant []int32, w, h, tx, ty int) []int32 {
	x0, y0 := tx*replication.TileSize, ty*replication.TileSize
	x1, y1 := x0+replication.TileSize, y0+replication.TileSize
	if x1 > w {
		x1 = w
	}
	if y1 > h {
		y1 = h
	}
	out := make([]int32, 0, (x1-x0)*(y1-y0))
	for y := y0; y < y1; y++ {
		rowBase := y * w
		out = append(out, phiQuant[rowBase+x0:rowBase+x1]...)
	}
	return out
}

func elementStatesFor(snaps []elements.Snapshot) []replication.ElementState {
	out := make([]replication.ElementState, len(snaps))
	for i, snap := range snaps {
		out[i] = replication.ElementState{
			ID:          snap.ID,
			Temperature: int32(snap.TemperatureC * 100),
			Moisture:    uint16(snap.MoistureFraction * 10000),
			IsBurning:   snap.Burning,
		}
	}
	return out
}

func elementChangesFor(states []replication.ElementState) []replication.ElementChange {
	out := make([]replication.ElementChange, len(states))
	for i, st := range states {
		burning := uint8(0)
		if st.IsBurning {
			burning = 1
		}
		out[i] = replication.ElementChange{
			ID:             st.ID,
			TempX100:       st.Temperature,
			MoistureX10000: st.Moisture,
			Burning:        burning,
		}
	}
	return out
}

// SaveReplay writes the accumulated replication recording to path.
func (s *Simulation) SaveReplay(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recorder.Save(path)
}
