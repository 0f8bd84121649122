package sim

import "github.com/blazeforge/ember/physics"

// Diagnostics bundles the per-tick detector outputs that don't drive the
// solver directly but are worth surfacing to an observer (telemetry,
// a debug overlay): lee-slope vorticity-driven lateral spread and
// fire-front junction zones, per spec.md §4.2 and §4.5.
type Diagnostics struct {
	VLS           physics.VLSResult
	JunctionZones []physics.JunctionZone
}

// Diagnostics returns a copy of the last computed diagnostics snapshot.
func (s *Simulation) Diagnostics() Diagnostics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.diagnosticsCache
}

// stepDiagnostics runs the VLS and junction-zone detectors once per tick.
// VLS is evaluated at the fire's front centroid rather than per-cell: a
// single representative slope/aspect/wind sample is enough to flag the
// lee-slope condition without scanning the whole grid every tick.
func (s *Simulation) stepDiagnostics(centroidX, centroidY float64) {
	slope := s.terrainSlopeAt(centroidX, centroidY)
	tw, th, cellSize := s.terrain.Dimensions()
	aspect := 0.0
	if cellSize > 0 {
		gx := clampInt(int(centroidX/cellSize), 0, tw-1)
		gy := clampInt(int(centroidY/cellSize), 0, th-1)
		aspect = s.terrain.AspectAtHorn(gx, gy)
	}
	windDirTo := s.weather.WindDirectionDeg + 180

	vls := physics.DetectVLS(slope, aspect, windDirTo, s.weather.WindSpeedMPS)

	phi := s.backend.ReadLevelSet()
	ros := s.backend.ReadROS()
	zones := physics.DetectJunctionZones(phi, ros, s.dims.W, s.dims.H, s.dims.Dx)

	s.diagnosticsCache = Diagnostics{VLS: vls, JunctionZones: zones}
}
