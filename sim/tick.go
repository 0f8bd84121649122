package sim

import (
	"github.com/blazeforge/ember/atmosphere"
	"github.com/blazeforge/ember/front"
	"github.com/blazeforge/ember/units"
)

// Stats is a snapshot of scalar run state, refreshed once per tick and
// cheap to read under the shared lock.
type Stats struct {
	SimTimeSeconds float64
	BurningCells   int
	BurnedAreaM2   float64
	FuelConsumedKg float64
	FrontVertices  int
	ActivePyroCb   int
	EmberCount     int
	FireRegime     string

	// Cumulative event counters, incremented at each log call site
	// (IgniteAt, tryIgniteChild, stepAtmosphere, suppression.go,
	// stepSpotting). A telemetry collector derives per-window counts by
	// diffing these against the values it saw at the previous flush,
	// rather than the simulation driver depending on package telemetry.
	TotalIgnitions            uint64
	TotalCrownFireTransitions uint64
	TotalPyroCbFormations     uint64
	TotalPyroCbCollapses      uint64
	TotalSuppressionDrops     uint64
	TotalSpotFireIgnitions    uint64
}

// FrontVertex mirrors front.Vertex for external consumption, keeping
// package front's marching-squares internals out of sim's public API.
type FrontVertex struct {
	X, Y         float64
	NormalX      float64
	NormalY      float64
	SpreadVel    float64
	IntensityKWm float64
	Curvature    float64
}

// Tick advances the simulation by dt seconds, running the fixed
// composition order from spec.md §4.8:
//  1. weather + turbulent wind
//  2. field solver tick (heat transfer, combustion, moisture, ROS
//     refresh, suppression attenuation, level-set, ignition sync --
//     all internal to field.Field.Tick)
//  3. discrete fuel-element propagation (Rothermel/Van Wagner)
//  4. front extraction and kinematics annotation
//  5. fire-power aggregation, pyroCb/downdraft advance
//  6. ember spotting and landing ignition
//  7. suppression grid decay
//  8. replication recording
func (s *Simulation) Tick(dt float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	simTime := s.backend.SimTime()

	s.stepWeather(simTime)
	s.buildWindField(&s.wind, simTime)
	if err := s.backend.SetWindField(s.wind.x, s.wind.y); err != nil {
		return err
	}
	s.backend.SetAmbientTemperature(float64(units.Celsius(s.weather.TemperatureC).ToKelvin()))

	if err := s.backend.Tick(dt, s.weather.RelHumidityPct); err != nil {
		return err
	}

	s.stepElements(dt)

	poly := front.Extract(s.backend.ReadLevelSet(), s.dims.W, s.dims.H, s.dims.Dx)
	front.AnnotateKinematics(&poly, s.backend, s.dims.Dx)
	s.cacheFront(poly)

	s.stepAtmosphere(poly, dt, simTime)
	s.stepSpotting(poly, dt)

	if len(poly.Vertices) > 0 {
		var cx, cy float64
		for _, v := range poly.Vertices {
			cx += v.X
			cy += v.Y
		}
		n := float64(len(poly.Vertices))
		s.stepDiagnostics(cx/n, cy/n)
	}

	s.suppression.Advance(dt)

	s.recordFrame()

	s.refreshStats(poly)
	return nil
}

// cacheFront converts the extracted polyline into the public FrontVertex
// representation and stores it for FireFront readers.
func (s *Simulation) cacheFront(poly front.Polyline) {
	verts := make([]FrontVertex, len(poly.Vertices))
	for i, v := range poly.Vertices {
		verts[i] = FrontVertex{
			X: v.X, Y: v.Y,
			NormalX: v.NormalX, NormalY: v.NormalY,
			SpreadVel: v.SpreadVel, IntensityKWm: v.IntensityKWm,
			Curvature: v.Curvature,
		}
	}
	s.frontCache = fireFrontCache{vertices: verts, starts: poly.FrontStarts}
}

// stepAtmosphere aggregates total fire power and centroid from the front
// polyline, advances the convection column and pyroCb/downdraft system,
// per spec.md §4.6.
func (s *Simulation) stepAtmosphere(poly front.Polyline, dt, simTime float64) {
	if len(poly.Vertices) == 0 {
		s.pyroCb.Advance(simTime, dt, float64(units.Celsius(s.weather.TemperatureC).ToKelvin()))
		return
	}

	var sumX, sumY, sumIntensity float64
	for _, v := range poly.Vertices {
		sumX += v.X
		sumY += v.Y
		sumIntensity += v.IntensityKWm
	}
	n := float64(len(poly.Vertices))
	cx, cy := sumX/n, sumY/n
	meanIntensity := sumIntensity / n
	fireLength := n * s.dims.Dx

	ambientK := float64(units.Celsius(s.weather.TemperatureC).ToKelvin())
	col := atmosphere.NewConvectionColumn(cx, cy, meanIntensity, fireLength, ambientK, s.weather.WindSpeedMPS)
	if ev := s.pyroCb.CheckFormation(col, s.weather.HainesIndex, simTime); ev != nil {
		s.counters.pyroCbFormations++
		s.log.Info("pyrocb_formed", "x", ev.PositionX, "y", ev.PositionY, "sim_time", simTime)
	}
	before := len(s.pyroCb.ActiveEvents())
	s.pyroCb.Advance(simTime, dt, ambientK)
	if after := len(s.pyroCb.ActiveEvents()); after < before {
		s.counters.pyroCbCollapses += uint64(before - after)
		s.log.Info("pyrocb_collapsed", "sim_time", simTime, "active_before", before, "active_after", after)
	}
}

// refreshStats recomputes the cached scalar stats snapshot.
func (s *Simulation) refreshStats(poly front.Polyline) {
	s.statsCache = Stats{
		SimTimeSeconds: s.backend.SimTime(),
		BurningCells:   s.backend.BurningCells(),
		BurnedAreaM2:   s.backend.BurnedArea(),
		FuelConsumedKg: s.backend.FuelConsumed(),
		FrontVertices:  len(poly.Vertices),
		ActivePyroCb:   len(s.pyroCb.ActiveEvents()),
		EmberCount:     s.embers.Count(),

		TotalIgnitions:            s.counters.ignitions,
		TotalCrownFireTransitions: s.counters.crownFireTransitions,
		TotalPyroCbFormations:     s.counters.pyroCbFormations,
		TotalPyroCbCollapses:      s.counters.pyroCbCollapses,
		TotalSuppressionDrops:     s.counters.suppressionDrops,
		TotalSpotFireIgnitions:    s.counters.spotFireIgnitions,
	}
}

// Stats returns a copy of the last computed scalar stats snapshot.
func (s *Simulation) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statsCache
}

// FireFront returns a copy of the last extracted front, as flat vertices
// plus the starting index of each disjoint front loop.
func (s *Simulation) FireFront() ([]FrontVertex, []int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	verts := make([]FrontVertex, len(s.frontCache.vertices))
	copy(verts, s.frontCache.vertices)
	starts := make([]int, len(s.frontCache.starts))
	copy(starts, s.frontCache.starts)
	return verts, starts
}
