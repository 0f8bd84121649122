// Package sim implements the simulation driver: the single owning object
// that wires together the field solver, weather, ember pool, pyroCb
// system, suppression grid, discrete-element arena and replication
// recorder into the one-tick-at-a-time contract external callers see,
// per spec.md §4.8 and §6. It plays the role game.Game plays in the
// reference codebase: the reference keeps one struct that owns the ECS
// world, spatial grid, brains and telemetry collector behind methods
// called once per frame by main.go; Simulation owns the analogous
// wildfire state behind methods called once per tick by an FFI host.
package sim

import (
	"log/slog"
	"sync"
	"time"

	"github.com/blazeforge/ember/atmosphere"
	"github.com/blazeforge/ember/config"
	"github.com/blazeforge/ember/elements"
	"github.com/blazeforge/ember/ember"
	"github.com/blazeforge/ember/field"
	"github.com/blazeforge/ember/fuel"
	"github.com/blazeforge/ember/noise"
	"github.com/blazeforge/ember/replication"
	"github.com/blazeforge/ember/simerr"
	"github.com/blazeforge/ember/suppression"
	"github.com/blazeforge/ember/terrain"
	"github.com/blazeforge/ember/units"
)

// Simulation is the external-facing driver, held behind a reader-writer
// lock per spec.md §5 so many concurrent reads (stats, field reads, front
// queries) can proceed alongside the one writer that advances a tick.
type Simulation struct {
	mu sync.RWMutex

	terrain *terrain.Terrain
	backend *field.Field
	dims    field.Dimensions

	weather       weatherState
	weatherSeries *weatherSeriesSource

	windTurbulence *noise.Field

	embers *ember.Pool
	pyroCb *atmosphere.PyroCbSystem

	suppression *suppression.Grid

	arena *elements.Arena

	recorder      *replication.File
	lastPhiQuant  []int32
	frameNumber   uint32
	snapshotEvery int

	wind windBuffers

	frontCache       fireFrontCache
	statsCache       Stats
	diagnosticsCache Diagnostics
	log              *slog.Logger

	scenarioName string

	counters eventCounters
}

// eventCounters accumulates cumulative counts of notable events into
// Stats, letting a telemetry collector derive per-window counts by
// diffing rather than the simulation driver importing package telemetry.
type eventCounters struct {
	ignitions            uint64
	crownFireTransitions uint64
	pyroCbFormations     uint64
	pyroCbCollapses      uint64
	suppressionDrops     uint64
	spotFireIgnitions    uint64
}

// fireFrontCache holds the last extracted front, recomputed once per
// tick and served to every concurrent reader until the next tick.
type fireFrontCache struct {
	vertices []FrontVertex
	starts   []int
}

// New constructs a simulation over terr at the given quality tier. The
// field grid resolution comes from quality (spec.md §6); terr supplies
// the physical extent and elevation sampled onto that grid.
func New(terr *terrain.Terrain, quality config.Quality, scenarioName string, ambientTempC units.Celsius) (*Simulation, error) {
	if terr == nil {
		return nil, simerr.New(simerr.InvalidInput, "new simulation: terrain must not be nil")
	}

	cfg := config.Cfg()

	w, h := quality.GridResolution()
	tw, th, tcell := terr.Dimensions()
	terrainWidthM := float64(tw) * tcell
	terrainHeightM := float64(th) * tcell
	if terrainWidthM <= 0 || terrainHeightM <= 0 {
		return nil, simerr.New(simerr.InvalidInput, "new simulation: terrain has zero extent")
	}
	dx := terrainWidthM / float64(w)

	fieldCfg := field.Config{
		CurvatureCoeff:      cfg.LevelSet.CurvatureCoeff,
		NoiseAmplitude:      cfg.Noise.Amplitude,
		SelfHeatingFraction: cfg.Combustion.SelfHeatingFraction,
		FuelNoiseSeed:       cfg.Noise.Seed,
		FuelNoiseScale:      cfg.Noise.SpatialHz,
	}

	defaultFuel, ok := fuel.Standard(fuel.DryGrass)
	if !ok {
		return nil, simerr.New(simerr.InvalidInput, "new simulation: default fuel model not registered")
	}

	ambientK := ambientTempC.ToKelvin()
	backend, err := field.New(field.Dimensions{W: w, H: h, Dx: dx}, fieldCfg, defaultFuel, fuel.Uniform(0.3), float64(ambientK))
	if err != nil {
		return nil, err
	}

	elev := make([]float64, w*h)
	for gy := 0; gy < h; gy++ {
		for gx := 0; gx < w; gx++ {
			elev[gy*w+gx] = terr.ElevationAt((float64(gx)+0.5)*dx, (float64(gy)+0.5)*dx)
		}
	}
	if err := backend.SetElevationField(elev); err != nil {
		return nil, err
	}

	s := &Simulation{
		terrain:        terr,
		backend:        backend,
		dims:           backend.Dimensions(),
		weather:        weatherState{TemperatureC: float64(ambientTempC), RelHumidityPct: 40, HainesIndex: 4},
		windTurbulence: noise.New(noise.DeriveSeed(cfg.TurbulentWind.Seed, noise.SeedPrimeWindTurbulence)),
		embers:         ember.NewPool(cfg.Ember.PoolCapacity, cfg.Ember.ScatterSeed),
		pyroCb:         atmosphere.NewPyroCbSystem(cfg.PyroCb.DetectionThresholdGW * 1e9),
		suppression:    suppression.NewGrid(w, h),
		arena:          elements.NewArena(),
		recorder:       replication.New(scenarioName, terrainWidthM, terrainHeightM, time.Now()),
		snapshotEvery:  cfg.Replay.SnapshotIntervalFrames,
		log:            slog.Default().With("component", "sim"),
		scenarioName:   scenarioName,
	}
	backend.SetSuppressionHook(s.suppression.Attenuate)

	return s, nil
}

// IgniteAt seeds a burning disk of the given radius (meters) centered at
// world coordinates (x,y).
func (s *Simulation) IgniteAt(x, y float64, radius units.Meters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backend.IgniteAt(x, y, float64(radius))
	s.counters.ignitions++
	s.log.Info("ignition", "x", x, "y", y, "radius_m", float64(radius))
}

// ReadTemperature returns a copy of the temperature field in Celsius,
// row-major, per spec.md §6 ("temperatures exposed as °C at the FFI
// boundary").
func (s *Simulation) ReadTemperature() []float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tK := s.backend.ReadTemperature()
	out := make([]float32, len(tK))
	for i, v := range tK {
		out[i] = float32(units.Kelvin(v).ToCelsius())
	}
	return out
}

// ReadLevelSet returns a copy of the level-set field in meters,
// row-major. Quantisation to the fixed-point replication representation
// happens only on the replication path (package replication), not here.
func (s *Simulation) ReadLevelSet() []float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	phi := s.backend.ReadLevelSet()
	out := make([]float32, len(phi))
	for i, v := range phi {
		out[i] = float32(v)
	}
	return out
}

// Dimensions returns the field grid's (width, height, cell size).
func (s *Simulation) Dimensions() (int, int, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dims.W, s.dims.H, s.dims.Dx
}

// IsGPUAccelerated reports whether the active backend is GPU-resident,
// per spec.md §7's BackendUnavailable fallback contract (always false:
// only the CPU backend is implemented).
func (s *Simulation) IsGPUAccelerated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend.IsGPUAccelerated()
}
