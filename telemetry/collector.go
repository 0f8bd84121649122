package telemetry

import "github.com/blazeforge/ember/sim"

// Collector windows a running Simulation's cumulative stats into
// per-window WindowStats. It never mutates the simulation; it only reads
// sim.Stats/sim.Diagnostics and diffs their cumulative counters against
// the values last seen, so Flush can be driven purely from what the
// simulation already exposes.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	lastBurnedAreaM2          float64
	lastIgnitions             uint64
	lastCrownFireTransitions  uint64
	lastPyroCbFormations      uint64
	lastPyroCbCollapses       uint64
	lastSuppressionDrops      uint64
	lastSpotFireIgnitions     uint64
}

// NewCollector creates a collector windowing events every windowDurationSec
// simulation-seconds, at dt seconds per tick.
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// ShouldFlush returns true once enough ticks have passed to close the
// current window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats from the simulation's latest scalar
// stats/diagnostics, diffing cumulative counters against the previous
// flush, then advances the window boundary.
func (c *Collector) Flush(currentTick int32, stats sim.Stats, diag sim.Diagnostics) WindowStats {
	growth := stats.BurnedAreaM2 - c.lastBurnedAreaM2
	if growth < 0 {
		growth = 0
	}

	ws := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      stats.SimTimeSeconds,

		BurningCells:       stats.BurningCells,
		BurnedAreaM2:       stats.BurnedAreaM2,
		BurnedAreaGrowthM2: growth,
		FuelConsumedKg:     stats.FuelConsumedKg,
		FrontVertices:      stats.FrontVertices,
		ActivePyroCb:       stats.ActivePyroCb,
		EmberCount:         stats.EmberCount,

		Ignitions:            int(stats.TotalIgnitions - c.lastIgnitions),
		CrownFireTransitions: int(stats.TotalCrownFireTransitions - c.lastCrownFireTransitions),
		PyroCbFormations:     int(stats.TotalPyroCbFormations - c.lastPyroCbFormations),
		PyroCbCollapses:      int(stats.TotalPyroCbCollapses - c.lastPyroCbCollapses),
		SuppressionDrops:     int(stats.TotalSuppressionDrops - c.lastSuppressionDrops),
		SpotFireIgnitions:    int(stats.TotalSpotFireIgnitions - c.lastSpotFireIgnitions),

		JunctionZoneCount: len(diag.JunctionZones),
		VLSActive:         diag.VLS.Active,
	}

	c.windowStartTick = currentTick
	c.lastBurnedAreaM2 = stats.BurnedAreaM2
	c.lastIgnitions = stats.TotalIgnitions
	c.lastCrownFireTransitions = stats.TotalCrownFireTransitions
	c.lastPyroCbFormations = stats.TotalPyroCbFormations
	c.lastPyroCbCollapses = stats.TotalPyroCbCollapses
	c.lastSuppressionDrops = stats.TotalSuppressionDrops
	c.lastSpotFireIgnitions = stats.TotalSpotFireIgnitions

	return ws
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
