package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated fire-behavior statistics for one telemetry
// window, mirroring sim.Stats/sim.Diagnostics plus the event counts
// raised during the window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Fire extent at window end.
	BurningCells       int     `csv:"burning_cells"`
	BurnedAreaM2       float64 `csv:"burned_area_m2"`
	BurnedAreaGrowthM2 float64 `csv:"burned_area_growth_m2"`
	FuelConsumedKg     float64 `csv:"fuel_consumed_kg"`
	FrontVertices      int     `csv:"front_vertices"`
	ActivePyroCb       int     `csv:"active_pyrocb"`
	EmberCount         int     `csv:"ember_count"`

	// Events during the window.
	Ignitions            int `csv:"ignitions"`
	CrownFireTransitions int `csv:"crown_fire_transitions"`
	PyroCbFormations     int `csv:"pyrocb_formations"`
	PyroCbCollapses      int `csv:"pyrocb_collapses"`
	SuppressionDrops     int `csv:"suppression_drops"`
	SpotFireIgnitions    int `csv:"spot_fire_ignitions"`

	// Diagnostics sampled at window end.
	JunctionZoneCount int  `csv:"junction_zone_count"`
	VLSActive         bool `csv:"vls_active"`
}

// RollingStat holds the mean and standard deviation of a bounded history
// of samples, computed with gonum/stat rather than by hand, mirroring how
// the reference codebase leans on a library for anything beyond a sum.
type RollingStat struct {
	Mean   float64
	StdDev float64
}

// ComputeRolling reduces a history of scalar samples (e.g. burned-area
// growth per window) to mean and sample (n-1) standard deviation. Returns
// the zero value for an empty history.
func ComputeRolling(samples []float64) RollingStat {
	if len(samples) == 0 {
		return RollingStat{}
	}
	mean, std := stat.MeanStdDev(samples, nil)
	return RollingStat{Mean: mean, StdDev: std}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("burning_cells", s.BurningCells),
		slog.Float64("burned_area_m2", s.BurnedAreaM2),
		slog.Float64("burned_area_growth_m2", s.BurnedAreaGrowthM2),
		slog.Float64("fuel_consumed_kg", s.FuelConsumedKg),
		slog.Int("front_vertices", s.FrontVertices),
		slog.Int("active_pyrocb", s.ActivePyroCb),
		slog.Int("ember_count", s.EmberCount),
		slog.Int("ignitions", s.Ignitions),
		slog.Int("crown_fire_transitions", s.CrownFireTransitions),
		slog.Int("pyrocb_formations", s.PyroCbFormations),
		slog.Int("pyrocb_collapses", s.PyroCbCollapses),
		slog.Int("suppression_drops", s.SuppressionDrops),
		slog.Int("spot_fire_ignitions", s.SpotFireIgnitions),
		slog.Int("junction_zone_count", s.JunctionZoneCount),
		slog.Bool("vls_active", s.VLSActive),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "stats", s)
}
