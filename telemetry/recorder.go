package telemetry

import "github.com/blazeforge/ember/sim"

// Recorder wires a Collector, BookmarkDetector, PerfCollector and
// OutputManager together against a running Simulation, mirroring how the
// reference codebase's Game drives the same four pieces once per frame
// (game/game.go's collector/bookmarkDetector/perfCollector/output
// fields). A nil Recorder is safe to call methods on; every method is a
// no-op, so callers can build a Recorder conditionally on whether an
// output directory was requested.
type Recorder struct {
	collector *Collector
	bookmarks *BookmarkDetector
	perf      *PerfCollector
	output    *OutputManager

	tick int32
}

// NewRecorder builds a Recorder writing CSV/log output to dir (may be
// empty, in which case OutputManager writes are no-ops), windowing
// events every windowSec simulation-seconds at dt seconds/tick.
func NewRecorder(dir string, windowSec, dt float64, bookmarkHistory int) (*Recorder, error) {
	output, err := NewOutputManager(dir)
	if err != nil {
		return nil, err
	}
	return &Recorder{
		collector: NewCollector(windowSec, dt),
		bookmarks: NewBookmarkDetector(bookmarkHistory),
		perf:      NewPerfCollector(600),
		output:    output,
	}, nil
}

// StartTick/StartPhase/EndTick bracket a sim.Simulation.Tick call so the
// perf collector can attribute wall-clock time to tick phases.
func (r *Recorder) StartTick() {
	if r == nil {
		return
	}
	r.perf.StartTick()
}

func (r *Recorder) StartPhase(phase string) {
	if r == nil {
		return
	}
	r.perf.StartPhase(phase)
}

func (r *Recorder) EndTick(currentTick int32) {
	if r == nil {
		return
	}
	r.perf.EndTick()
	r.tick = currentTick
}

// Sample checks whether the current window has closed and, if so, flushes
// the collector against stats/diag's cumulative counters into a
// WindowStats, runs the bookmark detectors, and writes both out via the
// OutputManager.
func (r *Recorder) Sample(stats sim.Stats, diag sim.Diagnostics) error {
	if r == nil {
		return nil
	}
	if !r.collector.ShouldFlush(r.tick) {
		return nil
	}

	ws := r.collector.Flush(r.tick, stats, diag)
	ws.LogStats()
	if err := r.output.WriteTelemetry(ws); err != nil {
		return err
	}

	for _, b := range r.bookmarks.Check(ws) {
		b.LogBookmark()
		if err := r.output.WriteBookmark(b); err != nil {
			return err
		}
	}

	perfStats := r.perf.Stats()
	perfStats.LogStats()
	return r.output.WritePerf(perfStats, r.tick)
}

// Close flushes and closes the underlying output files.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return r.output.Close()
}
