// Package telemetry collects fire-behavior events into rolling windows,
// detects notable moments (bookmarks), and writes both to CSV for
// post-run analysis.
package telemetry

// EventType identifies a telemetry event raised by the simulation driver.
type EventType uint8

const (
	EventIgnition EventType = iota
	EventCrownFireTransition
	EventPyroCbFormed
	EventPyroCbCollapsed
	EventSuppressionApplied
	EventSpotFireIgnition
)

// Event represents a single telemetry event, timestamped to the tick it
// occurred on.
type Event struct {
	Type EventType
	Tick int32

	// X, Y are world coordinates (meters), meaningful for every type
	// except EventPyroCbCollapsed, which has none.
	X, Y float64
}
