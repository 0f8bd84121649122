// Package elements implements the optional discrete fuel-element path
// (legacy per spec.md §6: add_fuel_element) as an ECS world of
// integer-handle entities, grounded on the reference engine's
// game/game.go, which models every organism the same way: components
// mapped by github.com/mlange-42/ark/ecs, a monotonic public ID
// assigned at spawn, and a Filter query over the live set. Parent/child
// structure (trunk -> branch -> bark layer) uses an Option<u32>-style
// index per spec.md §9's design note, rather than owning pointers: a
// HasParent flag plus an ID field on the Parent component.
package elements

// PartKind distinguishes the structural role of a discrete fuel element.
type PartKind int

const (
	PartTrunk PartKind = iota
	PartBranch
	PartBark
	PartLitter
)

// Position is a discrete element's location in the field's world space.
type Position struct {
	X, Y, Z float64
}

// Body holds a discrete element's static physical properties.
type Body struct {
	ID       uint32
	FuelType string
	MassKg   float64
	Part     PartKind
}

// Thermal holds a discrete element's mutable combustion state, updated
// the same way a field cell's temperature and moisture are, but tracked
// per-element for legacy callers that model individual trunks/branches
// rather than a continuous grid.
type Thermal struct {
	TemperatureC     float64
	MoistureFraction float64
	Burning          bool
}

// Parent realizes spec.md §9's "arena + Option<u32> index" note: a
// discrete element optionally references its parent by public element
// id rather than holding an owning pointer or a raw ECS entity handle,
// so parent links survive independent of internal entity recycling.
type Parent struct {
	ID        uint32
	HasParent bool
}
