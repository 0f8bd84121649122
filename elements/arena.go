package elements

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/blazeforge/ember/simerr"
)

// Arena is the discrete-element world: a handful of live trunks,
// branches, bark layers and litter pieces addressed by the public
// element id spec.md §6's add_fuel_element returns, backed by an ark ECS
// world the way game.Game backs its organism population.
type Arena struct {
	world *ecs.World

	mapper *ecs.Map4[Position, Body, Thermal, Parent]
	filter *ecs.Filter4[Position, Body, Thermal, Parent]

	posMap     *ecs.Map1[Position]
	bodyMap    *ecs.Map1[Body]
	thermalMap *ecs.Map1[Thermal]
	parentMap  *ecs.Map1[Parent]

	byID   map[uint32]ecs.Entity
	nextID uint32
}

// NewArena builds an empty discrete-element arena.
func NewArena() *Arena {
	world := ecs.NewWorld()
	return &Arena{
		world:      world,
		mapper:     ecs.NewMap4[Position, Body, Thermal, Parent](world),
		filter:     ecs.NewFilter4[Position, Body, Thermal, Parent](world),
		posMap:     ecs.NewMap1[Position](world),
		bodyMap:    ecs.NewMap1[Body](world),
		thermalMap: ecs.NewMap1[Thermal](world),
		parentMap:  ecs.NewMap1[Parent](world),
		byID:       make(map[uint32]ecs.Entity),
	}
}

// Add creates a new discrete fuel element and returns its public id. If
// parentID is non-nil, the new element records it via Parent's
// Option<u32>-style index; a parent id that doesn't currently exist in
// the arena is still recorded (the original may load elements out of
// dependency order) but WalkToRoot stops at a link that doesn't resolve.
func (a *Arena) Add(pos Position, fuelType string, massKg float64, part PartKind, parentID *uint32) uint32 {
	a.nextID++
	id := a.nextID

	body := Body{ID: id, FuelType: fuelType, MassKg: massKg, Part: part}
	thermal := Thermal{MoistureFraction: 0.15}
	parent := Parent{}
	if parentID != nil {
		parent = Parent{ID: *parentID, HasParent: true}
	}

	entity := a.mapper.NewEntity(&pos, &body, &thermal, &parent)
	a.byID[id] = entity
	return id
}

// Remove deletes an element by its public id.
func (a *Arena) Remove(id uint32) error {
	entity, ok := a.byID[id]
	if !ok {
		return simerr.Newf(simerr.NotFound, "element %d not found", id)
	}
	a.mapper.Remove(entity)
	delete(a.byID, id)
	return nil
}

// Get returns the current state of an element by id.
func (a *Arena) Get(id uint32) (Position, Body, Thermal, Parent, error) {
	entity, ok := a.byID[id]
	if !ok {
		return Position{}, Body{}, Thermal{}, Parent{}, simerr.Newf(simerr.NotFound, "element %d not found", id)
	}
	return *a.posMap.Get(entity), *a.bodyMap.Get(entity), *a.thermalMap.Get(entity), *a.parentMap.Get(entity), nil
}

// SetThermal replaces an element's thermal state, used by the driver
// after combustion bookkeeping external to the ECS world.
func (a *Arena) SetThermal(id uint32, thermal Thermal) error {
	entity, ok := a.byID[id]
	if !ok {
		return simerr.Newf(simerr.NotFound, "element %d not found", id)
	}
	*a.thermalMap.Get(entity) = thermal
	return nil
}

// Count returns the number of live elements.
func (a *Arena) Count() int { return len(a.byID) }

// Snapshot captures every live element's replicated state, in the shape
// replication.ElementState expects.
type Snapshot struct {
	ID               uint32
	TemperatureC     float64
	MoistureFraction float64
	Burning          bool
}

// Snapshots returns a read-only copy of every live element's state, the
// form the FFI exposes per spec.md §5 ("visible to the FFI only as
// read-only snapshots copied on demand").
func (a *Arena) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, len(a.byID))
	query := a.filter.Query()
	for query.Next() {
		_, body, thermal, _ := query.Get()
		out = append(out, Snapshot{
			ID:               body.ID,
			TemperatureC:     thermal.TemperatureC,
			MoistureFraction: thermal.MoistureFraction,
			Burning:          thermal.Burning,
		})
	}
	return out
}

// WalkToRoot returns the chain of element ids from id up through its
// ancestors, stopping when a Parent link doesn't resolve to a live
// element (broken link) or when an element has no parent (reached the
// root), per spec.md §9's Option<u32> arena-index design.
func (a *Arena) WalkToRoot(id uint32) []uint32 {
	var chain []uint32
	seen := make(map[uint32]bool)
	cur := id
	for {
		entity, ok := a.byID[cur]
		if !ok {
			break
		}
		chain = append(chain, cur)
		seen[cur] = true

		parent := a.parentMap.Get(entity)
		if !parent.HasParent || seen[parent.ID] {
			break
		}
		cur = parent.ID
	}
	return chain
}
