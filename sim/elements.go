package sim

import (
	"math"

	"github.com/blazeforge/ember/config"
	"github.com/blazeforge/ember/elements"
	"github.com/blazeforge/ember/fuel"
	"github.com/blazeforge/ember/physics"
)

// ignitionReachTempC is the temperature an element's Thermal state must
// reach before it is considered able to ignite a neighbouring element,
// mirroring field's own ignition-sync threshold (field/ignition.go).
const ignitionReachTempC = 300.0

// AddFuelElement registers a discrete fuel element (the legacy path
// alongside the continuous field, per spec.md §6) and returns its public
// id. parentID is nil for a root element (e.g. a trunk); non-nil wires
// it under an existing element (e.g. a branch under its trunk).
func (s *Simulation) AddFuelElement(pos elements.Position, fuelType string, massKg float64, part elements.PartKind, parentID *uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arena.Add(pos, fuelType, massKg, part, parentID)
}

// stepElements advances the discrete fuel-element path: every burning
// element attempts to ignite its direct children (trunk -> branch ->
// bark) using the Rothermel surface spread rate to decide whether the
// fire reaches the child's position within dt, and the Van Wagner crown
// transition to scale that rate when the child is canopy-like (branch or
// bark climbing off a trunk).
func (s *Simulation) stepElements(dt float64) {
	if s.arena.Count() == 0 {
		return
	}

	children := s.childrenIndex()

	for _, snap := range s.arena.Snapshots() {
		if !snap.Burning {
			continue
		}
		kids, ok := children[snap.ID]
		if !ok {
			continue
		}
		parentPos, parentBody, parentThermal, _, err := s.arena.Get(snap.ID)
		if err != nil || parentThermal.TemperatureC < ignitionReachTempC {
			continue
		}

		for _, childID := range kids {
			childPos, childBody, childThermal, _, err := s.arena.Get(childID)
			if err != nil || childThermal.Burning {
				continue
			}
			if s.tryIgniteChild(dt, parentPos, parentBody, childID, childPos, childBody, childThermal) {
				s.counters.ignitions++
			}
		}
	}
}

func (s *Simulation) tryIgniteChild(dt float64, parentPos elements.Position, parentBody elements.Body, childID uint32, childPos elements.Position, childBody elements.Body, childThermal elements.Thermal) bool {
	model, ok := fuel.Standard(childBody.FuelType)
	if !ok {
		model, ok = fuel.Standard(fuel.DryGrass)
		if !ok {
			return false
		}
	}

	slopeDeg := s.terrainSlopeAt(parentPos.X, parentPos.Y)

	rosMMin := physics.RothermelSpreadRate(model, physics.RothermelInputs{
		MoistureFraction: childThermal.MoistureFraction,
		WindSpeedMPS:     s.weather.WindSpeedMPS,
		SlopeDegrees:     slopeDeg,
		AmbientTempC:     s.weather.TemperatureC,
	})
	if rosMMin <= 0 {
		return false
	}
	rosMPS := rosMMin / 60.0

	if (childBody.Part == elements.PartBranch || childBody.Part == elements.PartBark) && model.CrownBaseHeight > 0 {
		surfaceIntensity := physics.ByramFirelineIntensity(model.HeatContent, model.BulkDensity*model.FuelBedDepth, rosMPS)
		crown := physics.VanWagnerCrownTransition(model, surfaceIntensity, rosMMin, model.CrownBaseHeight, 100, model.CrownBulkDensity)
		rosMPS *= crown.BurnRateMultiplier
		if crown.Regime != physics.CrownFireSurface {
			s.counters.crownFireTransitions++
			s.log.Info("crown_fire_transition", "element_id", childID, "regime", crown.Regime.String())
		}

		fromLayer, toLayer := canopyLayerForHeight(parentPos.Z), canopyLayerForHeight(childPos.Z)
		if toLayer > fromLayer {
			canopy := canopyStructureFromConfig()
			rosMPS *= physics.LayerTransitionProbability(surfaceIntensity, canopy, fromLayer, toLayer)
		}
	}

	dist := math.Hypot(childPos.X-parentPos.X, childPos.Y-parentPos.Y)
	if dist <= 0 || rosMPS*dt < dist {
		return false
	}

	s.arena.SetThermal(childID, elements.Thermal{
		TemperatureC:     600,
		MoistureFraction: childThermal.MoistureFraction,
		Burning:          true,
	})
	return true
}

// childrenIndex groups every live element's id by its parent id, letting
// stepElements walk trunk -> branch -> bark without Arena needing its own
// reverse index.
func (s *Simulation) childrenIndex() map[uint32][]uint32 {
	out := make(map[uint32][]uint32)
	for _, snap := range s.arena.Snapshots() {
		_, _, _, parent, err := s.arena.Get(snap.ID)
		if err != nil || !parent.HasParent {
			continue
		}
		out[parent.ID] = append(out[parent.ID], snap.ID)
	}
	return out
}

// terrainSlopeAt samples terrain slope (degrees) at world coordinates,
// converting through the terrain grid's own cell size.
func (s *Simulation) terrainSlopeAt(worldX, worldY float64) float64 {
	tw, th, cellSize := s.terrain.Dimensions()
	if cellSize <= 0 {
		return 0
	}
	gx := clampInt(int(worldX/cellSize), 0, tw-1)
	gy := clampInt(int(worldY/cellSize), 0, th-1)
	return s.terrain.SlopeAtHorn(gx, gy)
}

// canopyLayerForHeight maps an element's height above ground to the
// vertical canopy stratum it sits in (spec.md's crown-layer transition
// model, distinct from Van Wagner's surface-to-crown classifier above).
func canopyLayerForHeight(heightM float64) physics.CanopyLayer {
	switch {
	case physics.CanopyOverstory.ContainsHeight(heightM):
		return physics.CanopyOverstory
	case physics.CanopyMidstory.ContainsHeight(heightM):
		return physics.CanopyMidstory
	default:
		return physics.CanopyUnderstory
	}
}

// canopyStructureFromConfig resolves the scenario's configured vertical
// fuel-layer structure, defaulting to stringybark when unset.
func canopyStructureFromConfig() physics.CanopyStructure {
	switch config.Cfg().Canopy.Structure {
	case "smooth_bark":
		return physics.EucalyptusSmoothBarkCanopy()
	case "grassland":
		return physics.GrasslandCanopy()
	default:
		return physics.EucalyptusStringybarkCanopy()
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
