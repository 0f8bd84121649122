package fuel

import "sync"

// Standard Australian fuel model names, matching the canonical bundles
// the original engine ships (see SPEC_FULL.md, "Fuel-bundle registry").
const (
	DryGrass        = "dry_grass"
	Heath           = "heath"
	MalleeHeath     = "mallee_heath"
	Spinifex        = "spinifex"
	ForestLitter    = "forest_litter"
	Buttongrass     = "buttongrass"
	StringybarkForest = "stringybark_forest"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Model{
		DryGrass:          dryGrass(),
		Heath:             heath(),
		MalleeHeath:       malleeHeath(),
		Spinifex:          spinifex(),
		ForestLitter:      forestLitter(),
		Buttongrass:       buttongrass(),
		StringybarkForest: stringybarkForest(),
	}
)

// Standard returns a copy of a registered fuel model by name, and whether
// it was found.
func Standard(name string) (Model, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	m, ok := registry[name]
	return m, ok
}

// Register adds or replaces a fuel model in the registry. Intended for
// callers (e.g. config's fuel-bundle overrides, terrain-file loaders)
// that need to inject site-specific fuel bundles.
func Register(name string, m Model) {
	registryMu.Lock()
	defer registryMu.Unlock()
	m.Name = name
	registry[name] = m
}

// Names returns the currently registered fuel model names.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}

func dryGrass() Model {
	return Model{
		Name:                 DryGrass,
		HeatContent:          18600,
		IgnitionTempC:        300,
		MineralDamping:       0.85,
		SpecificHeat:         1.8,
		SurfaceAreaToVolume:  3500,
		BulkDensity:          2.0,
		ParticleDensity:      400,
		FuelBedDepth:         0.4,
		PackingRatio:         0.005,
		OptimumPackingRatio:  0.004,
		EffectiveHeating:     0.4,
		MoistureOfExtinction: 0.25,
		Timelag:              TimelagSpectrum{OneHour: 1.0},
		EmberProduction:      0.1,
		EmberReceptivity:     0.9,
		RothermelCalibration: 0.05,
	}
}

func heath() Model {
	return Model{
		Name:                 Heath,
		HeatContent:          20500,
		IgnitionTempC:        320,
		MineralDamping:       0.7,
		SpecificHeat:         2.0,
		SurfaceAreaToVolume:  2000,
		BulkDensity:          4.5,
		ParticleDensity:      450,
		FuelBedDepth:         1.2,
		PackingRatio:         0.01,
		OptimumPackingRatio:  0.008,
		EffectiveHeating:     0.42,
		MoistureOfExtinction: 0.30,
		Timelag:              TimelagSpectrum{OneHour: 0.6, TenHour: 0.3, HundredHour: 0.1},
		EmberProduction:      0.3,
		EmberReceptivity:     0.7,
		RothermelCalibration: 0.05,
	}
}

func malleeHeath() Model {
	m := heath()
	m.Name = MalleeHeath
	m.BulkDensity = 6.0
	m.FuelBedDepth = 2.5
	m.CrownBulkDensity = 0.12
	m.CrownBaseHeight = 2.0
	m.CrownFireThreshold = 40000
	m.EmberProduction = 0.5
	return m
}

func spinifex() Model {
	return Model{
		Name:                 Spinifex,
		HeatContent:          19500,
		IgnitionTempC:        310,
		MineralDamping:       0.75,
		SpecificHeat:         1.9,
		SurfaceAreaToVolume:  5000,
		BulkDensity:          1.2,
		ParticleDensity:      380,
		FuelBedDepth:         0.5,
		PackingRatio:         0.003,
		OptimumPackingRatio:  0.003,
		EffectiveHeating:     0.38,
		MoistureOfExtinction: 0.20,
		Timelag:              TimelagSpectrum{OneHour: 1.0},
		EmberProduction:      0.15,
		EmberReceptivity:     0.85,
		RothermelCalibration: 0.05,
	}
}

func forestLitter() Model {
	return Model{
		Name:                 ForestLitter,
		HeatContent:          19800,
		IgnitionTempC:        330,
		MineralDamping:       0.6,
		SpecificHeat:         2.1,
		SurfaceAreaToVolume:  1500,
		BulkDensity:          5.0,
		ParticleDensity:      500,
		FuelBedDepth:         0.08,
		PackingRatio:         0.02,
		OptimumPackingRatio:  0.015,
		EffectiveHeating:     0.45,
		MoistureOfExtinction: 0.35,
		Timelag:              TimelagSpectrum{OneHour: 0.4, TenHour: 0.4, HundredHour: 0.15, ThousandHour: 0.05},
		EmberProduction:      0.2,
		EmberReceptivity:     0.6,
		RothermelCalibration: 0.05,
	}
}

func buttongrass() Model {
	m := dryGrass()
	m.Name = Buttongrass
	m.BulkDensity = 3.0
	m.FuelBedDepth = 1.0
	m.MoistureOfExtinction = 0.28
	return m
}

func stringybarkForest() Model {
	m := forestLitter()
	m.Name = StringybarkForest
	m.CrownBulkDensity = 0.20
	m.CrownBaseHeight = 3.0
	m.CrownFireThreshold = 50000
	m.EmberProduction = 0.8 // stringybark is the classic long-distance spotting fuel
	m.EmberReceptivity = 0.75
	return m
}
