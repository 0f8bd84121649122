// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/blazeforge/ember/fuel"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Quality selects grid resolution and texture-quality hint, per spec.md §6.
type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "medium"
	QualityHigh   Quality = "high"
	QualityUltra  Quality = "ultra"
)

// GridResolution returns the (W,H) grid dimension for a quality level.
// Unrecognized values fall back to Medium -- quality is a performance
// hint, not an invariant-bearing input, so this never errors.
func (q Quality) GridResolution() (int, int) {
	switch q {
	case QualityLow:
		return 512, 512
	case QualityHigh:
		return 1024, 1024
	case QualityUltra:
		return 2048, 2048
	default:
		return 1024, 1024
	}
}

// Config holds all simulation configuration parameters.
type Config struct {
	Quality       QualityConfig        `yaml:"quality"`
	LevelSet      LevelSetConfig       `yaml:"level_set"`
	Noise         NoiseConfig          `yaml:"noise"`
	TurbulentWind TurbulentWindConfig  `yaml:"turbulent_wind"`
	PyroCb        PyroCbConfig         `yaml:"pyrocb"`
	Combustion    CombustionConfig     `yaml:"combustion"`
	Replay        ReplayConfig         `yaml:"replay"`
	Ember         EmberConfig          `yaml:"ember"`
	Suppression   SuppressionConfig    `yaml:"suppression"`
	Telemetry     TelemetryConfig      `yaml:"telemetry"`
	FuelBundles   []FuelBundleOverride `yaml:"fuel_bundles"`
	ValleyWind    ValleyWindConfig     `yaml:"valley_wind"`
	Canopy        CanopyConfig         `yaml:"canopy"`
}

// QualityConfig selects the grid resolution tier.
type QualityConfig struct {
	Level Quality `yaml:"level"`
}

// LevelSetConfig holds the level-set step's tunables.
type LevelSetConfig struct {
	CurvatureCoeff float64 `yaml:"curvature_coeff"`
}

// NoiseConfig holds fuel-heterogeneity noise tunables.
type NoiseConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	SpatialHz float64 `yaml:"spatial_hz"` // cycles/meter, spatial period 10-50m per spec.md §4.3
	Seed      int64   `yaml:"seed"`
}

// TurbulentWindConfig holds the wind-turbulence model's tunables.
type TurbulentWindConfig struct {
	GustIntensity   float64 `yaml:"gust_intensity"`
	DirectionWobble float64 `yaml:"direction_wobble"` // degrees
	SpatialScale    float64 `yaml:"spatial_scale"`    // meters
	TemporalScale   float64 `yaml:"temporal_scale"`   // seconds
	Seed            int64   `yaml:"seed"`
}

// PyroCbConfig holds pyroconvective-cloud formation thresholds.
type PyroCbConfig struct {
	DetectionThresholdGW float64 `yaml:"detection_threshold_gw"`
}

// CombustionConfig holds the heat-release/self-heating split.
type CombustionConfig struct {
	SelfHeatingFraction float64 `yaml:"self_heating_fraction"`
}

// ReplayConfig holds replication/replay cadence settings.
type ReplayConfig struct {
	SnapshotIntervalFrames int `yaml:"snapshot_interval_frames"`
}

// EmberConfig holds the ember pool's capacity and scatter seed.
type EmberConfig struct {
	PoolCapacity int   `yaml:"pool_capacity"`
	ScatterSeed  int64 `yaml:"scatter_seed"`
}

// ValleyWindConfig holds the valley-channeling/chimney-updraft model's
// tunables, per Butler (1998) and Sharples (2009).
type ValleyWindConfig struct {
	SampleRadiusM          float64 `yaml:"sample_radius_m"`
	ReferenceWidthM        float64 `yaml:"reference_width_m"`
	HeadDistanceThresholdM float64 `yaml:"head_distance_threshold_m"`
}

// CanopyConfig selects the vertical canopy-layer structure the
// crown-layer transition model assumes for the scenario's fuel.
type CanopyConfig struct {
	Structure string `yaml:"structure"` // "stringybark", "smooth_bark", "grassland"
}

// SuppressionConfig holds the aerial suppression grid's cell size.
type SuppressionConfig struct {
	CellSizeM float64 `yaml:"cell_size_m"`
}

// TelemetryConfig holds telemetry collection parameters.
type TelemetryConfig struct {
	StatsWindow         float64         `yaml:"stats_window"`
	BookmarkHistorySize int             `yaml:"bookmark_history_size"`
	Bookmarks           BookmarksConfig `yaml:"bookmarks"`
}

// BookmarksConfig holds the trigger thresholds for each automatic
// bookmark detector in package telemetry.
type BookmarksConfig struct {
	IgnitionBreakthrough IgnitionBreakthroughConfig `yaml:"ignition_breakthrough"`
	CrownFireOnset       CrownFireOnsetConfig       `yaml:"crown_fire_onset"`
	PyroCbFormation      PyroCbFormationConfig      `yaml:"pyrocb_formation"`
	SuppressionSuccess   SuppressionSuccessConfig   `yaml:"suppression_success"`
	SpotFireSurge        SpotFireSurgeConfig        `yaml:"spot_fire_surge"`
}

// IgnitionBreakthroughConfig tunes the burned-area growth-rate spike detector.
type IgnitionBreakthroughConfig struct {
	Multiplier float64 `yaml:"multiplier"`
	MinAreaM2  float64 `yaml:"min_area_m2"`
}

// CrownFireOnsetConfig tunes the crown-fire-transition count detector.
type CrownFireOnsetConfig struct {
	MinTransitions int `yaml:"min_transitions"`
}

// PyroCbFormationConfig tunes the pyroconvective-formation count detector.
type PyroCbFormationConfig struct {
	MinEvents int `yaml:"min_events"`
}

// SuppressionSuccessConfig tunes the growth-rate-arrest detector.
type SuppressionSuccessConfig struct {
	DropFraction    float64 `yaml:"drop_fraction"`
	MinPeakGrowthM2 float64 `yaml:"min_peak_growth_m2"`
}

// SpotFireSurgeConfig tunes the ember-landing-ignition surge detector.
type SpotFireSurgeConfig struct {
	Multiplier  float64 `yaml:"multiplier"`
	MinIgnitions int    `yaml:"min_ignitions"`
}

// FuelBundleOverride lets a scenario file tune one registered fuel
// bundle's Rothermel calibration factor without redefining the whole
// bundle, per spec.md §9's Open Question on calibration configurability.
type FuelBundleOverride struct {
	Name                 string  `yaml:"name"`
	RothermelCalibration float64 `yaml:"rothermel_calibration"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. Fuel bundle overrides
// are applied to the registry as a side effect, matching the reference
// config package's pattern of deriving runtime state right after parsing.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyFuelBundleOverrides()

	return cfg, nil
}

// WriteYAML serializes the configuration to path, letting a run persist
// the exact parameters (including fuel bundle calibration overrides) it
// was launched with alongside its telemetry and replay output.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// applyFuelBundleOverrides pushes any configured calibration overrides
// into the fuel registry so subsequent fuel.Standard lookups see them.
func (c *Config) applyFuelBundleOverrides() {
	for _, o := range c.FuelBundles {
		m, ok := fuel.Standard(o.Name)
		if !ok {
			continue
		}
		fuel.Register(o.Name, m.WithCalibration(o.RothermelCalibration))
	}
}
