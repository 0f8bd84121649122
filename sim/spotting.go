package sim

import (
	"math"

	"github.com/blazeforge/ember/config"
	"github.com/blazeforge/ember/front"
	"github.com/blazeforge/ember/physics"
	"github.com/blazeforge/ember/units"
)

// spottingIntensityThresholdKWm is the fireline intensity above which a
// front vertex is considered capable of lofting embers, the onset value
// Albini (1979) reports for active crown fire.
const spottingIntensityThresholdKWm = 1750.0

// emberTerminalVelocityMPS is a representative bark-ember terminal fall
// speed used by the spotting-distance closure.
const emberTerminalVelocityMPS = 0.5

// stepSpotting spawns embers from sufficiently intense front vertices,
// advances every aloft ember, and ignites the field at each landing
// point, per spec.md §4.7.
func (s *Simulation) stepSpotting(poly front.Polyline, dt float64) {
	ambientK := float64(units.Celsius(s.weather.TemperatureC).ToKelvin())
	valleyCfg := config.Cfg().ValleyWind

	for _, v := range poly.Vertices {
		if v.IntensityKWm < spottingIntensityThresholdKWm {
			continue
		}
		slopeDeg := s.terrainSlopeAt(v.X, v.Y)
		plumeHeight := physics.LoftHeight(v.IntensityKWm, 2000.0)
		frontTempK := ambientK + 300.0

		// A chimney updraft at a valley head adds to the plume's rise
		// height: its kinetic energy converts to additional altitude
		// at g, per Butler (1998).
		geom := physics.DetectValleyGeometry(s.terrain.ElevationAt, v.X, v.Y, valleyCfg.SampleRadiusM)
		frontTempC := float64(units.Kelvin(frontTempK).ToCelsius())
		updraft := physics.ChimneyUpdraft(geom, frontTempC, s.weather.TemperatureC, valleyCfg.HeadDistanceThresholdM)
		plumeHeight += updraft * updraft / (2 * units.GravityAccel)

		maxDist := physics.MaxSpottingDistance(plumeHeight, s.weather.WindSpeedMPS, emberTerminalVelocityMPS, slopeDeg)
		if maxDist <= 0 {
			continue
		}

		windDirTo := (s.weather.WindDirectionDeg + 180) * math.Pi / 180.0
		windX := math.Sin(windDirTo) * s.weather.WindSpeedMPS
		windY := -math.Cos(windDirTo) * s.weather.WindSpeedMPS

		s.embers.Spawn(v.X, v.Y, v.IntensityKWm, plumeHeight, slopeDeg, windX, windY, frontTempK)
	}

	windX, windY := s.currentMeanWind()
	for _, landing := range s.embers.Step(dt, windX, windY) {
		s.backend.IgniteAt(landing.X, landing.Y, 1.0)
		s.counters.spotFireIgnitions++
		s.log.Info("spot_fire_ignition", "x", landing.X, "y", landing.Y)
	}
}

// currentMeanWind returns the uniform weather wind as a vector, without
// the turbulent perturbation (ember drift only needs the coarse mean).
func (s *Simulation) currentMeanWind() (float64, float64) {
	toward := (s.weather.WindDirectionDeg + 180) * math.Pi / 180.0
	return math.Sin(toward) * s.weather.WindSpeedMPS, -math.Cos(toward) * s.weather.WindSpeedMPS
}
