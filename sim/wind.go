package sim

import (
	"math"

	"github.com/blazeforge/ember/config"
	"github.com/blazeforge/ember/physics"
)

// x, y are reused across ticks to avoid a per-tick allocation of
// the full grid.
type windBuffers struct {
	x, y []float64
}

// buildWindField fills buf with the per-cell wind vector for the coming
// tick: the uniform weather wind rotated from meteorological convention
// into a math-convention unit vector, perturbed by a spatially and
// temporally varying gust field (config.Cfg().TurbulentWind), then summed
// with any active pyroCb downdraft contribution at that cell, per
// spec.md §4.8 step 1 ("turbulent-wind perturbation of U(x,y,t)") and
// §4.6 (downdraft wind modification feeding back into the wind field).
func (s *Simulation) buildWindField(buf *windBuffers, simTime float64) {
	cfg := config.Cfg().TurbulentWind
	valleyCfg := config.Cfg().ValleyWind
	dims := s.dims
	elevAt := s.terrain.ElevationAt

	// Meteorological "from" direction to a "blowing toward" unit vector.
	toward := s.weather.WindDirectionDeg + 180
	theta := toward * math.Pi / 180.0
	baseX := math.Sin(theta) * s.weather.WindSpeedMPS
	baseY := -math.Cos(theta) * s.weather.WindSpeedMPS

	if len(buf.x) != dims.W*dims.H {
		buf.x = make([]float64, dims.W*dims.H)
		buf.y = make([]float64, dims.W*dims.H)
	}

	spatialScale := cfg.SpatialScale
	if spatialScale <= 0 {
		spatialScale = 200.0
	}
	temporalScale := cfg.TemporalScale
	if temporalScale <= 0 {
		temporalScale = 30.0
	}
	t := simTime / temporalScale

	for gy := 0; gy < dims.H; gy++ {
		wy := (float64(gy) + 0.5) * dims.Dx
		for gx := 0; gx < dims.W; gx++ {
			wx := (float64(gx) + 0.5) * dims.Dx
			i := dims.Index(gx, gy)

			gust := s.windTurbulence.TiledFBM4(wx/spatialScale, wy/spatialScale, t, 3, 2.0, 0.5)
			gustMag := 1.0 + cfg.GustIntensity*gust
			wobbleRad := cfg.DirectionWobble * math.Pi / 180.0 * gust

			cosW, sinW := math.Cos(wobbleRad), math.Sin(wobbleRad)
			vx := (baseX*cosW - baseY*sinW) * gustMag
			vy := (baseX*sinW + baseY*cosW) * gustMag

			geom := physics.DetectValleyGeometry(elevAt, wx, wy, valleyCfg.SampleRadiusM)
			valleyFactor := physics.ValleyWindFactor(geom, valleyCfg.ReferenceWidthM)
			vx *= valleyFactor
			vy *= valleyFactor

			ddx, ddy := s.pyroCb.WindContributionAt(wx, wy)
			buf.x[i] = vx + ddx
			buf.y[i] = vy + ddy
		}
	}
}
