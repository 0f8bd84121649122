package physics

import (
	"math"

	"github.com/blazeforge/ember/units"
)

// ElevationSampler returns terrain elevation (meters) at continuous world
// coordinates, letting DetectValleyGeometry stay a pure function of its
// inputs rather than importing package terrain directly.
type ElevationSampler func(x, y float64) float64

// ValleyGeometry describes the valley (if any) surrounding a position,
// per Butler et al. (1998) and Sharples (2009): wind is funneled and
// accelerated through narrow valleys, and fire can race up a valley's
// axis toward its head.
type ValleyGeometry struct {
	InValley          bool
	WidthM            float64
	DepthM            float64
	OrientationRad    float64 // direction of the valley's lowest exit
	DistanceFromHeadM float64
}

// valleyRidgeMarginM is the elevation excess above the center sample a
// radial sample must clear to count as a surrounding ridge.
const valleyRidgeMarginM = 5.0

// valleyWidthMarginM is the elevation excess used when walking outward
// perpendicular to the valley axis to find its walls.
const valleyWidthMarginM = 10.0

// valleyWidthStepM is the step size used in that perpendicular walk.
const valleyWidthStepM = 10.0

// DetectValleyGeometry samples elevation in 8 directions around (x,y) and
// reports whether the position sits in a valley (at least 3 of the 8
// radial samples are higher than the center by more than
// valleyRidgeMarginM), along with estimated width, depth, axis
// orientation and distance from the valley head.
func DetectValleyGeometry(sample ElevationSampler, x, y, sampleRadiusM float64) ValleyGeometry {
	const numSamples = 8
	centerElev := sample(x, y)

	var elevations [numSamples]float64
	var directions [numSamples]float64
	for i := 0; i < numSamples; i++ {
		angle := float64(i) * 2 * math.Pi / numSamples
		directions[i] = angle
		elevations[i] = sample(x+math.Cos(angle)*sampleRadiusM, y+math.Sin(angle)*sampleRadiusM)
	}

	numHigher := 0
	for _, e := range elevations {
		if e > centerElev+valleyRidgeMarginM {
			numHigher++
		}
	}
	if numHigher < 3 {
		return ValleyGeometry{}
	}

	minElev := math.Inf(1)
	orientation := 0.0
	for i, e := range elevations {
		if e < minElev {
			minElev = e
			orientation = directions[i]
		}
	}

	perp := orientation + math.Pi/2
	var widthSamples []float64
	for _, sign := range [2]float64{-1, 1} {
		dx, dy := math.Cos(perp)*sign, math.Sin(perp)*sign
		for dist := valleyWidthStepM; dist < sampleRadiusM; dist += valleyWidthStepM {
			if sample(x+dx*dist, y+dy*dist) > centerElev+valleyWidthMarginM {
				widthSamples = append(widthSamples, dist)
				break
			}
		}
	}

	width := sampleRadiusM
	switch len(widthSamples) {
	case 2:
		width = widthSamples[0] + widthSamples[1]
	case 1:
		width = widthSamples[0] * 2
	}

	var sumElev, maxElev float64
	maxElev = math.Inf(-1)
	for _, e := range elevations {
		sumElev += e
		if e > maxElev {
			maxElev = e
		}
	}
	avgRidge := sumElev / numSamples
	depth := math.Max(avgRidge-centerElev, 0)

	return ValleyGeometry{
		InValley:          true,
		WidthM:            width,
		DepthM:            depth,
		OrientationRad:    orientation,
		DistanceFromHeadM: (maxElev - centerElev) * 10.0,
	}
}

// ValleyWindFactor returns the wind-speed multiplier from channeling
// through a valley (1.0 = no acceleration): U_valley = U_ambient *
// sqrt(W_open / W_valley), clamped to [1.0, 2.5]; the 2.5x ceiling is the
// upper end Butler (1998) and Sharples (2009) report for narrow valleys.
func ValleyWindFactor(geom ValleyGeometry, referenceWidthM float64) float64 {
	if !geom.InValley || geom.WidthM <= 0 {
		return 1.0
	}
	factor := math.Sqrt(referenceWidthM / geom.WidthM)
	return math.Max(1.0, math.Min(factor, 2.5))
}

// ChimneyUpdraft returns the updraft velocity (m/s) at a valley head when
// fire gases are hotter than ambient: w = sqrt(2*g*H*dT/T_ambient), zero
// outside headDistanceThresholdM of the valley head or when the fire
// isn't hotter than ambient air.
func ChimneyUpdraft(geom ValleyGeometry, fireTempC, ambientTempC, headDistanceThresholdM float64) float64 {
	if !geom.InValley || geom.DistanceFromHeadM > headDistanceThresholdM {
		return 0
	}
	deltaT := fireTempC - ambientTempC
	if deltaT <= 0 {
		return 0
	}
	tKelvin := ambientTempC + 273.15
	return math.Sqrt(2 * units.GravityAccel * geom.DepthM * deltaT / tKelvin)
}

// CrossValleyViewFactor returns the radiative view factor (0..0.5)
// between opposing valley walls, significant only for narrow valleys
// (width < 100m): VF = 0.5 / (1 + width/depth).
func CrossValleyViewFactor(widthM, depthM float64) float64 {
	if widthM > 100.0 {
		return 0
	}
	aspectRatio := widthM / math.Max(depthM, 1.0)
	return 0.5 / (1.0 + aspectRatio)
}
