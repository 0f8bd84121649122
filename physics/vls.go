package physics

import "math"

// VLSResult is the vorticity-driven lateral spread detector's output.
type VLSResult struct {
	Active          bool
	Index           float64 // chi
	LateralDirection float64 // degrees
	RateMultiplier  float64 // 1..3
}

// VLSReferenceWind is U_ref in the VLS index formula; a nominal reference
// wind speed (m/s) the index is normalised against.
const VLSReferenceWind = 10.0

// DetectVLS evaluates the lee-slope vorticity-driven lateral spread
// detector. aspectDeg is the terrain aspect (downslope direction,
// degrees), windDirDeg is the direction the wind blows toward (degrees),
// windMPS is wind speed, slopeDeg is terrain slope.
func DetectVLS(slopeDeg, aspectDeg, windDirDeg, windMPS float64) VLSResult {
	angularDiff := angleDiffDeg(aspectDeg, windDirDeg)
	isLeeSlope := angularDiff > 120

	theta := slopeDeg * math.Pi / 180.0
	sinTerm := math.Abs(math.Sin((aspectDeg - windDirDeg) * math.Pi / 180.0))
	chi := math.Tan(theta) * sinTerm * windMPS / VLSReferenceWind

	active := isLeeSlope && chi > 0.6 && slopeDeg > 20 && windMPS > 5

	result := VLSResult{
		Index:            chi,
		LateralDirection: wrapDeg(aspectDeg + 90),
	}
	if active {
		result.Active = true
		// Linear ramp above the 0.6 threshold, capped at 3x.
		result.RateMultiplier = math.Min(1+((chi-0.6)/0.6)*2, 3.0)
	} else {
		result.RateMultiplier = 1.0
	}
	return result
}
