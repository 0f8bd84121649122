package physics

import "math"

// SlopeFactor returns the multiplicative effect of effective slope
// (degrees, signed: positive upslope in the spread direction, negative
// downslope) on spread rate.
func SlopeFactor(effectiveSlopeDeg float64) float64 {
	switch {
	case effectiveSlopeDeg > 0:
		return 1 + math.Pow(effectiveSlopeDeg/10.0, 1.5)*2
	case effectiveSlopeDeg < 0:
		return math.Max(1+effectiveSlopeDeg/30.0, 0.3)
	default:
		return 1
	}
}

// EffectiveSlope projects terrain slope onto the spread direction:
// theta * cos(spread_dir - (aspect+180)), with angles in degrees and
// proper wraparound.
func EffectiveSlope(slopeDeg, aspectDeg, spreadDirDeg float64) float64 {
	downslope := wrapDeg(aspectDeg + 180)
	diff := wrapDeg(spreadDirDeg-downslope) * math.Pi / 180.0
	return slopeDeg * math.Cos(diff)
}

func wrapDeg(d float64) float64 {
	v := math.Mod(d, 360)
	if v < 0 {
		v += 360
	}
	return v
}

func angleDiffDeg(a, b float64) float64 {
	d := wrapDeg(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}
