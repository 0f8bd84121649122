package weather

import "math"

// FFDI computes the McArthur Mark 5 Forest Fire Danger Index from the
// weather scalars spec.md's glossary names as inputs: temperature,
// relative humidity, wind speed and the drought factor. It is a pure
// function of its arguments, consumed by telemetry only -- the solver's
// own ROS inputs are exactly the ones spec.md §4.2 lists and never go
// through this index.
func FFDI(temperatureC, relHumidityPct, windSpeedMPS, droughtFactor float64) float64 {
	windKmh := windSpeedMPS * 3.6
	df := math.Max(droughtFactor, 0.01) // log(0) guard; FFDI is undefined at zero drought
	return 2.0 * math.Exp(-0.45+0.987*math.Log(df)-0.0345*relHumidityPct+0.0338*temperatureC+0.0234*windKmh)
}

// DangerRating buckets an FFDI value into the Australian fire danger
// rating categories in use alongside the Mark 5 index.
func DangerRating(ffdi float64) string {
	switch {
	case ffdi < 12:
		return "low-moderate"
	case ffdi < 25:
		return "high"
	case ffdi < 50:
		return "very-high"
	case ffdi < 75:
		return "severe"
	case ffdi < 100:
		return "extreme"
	default:
		return "catastrophic"
	}
}
