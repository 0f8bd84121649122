// Package weather drives the field solver with a sparse observation
// series rather than a single fixed scalar set, the way the reference
// codebase's systems/energy.go and systems/noise.go derive smoothly
// varying per-tick values by interpolating between keyframes. spec.md
// §4.8 step 1 only requires "weather provides U, T, RH, stability,
// drought"; Series is how that requirement is satisfied across a run
// longer than one observation.
package weather

import "sort"

// Observation is one sampled weather reading at a point in simulation
// time. WindDirectionDeg follows meteorological convention: the
// direction the wind is blowing FROM, clockwise from north.
type Observation struct {
	TimeSeconds      float64
	TemperatureC     float64
	RelHumidityPct   float64
	WindSpeedMPS     float64
	WindDirectionDeg float64
	RainfallMM       float64
	HainesIndex      float64
}

// Series holds a sparse, time-ordered set of observations and
// interpolates between them.
type Series struct {
	observations []Observation
	drought      *droughtTracker
}

// NewSeries builds a Series from observations in any order; they are
// sorted by TimeSeconds. A drought tracker accumulates rainfall deficit
// across the full series for DroughtFactor.
func NewSeries(observations []Observation) *Series {
	obs := append([]Observation(nil), observations...)
	sort.Slice(obs, func(i, j int) bool { return obs[i].TimeSeconds < obs[j].TimeSeconds })
	return &Series{
		observations: obs,
		drought:      newDroughtTracker(obs),
	}
}

// At linearly interpolates temperature, humidity, wind speed and Haines
// index between the bracketing observations, holding the wind direction
// at the nearest earlier observation (direction does not interpolate
// meaningfully through a circular boundary without extra care, and the
// reference simulation's own wind field is turbulence-perturbed on top
// of this anyway). Times before the first or after the last observation
// clamp to the nearest endpoint.
func (s *Series) At(timeSeconds float64) Observation {
	n := len(s.observations)
	if n == 0 {
		return Observation{}
	}
	if timeSeconds <= s.observations[0].TimeSeconds {
		return s.observations[0]
	}
	if timeSeconds >= s.observations[n-1].TimeSeconds {
		return s.observations[n-1]
	}

	i := sort.Search(n, func(i int) bool { return s.observations[i].TimeSeconds > timeSeconds }) - 1
	a, b := s.observations[i], s.observations[i+1]
	span := b.TimeSeconds - a.TimeSeconds
	if span <= 0 {
		return a
	}
	t := (timeSeconds - a.TimeSeconds) / span

	return Observation{
		TimeSeconds:      timeSeconds,
		TemperatureC:     lerp(a.TemperatureC, b.TemperatureC, t),
		RelHumidityPct:   lerp(a.RelHumidityPct, b.RelHumidityPct, t),
		WindSpeedMPS:     lerp(a.WindSpeedMPS, b.WindSpeedMPS, t),
		WindDirectionDeg: a.WindDirectionDeg,
		RainfallMM:       lerp(a.RainfallMM, b.RainfallMM, t),
		HainesIndex:      lerp(a.HainesIndex, b.HainesIndex, t),
	}
}

// DroughtFactor returns the Keetch-Byram-style drought multiplier (0..10)
// at timeSeconds, derived from cumulative rainfall deficit up to that
// point in the series.
func (s *Series) DroughtFactor(timeSeconds float64) float64 {
	return s.drought.at(timeSeconds)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
