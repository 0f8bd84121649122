package sim

import (
	"github.com/blazeforge/ember/units"
	"github.com/blazeforge/ember/weather"
)

// weatherState is the per-tick weather scalar set spec.md §4.8 step 1
// requires the driver to supply: "weather provides U, T, RH, stability,
// drought". WindDirectionDeg follows meteorological convention (the
// direction the wind blows FROM).
type weatherState struct {
	TemperatureC     float64
	RelHumidityPct   float64
	WindSpeedMPS     float64
	WindDirectionDeg float64
	DroughtFactor    float64
	HainesIndex      float64
}

// weatherSeriesSource holds an attached observation series plus the
// bookkeeping needed to let an explicit SetWeather call override it until
// the series is consulted again on the following tick.
type weatherSeriesSource struct {
	series    *weather.Series
	overrideUntilNextTick bool
}

// SetWeather pushes an explicit weather reading, overriding any attached
// series until that series is next consulted (the following tick), per
// spec.md §6's SetWeather(temperature, humidity, wind_speed,
// wind_direction, drought_factor) surface.
func (s *Simulation) SetWeather(temperatureC units.Celsius, relHumidityPct float64, windSpeed units.MetersPerSecond, windDirection units.Degrees, droughtFactor float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weather = weatherState{
		TemperatureC:     float64(temperatureC),
		RelHumidityPct:   relHumidityPct,
		WindSpeedMPS:     float64(windSpeed),
		WindDirectionDeg: float64(units.NormalizeDegrees(windDirection)),
		DroughtFactor:    droughtFactor,
		HainesIndex:      s.weather.HainesIndex,
	}
	if s.weatherSeries != nil {
		s.weatherSeries.overrideUntilNextTick = true
	}
}

// AttachWeatherSeries seeds per-tick weather from series.At(simTime) going
// forward, a supplemental feature beyond the core SetWeather surface for
// driving a run off recorded observations rather than one fixed reading.
// A SetWeather call still wins for the tick it lands on; the series
// resumes driving the tick after.
func (s *Simulation) AttachWeatherSeries(series *weather.Series) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weatherSeries = &weatherSeriesSource{series: series}
}

// stepWeather advances the weather state for the coming tick, consulting
// the attached series unless an explicit SetWeather call is still in
// effect for this tick.
func (s *Simulation) stepWeather(simTime float64) {
	ws := s.weatherSeries
	if ws == nil {
		return
	}
	if ws.overrideUntilNextTick {
		ws.overrideUntilNextTick = false
		return
	}
	obs := ws.series.At(simTime)
	s.weather = weatherState{
		TemperatureC:     obs.TemperatureC,
		RelHumidityPct:   obs.RelHumidityPct,
		WindSpeedMPS:     obs.WindSpeedMPS,
		WindDirectionDeg: obs.WindDirectionDeg,
		DroughtFactor:    ws.series.DroughtFactor(simTime),
		HainesIndex:      obs.HainesIndex,
	}
}
