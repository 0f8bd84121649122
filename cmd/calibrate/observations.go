package main

import (
	"os"

	"github.com/gocarina/gocsv"

	"github.com/blazeforge/ember/fuel"
)

// Observation is one reference spread-rate measurement a calibration run
// fits against: a fuel bundle under known environmental conditions, and
// the rate of spread actually observed in the field or a controlled burn.
type Observation struct {
	FuelBundle       string  `csv:"fuel_bundle"`
	MoistureFraction float64 `csv:"moisture_fraction"`
	WindSpeedMPS     float64 `csv:"wind_speed_mps"`
	SlopeDegrees     float64 `csv:"slope_degrees"`
	AmbientTempC     float64 `csv:"ambient_temp_c"`
	ObservedROSMMin  float64 `csv:"observed_ros_m_min"`
}

// LoadObservations reads a CSV of reference spread-rate observations. The
// expected columns are the Observation struct tags above.
func LoadObservations(path string) ([]Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var obs []Observation
	if err := gocsv.UnmarshalFile(f, &obs); err != nil {
		return nil, err
	}
	return obs, nil
}

// defaultObservations returns a small built-in reference set covering
// every standard fuel bundle, used when no --observations file is given.
// Values are representative mid-range Rothermel-regime spread rates, not
// a substitute for a real calibration dataset.
func defaultObservations() []Observation {
	return []Observation{
		{FuelBundle: fuel.DryGrass, MoistureFraction: 0.06, WindSpeedMPS: 5.0, SlopeDegrees: 0, AmbientTempC: 30, ObservedROSMMin: 12.0},
		{FuelBundle: fuel.DryGrass, MoistureFraction: 0.10, WindSpeedMPS: 8.0, SlopeDegrees: 5, AmbientTempC: 32, ObservedROSMMin: 22.0},
		{FuelBundle: fuel.Heath, MoistureFraction: 0.12, WindSpeedMPS: 6.0, SlopeDegrees: 10, AmbientTempC: 28, ObservedROSMMin: 4.5},
		{FuelBundle: fuel.MalleeHeath, MoistureFraction: 0.10, WindSpeedMPS: 7.0, SlopeDegrees: 0, AmbientTempC: 30, ObservedROSMMin: 3.0},
		{FuelBundle: fuel.Spinifex, MoistureFraction: 0.08, WindSpeedMPS: 9.0, SlopeDegrees: 0, AmbientTempC: 35, ObservedROSMMin: 6.5},
		{FuelBundle: fuel.ForestLitter, MoistureFraction: 0.14, WindSpeedMPS: 4.0, SlopeDegrees: 5, AmbientTempC: 25, ObservedROSMMin: 1.2},
		{FuelBundle: fuel.Buttongrass, MoistureFraction: 0.15, WindSpeedMPS: 5.0, SlopeDegrees: 0, AmbientTempC: 22, ObservedROSMMin: 2.5},
		{FuelBundle: fuel.StringybarkForest, MoistureFraction: 0.11, WindSpeedMPS: 6.0, SlopeDegrees: 15, AmbientTempC: 30, ObservedROSMMin: 2.0},
	}
}
