package main

import (
	"math"

	"github.com/blazeforge/ember/fuel"
	"github.com/blazeforge/ember/physics"
)

// ParamVector holds one Rothermel calibration factor per fuel bundle
// present in the observation set, in a fixed order so it can be handled
// as a flat []float64 by gonum/optimize.
type ParamVector struct {
	Bundles []string
	Min     float64
	Max     float64
	Default float64
}

// NewParamVector builds a parameter vector covering every distinct fuel
// bundle referenced by obs.
func NewParamVector(obs []Observation) *ParamVector {
	seen := make(map[string]bool)
	var bundles []string
	for _, o := range obs {
		if !seen[o.FuelBundle] {
			seen[o.FuelBundle] = true
			bundles = append(bundles, o.FuelBundle)
		}
	}
	return &ParamVector{Bundles: bundles, Min: 0.005, Max: 0.5, Default: 0.05}
}

func (pv *ParamVector) Dim() int { return len(pv.Bundles) }

func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, pv.Dim())
	for i := range v {
		v[i] = pv.Default
	}
	return v
}

// Clamp keeps every calibration factor within a physically sane range:
// the standard bundles' empirical default is 0.05, so bundles should not
// drift far from it without strong evidence in the observation set.
func (pv *ParamVector) Clamp(x []float64) []float64 {
	clamped := make([]float64, len(x))
	for i, v := range x {
		if v < pv.Min {
			v = pv.Min
		}
		if v > pv.Max {
			v = pv.Max
		}
		clamped[i] = v
	}
	return clamped
}

// FitnessEvaluator scores a calibration-factor vector by the sum of
// squared residuals between the Rothermel model (run with that vector's
// factors) and the observed spread rates, mirroring the reference
// optimizer's seed-averaged fitness but over a fixed, deterministic
// observation set rather than stochastic simulation runs.
type FitnessEvaluator struct {
	params *ParamVector
	obs    []Observation
}

func NewFitnessEvaluator(params *ParamVector, obs []Observation) *FitnessEvaluator {
	return &FitnessEvaluator{params: params, obs: obs}
}

// Evaluate computes the sum of squared ROS residuals (lower is better)
// for a calibration-factor vector, one factor per pv.Bundles entry.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	clamped := fe.params.Clamp(x)

	factorByBundle := make(map[string]float64, len(fe.params.Bundles))
	for i, name := range fe.params.Bundles {
		factorByBundle[name] = clamped[i]
	}

	var sumSq float64
	for _, o := range fe.obs {
		model, ok := fuel.Standard(o.FuelBundle)
		if !ok {
			continue
		}
		model = model.WithCalibration(factorByBundle[o.FuelBundle])

		predicted := physics.RothermelSpreadRate(model, physics.RothermelInputs{
			MoistureFraction: o.MoistureFraction,
			WindSpeedMPS:     o.WindSpeedMPS,
			SlopeDegrees:     o.SlopeDegrees,
			AmbientTempC:     o.AmbientTempC,
		})

		residual := predicted - o.ObservedROSMMin
		sumSq += residual * residual
	}
	return sumSq
}

// RMSE reports the root-mean-square spread-rate error for a calibration
// vector, a more interpretable progress metric than the raw sum of
// squares the optimizer minimizes.
func (fe *FitnessEvaluator) RMSE(x []float64) float64 {
	if len(fe.obs) == 0 {
		return 0
	}
	return math.Sqrt(fe.Evaluate(x) / float64(len(fe.obs)))
}
