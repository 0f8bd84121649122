// Command calibrate fits per-fuel-bundle Rothermel calibration factors
// against reference spread-rate observations, the wildfire analogue of
// the reference codebase's cmd/optimize CMA-ES ecosystem-parameter
// search: same gonum/optimize-driven fit-log-save-best shape, a
// different objective and parameter space.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/blazeforge/ember/config"
)

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	observationsPath := flag.String("observations", "", "Reference spread-rate observations CSV (empty = built-in defaults)")
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxEvals := flag.Int("max-evals", 500, "Maximum number of objective evaluations")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var obs []Observation
	if *observationsPath != "" {
		var err error
		obs, err = LoadObservations(*observationsPath)
		if err != nil {
			log.Fatalf("failed to load observations: %v", err)
		}
	} else {
		obs = defaultObservations()
	}
	if len(obs) == 0 {
		log.Fatal("no observations to calibrate against")
	}

	params := NewParamVector(obs)
	evaluator := NewFitnessEvaluator(params, obs)

	problem := optimize.Problem{
		Func: evaluator.Evaluate,
	}
	settings := &optimize.Settings{FuncEvaluations: *maxEvals}
	method := &optimize.NelderMead{}

	logPath := filepath.Join(*outputDir, "calibrate_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	defer logWriter.Flush()

	header := []string{"eval", "sum_sq_residual", "rmse"}
	header = append(header, params.Bundles...)
	logWriter.Write(header)

	evalCount := 0
	bestFitness := problem.Func(params.DefaultVector())
	bestParams := params.Clamp(params.DefaultVector())
	startTime := time.Now()

	originalFunc := problem.Func
	problem.Func = func(x []float64) float64 {
		fitness := originalFunc(x)
		evalCount++

		clamped := params.Clamp(x)
		if fitness < bestFitness {
			bestFitness = fitness
			bestParams = append([]float64(nil), clamped...)
		}

		row := []string{strconv.Itoa(evalCount), fmt.Sprintf("%.6f", fitness), fmt.Sprintf("%.6f", evaluator.RMSE(x))}
		for _, v := range clamped {
			row = append(row, fmt.Sprintf("%.6f", v))
		}
		logWriter.Write(row)
		logWriter.Flush()

		elapsed := time.Since(startTime)
		fmt.Printf("Eval %d/%d: rmse=%.3f m/min (best_sum_sq=%.3f) elapsed: %s\n",
			evalCount, *maxEvals, evaluator.RMSE(x), bestFitness, formatDuration(elapsed))

		return fitness
	}

	fmt.Printf("Calibrating %d fuel bundles against %d observations, max_evals=%d\n",
		params.Dim(), len(obs), *maxEvals)

	_, err = optimize.Minimize(problem, params.DefaultVector(), settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	totalTime := time.Since(startTime)
	fmt.Printf("\nCalibration complete after %d evaluations in %s\n", evalCount, formatDuration(totalTime))
	fmt.Printf("Best RMSE: %.3f m/min\n\n", evaluator.RMSE(bestParams))

	fmt.Println("Best calibration factors:")
	bestCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to reload config: %v", err)
	}
	bestCfg.FuelBundles = make([]config.FuelBundleOverride, len(params.Bundles))
	for i, name := range params.Bundles {
		fmt.Printf("  %s: %.6f\n", name, bestParams[i])
		bestCfg.FuelBundles[i] = config.FuelBundleOverride{
			Name:                 name,
			RothermelCalibration: bestParams[i],
		}
	}

	configOutPath := filepath.Join(*outputDir, "calibrated_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write calibrated config: %v", err)
	} else {
		fmt.Printf("\nCalibrated config saved to: %s\n", configOutPath)
	}
}
