// Package field implements the CPU field solver: a grid of temperature,
// level-set, fuel, moisture and oxygen state advanced one tick at a time
// by a fixed operator-split kernel sequence. Cells are stored as flat
// row-major slices (idx = y*W + x) rather than a 2D slice-of-slices, the
// layout the reference codebase uses for its terrain and resource grids
// (terrain/terrain.go, systems/resource_field.go) because it keeps a row
// contiguous for cache-friendly fork-join row-parallelism.
package field

import (
	"math"

	"github.com/blazeforge/ember/fuel"
	"github.com/blazeforge/ember/noise"
	"github.com/blazeforge/ember/physics"
	"github.com/blazeforge/ember/simerr"
	"github.com/blazeforge/ember/units"
)

// Dimensions describes a uniform-spacing grid.
type Dimensions struct {
	W, H int
	Dx   float64 // meters per cell, uniform in x and y
}

// Index converts a (x,y) grid coordinate into a flat row-major offset.
func (d Dimensions) Index(x, y int) int { return y*d.W + x }

// CellArea returns the area of one cell in square meters.
func (d Dimensions) CellArea() float64 { return d.Dx * d.Dx }

// InBounds reports whether (x,y) is a valid cell coordinate.
func (d Dimensions) InBounds(x, y int) bool {
	return x >= 0 && x < d.W && y >= 0 && y < d.H
}

// Config holds the tunable coefficients that shape the level-set and
// combustion kernels, mirroring spec.md's §6 configuration table. The sim
// driver populates this from config.Cfg(); field itself has no global
// state.
type Config struct {
	CurvatureCoeff      float64 // kappa_coeff, default 0.25
	NoiseAmplitude      float64 // A_noise, default 0.05
	SelfHeatingFraction float64 // default 0.4
	FuelNoiseSeed       int64
	FuelNoiseScale      float64 // 1/meters, spatial period 10-50m per spec.md 4.3
}

// DefaultConfig returns the spec-documented defaults.
func DefaultConfig() Config {
	return Config{
		CurvatureCoeff:      0.25,
		NoiseAmplitude:      0.05,
		SelfHeatingFraction: 0.4,
		FuelNoiseSeed:       1,
		FuelNoiseScale:      1.0 / 25.0,
	}
}

// Field is the CPU field solver. It owns ping-pong buffers for the two
// fields that need neighbour reads during their own update (temperature
// and the level set) and single buffers for fields whose kernels only
// ever read and write their own cell (fuel, moisture, oxygen) -- matching
// spec.md §5's "ping-pong buffer pair guarantees no read-after-write
// hazard" note, applied only where a hazard could actually occur.
type Field struct {
	dims Dimensions
	cfg  Config

	t, tNext     []float64
	phi, phiNext []float64

	fuelFraction []float64 // 0..1 of full load remaining, per cell
	oxygen       []float64 // mass fraction, per cell
	moisture     []fuel.MoistureState
	fuelModel    []fuel.Model

	heatForcing []float64 // kJ/m^2 queued for the next heat-transfer step
	ros         []float64 // emergent spread rate, m/s

	windX, windY []float64

	elevation      []float64 // meters, static per cell; nil until SetElevationField
	valleyRadBoost []float64 // precomputed cross-valley radiative multiplier, per cell

	noiseFuel *noise.Field

	tAmbient float64
	simTime  float64

	pool *workerPool

	suppressionHook func(x, y int, ros float64) float64
}

// New constructs a field with every cell initialised to the given fuel
// model and ambient temperature, unburned (phi = +1 cell width) and fully
// moist per the supplied moisture state.
func New(dims Dimensions, cfg Config, defaultFuel fuel.Model, initialMoisture fuel.MoistureState, tAmbientK float64) (*Field, error) {
	if dims.W <= 0 || dims.H <= 0 {
		return nil, simerr.Newf(simerr.InvalidInput, "field dimensions must be positive, got %dx%d", dims.W, dims.H)
	}
	if dims.Dx <= 0 {
		return nil, simerr.Newf(simerr.InvalidInput, "cell size Dx must be positive, got %v", dims.Dx)
	}
	n := dims.W * dims.H
	f := &Field{
		dims:         dims,
		cfg:          cfg,
		t:            make([]float64, n),
		tNext:        make([]float64, n),
		phi:          make([]float64, n),
		phiNext:      make([]float64, n),
		fuelFraction: make([]float64, n),
		oxygen:       make([]float64, n),
		moisture:     make([]fuel.MoistureState, n),
		fuelModel:    make([]fuel.Model, n),
		heatForcing:  make([]float64, n),
		ros:          make([]float64, n),
		windX:        make([]float64, n),
		windY:        make([]float64, n),
		noiseFuel:    noise.New(noise.DeriveSeed(cfg.FuelNoiseSeed, noise.SeedPrimeFuelHeterogeneity)),
		tAmbient:     tAmbientK,
		pool:         newWorkerPool(),
	}
	for i := 0; i < n; i++ {
		f.t[i] = tAmbientK
		f.tNext[i] = tAmbientK
		f.phi[i] = dims.Dx
		f.phiNext[i] = dims.Dx
		f.fuelFraction[i] = 1.0
		f.oxygen[i] = units.AmbientOxygenFraction
		f.moisture[i] = initialMoisture
		f.fuelModel[i] = defaultFuel
	}
	return f, nil
}

// Dimensions returns the grid shape.
func (f *Field) Dimensions() Dimensions { return f.dims }

// IsGPUAccelerated always reports false: only the CPU backend is
// implemented (spec.md §4.4 only requires CPU).
func (f *Field) IsGPUAccelerated() bool { return false }

// SimTime returns cumulative simulated seconds.
func (f *Field) SimTime() float64 { return f.simTime }

// SetFuelCell overrides the fuel model for a single cell, used by callers
// laying out heterogeneous terrain before the first tick.
func (f *Field) SetFuelCell(x, y int, m fuel.Model) {
	if !f.dims.InBounds(x, y) {
		return
	}
	f.fuelModel[f.dims.Index(x, y)] = m
}

// SetWindField replaces the per-cell wind vector arrays for the next
// tick. Both slices must be length W*H; the sim driver builds these from
// the weather system plus turbulent-wind perturbation each tick.
func (f *Field) SetWindField(windX, windY []float64) error {
	n := f.dims.W * f.dims.H
	if len(windX) != n || len(windY) != n {
		return simerr.Newf(simerr.InvalidInput, "wind field length mismatch: want %d, got %d/%d", n, len(windX), len(windY))
	}
	copy(f.windX, windX)
	copy(f.windY, windY)
	return nil
}

// SetElevationField installs the static terrain elevation (meters) this
// grid sits on and precomputes, once, the per-cell cross-valley
// radiative-exchange boost (Butler 1998, Sharples 2009): cells tucked
// into a narrow valley see extra radiant preheat from the opposing
// valley wall. elev must be length W*H, row-major.
func (f *Field) SetElevationField(elev []float64) error {
	n := f.dims.W * f.dims.H
	if len(elev) != n {
		return simerr.Newf(simerr.InvalidInput, "elevation field length mismatch: want %d, got %d", n, len(elev))
	}
	f.elevation = make([]float64, n)
	copy(f.elevation, elev)

	dims := f.dims
	sample := func(x, y float64) float64 {
		gx := int(x / dims.Dx)
		gy := int(y / dims.Dx)
		if gx < 0 {
			gx = 0
		}
		if gx >= dims.W {
			gx = dims.W - 1
		}
		if gy < 0 {
			gy = 0
		}
		if gy >= dims.H {
			gy = dims.H - 1
		}
		return f.elevation[dims.Index(gx, gy)]
	}

	sampleRadius := dims.Dx * 5
	f.valleyRadBoost = make([]float64, n)
	for gy := 0; gy < dims.H; gy++ {
		for gx := 0; gx < dims.W; gx++ {
			x, y := (float64(gx)+0.5)*dims.Dx, (float64(gy)+0.5)*dims.Dx
			geom := physics.DetectValleyGeometry(sample, x, y, sampleRadius)
			if !geom.InValley {
				continue
			}
			f.valleyRadBoost[dims.Index(gx, gy)] = physics.CrossValleyViewFactor(geom.WidthM, geom.DepthM)
		}
	}
	return nil
}

// SetAmbientTemperature sets T_amb for the Dirichlet boundary and ambient
// radiative loss term.
func (f *Field) SetAmbientTemperature(tAmbientK float64) { f.tAmbient = tAmbientK }

// SetSuppressionHook installs a per-cell ROS attenuation callback, called
// once per tick after ROS refresh and before the level-set step consumes
// it, per spec.md §4.8 step 6 ("the suppression grid attenuates spread
// rate..."). A nil hook disables attenuation.
func (f *Field) SetSuppressionHook(hook func(x, y int, ros float64) float64) {
	f.suppressionHook = hook
}

func (f *Field) applySuppressionHook() {
	if f.suppressionHook == nil {
		return
	}
	dims := f.dims
	for y := 0; y < dims.H; y++ {
		for x := 0; x < dims.W; x++ {
			i := dims.Index(x, y)
			f.ros[i] = f.suppressionHook(x, y, f.ros[i])
		}
	}
}

// ReadTemperature returns a copy of the temperature field, Kelvin.
func (f *Field) ReadTemperature() []float64 {
	out := make([]float64, len(f.t))
	copy(out, f.t)
	return out
}

// ReadLevelSet returns a copy of the level-set field, meters.
func (f *Field) ReadLevelSet() []float64 {
	out := make([]float64, len(f.phi))
	copy(out, f.phi)
	return out
}

// ReadROS returns a copy of the emergent spread-rate field, m/s.
func (f *Field) ReadROS() []float64 {
	out := make([]float64, len(f.ros))
	copy(out, f.ros)
	return out
}

// IgniteAt sets phi negative and temperature to 600K within a disk of the
// given radius (meters) centered at world coordinates (x,y), per spec.md
// §4.4's "geometric ignition helper".
func (f *Field) IgniteAt(x, y, radius float64) {
	dx := f.dims.Dx
	r2 := radius * radius
	for gy := 0; gy < f.dims.H; gy++ {
		wy := (float64(gy) + 0.5) * dx
		for gx := 0; gx < f.dims.W; gx++ {
			wx := (float64(gx) + 0.5) * dx
			ddx, ddy := wx-x, wy-y
			d2 := ddx*ddx + ddy*ddy
			if d2 > r2 {
				continue
			}
			i := f.dims.Index(gx, gy)
			d := math.Sqrt(d2)
			f.phi[i] = d - radius
			f.t[i] = 600.0
		}
	}
}

// BurningCells reports how many cells currently have phi < 0.
func (f *Field) BurningCells() int {
	n := 0
	for _, v := range f.phi {
		if v < 0 {
			n++
		}
	}
	return n
}

// BurnedArea returns the total area (m^2) of cells with phi < 0.
func (f *Field) BurnedArea() float64 {
	return float64(f.BurningCells()) * f.dims.CellArea()
}

// FuelConsumed returns the total mass (kg) of fuel burned so far, summed
// over cells, using each cell's fuel model bulk density and depth as the
// full-load reference.
func (f *Field) FuelConsumed() float64 {
	area := f.dims.CellArea()
	total := 0.0
	for i, frac := range f.fuelFraction {
		m := f.fuelModel[i]
		fullLoad := m.BulkDensity * m.FuelBedDepth * area
		total += fullLoad * (1 - frac)
	}
	return total
}
