package field

import (
	"math"

	"github.com/blazeforge/ember/replication"
	"github.com/blazeforge/ember/units"
)

// fixedSqrt computes sqrt(v) for v >= 0 by routing through the
// replication package's integer Newton-Babylonian square root, so the
// level-set step's own gradient-magnitude and curvature terms -- which
// feed directly into phi, the quantity that crosses the replication
// boundary -- use the same bit-reproducible sqrt on every host, per
// spec.md §4.7. v is quantized to the same Q10 fixed-point scale
// QuantizePhi uses before the integer sqrt, then dequantized back.
func fixedSqrt(v float64) float64 {
	if v <= 0 {
		return 0
	}
	vFixed := int64(v * units.PhiFixedPointScale)
	return float64(replication.FixedSqrt(vFixed)) / units.PhiFixedPointScale
}

// stepLevelSet advances phi by one tick using a Godunov-upwind estimate
// of |grad phi|, a curvature correction, and a noise-driven stochastic
// perturbation, per spec.md §4.4. Boundary rows/columns are copied
// unchanged rather than evolved.
func (f *Field) stepLevelSet(dt, simTime float64) {
	dims := f.dims
	dx := dims.Dx
	kappaCoeff := f.cfg.CurvatureCoeff
	noiseAmp := f.cfg.NoiseAmplitude

	f.pool.forEachRow(dims.H, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < dims.W; x++ {
				i := dims.Index(x, y)

				if x == 0 || y == 0 || x == dims.W-1 || y == dims.H-1 {
					f.phiNext[i] = f.phi[i]
					continue
				}

				gradMag := godunovGradientMagnitude(f.phi, dims, x, y, dx)
				kappa := curvature(f.phi, dims, x, y, dx)

				n := f.noiseFuel.Eval3(float64(x)*f.cfg.FuelNoiseScale, float64(y)*f.cfg.FuelNoiseScale, simTime*0.1)
				rBase := f.ros[i]
				rEff := rBase * (1 + kappaCoeff*kappa) * (1 + noiseAmp*n)

				f.phiNext[i] = f.phi[i] - rEff*gradMag*dt
			}
		}
	})

	f.phi, f.phiNext = f.phiNext, f.phi
}

// godunovGradientMagnitude computes the Godunov upwind estimate of
// |grad phi| at (x,y) from one-sided differences, matching spec.md's
// formula: sqrt(max(max(D-x,0),-min(D+x,0))^2 + max(max(D-y,0),-min(D+y,0))^2).
func godunovGradientMagnitude(phi []float64, dims Dimensions, x, y int, dx float64) float64 {
	c := phi[dims.Index(x, y)]
	dxMinus := (c - phi[dims.Index(x-1, y)]) / dx
	dxPlus := (phi[dims.Index(x+1, y)] - c) / dx
	dyMinus := (c - phi[dims.Index(x, y-1)]) / dx
	dyPlus := (phi[dims.Index(x, y+1)] - c) / dx

	gx := math.Max(math.Max(dxMinus, 0), -math.Min(dxPlus, 0))
	gy := math.Max(math.Max(dyMinus, 0), -math.Min(dyPlus, 0))

	return fixedSqrt(gx*gx + gy*gy)
}

// curvature computes central-difference curvature of phi on a 3x3
// stencil: (phi_xx*phi_y^2 - 2*phi_x*phi_y*phi_xy + phi_yy*phi_x^2) /
// (phi_x^2 + phi_y^2)^1.5. Returns 0 where the gradient collapses.
func curvature(phi []float64, dims Dimensions, x, y int, dx float64) float64 {
	idx := func(ox, oy int) float64 { return phi[dims.Index(x+ox, y+oy)] }

	phiX := (idx(1, 0) - idx(-1, 0)) / (2 * dx)
	phiY := (idx(0, 1) - idx(0, -1)) / (2 * dx)
	phiXX := (idx(1, 0) - 2*idx(0, 0) + idx(-1, 0)) / (dx * dx)
	phiYY := (idx(0, 1) - 2*idx(0, 0) + idx(0, -1)) / (dx * dx)
	phiXY := (idx(1, 1) - idx(1, -1) - idx(-1, 1) + idx(-1, -1)) / (4 * dx * dx)

	grad2 := phiX*phiX + phiY*phiY
	if grad2 < 1e-12 {
		return 0
	}
	num := phiXX*phiY*phiY - 2*phiX*phiY*phiXY + phiYY*phiX*phiX
	denom := grad2 * fixedSqrt(grad2)
	return num / denom
}

// MaxCFL returns the largest Courant number max(R)*max(|grad phi|)*dt/dx
// observed across the field for the given dt, used by the driver to
// validate against the stability bound before committing a step.
func (f *Field) MaxCFL(dt float64) float64 {
	dims := f.dims
	dx := dims.Dx
	maxVal := 0.0
	for y := 1; y < dims.H-1; y++ {
		for x := 1; x < dims.W-1; x++ {
			i := dims.Index(x, y)
			g := godunovGradientMagnitude(f.phi, dims, x, y, dx)
			v := f.ros[i] * g
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal * dt / dx
}

// Reinitialize restores phi to an approximate signed distance function
// via a small number of pseudo-time relaxation sweeps, preventing
// gradient collapse/blowup as the front deforms over many ticks. The
// driver is expected to call this every N ticks rather than every tick
// (spec.md §4.4).
func (f *Field) Reinitialize(iterations int) {
	dims := f.dims
	dx := dims.Dx
	tau := 0.5 * dx

	for iter := 0; iter < iterations; iter++ {
		f.pool.forEachRow(dims.H, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				for x := 0; x < dims.W; x++ {
					i := dims.Index(x, y)
					if x == 0 || y == 0 || x == dims.W-1 || y == dims.H-1 {
						f.phiNext[i] = f.phi[i]
						continue
					}
					phi0 := f.phi[i]
					sign := phi0 / fixedSqrt(phi0*phi0+dx*dx)
					g := godunovSignedGradient(f.phi, dims, x, y, dx, sign)
					f.phiNext[i] = phi0 - tau*sign*(g-1)
				}
			}
		})
		f.phi, f.phiNext = f.phiNext, f.phi
	}
}

// godunovSignedGradient picks the upwind one-sided differences according
// to the sign of phi, the standard reinitialization-equation discretization.
func godunovSignedGradient(phi []float64, dims Dimensions, x, y int, dx, sign float64) float64 {
	c := phi[dims.Index(x, y)]
	dxMinus := (c - phi[dims.Index(x-1, y)]) / dx
	dxPlus := (phi[dims.Index(x+1, y)] - c) / dx
	dyMinus := (c - phi[dims.Index(x, y-1)]) / dx
	dyPlus := (phi[dims.Index(x, y+1)] - c) / dx

	var gx, gy float64
	if sign >= 0 {
		gx = math.Max(math.Max(dxMinus, 0), -math.Min(dxPlus, 0))
		gy = math.Max(math.Max(dyMinus, 0), -math.Min(dyPlus, 0))
	} else {
		gx = math.Max(-math.Min(dxMinus, 0), math.Max(dxPlus, 0))
		gy = math.Max(-math.Min(dyMinus, 0), math.Max(dyPlus, 0))
	}
	return fixedSqrt(gx*gx + gy*gy)
}
