package field

import (
	"math"

	"github.com/blazeforge/ember/fuel"
	"github.com/blazeforge/ember/units"
)

// neighbor8Offsets are the eight grid-relative (dx, dy) offsets used for
// the radiative view-factor sum, ordered so the four axis-aligned
// neighbours (distance 1 cell) come before the four diagonal neighbours
// (distance sqrt(2) cells).
var neighbor8Offsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// stepHeatTransfer advances temperature by one tick using diffusion,
// 8-neighbour radiative exchange, ambient radiative loss and first-order
// upwind advection, per spec.md §4.4. Boundary cells are pinned to
// T_ambient (Dirichlet). Any heat forcing queued by the previous
// combustion step is folded in as an additional source term and then
// drained.
func (f *Field) stepHeatTransfer(dt float64) {
	dims := f.dims
	dx := dims.Dx
	dx2 := dx * dx
	sigma := units.StefanBoltzmann
	tAmb := f.tAmbient
	tAmb4 := tAmb * tAmb * tAmb * tAmb

	f.pool.forEachRow(dims.H, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < dims.W; x++ {
				i := dims.Index(x, y)

				if x == 0 || y == 0 || x == dims.W-1 || y == dims.H-1 {
					f.tNext[i] = tAmb
					continue
				}

				m := f.fuelModel[i]
				t := f.t[i]

				alpha := thermalDiffusivity(m)
				tE := f.t[dims.Index(x+1, y)]
				tW := f.t[dims.Index(x-1, y)]
				tN := f.t[dims.Index(x, y-1)]
				tS := f.t[dims.Index(x, y+1)]
				diff := alpha * (tE + tW + tN + tS - 4*t) / dx2

				emissivity := 0.7
				if f.phi[i] < 0 {
					emissivity = 0.9
				}

				radNet := 0.0
				t4 := t * t * t * t
				for k, off := range neighbor8Offsets {
					nx, ny := x+off[0], y+off[1]
					if !dims.InBounds(nx, ny) {
						continue
					}
					tn := f.t[dims.Index(nx, ny)]
					tn4 := tn * tn * tn * tn
					d := 1.0
					if k >= 4 {
						d = math.Sqrt2
					}
					d *= dx
					viewFactor := 1.0 / (math.Pi * d * d)
					radNet += emissivity * sigma * (tn4 - t4) * viewFactor
				}

				if f.valleyRadBoost != nil {
					radNet *= 1.0 + f.valleyRadBoost[i]
				}

				radAmb := emissivity * sigma * (t4 - tAmb4)

				ux, uy := f.windX[i], f.windY[i]
				adv := upwindAdvection(f.t, dims, x, y, ux, uy, dx)

				forcing := f.heatForcing[i]

				mc := thermalMass(m)
				dT := dt * (diff + radNet - radAmb - adv + forcing/dt) / mc
				next := t + dT
				if next < tAmb-50 {
					next = tAmb - 50
				}
				if next > 2000 {
					next = 2000
				}
				f.tNext[i] = next
			}
		}
	})

	f.t, f.tNext = f.tNext, f.t
	for i := range f.heatForcing {
		f.heatForcing[i] = 0
	}
}

// thermalDiffusivity derives an effective alpha (m^2/s) for the fuel bed
// from its bulk density and specific heat, scaled so a dense, deep bed
// diffuses heat more slowly than a sparse one.
func thermalDiffusivity(m fuel.Model) float64 {
	mass := m.BulkDensity * m.FuelBedDepth
	if mass <= 0 {
		return 1e-3
	}
	// kJ/(kg*K) -> effective diffusivity scaling; the 1e-3 base matches a
	// loosely packed litter bed's observed thermal spread rate.
	return 1e-3 / (mass * m.SpecificHeat / 1000)
}

// thermalMass returns m*c_p per unit area (kJ/(m^2*K)) for the fuel bed,
// the denominator of the heat-transfer update.
func thermalMass(m fuel.Model) float64 {
	mass := m.BulkDensity * m.FuelBedDepth
	if mass <= 0 {
		mass = 0.1
	}
	return mass * m.SpecificHeat
}

// upwindAdvection computes first-order upwind advection of T by the wind
// vector (ux, uy) at cell (x,y), component-wise.
func upwindAdvection(t []float64, dims Dimensions, x, y int, ux, uy, dx float64) float64 {
	i := dims.Index(x, y)
	cur := t[i]

	var dTdx float64
	if ux >= 0 {
		xm := x - 1
		if xm < 0 {
			xm = 0
		}
		dTdx = (cur - t[dims.Index(xm, y)]) / dx
	} else {
		xp := x + 1
		if xp >= dims.W {
			xp = dims.W - 1
		}
		dTdx = (t[dims.Index(xp, y)] - cur) / dx
	}

	var dTdy float64
	if uy >= 0 {
		ym := y - 1
		if ym < 0 {
			ym = 0
		}
		dTdy = (cur - t[dims.Index(x, ym)]) / dx
	} else {
		yp := y + 1
		if yp >= dims.H {
			yp = dims.H - 1
		}
		dTdy = (t[dims.Index(x, yp)] - cur) / dx
	}

	return ux*dTdx + uy*dTdy
}
