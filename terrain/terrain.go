// Package terrain represents a digital elevation model as a uniform 2D
// grid with derived slope/aspect, the way systems.TerrainSystem in the
// reference codebase keeps a procedurally generated collision grid
// alongside its raw cell data and a precomputed occluder cache.
package terrain

import "math"

// Terrain is a uniform-grid digital elevation model (DEM) plus a
// precomputed slope/aspect cache.
type Terrain struct {
	elev []float64 // row-major elevation in meters, len W*H

	width, height int
	cellSize      float64 // meters per cell (delta-x)

	cache     []cellCache
	cacheBuilt bool
}

type cellCache struct {
	slope  float64 // degrees
	aspect float64 // degrees, 0=N clockwise
}

// New creates a flat Terrain of the given dimensions at elevation zero.
// The slope/aspect cache is not built.
func New(width, height int, cellSize float64) *Terrain {
	return &Terrain{
		elev:     make([]float64, width*height),
		width:    width,
		height:   height,
		cellSize: cellSize,
	}
}

// Dimensions returns (width, height, cellSize).
func (t *Terrain) Dimensions() (int, int, float64) {
	return t.width, t.height, t.cellSize
}

func (t *Terrain) idx(x, y int) int {
	x = clampInt(x, 0, t.width-1)
	y = clampInt(y, 0, t.height-1)
	return y*t.width + x
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetElevation sets the raw elevation grid cell (x,y), in meters.
func (t *Terrain) SetElevation(x, y int, z float64) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	t.elev[y*t.width+x] = z
	t.cacheBuilt = false
}

// ElevationAt returns the bilinearly interpolated elevation at continuous
// grid coordinates (fx, fy), clamped to bounds.
func (t *Terrain) ElevationAt(fx, fy float64) float64 {
	fx = clampF(fx, 0, float64(t.width-1))
	fy = clampF(fy, 0, float64(t.height-1))

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x1 := clampInt(x0+1, 0, t.width-1)
	y1 := clampInt(y0+1, 0, t.height-1)

	tx := fx - float64(x0)
	ty := fy - float64(y0)

	z00 := t.elev[y0*t.width+x0]
	z10 := t.elev[y0*t.width+x1]
	z01 := t.elev[y1*t.width+x0]
	z11 := t.elev[y1*t.width+x1]

	z0 := z00*(1-tx) + z10*tx
	z1 := z01*(1-tx) + z11*tx
	return z0*(1-ty) + z1*ty
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SlopeAtHorn returns the slope in degrees at grid cell (x,y) using a
// Horn 3x3 gradient with weights {1,2,1}.
func (t *Terrain) SlopeAtHorn(x, y int) float64 {
	dzdx, dzdy := t.hornGradient(x, y)
	return math.Atan(math.Hypot(dzdx, dzdy)) * 180.0 / math.Pi
}

// AspectAtHorn returns the downslope aspect in degrees at grid cell (x,y),
// 0=N, clockwise, normalised to [0,360).
func (t *Terrain) AspectAtHorn(x, y int) float64 {
	dzdx, dzdy := t.hornGradient(x, y)
	aspect := math.Atan2(-dzdx, -dzdy) * 180.0 / math.Pi
	if aspect < 0 {
		aspect += 360.0
	}
	return aspect
}

// hornGradient computes (dz/dx, dz/dy) via the Horn 3x3 kernel.
func (t *Terrain) hornGradient(x, y int) (float64, float64) {
	z := func(dx, dy int) float64 {
		return t.elev[t.idx(x+dx, y+dy)]
	}
	d := 8.0 * t.cellSize
	dzdx := ((z(1, -1) + 2*z(1, 0) + z(1, 1)) - (z(-1, -1) + 2*z(-1, 0) + z(-1, 1))) / d
	dzdy := ((z(-1, 1) + 2*z(0, 1) + z(1, 1)) - (z(-1, -1) + 2*z(0, -1) + z(1, -1))) / d
	return dzdx, dzdy
}

// SolarRadiationFactor returns the Lambertian cosine between the surface
// normal at (x,y) and the sun direction given by azimuth/elevation
// (degrees), clamped to >=0.
func (t *Terrain) SolarRadiationFactor(x, y int, sunAzimuth, sunElevation float64) float64 {
	slopeDeg := t.SlopeAtHorn(x, y)
	aspectDeg := t.AspectAtHorn(x, y)

	slope := slopeDeg * math.Pi / 180.0
	aspect := aspectDeg * math.Pi / 180.0
	az := sunAzimuth * math.Pi / 180.0
	el := sunElevation * math.Pi / 180.0

	// Surface normal in a local ENU frame, tilted by slope toward aspect.
	nx := math.Sin(slope) * math.Sin(aspect)
	ny := math.Sin(slope) * math.Cos(aspect)
	nz := math.Cos(slope)

	// Sun direction vector.
	sx := math.Cos(el) * math.Sin(az)
	sy := math.Cos(el) * math.Cos(az)
	sz := math.Sin(el)

	cos := nx*sx + ny*sy + nz*sz
	if cos < 0 {
		return 0
	}
	return cos
}

// BuildCache precomputes slope/aspect at every grid cell, avoiding
// recomputation in per-tick hot loops.
func (t *Terrain) BuildCache() {
	t.cache = make([]cellCache, t.width*t.height)
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			i := y*t.width + x
			t.cache[i] = cellCache{
				slope:  t.SlopeAtHorn(x, y),
				aspect: t.AspectAtHorn(x, y),
			}
		}
	}
	t.cacheBuilt = true
}

// CachedSlope returns the precomputed slope in degrees at (x,y). Panics
// if BuildCache has not been called; callers in the hot path are expected
// to build the cache once after terrain construction.
func (t *Terrain) CachedSlope(x, y int) float64 {
	return t.cache[t.idx(x, y)].slope
}

// CachedAspect returns the precomputed aspect in degrees at (x,y).
func (t *Terrain) CachedAspect(x, y int) float64 {
	return t.cache[t.idx(x, y)].aspect
}

// CacheBuilt reports whether BuildCache has been called since the last
// elevation mutation.
func (t *Terrain) CacheBuilt() bool { return t.cacheBuilt }
