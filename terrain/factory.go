package terrain

import "math"

// NewFlat creates a Terrain with uniform elevation.
func NewFlat(width, height int, cellSize, elevation float64) *Terrain {
	t := New(width, height, cellSize)
	for i := range t.elev {
		t.elev[i] = elevation
	}
	t.BuildCache()
	return t
}

// HillParams configures a single-Gaussian-hill terrain.
type HillParams struct {
	PeakHeight float64 // meters above base elevation
	PeakX      float64 // grid-cell x of the peak
	PeakY      float64 // grid-cell y of the peak
	Radius     float64 // in grid cells, controls the Gaussian falloff
	BaseElev   float64
}

// NewSingleHill creates a terrain with one Gaussian hill.
func NewSingleHill(width, height int, cellSize float64, p HillParams) *Terrain {
	t := New(width, height, cellSize)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) - p.PeakX
			dy := float64(y) - p.PeakY
			r2 := dx*dx + dy*dy
			g := math.Exp(-r2 / (2 * p.Radius * p.Radius))
			t.elev[y*width+x] = p.BaseElev + p.PeakHeight*g
		}
	}
	t.BuildCache()
	return t
}

// TwinHillsParams configures a twin-hills-with-valley terrain: two
// Gaussian hills separated along x, with a saddle valley between them.
type TwinHillsParams struct {
	PeakHeight  float64
	Separation  float64 // grid cells between the two peaks
	Radius      float64
	ValleyDepth float64 // how much the saddle is depressed below the midline
	BaseElev    float64
}

// NewTwinHillsValley creates a terrain with two hills and a valley
// channel between them, useful for exercising valley/chimney wind effects.
func NewTwinHillsValley(width, height int, cellSize float64, p TwinHillsParams) *Terrain {
	t := New(width, height, cellSize)
	cx := float64(width) / 2
	cy := float64(height) / 2
	x1 := cx - p.Separation/2
	x2 := cx + p.Separation/2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx, fy := float64(x), float64(y)
			g1 := gaussian(fx-x1, fy-cy, p.Radius)
			g2 := gaussian(fx-x2, fy-cy, p.Radius)
			hills := p.PeakHeight * math.Max(g1, g2)

			// Saddle valley: depress the midline between the two peaks,
			// tapering off away from the cy centerline.
			distFromAxis := math.Abs(fy - cy)
			alongValley := clampF(1-math.Abs(fx-cx)/(p.Separation/2+1e-9), 0, 1)
			valley := p.ValleyDepth * alongValley * math.Exp(-distFromAxis*distFromAxis/(2*p.Radius*p.Radius/4))

			t.elev[y*width+x] = p.BaseElev + hills - valley
		}
	}
	t.BuildCache()
	return t
}

func gaussian(dx, dy, radius float64) float64 {
	r2 := dx*dx + dy*dy
	return math.Exp(-r2 / (2 * radius * radius))
}

// NewFromHeightmap creates a Terrain from a row-major heightmap of the
// given dimensions. Returns an error if the heightmap length does not
// match width*height, matching the InvalidInput error kind expected of
// terrain-file loaders (an external collaborator; this constructor is the
// narrow interface this package exposes to them).
func NewFromHeightmap(width, height int, cellSize float64, heights []float64) (*Terrain, error) {
	if width <= 0 || height <= 0 {
		return nil, errInvalidDimensions
	}
	if len(heights) != width*height {
		return nil, errHeightmapSize
	}
	t := New(width, height, cellSize)
	copy(t.elev, heights)
	t.BuildCache()
	return t, nil
}
