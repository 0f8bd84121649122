package front

import (
	"math"
	"testing"

	"github.com/blazeforge/ember/fuel"
)

func circlePhi(w, h int, dx, cx, cy, r float64) []float64 {
	phi := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			wx, wy := float64(x)*dx, float64(y)*dx
			d := math.Hypot(wx-cx, wy-cy)
			phi[y*w+x] = d - r
		}
	}
	return phi
}

func TestExtractEmptyWhenAllPositive(t *testing.T) {
	phi := make([]float64, 20*20)
	for i := range phi {
		phi[i] = 5
	}
	poly := Extract(phi, 20, 20, 1)
	if len(poly.Vertices) != 0 {
		t.Errorf("expected no vertices for an entirely unburned field, got %d", len(poly.Vertices))
	}
}

func TestExtractEmptyWhenAllNegative(t *testing.T) {
	phi := make([]float64, 20*20)
	for i := range phi {
		phi[i] = -5
	}
	poly := Extract(phi, 20, 20, 1)
	if len(poly.Vertices) != 0 {
		t.Errorf("expected no vertices for an entirely burned field, got %d", len(poly.Vertices))
	}
}

func TestExtractCircleProducesClosedLoop(t *testing.T) {
	w, h := 40, 40
	dx := 1.0
	phi := circlePhi(w, h, dx, 20, 20, 10)
	poly := Extract(phi, w, h, dx)

	if len(poly.Vertices) == 0 {
		t.Fatal("expected vertices for a circular front")
	}
	if len(poly.FrontStarts) != 1 {
		t.Errorf("expected one connected front for a single circle, got %d", len(poly.FrontStarts))
	}

	// Each vertex in a closed loop should have exactly two edges.
	degree := make(map[int]int)
	for _, s := range poly.Segments {
		degree[s.A]++
		degree[s.B]++
	}
	for v, d := range degree {
		if d != 2 {
			t.Errorf("vertex %d has degree %d, want 2 for a closed loop", v, d)
		}
	}
}

func TestExtractVerticesLieNearRadius(t *testing.T) {
	w, h := 40, 40
	dx := 1.0
	cx, cy, r := 20.0, 20.0, 10.0
	phi := circlePhi(w, h, dx, cx, cy, r)
	poly := Extract(phi, w, h, dx)

	for _, v := range poly.Vertices {
		d := math.Hypot(v.X-cx, v.Y-cy)
		if math.Abs(d-r) > 1.0 {
			t.Errorf("vertex (%v,%v) at distance %v from center, want ~%v", v.X, v.Y, d, r)
		}
	}
}

func TestExtractTwoDisjointCirclesYieldTwoFronts(t *testing.T) {
	w, h := 60, 30
	dx := 1.0
	phi := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			wx, wy := float64(x)*dx, float64(y)*dx
			d1 := math.Hypot(wx-15, wy-15) - 5
			d2 := math.Hypot(wx-45, wy-15) - 5
			v := d1
			if d2 < v {
				v = d2
			}
			phi[y*w+x] = v
		}
	}
	poly := Extract(phi, w, h, dx)
	if len(poly.FrontStarts) != 2 {
		t.Errorf("expected 2 disjoint fronts, got %d", len(poly.FrontStarts))
	}
}

func TestGradientNormalFallsBackWhenFlat(t *testing.T) {
	phi := make([]float64, 10*10)
	nx, ny := gradientNormal(phi, 10, 10, 5, 5)
	if nx != 1 || ny != 0 {
		t.Errorf("flat-field normal = (%v,%v), want (1,0) fallback", nx, ny)
	}
}

type fakeSampler struct {
	ros      float64
	phi      map[[2]int]float64
	consumed float64
	model    fuel.Model
}

func (s fakeSampler) ROSAt(x, y float64) float64  { return s.ros }
func (s fakeSampler) PhiAt(x, y float64) float64  { return s.phi[[2]int{int(x), int(y)}] }
func (s fakeSampler) FuelAt(x, y float64) fuel.Model { return s.model }
func (s fakeSampler) FuelConsumedPerAreaAt(x, y float64) float64 { return s.consumed }

func TestAnnotateKinematicsFillsSpreadVelAndIntensity(t *testing.T) {
	grass, _ := fuel.Standard(fuel.DryGrass)
	sampler := fakeSampler{ros: 0.5, consumed: 1.0, model: grass, phi: map[[2]int]float64{}}
	poly := Polyline{Vertices: []Vertex{{X: 10, Y: 10}}}

	AnnotateKinematics(&poly, sampler, 1.0)

	if poly.Vertices[0].SpreadVel != 0.5 {
		t.Errorf("SpreadVel = %v, want 0.5", poly.Vertices[0].SpreadVel)
	}
	wantIntensity := grass.HeatContent * 1.0 * 0.5
	if poly.Vertices[0].IntensityKWm != wantIntensity {
		t.Errorf("IntensityKWm = %v, want %v", poly.Vertices[0].IntensityKWm, wantIntensity)
	}
}
