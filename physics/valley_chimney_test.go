package physics

import (
	"math"
	"testing"
)

// bowlSampler is a synthetic valley: a V-shaped trough running north-south,
// elevation rising with distance from the x=0 axis.
func bowlSampler(centerElev, slopePerM float64) ElevationSampler {
	return func(x, y float64) float64 {
		return centerElev + math.Abs(x)*slopePerM
	}
}

func TestDetectValleyGeometry(t *testing.T) {
	sample := bowlSampler(100.0, 2.0)
	geom := DetectValleyGeometry(sample, 0, 0, 50.0)

	if !geom.InValley {
		t.Fatalf("expected valley detection in V-shaped trough, got InValley=false")
	}
	if geom.DepthM <= 0 {
		t.Errorf("DepthM = %v, want > 0", geom.DepthM)
	}
	if geom.WidthM <= 0 {
		t.Errorf("WidthM = %v, want > 0", geom.WidthM)
	}
}

func TestDetectValleyGeometryFlatTerrain(t *testing.T) {
	flat := func(x, y float64) float64 { return 200.0 }
	geom := DetectValleyGeometry(flat, 10, 10, 50.0)
	if geom.InValley {
		t.Errorf("flat terrain should not report a valley, got %+v", geom)
	}
}

func TestValleyWindFactor(t *testing.T) {
	cases := []struct {
		name     string
		geom     ValleyGeometry
		refWidth float64
		wantMin  float64
		wantMax  float64
	}{
		{"not in valley", ValleyGeometry{InValley: false}, 200, 1.0, 1.0},
		{"narrow valley clamps high", ValleyGeometry{InValley: true, WidthM: 20}, 200, 1.5, 2.5},
		{"wide valley near open", ValleyGeometry{InValley: true, WidthM: 190}, 200, 1.0, 1.1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ValleyWindFactor(c.geom, c.refWidth)
			if got < c.wantMin || got > c.wantMax {
				t.Errorf("ValleyWindFactor() = %v, want in [%v, %v]", got, c.wantMin, c.wantMax)
			}
		})
	}
}

func TestChimneyUpdraft(t *testing.T) {
	geom := ValleyGeometry{InValley: true, DepthM: 50, DistanceFromHeadM: 100}

	if u := ChimneyUpdraft(geom, 20, 800, 500); u != 0 {
		t.Errorf("fire colder than ambient should give zero updraft, got %v", u)
	}
	if u := ChimneyUpdraft(ValleyGeometry{InValley: false}, 800, 20, 500); u != 0 {
		t.Errorf("outside a valley should give zero updraft, got %v", u)
	}
	far := ValleyGeometry{InValley: true, DepthM: 50, DistanceFromHeadM: 10000}
	if u := ChimneyUpdraft(far, 800, 20, 500); u != 0 {
		t.Errorf("beyond head threshold should give zero updraft, got %v", u)
	}

	u := ChimneyUpdraft(geom, 800, 20, 500)
	if u <= 0 {
		t.Errorf("expected positive updraft near valley head with hot fire, got %v", u)
	}
}

func TestCrossValleyViewFactor(t *testing.T) {
	if vf := CrossValleyViewFactor(500, 50); vf != 0 {
		t.Errorf("wide valley should have zero cross-valley view factor, got %v", vf)
	}
	narrow := CrossValleyViewFactor(20, 50)
	wide := CrossValleyViewFactor(80, 50)
	if narrow <= wide {
		t.Errorf("narrower valley should have a larger view factor: narrow=%v wide=%v", narrow, wide)
	}
	if narrow <= 0 || narrow > 0.5 {
		t.Errorf("view factor %v out of expected (0, 0.5] range", narrow)
	}
}
