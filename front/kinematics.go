package front

import (
	"math"

	"github.com/blazeforge/ember/fuel"
	"github.com/blazeforge/ember/physics"
)

// CellSampler supplies the per-cell fields kinematics derivation needs at
// a world-space point, letting front stay decoupled from field's
// concrete buffer layout.
type CellSampler interface {
	ROSAt(worldX, worldY float64) float64
	PhiAt(worldX, worldY float64) float64
	FuelAt(worldX, worldY float64) fuel.Model
	FuelConsumedPerAreaAt(worldX, worldY float64) float64
}

// AnnotateKinematics fills in SpreadVel, IntensityKWm and Curvature for
// every vertex in poly using the sampler, per spec.md §4.5: spread
// velocity is normal*local_ROS, intensity is a per-vertex evaluation of
// the fuel closure, curvature comes from central differences on phi
// (approximated here via a finite-difference probe around the vertex
// using PhiAt since front does not hold the raw buffer).
func AnnotateKinematics(poly *Polyline, sampler CellSampler, dx float64) {
	for i := range poly.Vertices {
		v := &poly.Vertices[i]
		ros := sampler.ROSAt(v.X, v.Y)
		v.SpreadVel = ros

		m := sampler.FuelAt(v.X, v.Y)
		consumed := sampler.FuelConsumedPerAreaAt(v.X, v.Y)
		v.IntensityKWm = physics.ByramFirelineIntensity(m.HeatContent, consumed, ros)

		v.Curvature = probeCurvature(sampler, v.X, v.Y, dx)
	}
}

// probeCurvature estimates curvature from nine point samples of phi
// around (x,y) using the same formula as field.curvature, but driven
// through the CellSampler interface instead of a raw buffer.
func probeCurvature(sampler CellSampler, x, y, dx float64) float64 {
	c := sampler.PhiAt(x, y)
	e := sampler.PhiAt(x+dx, y)
	w := sampler.PhiAt(x-dx, y)
	n := sampler.PhiAt(x, y-dx)
	s := sampler.PhiAt(x, y+dx)
	ne := sampler.PhiAt(x+dx, y-dx)
	nw := sampler.PhiAt(x-dx, y-dx)
	se := sampler.PhiAt(x+dx, y+dx)
	sw := sampler.PhiAt(x-dx, y+dx)

	phiX := (e - w) / (2 * dx)
	phiY := (s - n) / (2 * dx)
	phiXX := (e - 2*c + w) / (dx * dx)
	phiYY := (s - 2*c + n) / (dx * dx)
	phiXY := (se - ne - sw + nw) / (4 * dx * dx)

	grad2 := phiX*phiX + phiY*phiY
	if grad2 < 1e-12 {
		return 0
	}
	num := phiXX*phiY*phiY - 2*phiX*phiY*phiXY + phiYY*phiX*phiX
	return num / math.Pow(grad2, 1.5)
}
