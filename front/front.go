// Package front extracts the fire-front perimeter as a polyline from the
// level-set field using marching squares, and derives per-vertex spread
// kinematics (normal, velocity, intensity, curvature) for observers such
// as telemetry and the replication recorder.
package front

import "math"

// Vertex is one point on an extracted front segment.
type Vertex struct {
	X, Y         float64
	Z            float64 // terrain elevation at (X,Y), filled by the caller if available
	NormalX      float64
	NormalY      float64
	SpreadVel    float64 // m/s, normal * local ROS
	IntensityKWm float64 // Byram fireline intensity at this vertex
	Curvature    float64
}

// Segment is a pair of vertex indices forming one marching-squares edge.
type Segment struct {
	A, B int
}

// Polyline is the full extracted front: a flat vertex list plus the
// segments connecting them, and the starting vertex index of each
// disjoint front (a fire can have multiple disconnected perimeters).
type Polyline struct {
	Vertices    []Vertex
	Segments    []Segment
	FrontStarts []int
}

// caseEdges maps a 4-bit marching-squares case (bit order: TL, TR, BR, BL)
// to the edges it should connect. Cases 5 and 10 are the ambiguous
// saddle cases and map to two edge pairs (two separate segments),
// matching spec.md §4.5's "ambiguous cases 5 and 10 emit two separate
// segments".
//
// Edge indices: 0 = top, 1 = right, 2 = bottom, 3 = left.
var caseEdges = map[int][][2]int{
	1:  {{3, 2}},
	2:  {{2, 1}},
	3:  {{3, 1}},
	4:  {{0, 1}},
	5:  {{0, 1}, {2, 3}},
	6:  {{0, 2}},
	7:  {{3, 0}},
	8:  {{0, 3}},
	9:  {{0, 2}},
	10: {{0, 3}, {1, 2}},
	11: {{0, 1}},
	12: {{1, 3}},
	13: {{1, 2}},
	14: {{2, 3}},
}

// Extract scans a W*H row-major phi field and returns the front polyline.
// dx is the cell size in world units.
func Extract(phi []float64, w, h int, dx float64) Polyline {
	var poly Polyline
	idx := func(x, y int) float64 { return phi[y*w+x] }

	// vertexCache dedups shared edge vertices between adjacent quads,
	// keyed by a canonical grid-edge identity (not by which quad asked
	// for it) so that two quads bordering the same edge resolve to the
	// same vertex index -- without this, adjacent segments would never
	// connect and every "front" would collapse to isolated fragments.
	type edgeKey struct {
		x, y       int
		horizontal bool
	}
	vertexCache := make(map[edgeKey]int)

	getVertex := func(qx, qy, edge int) int {
		var key edgeKey
		var wx, wy float64
		var v0, v1 float64
		switch edge {
		case 0: // top: horizontal edge at (qx,qy)
			key = edgeKey{qx, qy, true}
			v0, v1 = idx(qx, qy), idx(qx+1, qy)
			t := interpFraction(v0, v1)
			wx, wy = (float64(qx)+t)*dx, float64(qy)*dx
		case 1: // right: vertical edge at (qx+1,qy)
			key = edgeKey{qx + 1, qy, false}
			v0, v1 = idx(qx+1, qy), idx(qx+1, qy+1)
			t := interpFraction(v0, v1)
			wx, wy = float64(qx+1)*dx, (float64(qy)+t)*dx
		case 2: // bottom: horizontal edge at (qx,qy+1)
			key = edgeKey{qx, qy + 1, true}
			v0, v1 = idx(qx, qy+1), idx(qx+1, qy+1)
			t := interpFraction(v0, v1)
			wx, wy = (float64(qx)+t)*dx, float64(qy+1)*dx
		case 3: // left: vertical edge at (qx,qy)
			key = edgeKey{qx, qy, false}
			v0, v1 = idx(qx, qy), idx(qx, qy+1)
			t := interpFraction(v0, v1)
			wx, wy = float64(qx)*dx, (float64(qy)+t)*dx
		}

		if i, ok := vertexCache[key]; ok {
			return i
		}

		nx, ny := gradientNormal(phi, w, h, wx/dx, wy/dx)

		v := Vertex{X: wx, Y: wy, NormalX: nx, NormalY: ny}
		poly.Vertices = append(poly.Vertices, v)
		i := len(poly.Vertices) - 1
		vertexCache[key] = i
		return i
	}

	for qy := 0; qy < h-1; qy++ {
		for qx := 0; qx < w-1; qx++ {
			tl := idx(qx, qy)
			tr := idx(qx+1, qy)
			br := idx(qx+1, qy+1)
			bl := idx(qx, qy+1)

			c := 0
			if tl < 0 {
				c |= 8
			}
			if tr < 0 {
				c |= 4
			}
			if br < 0 {
				c |= 2
			}
			if bl < 0 {
				c |= 1
			}
			if c == 0 || c == 15 {
				continue
			}

			for _, pair := range caseEdges[c] {
				a := getVertex(qx, qy, pair[0])
				b := getVertex(qx, qy, pair[1])
				poly.Segments = append(poly.Segments, Segment{A: a, B: b})
			}
		}
	}

	poly.FrontStarts = groupFronts(poly.Segments, len(poly.Vertices))
	return poly
}

// interpFraction returns where along [v0,v1] phi crosses zero, in [0,1].
func interpFraction(v0, v1 float64) float64 {
	denom := v0 - v1
	if math.Abs(denom) < 1e-12 {
		return 0.5
	}
	t := v0 / denom
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// gradientNormal computes the normalised central-difference gradient of
// phi at the grid cell nearest (gx,gy), falling back to (1,0) if the
// gradient collapses, per spec.md §4.5.
func gradientNormal(phi []float64, w, h int, gx, gy float64) (float64, float64) {
	x := int(math.Round(gx))
	y := int(math.Round(gy))
	if x < 1 {
		x = 1
	}
	if x > w-2 {
		x = w - 2
	}
	if y < 1 {
		y = 1
	}
	if y > h-2 {
		y = h - 2
	}

	dxv := phi[y*w+x+1] - phi[y*w+x-1]
	dyv := phi[(y+1)*w+x] - phi[(y-1)*w+x]
	mag := math.Sqrt(dxv*dxv + dyv*dyv)
	if mag < 1e-9 {
		return 1, 0
	}
	return dxv / mag, dyv / mag
}

// groupFronts walks the segment adjacency graph and returns the starting
// vertex index of each connected component (disjoint front).
func groupFronts(segments []Segment, numVertices int) []int {
	adj := make(map[int][]int, numVertices)
	for _, s := range segments {
		adj[s.A] = append(adj[s.A], s.B)
		adj[s.B] = append(adj[s.B], s.A)
	}

	visited := make([]bool, numVertices)
	var starts []int
	for v := 0; v < numVertices; v++ {
		if visited[v] || len(adj[v]) == 0 {
			continue
		}
		starts = append(starts, v)
		stack := []int{v}
		visited[v] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range adj[cur] {
				if !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return starts
}
