package physics

import "math"

// JunctionZone describes a detected approach between two fire-front
// clusters where the gradient normals are converging.
type JunctionZone struct {
	X, Y                 float64 // midpoint position, grid coordinates
	AngleDeg             float64 // angle between the two inward normals
	TimeToContactSeconds float64
	AccelerationFactor   float64
}

// frontCluster is one connected component of near-zero phi cells with a
// representative position and an average inward gradient normal.
type frontCluster struct {
	cx, cy     float64
	normalX    float64
	normalY    float64
	count      int
}

// DetectJunctionZones scans a phi field (row-major, width*height) for
// cells near the zero level set with sign-changing neighbours, clusters
// them into connected components via 4-connectivity flood fill, and for
// each pair of clusters whose gradient normals converge, reports a
// junction zone. ros is the local rate-of-spread field (same layout),
// used to estimate time-to-contact.
func DetectJunctionZones(phi []float64, ros []float64, width, height int, cellSize float64) []JunctionZone {
	nearFront := findNearFrontCells(phi, width, height)
	clusters := clusterCells(nearFront, phi, width, height, cellSize)

	var zones []JunctionZone
	for i := 0; i < len(clusters); i++ {
		for j := i + 1; j < len(clusters); j++ {
			a, b := clusters[i], clusters[j]
			dx := (b.cx - a.cx) * cellSize
			dy := (b.cy - a.cy) * cellSize
			dist := math.Hypot(dx, dy)
			if dist <= 0 {
				continue
			}
			// Mutual approach vector from a to b.
			ax, ay := dx/dist, dy/dist

			// Converging if a's normal points roughly toward b, and b's
			// normal points roughly toward a (positive dot with the
			// approach vector, from each side's perspective).
			dotA := a.normalX*ax + a.normalY*ay
			dotB := -(b.normalX*ax + b.normalY*ay)
			if dotA <= 0 || dotB <= 0 {
				continue
			}

			angle := math.Acos(clamp(-(a.normalX*b.normalX+a.normalY*b.normalY), -1, 1)) * 180 / math.Pi

			rA := localROS(ros, width, height, a.cx, a.cy)
			rB := localROS(ros, width, height, b.cx, b.cy)
			sumRate := rA + rB
			ttc := math.Inf(1)
			if sumRate > 1e-9 {
				ttc = dist / sumRate
			}

			// Acceleration factor peaks at 45 degrees, scales with
			// proximity (inverse distance, normalised by cell size).
			angleFactor := 1 - math.Abs(angle-45)/45
			angleFactor = math.Max(angleFactor, 0)
			proximity := cellSize / math.Max(dist, cellSize)
			accel := 1 + 2*angleFactor*proximity

			zones = append(zones, JunctionZone{
				X:                    (a.cx + b.cx) / 2,
				Y:                    (a.cy + b.cy) / 2,
				AngleDeg:             angle,
				TimeToContactSeconds: ttc * 60, // ROS is m/min; convert to seconds
				AccelerationFactor:   accel,
			})
		}
	}
	return zones
}

func idxAt(width, x, y int) int { return y*width + x }

func findNearFrontCells(phi []float64, width, height int) []bool {
	mask := make([]bool, width*height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := idxAt(width, x, y)
			p := phi[i]
			if signChanges(p, phi[idxAt(width, x-1, y)]) ||
				signChanges(p, phi[idxAt(width, x+1, y)]) ||
				signChanges(p, phi[idxAt(width, x, y-1)]) ||
				signChanges(p, phi[idxAt(width, x, y+1)]) {
				mask[i] = true
			}
		}
	}
	return mask
}

func signChanges(a, b float64) bool {
	return (a < 0) != (b < 0)
}

// clusterCells groups near-front cells into 4-connected components and
// computes each cluster's centroid and average gradient normal.
func clusterCells(mask []bool, phi []float64, width, height int, cellSize float64) []frontCluster {
	visited := make([]bool, width*height)
	var clusters []frontCluster

	stack := make([]int, 0, 64)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			start := idxAt(width, x, y)
			if !mask[start] || visited[start] {
				continue
			}

			stack = stack[:0]
			stack = append(stack, start)
			visited[start] = true

			var sumX, sumY, sumNX, sumNY float64
			count := 0

			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				cx := cur % width
				cy := cur / width

				sumX += float64(cx)
				sumY += float64(cy)

				nx, ny := gradientNormal(phi, width, height, cx, cy, cellSize)
				sumNX += nx
				sumNY += ny
				count++

				neighbors := [4][2]int{{cx - 1, cy}, {cx + 1, cy}, {cx, cy - 1}, {cx, cy + 1}}
				for _, n := range neighbors {
					nxp, nyp := n[0], n[1]
					if nxp < 0 || nxp >= width || nyp < 0 || nyp >= height {
						continue
					}
					ni := idxAt(width, nxp, nyp)
					if mask[ni] && !visited[ni] {
						visited[ni] = true
						stack = append(stack, ni)
					}
				}
			}

			if count == 0 {
				continue
			}
			norm := math.Hypot(sumNX, sumNY)
			nx, ny := 1.0, 0.0
			if norm > 1e-9 {
				nx, ny = sumNX/norm, sumNY/norm
			}
			clusters = append(clusters, frontCluster{
				cx:      sumX / float64(count),
				cy:      sumY / float64(count),
				normalX: nx,
				normalY: ny,
				count:   count,
			})
		}
	}
	return clusters
}

// gradientNormal returns the normalised inward gradient of phi at (x,y)
// using central differences, pointing from unburned toward burned (i.e.
// the direction of decreasing phi, the direction the front advances).
func gradientNormal(phi []float64, width, height, x, y int, cellSize float64) (float64, float64) {
	x0, x1 := clampIdx(x-1, width), clampIdx(x+1, width)
	y0, y1 := clampIdx(y-1, height), clampIdx(y+1, height)

	dphidx := (phi[idxAt(width, x1, y)] - phi[idxAt(width, x0, y)]) / (2 * cellSize)
	dphidy := (phi[idxAt(width, x, y1)] - phi[idxAt(width, x, y0)]) / (2 * cellSize)

	norm := math.Hypot(dphidx, dphidy)
	if norm < 1e-9 {
		return 1, 0
	}
	// Gradient points toward increasing phi (unburned); the inward
	// (advancing) normal is the negative gradient.
	return -dphidx / norm, -dphidy / norm
}

func clampIdx(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func localROS(ros []float64, width, height int, fx, fy float64) float64 {
	x := clampIdx(int(math.Round(fx)), width)
	y := clampIdx(int(math.Round(fy)), height)
	return ros[idxAt(width, x, y)]
}
