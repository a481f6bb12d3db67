package contour

import (
	"sort"

	"github.com/9exa/cutout/geom"
)

// Cell edge identifiers. A 2x2 corner configuration emits boundary segments
// whose endpoints are midpoints of these edges.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// segmentTable maps a 4-bit corner configuration (tl*8 + tr*4 + br*2 + bl*1)
// to the edge pairs crossed by the boundary. Configurations 0 and 15 are
// uniform and emit nothing. The two checkerboard configurations (5 and 10)
// are resolved as two separate diagonal segments, the standard
// marching-squares topology, not a single connecting line.
var segmentTable = [16][][2]int{
	0:  {},
	1:  {{edgeLeft, edgeBottom}},
	2:  {{edgeBottom, edgeRight}},
	3:  {{edgeLeft, edgeRight}},
	4:  {{edgeTop, edgeRight}},
	5:  {{edgeTop, edgeRight}, {edgeBottom, edgeLeft}},
	6:  {{edgeTop, edgeBottom}},
	7:  {{edgeTop, edgeLeft}},
	8:  {{edgeTop, edgeLeft}},
	9:  {{edgeTop, edgeBottom}},
	10: {{edgeTop, edgeLeft}, {edgeBottom, edgeRight}},
	11: {{edgeTop, edgeRight}},
	12: {{edgeLeft, edgeRight}},
	13: {{edgeBottom, edgeRight}},
	14: {{edgeLeft, edgeBottom}},
	15: {},
}

// gridKey is an edge-midpoint coordinate at doubled integer resolution.
// Doubling makes every midpoint an exact integer, so segments emitted by
// adjacent cells meet on identical keys with no float hashing involved.
type gridKey struct {
	X, Y int
}

// edgeMidpoint returns the doubled-resolution midpoint of one edge of the
// unit cell whose top-left corner is (cx, cy).
func edgeMidpoint(cx, cy, edge int) gridKey {
	switch edge {
	case edgeTop:
		return gridKey{2*cx + 1, 2 * cy}
	case edgeRight:
		return gridKey{2*cx + 2, 2*cy + 1}
	case edgeBottom:
		return gridKey{2*cx + 1, 2*cy + 2}
	default:
		return gridKey{2 * cx, 2*cy + 1}
	}
}

// MarchingSquares traces all boundary polygons of the grid. Each solid pixel
// is treated as occupying its unit square, so a lone pixel at (x, y) comes
// back as a small closed loop with bounding box [x,x+1] x [y,y+1].
//
// Contours are sorted by descending vertex count. By convention the largest
// is the outer fill boundary and the rest are holes; that ordering is
// advisory and not topologically verified, since a sufficiently detailed hole
// could out-count a small outer boundary.
func MarchingSquares(g *Grid) []geom.Polygon {
	// Cell (cx, cy) samples pixel corners (cx, cy) .. (cx+1, cy+1). Starting
	// one cell before the grid on each axis catches solids on the border;
	// Get returns empty out there, so border loops still close.
	adjacency := make(map[gridKey][]gridKey)
	segmentCount := 0

	for cy := -1; cy < g.height; cy++ {
		for cx := -1; cx < g.width; cx++ {
			config := 0
			if g.Get(cx, cy) {
				config |= 8
			}
			if g.Get(cx+1, cy) {
				config |= 4
			}
			if g.Get(cx+1, cy+1) {
				config |= 2
			}
			if g.Get(cx, cy+1) {
				config |= 1
			}

			for _, seg := range segmentTable[config] {
				a := edgeMidpoint(cx, cy, seg[0])
				b := edgeMidpoint(cx, cy, seg[1])
				adjacency[a] = append(adjacency[a], b)
				adjacency[b] = append(adjacency[b], a)
				segmentCount++
			}
		}
	}

	if segmentCount == 0 {
		return nil
	}

	// Walk each connected component. Starting keys are sorted so the output
	// is deterministic; map iteration order is not.
	keys := make([]gridKey, 0, len(adjacency))
	for k := range adjacency {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})

	visited := make(map[gridKey]bool, len(keys))
	var contours []geom.Polygon

	for _, start := range keys {
		if visited[start] {
			continue
		}

		var contour geom.Polygon
		current := start
		// A closed loop of n segments has n distinct endpoints, so the
		// segment count bounds any well-formed walk. Malformed chains hit
		// either a dead end or this cap and terminate early with whatever
		// was collected.
		for steps := 0; steps <= segmentCount; steps++ {
			visited[current] = true
			contour = append(contour, geom.Point{
				X: float64(current.X)/2 + 0.5,
				Y: float64(current.Y)/2 + 0.5,
			})

			next, ok := unvisitedNeighbor(adjacency[current], visited)
			if !ok {
				break
			}
			current = next
		}

		if len(contour) > 2 {
			contours = append(contours, contour)
		}
	}

	sort.SliceStable(contours, func(i, j int) bool {
		return len(contours[i]) > len(contours[j])
	})
	return contours
}

func unvisitedNeighbor(neighbors []gridKey, visited map[gridKey]bool) (gridKey, bool) {
	for _, n := range neighbors {
		if !visited[n] {
			return n, true
		}
	}
	return gridKey{}, false
}
