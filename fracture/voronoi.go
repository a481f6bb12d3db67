package fracture

import (
	"github.com/fogleman/delaunay"

	"github.com/9exa/cutout/geom"
)

// Voronoi fractures the polygon list [outer, holes...] into one fragment per
// Voronoi cell of the seed points. The diagram is built from the Delaunay
// dual: each seed's cell starts as the outer bounding rectangle and is
// clipped against the perpendicular bisector of every Delaunay-adjacent
// neighbour. Cells are then clipped to the outer polygon and the holes are
// subtracted from every piece.
//
// Degenerate outers yield nil. Fewer than two seeds, triangulation failure,
// or an entirely empty fragment set yield the input unchanged, never a
// silently empty result.
func Voronoi(polygons []geom.Polygon, seeds []geom.Point) []geom.Polygon {
	if len(polygons) == 0 {
		return nil
	}
	outer, holes := splitPolygons(polygons)
	if len(outer) < 3 {
		return nil
	}
	if len(seeds) < 2 {
		return polygons
	}

	adjacency, ok := buildAdjacency(seeds)
	if !ok {
		logf("fracture: Delaunay triangulation failed, polygons unchanged")
		return polygons
	}

	bounds := outer.Bounds()
	holeBounds := boundsOf(holes)

	var fragments []geom.Polygon
	for i, seed := range seeds {
		cell := voronoiCell(seed, seeds, adjacency[i], bounds)
		if len(cell) < 3 {
			continue
		}

		for _, fragment := range Intersect(cell, outer) {
			if len(fragment) < 3 {
				continue
			}
			for _, piece := range SubtractHoles(fragment, holes, holeBounds) {
				if len(piece) >= 3 {
					fragments = append(fragments, piece)
				}
			}
		}
	}

	if len(fragments) == 0 {
		logf("fracture: Voronoi produced no valid fragments, polygons unchanged")
		return polygons
	}
	return fragments
}

// buildAdjacency returns the deduplicated, symmetric Delaunay neighbour lists
// for the seed set. Two seeds have no triangulation but a perfectly good
// bisector, so that case is a direct mutual adjacency.
func buildAdjacency(seeds []geom.Point) ([][]int, bool) {
	if len(seeds) == 2 {
		return [][]int{{1}, {0}}, true
	}

	pts := make([]delaunay.Point, len(seeds))
	for i, s := range seeds {
		pts[i] = delaunay.Point{X: s.X, Y: s.Y}
	}

	triangulation, err := delaunay.Triangulate(pts)
	if err != nil || len(triangulation.Triangles) == 0 {
		return nil, false
	}

	adjacency := make([][]int, len(seeds))
	addEdge := func(a, b int) {
		for _, n := range adjacency[a] {
			if n == b {
				return
			}
		}
		adjacency[a] = append(adjacency[a], b)
	}

	tris := triangulation.Triangles
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i], tris[i+1], tris[i+2]
		addEdge(a, b)
		addEdge(b, a)
		addEdge(b, c)
		addEdge(c, b)
		addEdge(c, a)
		addEdge(a, c)
	}
	return adjacency, true
}

// voronoiCell clips the bounding rectangle against the perpendicular bisector
// of the seed and each neighbour, keeping the seed's side every time. The
// result is the seed's Voronoi cell restricted to the bounds.
func voronoiCell(seed geom.Point, seeds []geom.Point, neighbors []int, bounds geom.Rect) geom.Polygon {
	cell := bounds.Polygon()

	for _, n := range neighbors {
		other := seeds[n]
		midpoint := seed.Add(other).Mul(0.5)
		// Normal points from the neighbour toward the seed, so the kept
		// half-plane is the one containing the seed.
		normal := seed.Sub(other).Normalized()

		cell = cell.ClipToHalfPlane(midpoint, normal)
		if len(cell) < 3 {
			break
		}
	}
	return cell
}
