// Package simplify reduces polygon vertex counts while keeping the overall
// shape. Two strategies: RDP keeps points by perpendicular distance from a
// chord, VisvalingamWhyatt removes points by smallest effective triangle area.
package simplify

import (
	"github.com/9exa/cutout/geom"
)

// RDP simplifies a closed polygon with the Ramer-Douglas-Peucker algorithm.
// The first and last vertex are always kept; a vertex between them survives
// when it sits more than epsilon away from the chord spanning its segment.
// Polygons with fewer than 3 points, and results that would collapse below 3
// points, come back unchanged.
func RDP(poly geom.Polygon, epsilon float64) geom.Polygon {
	if len(poly) < 3 || epsilon <= 0 {
		return poly
	}

	keep := make([]bool, len(poly))
	keep[0] = true
	keep[len(poly)-1] = true
	rdpMark(poly, 0, len(poly)-1, epsilon, keep)

	result := make(geom.Polygon, 0, len(poly))
	for i, k := range keep {
		if k {
			result = append(result, poly[i])
		}
	}
	if len(result) < 3 {
		return poly
	}
	return result
}

func rdpMark(poly geom.Polygon, start, end int, epsilon float64, keep []bool) {
	if end-start < 2 {
		return
	}

	maxDist := 0.0
	maxIdx := start
	for i := start + 1; i < end; i++ {
		if d := perpendicularDistance(poly[i], poly[start], poly[end]); d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist > epsilon {
		keep[maxIdx] = true
		rdpMark(poly, start, maxIdx, epsilon, keep)
		rdpMark(poly, maxIdx, end, epsilon, keep)
	}
}

// perpendicularDistance is the distance from p to the infinite line through a
// and b, or to a when the chord is degenerate.
func perpendicularDistance(p, a, b geom.Point) float64 {
	chord := b.Sub(a)
	length := chord.Length()
	if length < geom.Tolerance {
		return p.DistanceTo(a)
	}
	// Area of the parallelogram over the chord length.
	cross := chord.Cross(p.Sub(a))
	if cross < 0 {
		cross = -cross
	}
	return cross / length
}
