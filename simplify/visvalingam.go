package simplify

import (
	"github.com/9exa/cutout/geom"
)

// VisvalingamWhyatt simplifies a closed polygon by repeatedly removing the
// vertex whose triangle with its ring neighbours has the smallest area.
// targetPoints > 0 removes down to exactly that count; targetPoints == 0
// removes every vertex whose effective area stays below minArea. The result
// never drops below 3 points.
func VisvalingamWhyatt(poly geom.Polygon, minArea float64, targetPoints int) geom.Polygon {
	if len(poly) < 4 {
		return poly
	}
	if targetPoints > 0 && targetPoints < 3 {
		targetPoints = 3
	}

	points := make(geom.Polygon, len(poly))
	copy(points, poly)

	for len(points) > 3 {
		minIdx := 0
		smallest := effectiveArea(points, 0)
		for i := 1; i < len(points); i++ {
			if a := effectiveArea(points, i); a < smallest {
				smallest = a
				minIdx = i
			}
		}

		if targetPoints > 0 {
			if len(points) <= targetPoints {
				break
			}
		} else if smallest >= minArea {
			break
		}

		points = append(points[:minIdx], points[minIdx+1:]...)
	}
	return points
}

// effectiveArea is the area of the triangle a vertex forms with its ring
// neighbours, wrapping around the closed polygon.
func effectiveArea(points geom.Polygon, i int) float64 {
	n := len(points)
	prev := points[geom.CircularIndex(i-1, n)]
	next := points[geom.CircularIndex(i+1, n)]
	area := points[i].Sub(prev).Cross(next.Sub(prev)) * 0.5
	if area < 0 {
		return -area
	}
	return area
}
