package fracture

import (
	"math"

	"github.com/9exa/cutout/geom"
)

// Segment is a directed cut line in world coordinates.
type Segment struct {
	A geom.Point
	B geom.Point
}

// Slice fractures the polygon list [outer, holes...] along a single line
// segment. The segment must cross the outer polygon in at least two edge
// points; otherwise the input comes back unchanged. The two halves are cut by
// intersecting the outer against an oversized rectangle on each side of the
// line, then the holes are subtracted from every piece.
func Slice(polygons []geom.Polygon, a, b geom.Point) []geom.Polygon {
	if len(polygons) == 0 {
		return nil
	}
	outer, holes := splitPolygons(polygons)
	if len(outer) < 3 {
		return nil
	}

	if len(polygonIntersections(outer, a, b)) < 2 {
		// The line doesn't fully cross the polygon
		return polygons
	}

	holeBounds := boundsOf(holes)

	var result []geom.Polygon
	for _, half := range bisectOuter(outer, a, b) {
		if len(half) < 3 {
			continue
		}
		for _, piece := range SubtractHoles(half, holes, holeBounds) {
			if len(piece) >= 3 {
				result = append(result, piece)
			}
		}
	}

	if len(result) == 0 {
		return polygons
	}
	return result
}

// polygonIntersections collects every intersection of segment a-b with the
// polygon's edges.
func polygonIntersections(polygon geom.Polygon, a, b geom.Point) []geom.Point {
	var intersections []geom.Point
	n := len(polygon)
	for i := 0; i < n; i++ {
		if p, ok := geom.SegmentIntersection(a, b, polygon[i], polygon[(i+1)%n]); ok {
			intersections = append(intersections, p)
		}
	}
	return intersections
}

// halfPlaneRect builds a rectangle covering one side of the line a-b,
// extended by extent beyond both endpoints and extent deep along normal.
func halfPlaneRect(a, b, normal geom.Point, extent float64) geom.Polygon {
	dir := b.Sub(a).Normalized()
	start := a.Sub(dir.Mul(extent))
	end := b.Add(dir.Mul(extent))
	return geom.Polygon{
		start,
		end,
		end.Add(normal.Mul(extent)),
		start.Add(normal.Mul(extent)),
	}
}

// bisectOuter cuts a single ring along the line a-b, with no hole handling.
// A line that misses keeps the ring as-is. Intermediate multi-slice passes
// go through here so holes are only ever subtracted once, at the end.
func bisectOuter(outer geom.Polygon, a, b geom.Point) []geom.Polygon {
	if len(polygonIntersections(outer, a, b)) < 2 {
		return []geom.Polygon{outer}
	}

	bounds := outer.Bounds()
	// Generous: covers the polygon from any cut through it
	margin := (bounds.Width() + bounds.Height()) * 0.5

	dir := b.Sub(a).Normalized()
	normal := dir.Perp()

	pieces := Intersect(outer, halfPlaneRect(a, b, normal, margin))
	pieces = append(pieces, Intersect(outer, halfPlaneRect(a, b, normal.Mul(-1), margin))...)

	valid := pieces[:0]
	for _, p := range pieces {
		if len(p) >= 3 {
			valid = append(valid, p)
		}
	}
	return valid
}

// applySlices bisects the outer ring by each segment in turn, fragments
// accumulating across cuts, then subtracts the holes once from the final
// fragment set. Cutting the holes segment-by-segment would subtract them
// repeatedly and leave inconsistent partial states between cuts.
func applySlices(outer geom.Polygon, holes []geom.Polygon, segments []Segment) []geom.Polygon {
	current := []geom.Polygon{outer}

	for _, seg := range segments {
		var next []geom.Polygon
		for _, fragment := range current {
			next = append(next, bisectOuter(fragment, seg.A, seg.B)...)
		}
		if len(next) > 0 {
			current = next
		}
	}

	holeBounds := boundsOf(holes)
	var result []geom.Polygon
	for _, fragment := range current {
		for _, piece := range SubtractHoles(fragment, holes, holeBounds) {
			if len(piece) >= 3 {
				result = append(result, piece)
			}
		}
	}
	return result
}

// patternFracture is the shared wrapper for the pattern entry points:
// validate, generate, apply, and fall back to the unchanged input when the
// pattern produces nothing.
func patternFracture(polygons []geom.Polygon, generate func(outer geom.Polygon) []Segment) []geom.Polygon {
	if len(polygons) == 0 {
		return nil
	}
	outer, holes := splitPolygons(polygons)
	if len(outer) < 3 {
		return nil
	}

	segments := generate(outer)
	if len(segments) == 0 {
		return polygons
	}

	result := applySlices(outer, holes, segments)
	if len(result) == 0 {
		logf("fracture: slice pattern produced no fragments, polygons unchanged")
		return polygons
	}
	return result
}

// RadialSlices cuts count spokes through origin (bounds centre when origin is
// the zero point). randomness in [0,1] jitters each spoke within its angular
// step.
func RadialSlices(polygons []geom.Polygon, seed int64, count int, origin geom.Point, randomness float64) []geom.Polygon {
	return patternFracture(polygons, func(outer geom.Polygon) []Segment {
		if count <= 0 {
			return nil
		}
		r := newRng(seed)
		bounds := outer.Bounds()
		center := origin
		if origin == (geom.Point{}) {
			center = bounds.Center()
		}
		maxExtent := bounds.MaxDimension()
		angleStep := 2 * math.Pi / float64(count)

		segments := make([]Segment, 0, count)
		for i := 0; i < count; i++ {
			angle := float64(i) * angleStep
			if randomness > 0 {
				maxDeviation := angleStep * randomness * 0.5
				angle += r.rangef(-maxDeviation, maxDeviation)
			}
			dir := geom.Point{X: math.Cos(angle), Y: math.Sin(angle)}
			segments = append(segments, Segment{
				A: center.Sub(dir.Mul(maxExtent)),
				B: center.Add(dir.Mul(maxExtent)),
			})
		}
		return segments
	})
}

// ParallelSlices cuts count evenly spaced parallel lines at angleDeg.
// angleRand in [0,1] deviates each line by up to 45 degrees.
func ParallelSlices(polygons []geom.Polygon, seed int64, count int, angleDeg, angleRand float64) []geom.Polygon {
	return patternFracture(polygons, func(outer geom.Polygon) []Segment {
		r := newRng(seed)
		return parallelSegments(outer, r, count, angleDeg, angleRand)
	})
}

func parallelSegments(outer geom.Polygon, r *rng, count int, angleDeg, angleRand float64) []Segment {
	if count <= 0 {
		return nil
	}
	bounds := outer.Bounds()
	center := bounds.Center()
	maxExtent := bounds.MaxDimension()

	baseAngle := angleDeg * math.Pi / 180
	spacing := maxExtent * 2 / float64(count+1)
	maxAngleDeviation := 45 * angleRand * math.Pi / 180

	segments := make([]Segment, 0, count)
	for i := 1; i <= count; i++ {
		angle := baseAngle
		if angleRand > 0 {
			angle += r.rangef(-maxAngleDeviation, maxAngleDeviation)
		}

		dir := geom.Point{X: math.Cos(angle), Y: math.Sin(angle)}
		offset := dir.Perp().Mul(float64(i)*spacing - maxExtent)
		lineCenter := center.Add(offset)

		segments = append(segments, Segment{
			A: lineCenter.Sub(dir.Mul(maxExtent)),
			B: lineCenter.Add(dir.Mul(maxExtent)),
		})
	}
	return segments
}

// GridSlices cuts a jittered lattice: hSlices vertical lines spaced across
// the width and vSlices horizontal lines spaced across the height, each line
// jittered positionally (hRand/vRand) and angularly (hAngleRand/vAngleRand).
func GridSlices(polygons []geom.Polygon, seed int64, hStart, vStart float64, hSlices, vSlices int, hRand, vRand, hAngleRand, vAngleRand float64) []geom.Polygon {
	return patternFracture(polygons, func(outer geom.Polygon) []Segment {
		r := newRng(seed)
		bounds := outer.Bounds()
		center := bounds.Center()
		maxExtent := bounds.MaxDimension()

		hSpacing := bounds.Width() / float64(hSlices+1)
		vSpacing := bounds.Height() / float64(vSlices+1)

		var segments []Segment

		for i := 0; i < hSlices; i++ {
			x := hStart + float64(i+1)*hSpacing
			if hRand > 0 {
				x += r.rangef(-1, 1) * hSpacing * hRand * 0.5
			}
			angle := math.Pi / 2
			if hAngleRand > 0 {
				maxDev := 45 * hAngleRand * math.Pi / 180
				angle += r.rangef(-maxDev, maxDev)
			}
			dir := geom.Point{X: math.Cos(angle), Y: math.Sin(angle)}
			lineCenter := geom.Point{X: x, Y: center.Y}
			segments = append(segments, Segment{
				A: lineCenter.Sub(dir.Mul(maxExtent)),
				B: lineCenter.Add(dir.Mul(maxExtent)),
			})
		}

		for i := 0; i < vSlices; i++ {
			y := vStart + float64(i+1)*vSpacing
			if vRand > 0 {
				y += r.rangef(-1, 1) * vSpacing * vRand * 0.5
			}
			angle := 0.0
			if vAngleRand > 0 {
				maxDev := 45 * vAngleRand * math.Pi / 180
				angle += r.rangef(-maxDev, maxDev)
			}
			dir := geom.Point{X: math.Cos(angle), Y: math.Sin(angle)}
			lineCenter := geom.Point{X: center.X, Y: y}
			segments = append(segments, Segment{
				A: lineCenter.Sub(dir.Mul(maxExtent)),
				B: lineCenter.Add(dir.Mul(maxExtent)),
			})
		}
		return segments
	})
}

// ChaoticSlices cuts count lines with random angles and offsets, the
// natural-shatter look.
func ChaoticSlices(polygons []geom.Polygon, seed int64, count int) []geom.Polygon {
	return patternFracture(polygons, func(outer geom.Polygon) []Segment {
		if count <= 0 {
			return nil
		}
		r := newRng(seed)
		bounds := outer.Bounds()
		center := bounds.Center()
		maxExtent := bounds.MaxDimension()

		segments := make([]Segment, 0, count)
		for i := 0; i < count; i++ {
			angle := r.float() * 2 * math.Pi
			dir := geom.Point{X: math.Cos(angle), Y: math.Sin(angle)}
			offset := geom.Point{
				X: r.rangef(-maxExtent*0.5, maxExtent*0.5),
				Y: r.rangef(-maxExtent*0.5, maxExtent*0.5),
			}
			lineCenter := center.Add(offset)
			segments = append(segments, Segment{
				A: lineCenter.Sub(dir.Mul(maxExtent)),
				B: lineCenter.Add(dir.Mul(maxExtent)),
			})
		}
		return segments
	})
}

// ManualSlices applies caller-supplied segments through the same bisection
// pipeline as the generated patterns.
func ManualSlices(polygons []geom.Polygon, segments []Segment) []geom.Polygon {
	if len(segments) == 0 {
		return polygons
	}
	return patternFracture(polygons, func(geom.Polygon) []Segment {
		return segments
	})
}
