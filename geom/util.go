package geom

import "math"

// Tolerance for float equality. Geometry coming out of the boolean clipper
// round-trips through fixed-point coordinates, so anything tighter than this
// would reject legitimately equal points.
const Tolerance = 1e-6

// CircumcenterEpsilon bounds the determinant below which a triangle is
// considered collinear and has no circumcenter.
const CircumcenterEpsilon = 1e-4

// CrossEpsilon bounds the cross product below which two segments are
// considered parallel.
const CrossEpsilon = 1e-10

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Circumcenter returns the point equidistant from the three triangle
// vertices. The second return is false for a degenerate (collinear) triangle;
// callers skip or fall back in that case.
func Circumcenter(a, b, c Point) (Point, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < CircumcenterEpsilon {
		return Point{}, false
	}

	aSq := a.X*a.X + a.Y*a.Y
	bSq := b.X*b.X + b.Y*b.Y
	cSq := c.X*c.X + c.Y*c.Y

	ux := (aSq*(b.Y-c.Y) + bSq*(c.Y-a.Y) + cSq*(a.Y-b.Y)) / d
	uy := (aSq*(c.X-b.X) + bSq*(a.X-c.X) + cSq*(b.X-a.X)) / d
	return Point{ux, uy}, true
}

// FarEnough reports whether p is at least minDist away from every point in
// existing. Squared distances, no square roots.
func FarEnough(p Point, existing []Point, minDist float64) bool {
	minDistSq := minDist * minDist
	for _, q := range existing {
		if p.Sub(q).LengthSquared() < minDistSq {
			return false
		}
	}
	return true
}

// SegmentIntersection returns the intersection point of segments a1-a2 and
// b1-b2, if they cross. Near-parallel pairs report no intersection.
func SegmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)

	cross := d1.Cross(d2)
	if math.Abs(cross) < CrossEpsilon {
		return Point{}, false
	}

	d := b1.Sub(a1)
	t := d.Cross(d2) / cross
	u := d.Cross(d1) / cross

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return a1.Add(d1.Mul(t)), true
}
