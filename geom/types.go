package geom

import "math"

type Point struct {
	X float64
	Y float64
}

// Polygon is an ordered point sequence, implicitly closed (the last point
// connects back to the first). Anything shorter than three points is
// degenerate and treated as empty geometry by every operation here.
type Polygon []Point

// Rect is an axis-aligned rectangle. Min is the top-left corner in image
// coordinates (y grows down).
type Rect struct {
	Min Point
	Max Point
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

func (p Point) LengthSquared() float64 { return p.X*p.X + p.Y*p.Y }

// Perp rotates the point 90 degrees counterclockwise.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

func (p Point) Normalized() Point {
	l := p.Length()
	if l < Tolerance {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

func (p Point) DistanceTo(q Point) float64 { return q.Sub(p).Length() }
