package geom

// Bounds returns the axis-aligned bounding rectangle of the polygon. An empty
// polygon yields a zero-size rect at the origin.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}

	r := Rect{Min: p[0], Max: p[0]}
	for _, pt := range p[1:] {
		if pt.X < r.Min.X {
			r.Min.X = pt.X
		}
		if pt.X > r.Max.X {
			r.Max.X = pt.X
		}
		if pt.Y < r.Min.Y {
			r.Min.Y = pt.Y
		}
		if pt.Y > r.Max.Y {
			r.Max.Y = pt.Y
		}
	}
	return r
}

// SignedArea computes the shoelace area. Positive means counterclockwise
// winding. Degenerate polygons have zero area.
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}

	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p[i].X * p[j].Y
		area -= p[j].X * p[i].Y
	}
	return area * 0.5
}

// Contains is a ray-casting parity test. Degenerate polygons contain nothing.
func (p Polygon) Contains(pt Point) bool {
	n := len(p)
	if n < 3 {
		return false
	}

	inside := false
	p1 := p[0]
	for i := 1; i <= n; i++ {
		p2 := p[i%n]
		if pt.Y > minf(p1.Y, p2.Y) && pt.Y <= maxf(p1.Y, p2.Y) && pt.X <= maxf(p1.X, p2.X) {
			if p1.Y != p2.Y {
				xinters := (pt.Y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
				if p1.X == p2.X || pt.X <= xinters {
					inside = !inside
				}
			}
		}
		p1 = p2
	}
	return inside
}

// ClipToHalfPlane clips the polygon against a single half-plane, keeping the
// side where (p - planePoint)·normal >= 0. This is one edge of
// Sutherland-Hodgman; crossing edges get an exact intersection point at the
// zero-crossing parameter.
func (p Polygon) ClipToHalfPlane(planePoint, normal Point) Polygon {
	n := len(p)
	if n < 3 {
		return nil
	}

	var clipped Polygon
	for i := 0; i < n; i++ {
		current := p[i]
		next := p[(i+1)%n]

		currentDist := current.Sub(planePoint).Dot(normal)
		nextDist := next.Sub(planePoint).Dot(normal)

		currentInside := currentDist >= 0
		nextInside := nextDist >= 0

		if currentInside {
			clipped = append(clipped, current)
		}
		if currentInside != nextInside {
			t := currentDist / (currentDist - nextDist)
			clipped = append(clipped, current.Lerp(next, t))
		}
	}
	return clipped
}

// Reverse returns the polygon with its winding order flipped.
func (p Polygon) Reverse() Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
