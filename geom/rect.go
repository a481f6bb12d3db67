package geom

func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) * 0.5, (r.Min.Y + r.Max.Y) * 0.5}
}

// MinDimension is the smaller of width and height.
func (r Rect) MinDimension() float64 {
	return minf(r.Width(), r.Height())
}

// MaxDimension is the larger of width and height.
func (r Rect) MaxDimension() float64 {
	return maxf(r.Width(), r.Height())
}

// Corners lists the four corners clockwise from Min.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{r.Max.X, r.Min.Y},
		r.Max,
		{r.Min.X, r.Max.Y},
	}
}

// Polygon returns the rectangle as a four-point polygon.
func (r Rect) Polygon() Polygon {
	c := r.Corners()
	return Polygon{c[0], c[1], c[2], c[3]}
}

// Grow expands the rectangle by amount on every side. A negative amount
// shrinks it; the size is clamped so Max never crosses Min.
func (r Rect) Grow(amount float64) Rect {
	out := Rect{
		Min: Point{r.Min.X - amount, r.Min.Y - amount},
		Max: Point{r.Max.X + amount, r.Max.Y + amount},
	}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && r.Max.X > o.Min.X &&
		r.Min.Y < o.Max.Y && r.Max.Y > o.Min.Y
}
