package geom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(size float64) Polygon {
	return Polygon{{0, 0}, {size, 0}, {size, size}, {0, size}}
}

func TestBounds(t *testing.T) {
	poly := Polygon{{3, -1}, {-2, 4}, {5, 2}}
	b := poly.Bounds()
	assert.Equal(t, Point{-2, -1}, b.Min)
	assert.Equal(t, Point{5, 4}, b.Max)

	assert.Equal(t, Rect{}, Polygon{}.Bounds())
	assert.Equal(t, Rect{Min: Point{7, 7}, Max: Point{7, 7}}, Polygon{{7, 7}}.Bounds())
}

func TestSignedArea(t *testing.T) {
	// y grows down, so this winding is negative by the shoelace convention
	poly := square(2)
	assert.InDelta(t, -4.0, poly.SignedArea(), Tolerance)
	assert.InDelta(t, 4.0, poly.Reverse().SignedArea(), Tolerance)
}

func TestSignedAreaCyclicRotation(t *testing.T) {
	poly := Polygon{{0, 0}, {4, 1}, {5, 4}, {2, 6}, {-1, 3}}
	want := poly.SignedArea()
	for shift := 1; shift < len(poly); shift++ {
		shift := shift
		t.Run(fmt.Sprintf("Shift by %d", shift), func(t *testing.T) {
			rotated := make(Polygon, len(poly))
			for i := range poly {
				rotated[i] = poly[CircularIndex(i+shift, len(poly))]
			}
			assert.InDelta(t, want, rotated.SignedArea(), Tolerance)
			assert.InDelta(t, -want, rotated.Reverse().SignedArea(), Tolerance)
		})
	}
}

func TestSignedAreaDegenerate(t *testing.T) {
	assert.Zero(t, Polygon{}.SignedArea())
	assert.Zero(t, Polygon{{1, 1}}.SignedArea())
	assert.Zero(t, Polygon{{1, 1}, {2, 2}}.SignedArea())
}

func TestContains(t *testing.T) {
	poly := square(10)
	assert.True(t, poly.Contains(Point{5, 5}))
	assert.True(t, poly.Contains(Point{0.001, 9.999}))
	assert.False(t, poly.Contains(Point{-1, 5}))
	assert.False(t, poly.Contains(Point{5, 11}))

	// Degenerate polygons contain nothing
	assert.False(t, Polygon{{0, 0}, {10, 10}}.Contains(Point{5, 5}))
}

func TestContainsConcave(t *testing.T) {
	// A "C" shape opening to the right
	poly := Polygon{{0, 0}, {10, 0}, {10, 3}, {3, 3}, {3, 7}, {10, 7}, {10, 10}, {0, 10}}
	assert.True(t, poly.Contains(Point{1, 5}))
	assert.False(t, poly.Contains(Point{6, 5}))
	assert.True(t, poly.Contains(Point{6, 1}))
}

func TestClipToHalfPlaneContaining(t *testing.T) {
	poly := square(4)
	// Half-plane keeps everything left of x = 100
	clipped := poly.ClipToHalfPlane(Point{100, 0}, Point{-1, 0})
	assert.Equal(t, len(poly), len(clipped))
	for i := range poly {
		assert.InDelta(t, poly[i].X, clipped[i].X, Tolerance)
		assert.InDelta(t, poly[i].Y, clipped[i].Y, Tolerance)
	}
}

func TestClipToHalfPlaneExcluding(t *testing.T) {
	poly := square(4)
	// Half-plane keeps everything right of x = 100
	clipped := poly.ClipToHalfPlane(Point{100, 0}, Point{1, 0})
	assert.Empty(t, clipped)
}

func TestClipToHalfPlaneBisecting(t *testing.T) {
	poly := square(4)
	// Keep the half right of x = 2
	clipped := poly.ClipToHalfPlane(Point{2, 0}, Point{1, 0})
	assert.GreaterOrEqual(t, len(clipped), 3)
	b := clipped.Bounds()
	assert.InDelta(t, 2.0, b.Min.X, Tolerance)
	assert.InDelta(t, 4.0, b.Max.X, Tolerance)
	// Half the original area
	assert.InDelta(t, 8.0, absArea(clipped), Tolerance)
}

func TestClipToHalfPlaneDegenerate(t *testing.T) {
	assert.Nil(t, Polygon{{0, 0}, {1, 1}}.ClipToHalfPlane(Point{}, Point{1, 0}))
}

func absArea(p Polygon) float64 {
	a := p.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}
