package fracture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9exa/cutout/geom"
)

func square(x, y, size float64) geom.Polygon {
	return geom.Polygon{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}
}

func totalAbsArea(polys []geom.Polygon) float64 {
	total := 0.0
	for _, p := range polys {
		a := p.SignedArea()
		if a < 0 {
			a = -a
		}
		total += a
	}
	return total
}

func TestIntersectOverlap(t *testing.T) {
	result := Intersect(square(0, 0, 10), square(5, 5, 10))
	require.Len(t, result, 1)
	assert.InDelta(t, 25.0, totalAbsArea(result), 0.01)
}

func TestIntersectDisjoint(t *testing.T) {
	assert.Empty(t, Intersect(square(0, 0, 10), square(20, 20, 5)))
}

func TestIntersectDegenerateYieldsNothing(t *testing.T) {
	assert.Empty(t, Intersect(square(0, 0, 10), geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}))
	assert.Empty(t, Intersect(nil, square(0, 0, 10)))
}

func TestDifference(t *testing.T) {
	result := Difference(square(0, 0, 10), square(5, 5, 10))
	assert.InDelta(t, 75.0, totalAbsArea(result), 0.01)
}

func TestDifferenceDegenerateKeepsSubject(t *testing.T) {
	subject := square(0, 0, 10)
	result := Difference(subject, geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.Len(t, result, 1)
	assert.Equal(t, subject, result[0])
}

func TestSubtractHolesNone(t *testing.T) {
	fragment := square(0, 0, 10)
	result := SubtractHoles(fragment, nil, nil)
	require.Len(t, result, 1)
	assert.Equal(t, fragment, result[0])
}

func TestSubtractHolesCoveringHole(t *testing.T) {
	fragment := square(2, 2, 6)
	// A hole covering the whole fragment leaves nothing
	result := SubtractHoles(fragment, []geom.Polygon{square(0, 0, 10)}, nil)
	assert.Empty(t, result)
}

func TestSubtractHolesEdgeBite(t *testing.T) {
	fragment := square(0, 0, 10)
	hole := square(-2, 3, 4) // overlaps the left edge, takes a 2x4 bite
	result := SubtractHoles(fragment, []geom.Polygon{hole}, nil)
	require.NotEmpty(t, result)
	assert.InDelta(t, 92.0, totalAbsArea(result), 0.01)
}

func TestSubtractHolesBoundsCulling(t *testing.T) {
	fragment := square(0, 0, 10)
	holes := []geom.Polygon{square(50, 50, 5)}
	result := SubtractHoles(fragment, holes, boundsOf(holes))
	require.Len(t, result, 1)
	// Skipped entirely: not even a clipper round-trip touches the fragment
	assert.Equal(t, fragment, result[0])
}

func TestSubtractHolesSplitsFragment(t *testing.T) {
	fragment := square(0, 0, 10)
	// A bar across the middle cuts the fragment in two
	bar := geom.Polygon{{X: -1, Y: 4}, {X: 11, Y: 4}, {X: 11, Y: 6}, {X: -1, Y: 6}}
	result := SubtractHoles(fragment, []geom.Polygon{bar}, nil)
	assert.Len(t, result, 2)
	assert.InDelta(t, 80.0, totalAbsArea(result), 0.01)
}
