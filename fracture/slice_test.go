package fracture

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9exa/cutout/geom"
)

func TestSliceCrossesSquare(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}

	fragments := Slice(polygons, geom.Point{X: 50, Y: -10}, geom.Point{X: 50, Y: 110})
	require.Len(t, fragments, 2)
	assert.InDelta(t, 10000.0, totalAbsArea(fragments), 0.1)

	// Each half is a 50x100 strip
	for _, f := range fragments {
		assert.InDelta(t, 5000.0, totalAbsArea([]geom.Polygon{f}), 0.1)
	}
}

func TestSliceMissKeepsInput(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}

	result := Slice(polygons, geom.Point{X: 200, Y: -10}, geom.Point{X: 200, Y: 110})
	assert.Equal(t, polygons, result)
}

func TestSliceSegmentEndsInside(t *testing.T) {
	// A segment ending inside the polygon crosses only one edge, so no cut.
	polygons := []geom.Polygon{square(0, 0, 100)}

	result := Slice(polygons, geom.Point{X: 50, Y: -10}, geom.Point{X: 50, Y: 50})
	assert.Equal(t, polygons, result)
}

func TestSliceWithHole(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100), square(40, 40, 20)}

	fragments := Slice(polygons, geom.Point{X: 50, Y: -10}, geom.Point{X: 50, Y: 110})
	require.NotEmpty(t, fragments)
	assert.InDelta(t, 10000.0-400.0, totalAbsArea(fragments), 0.1)
}

func TestSliceDegenerate(t *testing.T) {
	assert.Nil(t, Slice(nil, geom.Point{}, geom.Point{X: 1}))
	assert.Nil(t, Slice([]geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 1}}}, geom.Point{}, geom.Point{X: 1}))
}

func TestPolygonIntersections(t *testing.T) {
	sq := square(0, 0, 10)

	hits := polygonIntersections(sq, geom.Point{X: 5, Y: -5}, geom.Point{X: 5, Y: 15})
	require.Len(t, hits, 2)
	for _, p := range hits {
		assert.InDelta(t, 5.0, p.X, geom.Tolerance)
	}

	hits = polygonIntersections(sq, geom.Point{X: 20, Y: -5}, geom.Point{X: 20, Y: 15})
	assert.Empty(t, hits)
}

func TestBisectOuterMissKeepsRing(t *testing.T) {
	sq := square(0, 0, 10)
	pieces := bisectOuter(sq, geom.Point{X: 50, Y: 0}, geom.Point{X: 50, Y: 10})
	require.Len(t, pieces, 1)
	assert.Equal(t, sq, pieces[0])
}

func TestRadialSlices(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}

	fragments := RadialSlices(polygons, 42, 4, geom.Point{}, 0)
	require.Greater(t, len(fragments), 1)
	assert.InDelta(t, 10000.0, totalAbsArea(fragments), 0.5)
}

func TestRadialSlicesDeterministic(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}

	a := RadialSlices(polygons, 7, 5, geom.Point{}, 0.8)
	b := RadialSlices(polygons, 7, 5, geom.Point{}, 0.8)
	assert.Equal(t, a, b)

	c := RadialSlices(polygons, 8, 5, geom.Point{}, 0.8)
	assert.NotEqual(t, a, c)
}

func TestParallelSlicesCount(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}

	// The line fan spans twice the max dimension, so for count=4 on a square
	// only the two middle lines (x=30 and x=70) actually cross it.
	fragments := ParallelSlices(polygons, 1, 4, 90, 0)
	require.Len(t, fragments, 3)
	assert.InDelta(t, 10000.0, totalAbsArea(fragments), 0.5)

	assert.InDeltaSlice(t, []float64{3000, 3000, 4000}, sortedAreas(fragments), 0.5)
}

func TestParallelSlicesZeroCountKeepsInput(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}
	assert.Equal(t, polygons, ParallelSlices(polygons, 1, 0, 0, 0))
}

func TestGridSlices(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}

	fragments := GridSlices(polygons, 3, 0, 0, 2, 2, 0, 0, 0, 0)
	// 2 vertical + 2 horizontal lines cut a 3x3 lattice
	require.Len(t, fragments, 9)
	assert.InDelta(t, 10000.0, totalAbsArea(fragments), 0.5)
}

func TestChaoticSlices(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}

	fragments := ChaoticSlices(polygons, 99, 6)
	require.Greater(t, len(fragments), 1)
	assert.InDelta(t, 10000.0, totalAbsArea(fragments), 0.5)

	again := ChaoticSlices(polygons, 99, 6)
	assert.Equal(t, fragments, again)
}

func TestManualSlices(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}
	segments := []Segment{
		{A: geom.Point{X: 50, Y: -10}, B: geom.Point{X: 50, Y: 110}},
		{A: geom.Point{X: -10, Y: 50}, B: geom.Point{X: 110, Y: 50}},
	}

	fragments := ManualSlices(polygons, segments)
	require.Len(t, fragments, 4)
	assert.InDelta(t, 10000.0, totalAbsArea(fragments), 0.5)
}

func TestManualSlicesNoSegments(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}
	assert.Equal(t, polygons, ManualSlices(polygons, nil))
}

func TestParallelSlicesOptimizedMatchesPlain(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100), square(20, 20, 10)}

	// No jitter, so the interval culling is exact and both paths must produce
	// the same fragments, possibly in a different order.
	plain := ParallelSlices(polygons, 5, 6, 30, 0)
	optimized := ParallelSlicesOptimized(polygons, 5, 6, 30, 0)

	require.Len(t, optimized, len(plain))
	assert.InDeltaSlice(t, sortedAreas(plain), sortedAreas(optimized), 0.5)
}

func TestParallelSlicesOptimizedJitteredConservesArea(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}

	fragments := ParallelSlicesOptimized(polygons, 5, 4, 30, 0.5)
	require.NotEmpty(t, fragments)
	assert.InDelta(t, 10000.0, totalAbsArea(fragments), 0.5)
}

func TestParallelSlicesOptimizedAxisAligned(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}

	fragments := ParallelSlicesOptimized(polygons, 1, 4, 90, 0)
	require.Len(t, fragments, 3)
	assert.InDelta(t, 10000.0, totalAbsArea(fragments), 0.5)
}

func sortedAreas(polys []geom.Polygon) []float64 {
	areas := make([]float64, len(polys))
	for i, p := range polys {
		areas[i] = totalAbsArea([]geom.Polygon{p})
	}
	sort.Float64s(areas)
	return areas
}
