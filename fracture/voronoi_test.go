package fracture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9exa/cutout/geom"
)

func TestVoronoiTwoSeeds(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}
	seeds := []geom.Point{{X: 25, Y: 50}, {X: 75, Y: 50}}

	fragments := Voronoi(polygons, seeds)
	require.Len(t, fragments, 2)

	for _, f := range fragments {
		assert.Greater(t, totalAbsArea([]geom.Polygon{f}), 0.0)
	}
	// The two fragments rebuild the square
	assert.InDelta(t, 10000.0, totalAbsArea(fragments), 0.1)
}

func TestVoronoiFourSeeds(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}
	seeds := []geom.Point{
		{X: 25, Y: 25}, {X: 75, Y: 25},
		{X: 25, Y: 75}, {X: 75, Y: 75},
	}

	fragments := Voronoi(polygons, seeds)
	require.Len(t, fragments, 4)
	assert.InDelta(t, 10000.0, totalAbsArea(fragments), 0.1)
}

func TestVoronoiWithHole(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100), square(40, 40, 20)}
	seeds := []geom.Point{{X: 25, Y: 50}, {X: 75, Y: 50}}

	fragments := Voronoi(polygons, seeds)
	require.NotEmpty(t, fragments)
	assert.InDelta(t, 10000.0-400.0, totalAbsArea(fragments), 0.1)
}

func TestVoronoiTooFewSeeds(t *testing.T) {
	polygons := []geom.Polygon{square(0, 0, 100)}
	result := Voronoi(polygons, []geom.Point{{X: 50, Y: 50}})
	assert.Equal(t, polygons, result)
}

func TestVoronoiDegenerateOuter(t *testing.T) {
	assert.Nil(t, Voronoi(nil, []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}))
	assert.Nil(t, Voronoi([]geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 1}}}, []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}))
}

func TestVoronoiCollinearSeedsUnchanged(t *testing.T) {
	// Collinear seed sets have no triangulation; the polygons must come back
	// unchanged, with a diagnostic, rather than empty.
	logged := false
	oldLogf := logf
	logf = func(format string, args ...interface{}) { logged = true }
	defer func() { logf = oldLogf }()

	polygons := []geom.Polygon{square(0, 0, 100)}
	seeds := []geom.Point{{X: 10, Y: 50}, {X: 50, Y: 50}, {X: 90, Y: 50}}

	result := Voronoi(polygons, seeds)
	assert.Equal(t, polygons, result)
	assert.True(t, logged)
}

func TestBuildAdjacencyPair(t *testing.T) {
	adjacency, ok := buildAdjacency([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	require.True(t, ok)
	assert.Equal(t, [][]int{{1}, {0}}, adjacency)
}

func TestBuildAdjacencySymmetric(t *testing.T) {
	adjacency, ok := buildAdjacency([]geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}, {X: 5, Y: -8},
	})
	require.True(t, ok)
	require.Len(t, adjacency, 4)

	for i, neighbors := range adjacency {
		assert.NotEmpty(t, neighbors)
		for _, n := range neighbors {
			assert.Contains(t, adjacency[n], i, "adjacency must be symmetric")
		}
	}
}

func TestVoronoiCellClipping(t *testing.T) {
	bounds := geom.Rect{Max: geom.Point{X: 100, Y: 100}}
	seeds := []geom.Point{{X: 25, Y: 50}, {X: 75, Y: 50}}

	cell := voronoiCell(seeds[0], seeds, []int{1}, bounds)
	require.GreaterOrEqual(t, len(cell), 3)

	b := cell.Bounds()
	assert.InDelta(t, 0.0, b.Min.X, geom.Tolerance)
	assert.InDelta(t, 50.0, b.Max.X, geom.Tolerance)
}
