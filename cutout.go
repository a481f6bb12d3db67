// 2D destructible-shape tooling for Go.
//
// This package converts image alpha masks into contour polygons and breaks
// polygons into fragments, for destruction effects, collision shapes, and
// sprite cutouts. The heavy lifting lives in the subpackages (contour,
// fracture, simplify); this package re-exports the core types and the
// one-call entry points.
package cutout

import (
	"image"

	"github.com/9exa/cutout/contour"
	"github.com/9exa/cutout/fracture"
	"github.com/9exa/cutout/geom"
)

type Point = geom.Point
type Polygon = geom.Polygon
type Rect = geom.Rect

type Settings = contour.Settings
type Segment = fracture.Segment

// TraceImage extracts the solid regions of an image's alpha channel as
// closed polygons, largest first. Holes appear as their own polygons.
func TraceImage(img image.Image, settings Settings) []Polygon {
	return contour.Process(img, settings)
}

// DefaultSettings traces at full resolution with the half-alpha cutoff.
func DefaultSettings() Settings {
	return contour.DefaultSettings()
}

// FractureVoronoi breaks the polygon list [outer, holes...] into one
// fragment per Voronoi cell of the seed points. Seeds are typically placed
// with the generators in the fracture package.
func FractureVoronoi(polygons []Polygon, seeds []Point) []Polygon {
	return fracture.Voronoi(polygons, seeds)
}

// FractureSlice cuts the polygon list [outer, holes...] along the segment
// a-b. A segment that doesn't fully cross the outer polygon leaves the input
// unchanged.
func FractureSlice(polygons []Polygon, a, b Point) []Polygon {
	return fracture.Slice(polygons, a, b)
}
