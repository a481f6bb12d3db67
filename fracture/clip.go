// Package fracture splits polygons (with holes) into fragments, either along
// Voronoi cell boundaries derived from a Delaunay triangulation of seed
// points, or along line-segment cuts. Inputs are polygon lists where index 0
// is the outer boundary and the rest are holes subtracted from every
// fragment.
//
// Every entry point is a fresh, stateless computation. On any internal
// failure the original polygon list comes back unchanged rather than an empty
// result, so "no change" is a recognizable outcome for callers.
package fracture

import (
	"log"
	"math"

	clipper "github.com/ctessum/go.clipper"

	"github.com/9exa/cutout/geom"
)

// The clipper works on integer coordinates, so floats round-trip through a
// fixed-point scale. A thousandth of a unit is far below every epsilon in
// this package.
const clipScale = 1000.0

func toClipperPath(poly geom.Polygon) clipper.Path {
	path := make(clipper.Path, len(poly))
	for i, p := range poly {
		path[i] = &clipper.IntPoint{
			X: clipper.CInt(math.Round(p.X * clipScale)),
			Y: clipper.CInt(math.Round(p.Y * clipScale)),
		}
	}
	return path
}

func fromClipperPaths(paths clipper.Paths) []geom.Polygon {
	polys := make([]geom.Polygon, 0, len(paths))
	for _, path := range paths {
		poly := make(geom.Polygon, len(path))
		for i, p := range path {
			poly[i] = geom.Point{
				X: float64(p.X) / clipScale,
				Y: float64(p.Y) / clipScale,
			}
		}
		polys = append(polys, poly)
	}
	return polys
}

// executeClip runs a single boolean operation under the NonZero fill rule.
// The clipper signals failure both by return value and by panicking on
// pathological input; either way comes back as ok=false so callers can apply
// their conservative fallback.
func executeClip(op clipper.ClipType, subject, clip geom.Polygon) (result []geom.Polygon, ok bool) {
	if len(subject) < 3 || len(clip) < 3 {
		return nil, false
	}

	defer func() {
		if r := recover(); r != nil {
			result, ok = nil, false
		}
	}()

	c := clipper.NewClipper(clipper.IoNone)
	if !c.AddPath(toClipperPath(subject), clipper.PtSubject, true) {
		return nil, false
	}
	if !c.AddPath(toClipperPath(clip), clipper.PtClip, true) {
		return nil, false
	}

	paths, succeeded := c.Execute1(op, clipper.PftNonZero, clipper.PftNonZero)
	if !succeeded {
		return nil, false
	}
	return fromClipperPaths(paths), true
}

// Intersect clips subject against clip, returning the overlapping pieces.
// A failed clip yields nothing.
func Intersect(subject, clip geom.Polygon) []geom.Polygon {
	result, ok := executeClip(clipper.CtIntersection, subject, clip)
	if !ok {
		return nil
	}
	return result
}

// Difference subtracts clip from subject. A failed clip yields the subject
// unchanged; losing geometry to a clipper hiccup is worse than skipping one
// cut.
func Difference(subject, clip geom.Polygon) []geom.Polygon {
	result, ok := executeClip(clipper.CtDifference, subject, clip)
	if !ok {
		return []geom.Polygon{subject}
	}
	return result
}

// SubtractHoles differences every hole from the fragment in sequence. A
// fragment may split into several pieces along the way; each subsequent hole
// is subtracted from all of them. holeBounds, if non-nil, must parallel holes
// and lets fragments skip holes whose bounding rectangles cannot overlap
// theirs. Pieces that end up with fewer than three vertices are dropped.
func SubtractHoles(fragment geom.Polygon, holes []geom.Polygon, holeBounds []geom.Rect) []geom.Polygon {
	remaining := []geom.Polygon{fragment}
	if len(holes) == 0 {
		return remaining
	}

	fragmentBounds := fragment.Bounds()

	for i, hole := range holes {
		if holeBounds != nil && !fragmentBounds.Intersects(holeBounds[i]) {
			continue
		}

		var next []geom.Polygon
		for _, piece := range remaining {
			next = append(next, Difference(piece, hole)...)
		}
		remaining = next
	}

	valid := remaining[:0]
	for _, piece := range remaining {
		if len(piece) >= 3 {
			valid = append(valid, piece)
		}
	}
	return valid
}

// splitPolygons separates a [outer, holes...] list, discarding degenerate
// holes.
func splitPolygons(polygons []geom.Polygon) (geom.Polygon, []geom.Polygon) {
	if len(polygons) == 0 {
		return nil, nil
	}
	var holes []geom.Polygon
	for _, h := range polygons[1:] {
		if len(h) >= 3 {
			holes = append(holes, h)
		}
	}
	return polygons[0], holes
}

func boundsOf(holes []geom.Polygon) []geom.Rect {
	if len(holes) == 0 {
		return nil
	}
	bounds := make([]geom.Rect, len(holes))
	for i, h := range holes {
		bounds[i] = h.Bounds()
	}
	return bounds
}

// logf reports fallback diagnostics. Swappable so the host layer can route
// them, and so tests can silence them.
var logf = log.Printf
