package fracture

import (
	"math"

	"github.com/9exa/cutout/geom"
)

// Seed generators place Voronoi cell centres inside a polygon. Every
// generator guarantees its points (a) lie inside the polygon and (b) keep a
// minimum pairwise separation of minCellDistance scaled by the smaller
// dimension of the (padding-shrunk) bounding box. All are deterministic for a
// fixed seed, and all terminate on an attempt budget rather than searching
// forever when the polygon is too crowded.

// RandomSeeds scatters up to count points uniformly over the padded bounding
// box, keeping those that land inside the polygon and respect the separation.
// The attempt budget is ten times the requested count.
func RandomSeeds(polygon geom.Polygon, count int, minCellDistance, edgePadding float64, seed int64) []geom.Point {
	r := newRng(seed)
	padded := polygon.Bounds().Grow(-edgePadding)
	if padded.Width() <= 0 || padded.Height() <= 0 {
		return nil
	}

	minDist := padded.MinDimension() * minCellDistance
	maxAttempts := count * 10
	var points []geom.Point

	for attempt := 0; attempt < maxAttempts && len(points) < count; attempt++ {
		candidate := geom.Point{
			X: r.rangef(padded.Min.X, padded.Max.X),
			Y: r.rangef(padded.Min.Y, padded.Max.Y),
		}
		if polygon.Contains(candidate) && geom.FarEnough(candidate, points, minDist) {
			points = append(points, candidate)
		}
	}
	return points
}

// GridSeeds places one candidate per cell of a rows x cols lattice over the
// padded bounding box, jittered by up to jitter cell-fractions.
func GridSeeds(polygon geom.Polygon, rows, cols int, jitter, minCellDistance, edgePadding float64, seed int64) []geom.Point {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	r := newRng(seed)
	padded := polygon.Bounds().Grow(-edgePadding)
	if padded.Width() <= 0 || padded.Height() <= 0 {
		return nil
	}

	minDist := padded.MinDimension() * minCellDistance
	cellW := padded.Width() / float64(cols)
	cellH := padded.Height() / float64(rows)
	var points []geom.Point

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			candidate := geom.Point{
				X: padded.Min.X + (float64(x)+0.5)*cellW + r.rangef(-0.5, 0.5)*cellW*jitter,
				Y: padded.Min.Y + (float64(y)+0.5)*cellH + r.rangef(-0.5, 0.5)*cellH*jitter,
			}
			if polygon.Contains(candidate) && geom.FarEnough(candidate, points, minDist) {
				points = append(points, candidate)
			}
		}
	}
	return points
}

// RadialSeeds arranges points on concentric rings around origin (the bounds
// centre when origin is the zero point), with proportionally more seeds on
// outer rings so cell sizes stay roughly even. variation jitters both radius
// and angle.
func RadialSeeds(polygon geom.Polygon, origin geom.Point, ringCount int, ringSize float64, pointsPerRing int, variation, minCellDistance float64, seed int64) []geom.Point {
	if ringCount <= 0 {
		return nil
	}

	r := newRng(seed)
	bounds := polygon.Bounds()
	center := origin
	if origin == (geom.Point{}) {
		center = bounds.Center()
	}

	minDist := bounds.MinDimension() * minCellDistance
	maxRadius := farthestCornerDistance(bounds, center)
	var points []geom.Point

	for ring := 0; ring < ringCount; ring++ {
		ringNumber := float64(ring + 1)
		baseRadius := ringNumber * ringSize

		seedsInRing := int(math.Round(float64(pointsPerRing) * ringNumber / float64(ringCount)))
		if seedsInRing < 3 {
			seedsInRing = 3
		}

		for i := 0; i < seedsInRing; i++ {
			angle := 2 * math.Pi * float64(i) / float64(seedsInRing)
			radius := baseRadius + r.rangef(-variation, variation)*(maxRadius/float64(ringCount))
			angle += r.rangef(-variation, variation) * (2 * math.Pi / float64(seedsInRing))

			candidate := center.Add(geom.Point{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(radius))
			if polygon.Contains(candidate) && geom.FarEnough(candidate, points, minDist) {
				points = append(points, candidate)
			}
		}
	}
	return points
}

// SpiderwebSeeds builds the cracked-glass pattern: a centre point plus seeds
// at every ray/ring intersection of a radial lattice, jittered by variation.
func SpiderwebSeeds(polygon geom.Polygon, origin geom.Point, ringCount int, ringSize float64, pointsPerRing int, variation, minCellDistance float64, seed int64) []geom.Point {
	if ringCount <= 0 || pointsPerRing <= 0 {
		return nil
	}

	r := newRng(seed)
	bounds := polygon.Bounds()
	center := origin
	if origin == (geom.Point{}) {
		center = bounds.Center()
	}

	minDist := bounds.MinDimension() * minCellDistance
	maxRadius := farthestCornerDistance(bounds, center)
	var points []geom.Point

	if polygon.Contains(center) {
		points = append(points, center)
	}

	rayCount := pointsPerRing
	for ray := 0; ray < rayCount; ray++ {
		baseAngle := 2 * math.Pi * float64(ray) / float64(rayCount)

		for ring := 1; ring <= ringCount; ring++ {
			radius := float64(ring) * ringSize

			angle := baseAngle + r.rangef(-variation, variation)*(2*math.Pi/float64(rayCount)/2)
			radius += r.rangef(-variation, variation) * (maxRadius / float64(ringCount) / 2)

			candidate := center.Add(geom.Point{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(radius))
			if polygon.Contains(candidate) && geom.FarEnough(candidate, points, minDist) {
				points = append(points, candidate)
			}
		}
	}
	return points
}

// PoissonSeeds produces a blue-noise distribution by dart throwing around an
// active frontier: each accepted point spawns candidates in the annulus
// [d, 2d) around it, and a frontier point that fails attempts placements in a
// row is retired. Terminates on the requested count, frontier exhaustion, or
// the count*attempts total budget.
func PoissonSeeds(polygon geom.Polygon, count int, minCellDistance, edgePadding float64, attempts int, seed int64) []geom.Point {
	r := newRng(seed)
	padded := polygon.Bounds().Grow(-edgePadding)
	if padded.Width() <= 0 || padded.Height() <= 0 {
		return nil
	}

	minDist := padded.MinDimension() * minCellDistance
	maxTotalAttempts := count * attempts

	var points []geom.Point
	var active []geom.Point

	first := geom.Point{
		X: r.rangef(padded.Min.X, padded.Max.X),
		Y: r.rangef(padded.Min.Y, padded.Max.Y),
	}
	if polygon.Contains(first) {
		points = append(points, first)
		active = append(active, first)
	}

	totalAttempts := 0
	for len(active) > 0 && len(points) < count && totalAttempts < maxTotalAttempts {
		idx := r.intn(len(active))
		point := active[idx]

		foundValid := false
		for i := 0; i < attempts; i++ {
			totalAttempts++

			angle := r.float() * 2 * math.Pi
			radius := minDist * (1 + r.float())
			candidate := point.Add(geom.Point{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(radius))

			if candidate.X < padded.Min.X || candidate.X > padded.Max.X ||
				candidate.Y < padded.Min.Y || candidate.Y > padded.Max.Y {
				continue
			}
			if !polygon.Contains(candidate) {
				continue
			}
			if geom.FarEnough(candidate, points, minDist) {
				points = append(points, candidate)
				active = append(active, candidate)
				foundValid = true
				break
			}
		}

		if !foundValid {
			// This point's neighbourhood is full; retire it.
			active[idx] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}
	return points
}

func farthestCornerDistance(bounds geom.Rect, from geom.Point) float64 {
	max := 0.0
	for _, c := range bounds.Corners() {
		if d := c.Sub(from).Length(); d > max {
			max = d
		}
	}
	return max
}
