package fracture

import (
	"math"

	"github.com/9exa/cutout/geom"
)

// ParallelSlicesOptimized is ParallelSlices with projection-interval culling.
// Each in-flight fragment carries a conservative 1D interval: its projection
// onto the perpendicular of the base slice direction, widened to cover every
// possible jitter angle by also projecting at both jitter extremes. A
// fragment whose interval sits entirely on one side of a slice's
// (epsilon-widened) projection cannot intersect that slice, so it either
// stays in flight untouched or moves straight to the output without paying
// for a boolean clip. Only straddling fragments get bisected.
func ParallelSlicesOptimized(polygons []geom.Polygon, seed int64, count int, angleDeg, angleRand float64) []geom.Polygon {
	if len(polygons) == 0 {
		return nil
	}
	outer, holes := splitPolygons(polygons)
	if len(outer) < 3 {
		return nil
	}
	if count <= 0 {
		return polygons
	}

	baseAngle := angleDeg * math.Pi / 180
	maxAngleDeviation := 45 * angleRand * math.Pi / 180
	basePerp := geom.Point{X: math.Cos(baseAngle), Y: math.Sin(baseAngle)}.Perp()

	r := newRng(seed)
	segments := parallelSegments(outer, r, count, angleDeg, angleRand)

	initMin, initMax := projectionInterval(outer, basePerp, maxAngleDeviation)
	remaining := []geom.Polygon{outer}
	minProjs := []float64{initMin}
	maxProjs := []float64{initMax}
	var output []geom.Polygon

	marginFactor := math.Abs(math.Sin(maxAngleDeviation)) * 0.1

	for _, seg := range segments {
		segCenter := seg.A.Add(seg.B).Mul(0.5)
		sliceProj := segCenter.Dot(basePerp)

		extent := remainingExtent(remaining, basePerp)
		sliceProjMin := sliceProj - marginFactor*extent
		sliceProjMax := sliceProj + marginFactor*extent

		var newRemaining []geom.Polygon
		var newMinProjs, newMaxProjs []float64

		for j := range remaining {
			switch {
			case minProjs[j] > sliceProjMax:
				// Entirely beyond this cut; later cuts may still reach it
				newRemaining = append(newRemaining, remaining[j])
				newMinProjs = append(newMinProjs, minProjs[j])
				newMaxProjs = append(newMaxProjs, maxProjs[j])
			case maxProjs[j] < sliceProjMin:
				// Entirely behind this and all later cuts; done
				output = append(output, remaining[j])
			default:
				for _, piece := range bisectOuter(remaining[j], seg.A, seg.B) {
					if len(piece) < 3 {
						continue
					}
					mn, mx := projectionInterval(piece, basePerp, maxAngleDeviation)
					newRemaining = append(newRemaining, piece)
					newMinProjs = append(newMinProjs, mn)
					newMaxProjs = append(newMaxProjs, mx)
				}
			}
		}

		remaining = newRemaining
		minProjs = newMinProjs
		maxProjs = newMaxProjs
	}

	output = append(output, remaining...)

	holeBounds := boundsOf(holes)
	var result []geom.Polygon
	for _, fragment := range output {
		for _, piece := range SubtractHoles(fragment, holes, holeBounds) {
			if len(piece) >= 3 {
				result = append(result, piece)
			}
		}
	}

	if len(result) == 0 {
		logf("fracture: optimized parallel slice produced no fragments, polygons unchanged")
		return polygons
	}
	return result
}

// projectionInterval returns the conservative [min, max] projection of the
// polygon onto basePerp, covering jitter by also projecting at both angular
// extremes.
func projectionInterval(poly geom.Polygon, basePerp geom.Point, maxDeviation float64) (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)

	offsets := []float64{0}
	if maxDeviation != 0 {
		offsets = []float64{0, -maxDeviation, maxDeviation}
	}

	for _, angleOffset := range offsets {
		cos := math.Cos(angleOffset)
		sin := math.Sin(angleOffset)
		testPerp := geom.Point{
			X: basePerp.X*cos - basePerp.Y*sin,
			Y: basePerp.X*sin + basePerp.Y*cos,
		}
		for _, p := range poly {
			proj := p.Dot(testPerp)
			if proj < min {
				min = proj
			}
			if proj > max {
				max = proj
			}
		}
	}
	return min, max
}

// remainingExtent measures the spread of all in-flight fragments along
// basePerp, the length scale for the cut's epsilon widening.
func remainingExtent(remaining []geom.Polygon, basePerp geom.Point) float64 {
	min, max := math.Inf(1), math.Inf(-1)
	for _, poly := range remaining {
		for _, p := range poly {
			proj := p.Dot(basePerp)
			if proj < min {
				min = proj
			}
			if proj > max {
				max = proj
			}
		}
	}
	if math.IsInf(min, 1) {
		return 1
	}
	return max - min
}
