package contour

import "github.com/9exa/cutout/geom"

// Moore neighbourhood, clockwise starting west.
var mooreDirections = [8][2]int{
	{-1, 0},  // W
	{-1, -1}, // NW
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
}

// MooreNeighbor traces the outer boundary of the first connected solid region
// found scanning from the bottom-left. It walks solid pixel centres using the
// Moore neighbourhood and stops when it is back at the start pixel about to
// repeat its first move. Holes and additional regions are not traced; use
// MarchingSquares when those matter.
func MooreNeighbor(g *Grid) []geom.Polygon {
	startX, startY, found := firstBottomLeftSolid(g)
	if !found {
		return nil
	}

	contour := geom.Polygon{{X: float64(startX) + 0.5, Y: float64(startY) + 0.5}}

	cx, cy := startX, startY
	// The pixel west of the start is empty by scan order, so searching
	// clockwise from west keeps the empty side on our left throughout.
	dir := 0
	firstDir := -1

	// Each boundary pixel is visited a bounded number of times; 8 * area is
	// a hard stop for anything malformed.
	maxSteps := 8 * g.width * g.height

	for steps := 0; steps < maxSteps; steps++ {
		d := -1
		for i := 0; i < 8; i++ {
			cand := (dir + i) % 8
			if g.Get(cx+mooreDirections[cand][0], cy+mooreDirections[cand][1]) {
				d = cand
				break
			}
		}
		if d == -1 {
			// Isolated pixel
			break
		}

		if cx == startX && cy == startY {
			if firstDir == -1 {
				firstDir = d
			} else if d == firstDir {
				// Back at the start about to retrace the first move: the
				// loop is closed.
				break
			}
		}

		cx += mooreDirections[d][0]
		cy += mooreDirections[d][1]
		if cx != startX || cy != startY {
			contour = append(contour, geom.Point{X: float64(cx) + 0.5, Y: float64(cy) + 0.5})
		}
		// Resume the search from the direction we came from, rotated one
		// step clockwise, so the trace hugs the boundary.
		dir = (d + 5) % 8
	}

	return []geom.Polygon{contour}
}

func firstBottomLeftSolid(g *Grid) (int, int, bool) {
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			if g.Get(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
