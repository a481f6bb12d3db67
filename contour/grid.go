// Package contour extracts closed polygon boundaries from raster alpha
// masks. The pipeline is: build a binary occupancy Grid from an image's alpha
// channel, then trace it with either the marching-squares tracer (sub-pixel
// boundaries, holes supported) or the Moore-neighbour tracer (single
// pixel-level outline).
package contour

import "image"

// Grid is a dense binary occupancy map. It is immutable once built; the
// tracers only read it. Lookups outside the grid always come back empty,
// including for negative coordinates. The tracers lean on that: cells
// straddling the border must see the outside world as empty for boundary
// loops to close.
type Grid struct {
	data   []bool
	width  int
	height int
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		data:   make([]bool, width*height),
		width:  width,
		height: height,
	}
}

// GridFromData wraps a prebuilt occupancy slice. It panics if the slice
// length does not match the dimensions; that is a programming error, not a
// runtime condition.
func GridFromData(width, height int, data []bool) *Grid {
	if len(data) != width*height {
		panic("contour: grid data length does not match dimensions")
	}
	return &Grid{data: data, width: width, height: height}
}

// GridFromImage builds a grid in which a pixel is solid iff its normalized
// alpha exceeds threshold (in [0,1]).
func GridFromImage(img image.Image, threshold float64) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if float64(a)/0xffff > threshold {
				g.data[y*g.width+x] = true
			}
		}
	}
	return g
}

// Get reports occupancy at (x, y), returning false anywhere outside
// [0,width) x [0,height).
func (g *Grid) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	return g.data[y*g.width+x]
}

// Set marks occupancy at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, solid bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.data[y*g.width+x] = solid
}

func (g *Grid) Width() int { return g.width }

func (g *Grid) Height() int { return g.height }
