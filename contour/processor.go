package contour

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/9exa/cutout/geom"
)

// Algorithm selects the tracer used by Process.
type Algorithm int

const (
	AlgorithmMarchingSquares Algorithm = iota
	AlgorithmMooreNeighbor
)

// Settings configures one contour extraction.
type Settings struct {
	Algorithm Algorithm

	// AlphaThreshold in [0,1]; a pixel is solid iff its alpha exceeds it.
	AlphaThreshold float64

	// MaxResolution caps the larger image dimension. Larger images are
	// downscaled before tracing and the output coordinates rescaled back.
	// Zero means no limit.
	MaxResolution int
}

// DefaultSettings traces at full resolution with the half-alpha cutoff.
func DefaultSettings() Settings {
	return Settings{
		Algorithm:      AlgorithmMarchingSquares,
		AlphaThreshold: 0.5,
	}
}

// Process extracts boundary contours from an image: optional downscale, grid
// build against the alpha threshold, tracer dispatch, then rescale of the
// output coordinates by the inverse factor. The rescale is pure
// post-processing; the tracers never see the original resolution.
func Process(img image.Image, s Settings) []geom.Polygon {
	b := img.Bounds()
	maxDim := b.Dx()
	if b.Dy() > maxDim {
		maxDim = b.Dy()
	}

	scale := 1.0
	working := img
	if s.MaxResolution > 0 && maxDim > s.MaxResolution {
		scale = float64(s.MaxResolution) / float64(maxDim)
		working = downscale(img, scale)
	}

	grid := GridFromImage(working, s.AlphaThreshold)

	var contours []geom.Polygon
	switch s.Algorithm {
	case AlgorithmMooreNeighbor:
		contours = MooreNeighbor(grid)
	default:
		contours = MarchingSquares(grid)
	}

	if scale != 1.0 {
		upscale := 1.0 / scale
		for _, contour := range contours {
			for i := range contour {
				contour[i].X *= upscale
				contour[i].Y *= upscale
			}
		}
	}
	return contours
}

// ProcessBatch applies uniform settings across many images, one contour set
// per image. Calls share no state, so callers that need throughput can shard
// the image list across goroutines and call Process directly.
func ProcessBatch(images []image.Image, s Settings) [][]geom.Polygon {
	results := make([][]geom.Polygon, len(images))
	for i, img := range images {
		results[i] = Process(img, s)
	}
	return results
}

// ProcessBatchEach is ProcessBatch with per-image settings. The two slices
// must have equal length; mismatched input yields nil.
func ProcessBatchEach(images []image.Image, settings []Settings) [][]geom.Polygon {
	if len(images) != len(settings) {
		return nil
	}
	results := make([][]geom.Polygon, len(images))
	for i, img := range images {
		results[i] = Process(img, settings[i])
	}
	return results
}

func downscale(img image.Image, scale float64) image.Image {
	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
