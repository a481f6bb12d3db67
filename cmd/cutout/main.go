package main

import (
	"bufio"
	"fmt"
	"image"
	_ "image/png"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/9exa/cutout/contour"
	"github.com/9exa/cutout/dbg"
	"github.com/9exa/cutout/fracture"
	"github.com/9exa/cutout/geom"
	"github.com/9exa/cutout/simplify"
)

// Polygon text format, on stdin and stdout: newline separated points in the
// form "x y", with each polygon separated by an extra newline. The first
// polygon of a group is the outer boundary; the rest are holes.

var (
	app    = kingpin.New("cutout", "Trace and fracture 2D shapes.")
	render = app.Flag("render", "Render the result to a PNG and cat it to the terminal.").String()

	traceCmd       = app.Command("trace", "Extract contours from an image alpha mask.")
	traceImagePath = traceCmd.Arg("image", "PNG image to trace.").Required().String()
	traceThreshold = traceCmd.Flag("threshold", "Alpha threshold in [0,1].").Default("0.5").Float64()
	traceMaxRes    = traceCmd.Flag("max-resolution", "Downscale the mask so its larger side fits this many pixels (0 = full resolution).").Default("0").Int()
	traceAlgorithm = traceCmd.Flag("algorithm", "Tracing algorithm.").Default("marching").Enum("marching", "moore")
	traceEpsilon   = traceCmd.Flag("simplify-epsilon", "RDP simplification threshold (0 = off).").Default("0").Float64()

	voronoiCmd     = app.Command("voronoi", "Fracture polygons on stdin into Voronoi cells.")
	voronoiSeeds   = voronoiCmd.Flag("seeds", "Number of seed points.").Default("10").Int()
	voronoiPattern = voronoiCmd.Flag("pattern", "Seed placement pattern.").Default("random").Enum("random", "grid", "radial", "spiderweb", "poisson")
	voronoiSeed    = voronoiCmd.Flag("seed", "Deterministic seed.").Default("0").Int64()
	voronoiMinDist = voronoiCmd.Flag("min-distance", "Minimum seed separation as a fraction of the smaller bounds dimension.").Default("0.1").Float64()
	voronoiPadding = voronoiCmd.Flag("padding", "Keep seeds this far inside the bounding box.").Default("0").Float64()

	sliceCmd      = app.Command("slice", "Fracture polygons on stdin along straight cuts.")
	slicePattern  = sliceCmd.Flag("pattern", "Cut pattern.").Default("radial").Enum("single", "radial", "parallel", "grid", "chaotic")
	sliceSeed     = sliceCmd.Flag("seed", "Deterministic seed.").Default("0").Int64()
	sliceCount    = sliceCmd.Flag("count", "Number of cuts (radial, parallel, chaotic).").Default("4").Int()
	sliceAngle    = sliceCmd.Flag("angle", "Base angle in degrees (parallel).").Default("0").Float64()
	sliceAngleRnd = sliceCmd.Flag("angle-rand", "Angular jitter in [0,1].").Default("0").Float64()
	sliceRandom   = sliceCmd.Flag("randomness", "Spoke jitter in [0,1] (radial).").Default("0").Float64()
	sliceHCount   = sliceCmd.Flag("h-slices", "Vertical cut count (grid).").Default("2").Int()
	sliceVCount   = sliceCmd.Flag("v-slices", "Horizontal cut count (grid).").Default("2").Int()
	sliceFrom     = sliceCmd.Flag("from", "Segment start \"x,y\" (single).").String()
	sliceTo       = sliceCmd.Flag("to", "Segment end \"x,y\" (single).").String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	var result []geom.Polygon
	var err error
	switch command {
	case traceCmd.FullCommand():
		result, err = runTrace()
	case voronoiCmd.FullCommand():
		result, err = runVoronoi(readPolygons(os.Stdin))
	case sliceCmd.FullCommand():
		result, err = runSlice(readPolygons(os.Stdin))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}

	writePolygons(os.Stdout, result)
	fmt.Fprintln(os.Stderr, aurora.Green(fmt.Sprintf("%d polygons", len(result))))

	if *render != "" {
		if err := dbg.Draw(result, 1, *render); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err))
			os.Exit(1)
		}
	}
}

func runTrace() ([]geom.Polygon, error) {
	f, err := os.Open(*traceImagePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", *traceImagePath)
	}

	settings := contour.Settings{
		AlphaThreshold: *traceThreshold,
		MaxResolution:  *traceMaxRes,
	}
	if *traceAlgorithm == "moore" {
		settings.Algorithm = contour.AlgorithmMooreNeighbor
	}

	contours := contour.Process(img, settings)
	if *traceEpsilon > 0 {
		for i, c := range contours {
			contours[i] = simplify.RDP(c, *traceEpsilon)
		}
	}
	return contours, nil
}

func runVoronoi(polygons []geom.Polygon) ([]geom.Polygon, error) {
	if len(polygons) == 0 {
		return nil, fmt.Errorf("no polygons on stdin")
	}

	outer := polygons[0]
	var seeds []geom.Point
	switch *voronoiPattern {
	case "random":
		seeds = fracture.RandomSeeds(outer, *voronoiSeeds, *voronoiMinDist, *voronoiPadding, *voronoiSeed)
	case "grid":
		side := int(math.Ceil(math.Sqrt(float64(*voronoiSeeds))))
		seeds = fracture.GridSeeds(outer, side, side, 0.5, *voronoiMinDist, *voronoiPadding, *voronoiSeed)
	case "radial":
		seeds = fracture.RadialSeeds(outer, geom.Point{}, 3, outer.Bounds().MinDimension()/6, *voronoiSeeds/3, 0.3, *voronoiMinDist, *voronoiSeed)
	case "spiderweb":
		seeds = fracture.SpiderwebSeeds(outer, geom.Point{}, 3, outer.Bounds().MinDimension()/6, *voronoiSeeds/3, 0.3, *voronoiMinDist, *voronoiSeed)
	case "poisson":
		seeds = fracture.PoissonSeeds(outer, *voronoiSeeds, *voronoiMinDist, *voronoiPadding, 30, *voronoiSeed)
	}
	if len(seeds) < 2 {
		return nil, fmt.Errorf("pattern %q placed %d seeds, need at least 2", *voronoiPattern, len(seeds))
	}

	return fracture.Voronoi(polygons, seeds), nil
}

func runSlice(polygons []geom.Polygon) ([]geom.Polygon, error) {
	if len(polygons) == 0 {
		return nil, fmt.Errorf("no polygons on stdin")
	}

	switch *slicePattern {
	case "single":
		a, err := parseCoord(*sliceFrom)
		if err != nil {
			return nil, errors.Wrap(err, "--from")
		}
		b, err := parseCoord(*sliceTo)
		if err != nil {
			return nil, errors.Wrap(err, "--to")
		}
		return fracture.Slice(polygons, a, b), nil
	case "radial":
		return fracture.RadialSlices(polygons, *sliceSeed, *sliceCount, geom.Point{}, *sliceRandom), nil
	case "parallel":
		return fracture.ParallelSlices(polygons, *sliceSeed, *sliceCount, *sliceAngle, *sliceAngleRnd), nil
	case "grid":
		return fracture.GridSlices(polygons, *sliceSeed, 0, 0, *sliceHCount, *sliceVCount, *sliceRandom, *sliceRandom, *sliceAngleRnd, *sliceAngleRnd), nil
	case "chaotic":
		return fracture.ChaoticSlices(polygons, *sliceSeed, *sliceCount), nil
	}
	return polygons, nil
}

func parseCoord(s string) (geom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("want \"x,y\", got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: x, Y: y}, nil
}

func readPolygons(in *os.File) []geom.Polygon {
	polygons := []geom.Polygon{}
	scanner := bufio.NewScanner(in)
	var points geom.Polygon
	for scanner.Scan() {
		line := scanner.Text()

		// An empty line after collected points ends the polygon
		if strings.TrimSpace(line) == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}

		p, err := parsePoint(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, aurora.Yellow(fmt.Sprintf("skipping line %q: %v", line, err)))
			continue
		}
		points = append(points, p)
	}

	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return geom.Point{}, fmt.Errorf("want \"x y\"")
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: x, Y: y}, nil
}

func writePolygons(out *os.File, polygons []geom.Polygon) {
	w := bufio.NewWriter(out)
	defer w.Flush()
	for i, poly := range polygons {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, p := range poly {
			fmt.Fprintf(w, "%g %g\n", p.X, p.Y)
		}
	}
}
