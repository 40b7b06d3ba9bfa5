// Command pathgen prints a scan path as CSV, one point per row.
//
// Usage:
//
//	pathgen [flags] line|grid|spiral|lissajous
//
// The path is fitted into -box. An optional -outer line adds an enclosing
// level and -circle restricts the scan to a disc on the fast/slow axes.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/scanpath"
	"github.com/katalvlaran/scanpath/generator"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/mutator"
	"github.com/katalvlaran/scanpath/region"
)

type config struct {
	fast, slow  string
	box         []float64
	points      int
	step        float64
	scale       float64
	alternating bool
	continuous  bool
	fit         bool
	seed        int64
	jitter      float64
	circle      []float64
	outer       string
	verbose     bool
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "pathgen: %v\n", err)
		os.Exit(2)
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("pathgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var c config
	var box, circle string
	fs.StringVar(&c.fast, "fast", "x", "fast axis name")
	fs.StringVar(&c.slow, "slow", "y", "slow axis name")
	fs.StringVar(&box, "box", "0,1,0,1", "fastStart,fastLength,slowStart,slowLength")
	fs.IntVar(&c.points, "points", 0, "points per axis (line, grid) or total points (lissajous)")
	fs.Float64Var(&c.step, "step", 0, "spacing per axis (line, grid)")
	fs.Float64Var(&c.scale, "scale", model.DefaultSpiralScale, "distance between spiral arcs")
	fs.BoolVar(&c.alternating, "alternating", false, "snake rows")
	fs.BoolVar(&c.continuous, "continuous", false, "mark points as continuous motion")
	fs.BoolVar(&c.fit, "fit", false, "place points half a step inside the box")
	fs.Int64Var(&c.seed, "seed", 0, "random offset seed")
	fs.Float64Var(&c.jitter, "jitter", 0, "grid random offset, percent of the fast step")
	fs.StringVar(&circle, "circle", "", "region of interest cx,cy,r on the fast/slow axes")
	fs.StringVar(&c.outer, "outer", "", "enclosing line axis,start,stop,points")
	fs.BoolVar(&c.verbose, "v", false, "debug logging on stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("expected one path kind: line, grid, spiral or lissajous")
	}

	var err error
	if c.box, err = parseFloats(box, 4); err != nil {
		return fmt.Errorf("-box: %w", err)
	}
	if circle != "" {
		if c.circle, err = parseFloats(circle, 3); err != nil {
			return fmt.Errorf("-circle: %w", err)
		}
	}
	if c.verbose {
		scanpath.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer scanpath.SetLogger(nil)
	}

	m, err := buildModel(fs.Arg(0), c)
	if err != nil {
		return err
	}
	entries := []generator.Entry{{Model: m}}
	if c.outer != "" {
		outer, err := parseOuter(c.outer)
		if err != nil {
			return fmt.Errorf("-outer: %w", err)
		}
		entries = append([]generator.Entry{{Model: outer}}, entries...)
	}
	var regions []region.ScanRegion
	if c.circle != nil {
		disc, err := region.Circle(c.circle[0], c.circle[1], c.circle[2])
		if err != nil {
			return fmt.Errorf("-circle: %w", err)
		}
		roi, err := region.NewScanRegion(disc, c.fast, c.slow)
		if err != nil {
			return fmt.Errorf("-circle: %w", err)
		}
		regions = append(regions, roi)
	}
	var mutators []mutator.Mutator
	if c.continuous {
		mutators = append(mutators, mutator.NewContinuous())
	}

	scan, err := generator.NewService().CreateCompound(entries, regions, mutators)
	if err != nil {
		return err
	}
	return writeCSV(stdout, scan)
}

func buildModel(kind string, c config) (model.Model, error) {
	box := model.NewBoundingBox(c.box[0], c.box[1], c.box[2], c.box[3])
	opts := []model.Option{
		model.WithAlternating(c.alternating),
		model.WithBoundsToFit(c.fit),
	}

	switch model.Kind(kind) {
	case model.KindLine:
		l := model.Line{Axis: c.fast, Start: box.FastStart, Stop: box.FastStart + box.FastLength, Points: c.points, Step: c.step}
		for _, opt := range opts {
			opt(&l.Common)
		}
		return l, l.Validate()

	case model.KindGrid:
		g := model.Grid{
			FastAxis: c.fast, SlowAxis: c.slow, Box: box,
			FastPoints: c.points, SlowPoints: c.points,
			FastStep: c.step, SlowStep: c.step,
		}
		if c.points == 0 && c.step == 0 {
			g.FastPoints, g.SlowPoints = model.DefaultGridPoints, model.DefaultGridPoints
		}
		for _, opt := range opts {
			opt(&g.Common)
		}
		if c.jitter > 0 {
			ro, err := model.GridOffset(g, c.seed, c.jitter)
			if err != nil {
				return nil, err
			}
			g.Offset = &ro
		}
		return g, g.Validate()

	case model.KindSpiral:
		return model.NewSpiral(c.fast, c.slow, box, c.scale, opts...)

	case model.KindLissajous:
		l, err := model.NewLissajous(c.fast, c.slow, box, opts...)
		if err != nil {
			return nil, err
		}
		l.Points = c.points
		return l, l.Validate()

	default:
		return nil, fmt.Errorf("unknown path kind %q", kind)
	}
}

// parseOuter reads "axis,start,stop,points".
func parseOuter(s string) (model.Model, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("want axis,start,stop,points, got %q", s)
	}
	vs, err := parseFloats(strings.Join(parts[1:3], ","), 2)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[3]))
	if err != nil {
		return nil, err
	}
	return model.NewLine(strings.TrimSpace(parts[0]), vs[0], vs[1], n)
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func writeCSV(w io.Writer, scan *generator.Compound) error {
	cw := csv.NewWriter(w)
	header := append([]string{"index"}, scan.Axes()...)
	header = append(header, "continuous")
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for scan.HasNext() {
		p, err := scan.Next()
		if err != nil {
			return err
		}
		row[0] = strconv.Itoa(p.Index())
		for k, v := range p.Values() {
			row[k+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		row[len(row)-1] = strconv.FormatBool(p.Continuous())
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
