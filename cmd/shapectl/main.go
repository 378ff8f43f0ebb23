// Command shapectl is a small illustrative front end over the hypershape
// core: it can describe a single shape, tile a region, compare two shapes,
// sweep a property across dimensions, render a scene, or run one natural-
// language request through the query dispatcher. It exists to exercise the
// structured request surface (spec section 6.1) from a shell, the way
// cmd/query exercises oneseismic-api's handlers.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pborman/getopt/v2"
	"gopkg.in/yaml.v3"

	"github.com/hypershape/hypershape/analyze"
	"github.com/hypershape/hypershape/query"
	"github.com/hypershape/hypershape/scene"
	"github.com/hypershape/hypershape/shape"
	"github.com/hypershape/hypershape/tiling"
)

type opts struct {
	op         string
	kind       string
	secondKind string
	dimension  int
	params     string
	point      string
	region     string
	unit       float64
	lo, hi     int
	queryText  string
	format     string
}

func parseopts() opts {
	help := getopt.BoolLong("help", 'h', "print this help text")

	o := opts{
		op:        "describe",
		kind:      "sphere",
		dimension: 3,
		format:    "json",
	}

	getopt.FlagLong(&o.op, "op", 0,
		"Operation to run: describe, contains, compare, scaling, tile, scene, query.\n"+
			"Defaults to 'describe'.", "string")
	getopt.FlagLong(&o.kind, "kind", 'k',
		"Shape kind: sphere, cube, ellipsoid, simplex, pyramid. Defaults to 'sphere'.", "string")
	getopt.FlagLong(&o.secondKind, "second-kind", 0,
		"Second shape kind, for --op=compare. Defaults to 'cube'.", "string")
	getopt.FlagLong(&o.dimension, "dimension", 'n',
		"Shape dimension N. Defaults to 3.", "int")
	getopt.FlagLong(&o.params, "params", 'p',
		"Comma-separated positional parameters for the shape (e.g. '1,2,3' for an\n"+
			"ellipsoid's per-axis radii).", "string")
	getopt.FlagLong(&o.point, "point", 0,
		"Comma-separated point coordinates, for --op=contains.", "string")
	getopt.FlagLong(&o.region, "region", 0,
		"Comma-separated width,height of the tiling region, for --op=tile.\n"+
			"Defaults to '10,10'.", "string")
	getopt.FlagLong(&o.unit, "unit", 0,
		"Tile edge length, for --op=tile. Defaults to 1.", "float")
	getopt.FlagLong(&o.lo, "lo", 0, "Lower dimension bound, for --op=scaling.", "int")
	getopt.FlagLong(&o.hi, "hi", 0, "Upper dimension bound, for --op=scaling.", "int")
	getopt.FlagLong(&o.queryText, "query", 'q',
		"Natural-language request, for --op=query.", "string")
	getopt.FlagLong(&o.format, "format", 'f',
		"Output format: json or yaml. Defaults to 'json'.", "string")

	getopt.Parse()
	if *help {
		getopt.Usage()
		os.Exit(0)
	}
	return o
}

func parseFloats(csv string) ([]float64, error) {
	if csv == "" {
		return nil, nil
	}
	fields := strings.Split(csv, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

func render(format string, v interface{}) (string, error) {
	switch format {
	case "yaml":
		b, err := yaml.Marshal(v)
		return string(b), err
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		return string(b), err
	}
}

func runDescribe(o opts) (interface{}, error) {
	params, err := parseFloats(o.params)
	if err != nil {
		return nil, err
	}
	s, err := shape.New(shape.Kind(o.kind), o.dimension, params)
	if err != nil {
		return nil, err
	}
	report, err := s.Describe()
	if err != nil {
		return nil, err
	}
	return report, nil
}

func runContains(o opts) (interface{}, error) {
	params, err := parseFloats(o.params)
	if err != nil {
		return nil, err
	}
	point, err := parseFloats(o.point)
	if err != nil {
		return nil, err
	}
	s, err := shape.New(shape.Kind(o.kind), o.dimension, params)
	if err != nil {
		return nil, err
	}
	inside, err := s.Contains(point)
	if err != nil {
		return nil, err
	}
	return struct {
		Contains bool `json:"contains" yaml:"contains"`
	}{inside}, nil
}

func runCompare(o opts) (interface{}, error) {
	params, err := parseFloats(o.params)
	if err != nil {
		return nil, err
	}
	secondKind := o.secondKind
	if secondKind == "" {
		secondKind = "cube"
	}
	a, err := shape.New(shape.Kind(o.kind), o.dimension, params)
	if err != nil {
		return nil, err
	}
	b, err := shape.New(shape.Kind(secondKind), o.dimension, params)
	if err != nil {
		return nil, err
	}
	return analyze.Compare(a, b)
}

func runScaling(o opts) (interface{}, error) {
	params, err := parseFloats(o.params)
	if err != nil {
		return nil, err
	}
	return analyze.ScalingSweep(shape.Kind(o.kind), "volume", o.lo, o.hi, params)
}

func runTile(o opts) (interface{}, error) {
	region := "10,10"
	if o.region != "" {
		region = o.region
	}
	dims, err := parseFloats(region)
	if err != nil || len(dims) != 2 {
		return nil, fmt.Errorf("--region must be 'width,height'")
	}
	unit := o.unit
	if unit == 0 {
		unit = 1
	}
	var pattern tiling.Pattern
	switch tiling.Kind(o.kind) {
	case tiling.KindHexagonal:
		pattern, err = tiling.NewHexagonalTiling(tiling.Region{Width: dims[0], Height: dims[1]}, unit)
	case tiling.KindVoronoi:
		pattern, err = tiling.NewVoronoiTilingFromCount(tiling.Region{Width: dims[0], Height: dims[1]}, 12, 1)
	default:
		pattern, err = tiling.NewRegularTiling(tiling.Kind(o.kind), tiling.Region{Width: dims[0], Height: dims[1]}, unit)
	}
	if err != nil {
		return nil, err
	}
	return tiling.Analyze(pattern)
}

func runScene(o opts) (interface{}, error) {
	params, err := parseFloats(o.params)
	if err != nil {
		return nil, err
	}
	s, err := shape.New(shape.Kind(o.kind), o.dimension, params)
	if err != nil {
		return nil, err
	}
	return scene.Encode(s, scene.View{})
}

func runQuery(o opts) (interface{}, error) {
	sess := query.NewSession()
	return query.Execute(sess, o.queryText)
}

func main() {
	o := parseopts()

	var (
		result interface{}
		err    error
	)
	switch o.op {
	case "describe":
		result, err = runDescribe(o)
	case "contains":
		result, err = runContains(o)
	case "compare":
		result, err = runCompare(o)
	case "scaling":
		result, err = runScaling(o)
	case "tile":
		result, err = runTile(o)
	case "scene":
		result, err = runScene(o)
	case "query":
		result, err = runQuery(o)
	default:
		err = fmt.Errorf("unknown --op %q", o.op)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out, err := render(o.format, result)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(out)
}
