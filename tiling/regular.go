package tiling

import "math"

// RegularTiling is the square, triangular, or circle-pack pattern over a
// rectangular region at unit scale u (spec section 4.3.1).
type RegularTiling struct {
	kind   Kind
	region Region
	unit   float64
}

// NewRegularTiling validates and constructs a square, triangular, or
// circle-pack tiling.
func NewRegularTiling(kind Kind, region Region, unit float64) (*RegularTiling, error) {
	const op = "NewRegularTiling"
	switch kind {
	case KindSquare, KindTriangular, KindCirclePack:
	default:
		return nil, newDomainError(op, "unsupported regular tiling kind %q", kind)
	}
	if err := validateRegion(op, region.Width, region.Height); err != nil {
		return nil, err
	}
	if err := validateUnit(op, unit); err != nil {
		return nil, err
	}
	return &RegularTiling{kind: kind, region: region, unit: unit}, nil
}

func (t *RegularTiling) Kind() Kind     { return t.kind }
func (t *RegularTiling) Dimension() int { return 2 }
func (t *RegularTiling) Region() Region { return t.region }

func (t *RegularTiling) Tiles() ([]Tile, error) {
	switch t.kind {
	case KindSquare:
		return t.squareTiles(), nil
	case KindTriangular:
		return t.triangularTiles(), nil
	case KindCirclePack:
		return t.circlePackTiles(), nil
	default:
		return nil, newDomainError("RegularTiling.Tiles", "unsupported kind %q", t.kind)
	}
}

func (t *RegularTiling) squareTiles() []Tile {
	u := t.unit
	cols := int(math.Ceil(t.region.Width / u))
	rows := int(math.Ceil(t.region.Height / u))

	var tiles []Tile
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x0, y0 := float64(col)*u, float64(row)*u
			poly := []Point{{x0, y0}, {x0 + u, y0}, {x0 + u, y0 + u}, {x0, y0 + u}}
			clipped := clipToRegion(poly, t.region.Width, t.region.Height)
			if clipped == nil {
				continue
			}
			tiles = append(tiles, Tile{Centroid: polygonCentroid(clipped), Polygon: clipped})
		}
	}
	return tiles
}

// triangularTiles builds a row of equilateral triangles of side u per row,
// alternating "up" and "down" orientation, rows stacked at height u*sqrt(3)/2.
func (t *RegularTiling) triangularTiles() []Tile {
	u := t.unit
	rowHeight := u * math.Sqrt(3) / 2
	rows := int(math.Ceil(t.region.Height / rowHeight))
	cols := int(math.Ceil(t.region.Width/(u/2))) + 1

	var tiles []Tile
	for row := 0; row < rows; row++ {
		y0, y1 := float64(row)*rowHeight, float64(row+1)*rowHeight
		for col := -1; col < cols; col++ {
			x0 := float64(col) * u / 2
			var poly []Point
			if col%2 == 0 {
				// "down" triangle: base on the top edge of the row.
				poly = []Point{{x0, y1}, {x0 + u, y1}, {x0 + u/2, y0}}
			} else {
				// "up" triangle: base on the bottom edge of the row.
				poly = []Point{{x0, y0}, {x0 + u, y0}, {x0 + u/2, y1}}
			}
			clipped := clipToRegion(poly, t.region.Width, t.region.Height)
			if clipped == nil {
				continue
			}
			tiles = append(tiles, Tile{Centroid: polygonCentroid(clipped), Polygon: clipped})
		}
	}
	return tiles
}

// circlePackTiles places circles of radius u/2 on a hexagonal lattice,
// approximated as 32-gons for area/adjacency purposes (spec section 4.3.1:
// theoretical efficiency π/(2√3), realized value reported alongside it).
func (t *RegularTiling) circlePackTiles() []Tile {
	const sides = 32
	r := t.unit / 2
	dx := 2 * r
	dy := r * math.Sqrt(3)

	rows := int(math.Ceil(t.region.Height/dy)) + 1
	cols := int(math.Ceil(t.region.Width/dx)) + 1

	var tiles []Tile
	for row := -1; row <= rows; row++ {
		offset := 0.0
		if row%2 != 0 {
			offset = r
		}
		for col := -1; col <= cols; col++ {
			cx := float64(col)*dx + offset
			cy := float64(row) * dy
			poly := regularPolygon(cx, cy, r, sides, 0)
			clipped := clipToRegion(poly, t.region.Width, t.region.Height)
			if clipped == nil {
				continue
			}
			tiles = append(tiles, Tile{Centroid: polygonCentroid(clipped), Polygon: clipped})
		}
	}
	return tiles
}

// TheoreticalCirclePackEfficiency is π/(2√3), the packing density of equal
// circles on a hexagonal lattice (spec section 4.3.1).
func TheoreticalCirclePackEfficiency() float64 {
	return math.Pi / (2 * math.Sqrt(3))
}
