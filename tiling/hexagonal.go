package tiling

import "math"

// HexagonalTiling is the flat-top honeycomb lattice of regular hexagons
// with side u over a rectangular region (spec section 4.3.2).
type HexagonalTiling struct {
	region Region
	unit   float64
}

// NewHexagonalTiling validates and constructs a hexagonal tiling.
func NewHexagonalTiling(region Region, unit float64) (*HexagonalTiling, error) {
	const op = "NewHexagonalTiling"
	if err := validateRegion(op, region.Width, region.Height); err != nil {
		return nil, err
	}
	if err := validateUnit(op, unit); err != nil {
		return nil, err
	}
	return &HexagonalTiling{region: region, unit: unit}, nil
}

func (t *HexagonalTiling) Kind() Kind     { return KindHexagonal }
func (t *HexagonalTiling) Dimension() int { return 2 }
func (t *HexagonalTiling) Region() Region { return t.region }

// Tiles lays hexagons out on an axial (q,r) lattice for a flat-top
// honeycomb: pixel centers x = 1.5·R·q, y = R·√3·(r + q/2), R = unit.
func (t *HexagonalTiling) Tiles() ([]Tile, error) {
	r := t.unit
	sqrt3 := math.Sqrt(3)

	qMax := int(math.Ceil(t.region.Width/(1.5*r))) + 2
	rMax := int(math.Ceil(t.region.Height/(r*sqrt3))) + 2

	var tiles []Tile
	for q := -2; q <= qMax; q++ {
		for row := -2 - (q+1)/2; row <= rMax; row++ {
			cx := 1.5 * r * float64(q)
			cy := r * sqrt3 * (float64(row) + float64(q)/2)
			if cx < -r || cx > t.region.Width+r || cy < -r || cy > t.region.Height+r {
				continue
			}
			poly := regularPolygon(cx, cy, r, 6, 0) // 0 rad rotation gives flat-top
			clipped := clipToRegion(poly, t.region.Width, t.region.Height)
			if clipped == nil {
				continue
			}
			tiles = append(tiles, Tile{Centroid: polygonCentroid(clipped), Polygon: clipped})
		}
	}
	return tiles, nil
}
