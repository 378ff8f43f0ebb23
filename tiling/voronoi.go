package tiling

import (
	"math"
	"sort"
)

// VoronoiTiling produces the Voronoi diagram of a set of 2-D seeds, clipped
// to a rectangular region (spec section 4.3.3). Deterministic given the
// same seed list, or the same (count, rngSeed) pair.
type VoronoiTiling struct {
	region Region
	seeds  []Point
}

// NewVoronoiTiling validates and constructs a Voronoi tiling from an
// explicit seed list.
func NewVoronoiTiling(region Region, seeds []Point) (*VoronoiTiling, error) {
	const op = "NewVoronoiTiling"
	if err := validateRegion(op, region.Width, region.Height); err != nil {
		return nil, err
	}
	if len(seeds) < 1 {
		return nil, newDomainError(op, "at least one seed is required, got %d", len(seeds))
	}
	cp := make([]Point, len(seeds))
	copy(cp, seeds)
	return &VoronoiTiling{region: region, seeds: cp}, nil
}

// NewVoronoiTilingFromCount deterministically generates count seeds from a
// linear congruential generator seeded by rngSeed, so the same (count,
// rngSeed) pair always yields the same tiling (spec section 4.3.3).
func NewVoronoiTilingFromCount(region Region, count int, rngSeed uint64) (*VoronoiTiling, error) {
	const op = "NewVoronoiTilingFromCount"
	if err := validateRegion(op, region.Width, region.Height); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, newDomainError(op, "at least one seed is required, got %d", count)
	}
	seeds := make([]Point, count)
	state := rngSeed
	next := func() float64 {
		// Knuth's MMIX LCG constants; deterministic and seed-stable.
		state = state*6364136223846793005 + 1442695040888963407
		return float64(state>>11) / float64(1<<53)
	}
	for i := range seeds {
		seeds[i] = Point{X: next() * region.Width, Y: next() * region.Height}
	}
	return &VoronoiTiling{region: region, seeds: seeds}, nil
}

func (t *VoronoiTiling) Kind() Kind     { return KindVoronoi }
func (t *VoronoiTiling) Dimension() int { return 2 }
func (t *VoronoiTiling) Region() Region { return t.region }

// Tiles computes each seed's cell as the intersection of the region with
// the half-plane bisectors against every other seed (the textbook
// construction of a Voronoi cell), via Sutherland-Hodgman clipping against
// each bisector in turn.
func (t *VoronoiTiling) Tiles() ([]Tile, error) {
	tiles := make([]Tile, 0, len(t.seeds))
	for i, seed := range t.seeds {
		poly := []Point{
			{0, 0}, {t.region.Width, 0}, {t.region.Width, t.region.Height}, {0, t.region.Height},
		}
		for j, other := range t.seeds {
			if i == j {
				continue
			}
			poly = clipHalfPlane(poly,
				func(p Point) bool { return distSq(p, seed) <= distSq(p, other) },
				func(a, b Point) Point { return bisectorIntersection(a, b, seed, other) },
			)
			if poly == nil {
				break
			}
		}
		if poly == nil {
			continue
		}
		tiles = append(tiles, Tile{Centroid: polygonCentroid(poly), Polygon: poly})
	}
	sort.SliceStable(tiles, func(a, b int) bool {
		if tiles[a].Centroid.X != tiles[b].Centroid.X {
			return tiles[a].Centroid.X < tiles[b].Centroid.X
		}
		return tiles[a].Centroid.Y < tiles[b].Centroid.Y
	})
	return tiles, nil
}

func distSq(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// bisectorIntersection finds where segment a-b crosses the perpendicular
// bisector of (seed, other), by solving for t such that
// |a + t(b-a) - seed|^2 = |a + t(b-a) - other|^2, which is linear in t.
func bisectorIntersection(a, b, seed, other Point) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	// f(t) = |P(t)-seed|^2 - |P(t)-other|^2 is affine in t; solve f(t)=0.
	f0 := distSq(a, seed) - distSq(a, other)
	f1 := (distSq(Point{a.X + dx, a.Y + dy}, seed) - distSq(Point{a.X + dx, a.Y + dy}, other)) - f0
	if f1 == 0 {
		return a
	}
	t := -f0 / f1
	t = math.Max(0, math.Min(1, t))
	return Point{X: a.X + t*dx, Y: a.Y + t*dy}
}
