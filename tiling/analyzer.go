package tiling

import (
	"sort"

	"github.com/hypershape/hypershape/errs"
)

// MaxTiles is the soft budget on tiles per tiling (spec section 5:
// "10^6 tiles per tiling").
const MaxTiles = 1_000_000

// Analyze computes a Report for the given pattern: coverage efficiency,
// coordination number, and a declared symmetry profile (spec section 4.3.4).
func Analyze(p Pattern) (Report, error) {
	const op = "tiling.Analyze"
	tiles, err := p.Tiles()
	if err != nil {
		return Report{}, err
	}
	if len(tiles) > MaxTiles {
		return Report{}, errs.NewResourceLimit(op, "tiles", float64(len(tiles)), MaxTiles)
	}

	region := p.Region()
	efficiency := coverageEfficiency(tiles, region)
	coordination := coordinationNumber(tiles)

	return Report{
		Kind:         p.Kind(),
		Region:       region,
		Tiles:        tiles,
		Efficiency:   efficiency,
		Coordination: coordination,
		Properties:   symmetryProfile(p.Kind()),
	}, nil
}

func coverageEfficiency(tiles []Tile, region Region) float64 {
	if region.Area() == 0 {
		return 0
	}
	var covered float64
	for _, t := range tiles {
		covered += polygonArea(t.Polygon)
	}
	return covered / region.Area()
}

// coordinationNumber builds the tile-adjacency set and returns the mode of
// per-tile degree. Two tiles are adjacent when their centroid distance is
// within 5% of that tile's own nearest neighbor distance, which
// generalizes across edge-sharing tessellations (square, triangular,
// hexagonal) and tangency-only packings (circle-pack) alike without
// hand-coding per-kind neighbor offsets.
func coordinationNumber(tiles []Tile) int {
	n := len(tiles)
	if n == 0 {
		return 0
	}

	adj := newTileAdjacency(n)

	const tolerance = 1.05
	for i := 0; i < n; i++ {
		nearest := nearestDistance(tiles, i)
		if nearest <= 0 {
			continue
		}
		// nearest is a squared distance, so the tolerance is squared too.
		threshold := nearest * tolerance * tolerance
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if centroidDistance(tiles[i], tiles[j]) <= threshold {
				adj.connect(i, j)
			}
		}
	}

	counts := make(map[int]int)
	for i := range tiles {
		counts[adj.degree(i)]++
	}
	return modeKey(counts)
}

func nearestDistance(tiles []Tile, i int) float64 {
	best := -1.0
	for j := range tiles {
		if i == j {
			continue
		}
		d := centroidDistance(tiles[i], tiles[j])
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

// centroidDistance returns the squared Euclidean distance between two
// tiles' centroids; callers only compare distances, so the square root is
// skipped.
func centroidDistance(a, b Tile) float64 {
	dx := a.Centroid.X - b.Centroid.X
	dy := a.Centroid.Y - b.Centroid.Y
	return dx*dx + dy*dy
}

// modeKey returns the key with the largest count, breaking ties by the
// smallest key for determinism.
func modeKey(counts map[int]int) int {
	if len(counts) == 0 {
		return 0
	}
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	best, bestCount := keys[0], counts[keys[0]]
	for _, k := range keys[1:] {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}

func symmetryProfile(kind Kind) map[string]string {
	switch kind {
	case KindSquare:
		return map[string]string{"rotational": "4-fold", "reflective": "4 axes"}
	case KindTriangular:
		return map[string]string{"rotational": "6-fold", "reflective": "3 axes per triangle"}
	case KindHexagonal:
		return map[string]string{"rotational": "6-fold", "reflective": "6 axes"}
	case KindCirclePack:
		return map[string]string{"rotational": "6-fold (hexagonal lattice)", "reflective": "6 axes"}
	case KindVoronoi:
		return map[string]string{"rotational": "none", "reflective": "none"}
	default:
		return map[string]string{}
	}
}
