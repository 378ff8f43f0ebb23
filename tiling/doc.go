// Package tiling generates 2-D tessellations (square, triangular,
// circle-pack, hexagonal, Voronoi) over a bounded rectangular region and
// analyzes their coverage efficiency, adjacency, and symmetry.
//
// Every tile is a closed polygon plus a centroid; the dimension attribute
// of a Pattern is fixed at 2 today but kept as a declared field so the
// package can grow an N-dimensional pattern without reshaping the API.
//
// Adjacency is derived once, generically, from the tile centroids: two
// tiles are neighbors when their centroid distance is within 5% of either
// tile's nearest-neighbor centroid distance. Shared polygon edges are not
// examined, so an edge-sharing neighbor whose centroid lies farther away
// than that (common in Voronoi tilings and among tiles clipped by the
// region boundary) is not counted. This is the same
// "build a graph over the cells, then ask it questions" approach the
// gridgraph package uses for raster grids, generalized to polygon tiles.
package tiling
