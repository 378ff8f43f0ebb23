package scene

import "math"

// icosphereDirections returns the 12 unit-vector directions of a regular
// icosahedron and its 20 triangular faces (indices into that list). Encode
// casts a boundary ray along each direction, so the resulting mesh is
// always a topologically regular icosahedron-shaped sampling of the
// shape's surface, regardless of how round or faceted the shape actually
// is.
func icosphereDirections() ([]Point3, [][3]int) {
	phi := (1 + math.Sqrt(5)) / 2

	raw := [][3]float64{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	dirs := make([]Point3, len(raw))
	for i, v := range raw {
		norm := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		dirs[i] = Point3{X: v[0] / norm, Y: v[1] / norm, Z: v[2] / norm}
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return dirs, faces
}
