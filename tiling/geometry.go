package tiling

import "math"

// clipToRegion clips a convex polygon against the axis-aligned rectangle
// [0,w]x[0,h] using the Sutherland-Hodgman algorithm. Returns nil if the
// polygon lies entirely outside the region.
func clipToRegion(poly []Point, w, h float64) []Point {
	out := poly
	out = clipHalfPlane(out, func(p Point) bool { return p.X >= 0 }, func(a, b Point) Point { return intersectX(a, b, 0) })
	out = clipHalfPlane(out, func(p Point) bool { return p.X <= w }, func(a, b Point) Point { return intersectX(a, b, w) })
	out = clipHalfPlane(out, func(p Point) bool { return p.Y >= 0 }, func(a, b Point) Point { return intersectY(a, b, 0) })
	out = clipHalfPlane(out, func(p Point) bool { return p.Y <= h }, func(a, b Point) Point { return intersectY(a, b, h) })
	if len(out) < 3 {
		return nil
	}
	return out
}

func clipHalfPlane(poly []Point, inside func(Point) bool, intersect func(a, b Point) Point) []Point {
	if len(poly) == 0 {
		return nil
	}
	var out []Point
	prev := poly[len(poly)-1]
	prevIn := inside(prev)
	for _, cur := range poly {
		curIn := inside(cur)
		if curIn {
			if !prevIn {
				out = append(out, intersect(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersect(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

func intersectX(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func intersectY(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{X: a.X + t*(b.X-a.X), Y: y}
}

// polygonArea returns the absolute area of a simple polygon via the
// shoelace formula.
func polygonArea(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	var sum float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// polygonCentroid returns the area-weighted centroid of a simple polygon;
// falls back to the vertex average for degenerate (near-zero-area) polygons.
func polygonCentroid(poly []Point) Point {
	area := 0.0
	var cx, cy float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		cross := p.X*q.Y - q.X*p.Y
		area += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	if area == 0 {
		var sx, sy float64
		for _, p := range poly {
			sx += p.X
			sy += p.Y
		}
		n := float64(len(poly))
		if n == 0 {
			return Point{}
		}
		return Point{X: sx / n, Y: sy / n}
	}
	area /= 2
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// regularPolygon returns the vertices of a regular k-gon centered at
// (cx,cy) with circumradius r, the first vertex at the given rotation
// (radians) from the positive X axis, listed counter-clockwise.
func regularPolygon(cx, cy, r float64, k int, rotation float64) []Point {
	pts := make([]Point, k)
	for i := 0; i < k; i++ {
		theta := rotation + 2*math.Pi*float64(i)/float64(k)
		pts[i] = Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)}
	}
	return pts
}
