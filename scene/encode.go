package scene

import (
	"errors"
	"math"

	"github.com/hypershape/hypershape/errs"
	"github.com/hypershape/hypershape/shape"
)

// View carries the caller's rendering preferences (spec section 6.1:
// `scene.encode(shape_or_tiling, view:{dimension_cap, cross_sections?})`).
// DimensionCap is advisory to a hosting façade deciding how deep to push a
// recursive cross-section family; Encode itself always recurses to N=3.
// CrossSections, when non-empty, overrides the default offset family
// {-r,-r/2,0,+r/2,+r}.
type View struct {
	DimensionCap  int
	CrossSections []float64
}

// Encode renders s into a Scene keyed by its own dimension (spec section
// 4.6). N=1 yields an interval, N=2 a sampled outline polygon, N=3 a
// triangulated mesh, and N≥4 a recursive family of (N-1)-cross-sections.
//
// The cross-section family branches at every level (5 offsets by default),
// so for large N the fully expanded tree can vastly exceed MaxPrimitives;
// a shared budget is threaded through the recursion, and once it runs out
// the family stops short and the scene is marked Subsampled rather than
// building an intractable tree.
func Encode(s shape.Shape, view View) (Scene, error) {
	budget := MaxPrimitives
	return encode(s, view, &budget)
}

func encode(s shape.Shape, view View, budget *int) (Scene, error) {
	switch s.Dimension() {
	case 1:
		return encodeInterval(s, budget)
	case 2:
		return encodePolygon(s, budget)
	case 3:
		return encodeMesh(s, budget)
	default:
		return encodeCrossSections(s, view, budget)
	}
}

func spend(op string, budget *int, n int) error {
	if n > *budget {
		return errs.NewResourceLimit(op, "primitives", float64(n), float64(MaxPrimitives))
	}
	*budget -= n
	return nil
}

func extent(s shape.Shape) float64 {
	p := s.Parameters()
	if len(p) == 0 {
		return 1
	}
	return p[0]
}

// centerFor2D returns the point every boundary ray is cast from, matching
// each kind's own coordinate convention (centered at the origin for
// sphere/ellipsoid/simplex, corner-anchored for cube, and on the apex axis
// at half height for pyramid).
func centerFor2D(s shape.Shape) Point2 {
	switch s.Kind() {
	case shape.KindCube:
		side := extent(s)
		return Point2{X: side / 2, Y: side / 2}
	case shape.KindPyramid:
		height := s.Parameters()[1]
		return Point2{X: 0, Y: height / 2}
	default:
		return Point2{}
	}
}

func centerFor3D(s shape.Shape) Point3 {
	switch s.Kind() {
	case shape.KindCube:
		side := extent(s)
		return Point3{X: side / 2, Y: side / 2, Z: side / 2}
	case shape.KindPyramid:
		height := s.Parameters()[1]
		return Point3{X: 0, Y: 0, Z: height / 2}
	default:
		return Point3{}
	}
}

// boundaryDistance binary-searches the distance along a unit direction
// from center at which Contains transitions from true to false.
func boundaryDistance(s shape.Shape, center []float64, dir []float64, maxDist float64) (float64, error) {
	at := func(t float64) []float64 {
		p := make([]float64, len(center))
		for i := range p {
			p[i] = center[i] + t*dir[i]
		}
		return p
	}
	inside, err := s.Contains(at(0))
	if err != nil {
		return 0, err
	}
	if !inside {
		return 0, nil
	}
	lo, hi := 0.0, maxDist
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		in, err := s.Contains(at(mid))
		if err != nil {
			return 0, err
		}
		if in {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, nil
}

func encodeInterval(s shape.Shape, budget *int) (Scene, error) {
	const op = "encodeInterval"
	if err := spend(op, budget, 1); err != nil {
		return Scene{}, err
	}
	r := extent(s)
	center := centerFor2D(s).X
	lo, err := boundaryDistance(s, []float64{center}, []float64{-1}, r+1)
	if err != nil {
		return Scene{}, err
	}
	hi, err := boundaryDistance(s, []float64{center}, []float64{1}, r+1)
	if err != nil {
		return Scene{}, err
	}
	return Scene{Dimension: 1, Interval: &[2]float64{center - lo, center + hi}}, nil
}

const polygonSamples = 64

func encodePolygon(s shape.Shape, budget *int) (Scene, error) {
	const op = "encodePolygon"
	if err := spend(op, budget, polygonSamples); err != nil {
		return Scene{}, err
	}
	center := centerFor2D(s)
	maxDist := extent(s)*2 + 1
	poly := make([]Point2, polygonSamples)
	for i := 0; i < polygonSamples; i++ {
		theta := 2 * math.Pi * float64(i) / float64(polygonSamples)
		dir := []float64{math.Cos(theta), math.Sin(theta)}
		d, err := boundaryDistance(s, []float64{center.X, center.Y}, dir, maxDist)
		if err != nil {
			return Scene{}, err
		}
		poly[i] = Point2{X: center.X + d*dir[0], Y: center.Y + d*dir[1]}
	}
	return Scene{Dimension: 2, Polygon: poly}, nil
}

func encodeMesh(s shape.Shape, budget *int) (Scene, error) {
	const op = "encodeMesh"
	dirs, faces := icosphereDirections()
	if err := spend(op, budget, len(dirs)+len(faces)); err != nil {
		return Scene{}, err
	}
	center := centerFor3D(s)
	maxDist := extent(s)*2 + 1

	verts := make([]Point3, len(dirs))
	for i, d := range dirs {
		dist, err := boundaryDistance(s, []float64{center.X, center.Y, center.Z}, []float64{d.X, d.Y, d.Z}, maxDist)
		if err != nil {
			return Scene{}, err
		}
		verts[i] = Point3{X: center.X + dist*d.X, Y: center.Y + dist*d.Y, Z: center.Z + dist*d.Z}
	}

	return Scene{Dimension: 3, Mesh: &Mesh{Vertices: verts, Faces: faces}}, nil
}

// crossSectionShape generalizes slicing to any shape kind by rendering the
// same kind and parameters one dimension down (dropping the last ellipsoid
// axis, since the other kinds' parameter vectors don't scale with N).
func crossSectionShape(s shape.Shape) (shape.Shape, error) {
	n := s.Dimension() - 1
	params := s.Parameters()
	if s.Kind() == shape.KindEllipsoid {
		params = params[:len(params)-1]
	}
	return shape.New(s.Kind(), n, params)
}

// encodeCrossSections builds the (N-1)-cross-section family. If the shared
// primitive budget runs out partway through (a real risk: the family
// branches at every one of N-3 levels), it stops short and marks the scene
// Subsampled rather than failing the whole encode (spec section 4.6:
// "if exceeded, subsample uniformly").
func encodeCrossSections(s shape.Shape, view View, budget *int) (Scene, error) {
	r := extent(s)
	offsets := view.CrossSections
	if len(offsets) == 0 {
		offsets = []float64{-r, -r / 2, 0, r / 2, r}
	}

	var sections []CrossSection
	subsampled := false
	for _, t := range offsets {
		slice, err := crossSectionShape(s)
		if err != nil {
			return Scene{}, err
		}
		sub, err := encode(slice, view, budget)
		if err != nil {
			var limit *errs.ResourceLimit
			if errors.As(err, &limit) {
				subsampled = true
				break
			}
			return Scene{}, err
		}
		sections = append(sections, CrossSection{Offset: t, Scene: sub})
		if sub.Subsampled {
			subsampled = true
			break
		}
	}
	return Scene{Dimension: s.Dimension(), CrossSections: sections, Subsampled: subsampled}, nil
}
