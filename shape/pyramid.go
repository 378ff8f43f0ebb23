package shape

import (
	"fmt"
	"math"
)

// HyperPyramid has an (N-1)-cube base of side s and height h (spec section
// 4.2.5). Requires N >= 2 so the base cube is itself well-defined.
type HyperPyramid struct {
	n int
	s float64
	h float64
}

// NewHyperPyramid validates and constructs an N-dimensional pyramid.
func NewHyperPyramid(n int, s, h float64) (*HyperPyramid, error) {
	const op = "NewHyperPyramid"
	if err := validateDimension(op, n, 2); err != nil {
		return nil, err
	}
	if err := validateParams(op, []string{"s", "h"}, []float64{s, h}); err != nil {
		return nil, err
	}
	return &HyperPyramid{n: n, s: s, h: h}, nil
}

func (p *HyperPyramid) Dimension() int        { return p.n }
func (p *HyperPyramid) Parameters() []float64 { return []float64{p.s, p.h} }
func (p *HyperPyramid) Kind() Kind            { return KindPyramid }

// Volume returns s^(N-1) * h / N; 0 whenever s = 0 or h = 0.
func (p *HyperPyramid) Volume() (float64, error) {
	return math.Pow(p.s, float64(p.n-1)) * p.h / float64(p.n), nil
}

// SlantHeight returns l = sqrt(h^2 + (s/2)^2), the distance from the apex to
// the midpoint of a base facet.
func (p *HyperPyramid) SlantHeight() float64 {
	return math.Sqrt(p.h*p.h + (p.s/2)*(p.s/2))
}

// lateralFacetArea treats each lateral facet as itself an (N-1)-pyramid
// whose base is the (N-2)-cube of side s and whose height is the slant
// height l (spec's "lateral facet is a (N-1)-simplex-like slab").
func (p *HyperPyramid) lateralFacetArea() float64 {
	if p.n == 2 {
		// The facet of a 2-D pyramid (a triangle) is a single edge of
		// length l; the generalized pyramid-volume formula degenerates to
		// exactly l when the "base" is the empty (-1)-indexed cube.
		return p.SlantHeight()
	}
	return math.Pow(p.s, float64(p.n-2)) * p.SlantHeight() / float64(p.n-1)
}

// Surface returns s^(N-1) + N * lateral_facet_area; 0 whenever s = 0 and
// h = 0 simultaneously (both the base and the lateral facets vanish).
func (p *HyperPyramid) Surface() (float64, error) {
	base := math.Pow(p.s, float64(p.n-1))
	return base + float64(p.n)*p.lateralFacetArea(), nil
}

func (p *HyperPyramid) VolumeFormulaText() string {
	return fmt.Sprintf("V_%d = s^%d×h/%d", p.n, p.n-1, p.n)
}

func (p *HyperPyramid) SurfaceFormulaText() string {
	return fmt.Sprintf("S_%d = s^%d + %d×facet(s,l)", p.n, p.n-1, p.n)
}

// Contains reports whether point lies in the pyramid: the last coordinate
// (the apex axis) must lie in [0, h], and the remaining N-1 coordinates
// must lie within the base cube scaled linearly down to a point at the
// apex.
func (p *HyperPyramid) Contains(point []float64) (bool, error) {
	const op = "HyperPyramid.Contains"
	if err := validatePoint(op, p.n, point); err != nil {
		return false, err
	}
	if p.h == 0 {
		return p.s == 0 && allZero(point), nil
	}
	z := point[p.n-1]
	if z < 0 || z > p.h {
		return false, nil
	}
	remaining := 1 - z/p.h
	halfSide := p.s * remaining / 2
	for _, v := range point[:p.n-1] {
		if v < -halfSide || v > halfSide {
			return false, nil
		}
	}
	return true, nil
}

func allZero(point []float64) bool {
	for _, v := range point {
		if v != 0 {
			return false
		}
	}
	return true
}

func (p *HyperPyramid) Describe() (Report, error) {
	vol, err := p.Volume()
	if err != nil {
		return Report{}, err
	}
	surf, err := p.Surface()
	if err != nil {
		return Report{}, err
	}
	derived := map[string]float64{"slant_height": p.SlantHeight()}
	return Report{
		Kind:           KindPyramid,
		Dimension:      p.n,
		Parameters:     p.Parameters(),
		Volume:         vol,
		Surface:        surf,
		Derived:        derived,
		VolumeFormula:  p.VolumeFormulaText(),
		SurfaceFormula: p.SurfaceFormulaText(),
	}, nil
}
