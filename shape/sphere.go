package shape

import (
	"fmt"
	"math"

	"github.com/hypershape/hypershape/errs"
	"github.com/hypershape/hypershape/kernel"
)

// HyperSphere is the N-dimensional ball of radius R (spec section 4.2.1).
type HyperSphere struct {
	n int
	r float64
}

// NewHyperSphere validates and constructs an N-dimensional sphere of radius
// r. N must be >= 1; r must be finite and >= 0.
func NewHyperSphere(n int, r float64) (*HyperSphere, error) {
	const op = "NewHyperSphere"
	if err := validateDimension(op, n, 1); err != nil {
		return nil, err
	}
	if err := validateParams(op, []string{"r"}, []float64{r}); err != nil {
		return nil, err
	}
	return &HyperSphere{n: n, r: r}, nil
}

func (s *HyperSphere) Dimension() int        { return s.n }
func (s *HyperSphere) Parameters() []float64 { return []float64{s.r} }
func (s *HyperSphere) Kind() Kind            { return KindSphere }

// Volume returns V(N) * r^N.
func (s *HyperSphere) Volume() (float64, error) {
	vn, err := kernel.UnitBallVolume(s.n)
	if err != nil {
		return 0, err
	}
	return vn * math.Pow(s.r, float64(s.n)), nil
}

// Surface returns N * V(N) * r^(N-1) for N >= 2; for N = 1 the boundary is
// the two endpoints {-r, r}, so surface is defined as 2 regardless of r.
func (s *HyperSphere) Surface() (float64, error) {
	if s.n == 1 {
		return 2, nil
	}
	vn, err := kernel.UnitBallVolume(s.n)
	if err != nil {
		return 0, err
	}
	return float64(s.n) * vn * math.Pow(s.r, float64(s.n-1)), nil
}

func (s *HyperSphere) VolumeFormulaText() string {
	switch s.n {
	case 1:
		return "V_1 = 2r"
	case 2:
		return "V_2 = πr²"
	case 3:
		return "V_3 = (4/3)πr³"
	case 4:
		return "V_4 = (π²/2)r⁴"
	default:
		return fmt.Sprintf("V_%d = V(%d)×r^%d", s.n, s.n, s.n)
	}
}

func (s *HyperSphere) SurfaceFormulaText() string {
	if s.n == 1 {
		return "S_1 = 2"
	}
	return fmt.Sprintf("S_%d = %d×V(%d)×r^%d", s.n, s.n, s.n, s.n-1)
}

// Contains reports whether point lies within radius r of the origin.
func (s *HyperSphere) Contains(point []float64) (bool, error) {
	const op = "HyperSphere.Contains"
	if err := validatePoint(op, s.n, point); err != nil {
		return false, err
	}
	var sumSq float64
	for _, v := range point {
		sumSq += v * v
	}
	return sumSq <= s.r*s.r, nil
}

// CrossSection returns the (N-1)-volume of the slice of this sphere by the
// hyperplane x_N = t (spec section 4.2.1). For |t| >= r the slice is empty
// (0). For N = 1 the "slice" is a point, reported as 1 when |t| < r.
func (s *HyperSphere) CrossSection(t float64) (float64, error) {
	const op = "HyperSphere.CrossSection"
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, errs.NewDomainError(op, "offset must be finite, got %v", t)
	}
	if math.Abs(t) >= s.r {
		return 0, nil
	}
	if s.n == 1 {
		return 1, nil
	}
	radius := math.Sqrt(s.r*s.r - t*t)
	slice, err := NewHyperSphere(s.n-1, radius)
	if err != nil {
		return 0, err
	}
	return slice.Volume()
}

// Project returns the (N-1)-dimensional sphere of the same radius; valid
// only for N >= 2 (spec section 4.2.1).
func (s *HyperSphere) Project() (*HyperSphere, error) {
	const op = "HyperSphere.Project"
	if err := validateDimension(op, s.n, 2); err != nil {
		return nil, err
	}
	return NewHyperSphere(s.n-1, s.r)
}

func (s *HyperSphere) Describe() (Report, error) {
	vol, err := s.Volume()
	if err != nil {
		return Report{}, err
	}
	surf, err := s.Surface()
	if err != nil {
		return Report{}, err
	}
	return Report{
		Kind:           KindSphere,
		Dimension:      s.n,
		Parameters:     s.Parameters(),
		Volume:         vol,
		Surface:        surf,
		VolumeFormula:  s.VolumeFormulaText(),
		SurfaceFormula: s.SurfaceFormulaText(),
	}, nil
}
