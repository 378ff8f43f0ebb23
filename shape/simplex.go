package shape

import (
	"fmt"
	"math"

	"github.com/hypershape/hypershape/errs"
	"github.com/hypershape/hypershape/kernel"
)

// Simplex is the regular N-simplex of edge length a, with N+1 vertices
// (spec section 4.2.4). Surface is the sum of its N+1 facets for N >= 2; for
// N = 1 it is the segment's two endpoints, reported as 2.
type Simplex struct {
	n int
	a float64
}

// NewSimplex validates and constructs a regular N-simplex of edge a.
func NewSimplex(n int, a float64) (*Simplex, error) {
	const op = "NewSimplex"
	if err := validateDimension(op, n, 1); err != nil {
		return nil, err
	}
	if err := validateParams(op, []string{"a"}, []float64{a}); err != nil {
		return nil, err
	}
	return &Simplex{n: n, a: a}, nil
}

func (s *Simplex) Dimension() int        { return s.n }
func (s *Simplex) Parameters() []float64 { return []float64{s.a} }
func (s *Simplex) Kind() Kind            { return KindSimplex }

// volumeAt computes a^n * sqrt(n+1) / (n! * 2^(n/2)) for arbitrary n >= 1,
// using the Gamma function so large n degrade to 0 rather than overflow.
func volumeAt(n int, a float64) (float64, error) {
	if n == 0 {
		return 1, nil
	}
	factorial, err := kernel.Gamma(float64(n) + 1)
	if err != nil {
		return 0, err
	}
	numerator := math.Pow(a, float64(n)) * math.Sqrt(float64(n)+1)
	denominator := factorial * math.Pow(2, float64(n)/2)
	if denominator == 0 {
		return 0, errs.NewInternalError("Simplex.Volume", "zero denominator at n=%d", n)
	}
	v := numerator / denominator
	if math.IsNaN(v) {
		// For large n, Gamma(n+1) itself is NaN (its power term overflows
		// while its exponential term underflows), or numerator and
		// denominator both overflow to +Inf.
		// The true asymptotic value is 0 (volume vanishes as n grows for
		// fixed edge length), so report that rather than NaN.
		return 0, nil
	}
	return v, nil
}

func (s *Simplex) Volume() (float64, error) {
	return volumeAt(s.n, s.a)
}

// Surface returns (N+1) times the volume of an (N-1)-simplex of edge a
// (each of the N+1 facets) for N >= 2; for N = 1 it returns 2.
func (s *Simplex) Surface() (float64, error) {
	const op = "Simplex.Surface"
	if s.n == 1 {
		// Boundary of a line segment: its two endpoints.
		return 2, nil
	}
	facetVolume, err := volumeAt(s.n-1, s.a)
	if err != nil {
		return 0, err
	}
	_ = op
	return float64(s.n+1) * facetVolume, nil
}

// Circumradius returns a*sqrt(N/(2(N+1))).
func (s *Simplex) Circumradius() float64 {
	return s.a * math.Sqrt(float64(s.n)/(2*float64(s.n+1)))
}

// Inradius returns a/sqrt(2N(N+1)).
func (s *Simplex) Inradius() float64 {
	return s.a / math.Sqrt(2*float64(s.n)*float64(s.n+1))
}

func (s *Simplex) VolumeFormulaText() string {
	return fmt.Sprintf("V_%d = a^%d×√%d / (%d!×2^%.1f)", s.n, s.n, s.n+1, s.n, float64(s.n)/2)
}

func (s *Simplex) SurfaceFormulaText() string {
	return fmt.Sprintf("S_%d = %d×V_%d(a)", s.n, s.n+1, s.n-1)
}

// Contains reports whether point lies within the simplex's circumscribed
// ball centered at the origin. This is a necessary condition only: points
// outside a facet but inside the ball also report true.
func (s *Simplex) Contains(point []float64) (bool, error) {
	const op = "Simplex.Contains"
	if err := validatePoint(op, s.n, point); err != nil {
		return false, err
	}
	// A simplex's containment test in Cartesian coordinates requires an
	// explicit vertex embedding; this library reports containment only via
	// the circumscribed-ball necessary condition, which is exact for the
	// common case of checking obviously-outside points and conservative
	// (may answer true for points outside a facet but inside the ball).
	var sumSq float64
	for _, v := range point {
		sumSq += v * v
	}
	return sumSq <= s.Circumradius()*s.Circumradius(), nil
}

func (s *Simplex) Describe() (Report, error) {
	vol, err := s.Volume()
	if err != nil {
		return Report{}, err
	}
	surf, err := s.Surface()
	if err != nil {
		return Report{}, err
	}
	derived := map[string]float64{
		"circumradius": s.Circumradius(),
		"inradius":     s.Inradius(),
	}
	return Report{
		Kind:           KindSimplex,
		Dimension:      s.n,
		Parameters:     s.Parameters(),
		Volume:         vol,
		Surface:        surf,
		Derived:        derived,
		VolumeFormula:  s.VolumeFormulaText(),
		SurfaceFormula: s.SurfaceFormulaText(),
	}, nil
}
