package shape

import (
	"fmt"
	"math"

	"github.com/hypershape/hypershape/errs"
	"github.com/hypershape/hypershape/kernel"
)

// HyperEllipsoid is the N-dimensional ellipsoid with semi-axes a_1..a_N
// (spec section 4.2.3). Degenerate when any a_i = 0.
type HyperEllipsoid struct {
	n    int
	axes []float64
}

// NewHyperEllipsoid validates and constructs an N-dimensional ellipsoid.
// len(axes) must equal n; every axis must be finite and >= 0.
func NewHyperEllipsoid(n int, axes []float64) (*HyperEllipsoid, error) {
	const op = "NewHyperEllipsoid"
	if err := validateDimension(op, n, 1); err != nil {
		return nil, err
	}
	if len(axes) != n {
		return nil, errs.NewDomainError(op, "expected %d axes, got %d", n, len(axes))
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("a%d", i+1)
	}
	if err := validateParams(op, names, axes); err != nil {
		return nil, err
	}
	cp := make([]float64, n)
	copy(cp, axes)
	return &HyperEllipsoid{n: n, axes: cp}, nil
}

func (e *HyperEllipsoid) Dimension() int        { return e.n }
func (e *HyperEllipsoid) Parameters() []float64 { return append([]float64(nil), e.axes...) }
func (e *HyperEllipsoid) Kind() Kind            { return KindEllipsoid }

func (e *HyperEllipsoid) Volume() (float64, error) {
	vn, err := kernel.UnitBallVolume(e.n)
	if err != nil {
		return 0, err
	}
	product := 1.0
	for _, a := range e.axes {
		product *= a
	}
	return vn * product, nil
}

func (e *HyperEllipsoid) minMax() (min, max float64) {
	min, max = e.axes[0], e.axes[0]
	for _, a := range e.axes[1:] {
		if a < min {
			min = a
		}
		if a > max {
			max = a
		}
	}
	return min, max
}

// IsSphere reports whether all axes are equal to within 1e-12 relative
// tolerance (spec section 4.2.3).
func (e *HyperEllipsoid) IsSphere() bool {
	min, max := e.minMax()
	if max == 0 {
		return true
	}
	return max-min <= 1e-12*max
}

// Eccentricity is defined only for N = 2: sqrt(1 - (min/max)^2).
func (e *HyperEllipsoid) Eccentricity() (float64, error) {
	const op = "HyperEllipsoid.Eccentricity"
	if err := validateDimension(op, e.n, 2); err != nil {
		return 0, err
	}
	if e.n != 2 {
		return 0, errs.NewDomainError(op, "eccentricity is only defined for N = 2, got N = %d", e.n)
	}
	min, max := e.minMax()
	if max == 0 {
		return 0, nil
	}
	ratio := min / max
	return math.Sqrt(1 - ratio*ratio), nil
}

// Surface returns the boundary measure. N = 1 is exact (the two endpoints);
// N = 2 uses Ramanujan's second perimeter approximation and N = 3 Thomsen's
// surface approximation, neither of which is flagged; for N >= 4 a
// mean-axis sphere surrogate is used and Describe sets Report.Approximate
// to flag it (spec section 4.2.3 / 7, Approximation).
// In every case the result reduces exactly to the sphere surface when all
// axes are equal.
func (e *HyperEllipsoid) Surface() (float64, error) {
	s, _, err := e.surfaceWithFlag()
	return s, err
}

func (e *HyperEllipsoid) surfaceWithFlag() (float64, bool, error) {
	switch e.n {
	case 1:
		// The "boundary" of a 1-D ellipsoid (an interval) is its two endpoints.
		return 2, false, nil
	case 2:
		a, b := e.axes[0], e.axes[1]
		h := 0.0
		if a+b > 0 {
			h = math.Pow((a-b)/(a+b), 2)
		}
		// Ramanujan's second approximation for the ellipse perimeter;
		// exact (circle circumference) when a == b, since h == 0 then.
		p := math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
		return p, false, nil
	case 3:
		a, b, c := e.axes[0], e.axes[1], e.axes[2]
		const p = 1.6075
		inner := (math.Pow(a, p)*math.Pow(b, p) + math.Pow(a, p)*math.Pow(c, p) + math.Pow(b, p)*math.Pow(c, p)) / 3
		// Thomsen's approximation; exact (sphere surface) when a == b == c.
		return 4 * math.Pi * math.Pow(inner, 1/p), false, nil
	default:
		vn, err := kernel.UnitBallVolume(e.n)
		if err != nil {
			return 0, false, err
		}
		var sum float64
		for _, a := range e.axes {
			sum += a
		}
		meanAxis := sum / float64(e.n)
		// Mean-axis sphere surrogate: substitute the arithmetic mean of the
		// axes into the sphere surface formula. Exact when all axes are
		// equal (meanAxis == the common axis value); approximate otherwise.
		return float64(e.n) * vn * math.Pow(meanAxis, float64(e.n-1)), true, nil
	}
}

func (e *HyperEllipsoid) VolumeFormulaText() string {
	return fmt.Sprintf("V_%d = V(%d)×a₁×a₂×...×a_%d", e.n, e.n, e.n)
}

func (e *HyperEllipsoid) SurfaceFormulaText() string {
	switch e.n {
	case 2:
		return "S_2 ≈ π(a+b)(1 + 3h/(10+√(4-3h))), h=((a-b)/(a+b))²"
	case 3:
		return "S_3 ≈ 4π((a^p b^p + a^p c^p + b^p c^p)/3)^(1/p), p=1.6075"
	default:
		return fmt.Sprintf("S_%d ≈ %d×V(%d)×mean(a)^%d", e.n, e.n, e.n, e.n-1)
	}
}

// Contains reports whether sum((x_i/a_i)^2) <= 1, treating a degenerate
// (zero) axis as requiring the matching coordinate to be exactly 0.
func (e *HyperEllipsoid) Contains(point []float64) (bool, error) {
	const op = "HyperEllipsoid.Contains"
	if err := validatePoint(op, e.n, point); err != nil {
		return false, err
	}
	var sum float64
	for i, x := range point {
		a := e.axes[i]
		if a == 0 {
			if x != 0 {
				return false, nil
			}
			continue
		}
		sum += (x / a) * (x / a)
	}
	return sum <= 1, nil
}

func (e *HyperEllipsoid) Describe() (Report, error) {
	vol, err := e.Volume()
	if err != nil {
		return Report{}, err
	}
	surf, approx, err := e.surfaceWithFlag()
	if err != nil {
		return Report{}, err
	}
	derived := map[string]float64{}
	if e.IsSphere() {
		derived["is_sphere"] = 1
	} else {
		derived["is_sphere"] = 0
	}
	if e.n == 2 {
		ecc, err := e.Eccentricity()
		if err != nil {
			return Report{}, err
		}
		derived["eccentricity"] = ecc
	}
	return Report{
		Kind:           KindEllipsoid,
		Dimension:      e.n,
		Parameters:     e.Parameters(),
		Volume:         vol,
		Surface:        surf,
		Derived:        derived,
		VolumeFormula:  e.VolumeFormulaText(),
		SurfaceFormula: e.SurfaceFormulaText(),
		Approximate:    approx,
	}, nil
}
