package shape

import (
	"fmt"
	"math"

	"github.com/hypershape/hypershape/errs"
	"github.com/hypershape/hypershape/kernel"
)

// HyperCube is the N-dimensional cube of side s (spec section 4.2.2).
type HyperCube struct {
	n int
	s float64
}

// NewHyperCube validates and constructs an N-dimensional cube of side s.
func NewHyperCube(n int, s float64) (*HyperCube, error) {
	const op = "NewHyperCube"
	if err := validateDimension(op, n, 1); err != nil {
		return nil, err
	}
	if err := validateParams(op, []string{"s"}, []float64{s}); err != nil {
		return nil, err
	}
	return &HyperCube{n: n, s: s}, nil
}

func (c *HyperCube) Dimension() int        { return c.n }
func (c *HyperCube) Parameters() []float64 { return []float64{c.s} }
func (c *HyperCube) Kind() Kind            { return KindCube }

func (c *HyperCube) Volume() (float64, error) {
	return math.Pow(c.s, float64(c.n)), nil
}

func (c *HyperCube) Surface() (float64, error) {
	if c.n == 1 {
		return 2, nil
	}
	return 2 * float64(c.n) * math.Pow(c.s, float64(c.n-1)), nil
}

// VertexCount returns 2^N, failing with *errs.ResourceLimit rather than
// overflowing to +Inf once N grows past float64's finite range.
func (c *HyperCube) VertexCount() (float64, error) {
	const op = "HyperCube.VertexCount"
	v := math.Pow(2, float64(c.n))
	if math.IsInf(v, 0) {
		return 0, errs.NewResourceLimit(op, "dimension", float64(c.n), 1023)
	}
	return v, nil
}

// EdgeCount returns N * 2^(N-1).
func (c *HyperCube) EdgeCount() (float64, error) {
	const op = "HyperCube.EdgeCount"
	v := float64(c.n) * math.Pow(2, float64(c.n-1))
	if math.IsInf(v, 0) {
		return 0, errs.NewResourceLimit(op, "dimension", float64(c.n), 1023)
	}
	return v, nil
}

// KFaceCount returns C(N,k) * 2^(N-k), the number of k-dimensional faces.
func (c *HyperCube) KFaceCount(k int) (float64, error) {
	const op = "HyperCube.KFaceCount"
	if k < 0 || k > c.n {
		return 0, errs.NewDomainError(op, "k must be in [0, %d], got %d", c.n, k)
	}
	binom, err := kernel.Binomial(c.n, k)
	if err != nil {
		return 0, err
	}
	v := float64(binom) * math.Pow(2, float64(c.n-k))
	if math.IsInf(v, 0) {
		return 0, errs.NewResourceLimit(op, "dimension", float64(c.n), 1023)
	}
	return v, nil
}

// Diagonal returns s*sqrt(N), the length of the cube's main diagonal.
func (c *HyperCube) Diagonal() float64 {
	return c.s * math.Sqrt(float64(c.n))
}

func (c *HyperCube) VolumeFormulaText() string {
	return fmt.Sprintf("V_%d = s^%d", c.n, c.n)
}

func (c *HyperCube) SurfaceFormulaText() string {
	if c.n == 1 {
		return "S_1 = 2"
	}
	return fmt.Sprintf("S_%d = 2×%d×s^%d", c.n, c.n, c.n-1)
}

// Contains reports whether every coordinate of point lies in [0, s].
func (c *HyperCube) Contains(point []float64) (bool, error) {
	const op = "HyperCube.Contains"
	if err := validatePoint(op, c.n, point); err != nil {
		return false, err
	}
	for _, v := range point {
		if v < 0 || v > c.s {
			return false, nil
		}
	}
	return true, nil
}

func (c *HyperCube) Describe() (Report, error) {
	vol, err := c.Volume()
	if err != nil {
		return Report{}, err
	}
	surf, err := c.Surface()
	if err != nil {
		return Report{}, err
	}
	derived := map[string]float64{"diagonal": c.Diagonal()}
	if vc, err := c.VertexCount(); err == nil {
		derived["vertex_count"] = vc
	}
	if ec, err := c.EdgeCount(); err == nil {
		derived["edge_count"] = ec
	}
	return Report{
		Kind:           KindCube,
		Dimension:      c.n,
		Parameters:     c.Parameters(),
		Volume:         vol,
		Surface:        surf,
		Derived:        derived,
		VolumeFormula:  c.VolumeFormulaText(),
		SurfaceFormula: c.SurfaceFormulaText(),
	}, nil
}
