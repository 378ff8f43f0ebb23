package analyze

import (
	"strconv"

	"github.com/hypershape/hypershape/shape"
)

// Ratio is a quotient that degrades to the sentinel "undefined" instead of
// NaN or ±Inf when the denominator is zero.
type Ratio struct {
	Value     float64
	Undefined bool
}

func (r Ratio) String() string {
	if r.Undefined {
		return "undefined"
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// ratioOf computes a/b, reporting Undefined when b is zero rather than
// dividing into Inf or NaN.
func ratioOf(a, b float64) Ratio {
	if b == 0 {
		return Ratio{Undefined: true}
	}
	return Ratio{Value: a / b}
}

// ComparisonReport is the result of comparing two shapes (spec's
// ComparisonReport record).
type ComparisonReport struct {
	ShapeA, ShapeB   shape.Report
	VolumeRatio      Ratio
	SurfaceRatio     Ratio
	LargestByVolume  string // "a" or "b"
	LargestBySurface string
}

// ScalingReport is the result of sweeping a property across a dimension
// range (spec's ScalingReport record).
type ScalingReport struct {
	Kind     shape.Kind
	Property string
	Dims     []int
	Values   []float64
	PeakDim  int
}

// BatchReport is the ordered set of per-shape reports from a Batch call.
type BatchReport struct {
	Reports []shape.Report
}
