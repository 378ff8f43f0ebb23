package analyze

import (
	"github.com/hypershape/hypershape/errs"
	"github.com/hypershape/hypershape/shape"
)

// MaxScalingSpan is the soft budget on the dimension range width for a
// single sweep (spec section 5: "100 for scaling sweeps").
const MaxScalingSpan = 100

// ScalingSweep computes property ("volume" or "surface") at each integer
// dimension in [lo, hi] for the given kind and parameters, recording the
// argmax dimension (ties broken by the smallest dimension, which falls out
// naturally from scanning ascending and only replacing on a strict
// improvement).
func ScalingSweep(kind shape.Kind, property string, lo, hi int, parameters []float64) (ScalingReport, error) {
	const op = "analyze.ScalingSweep"
	if property != "volume" && property != "surface" {
		return ScalingReport{}, errs.NewDomainError(op, "property must be %q or %q, got %q", "volume", "surface", property)
	}
	if hi < lo {
		return ScalingReport{}, errs.NewDomainError(op, "dimension range [%d,%d] is empty", lo, hi)
	}
	if hi-lo+1 > MaxScalingSpan {
		return ScalingReport{}, errs.NewResourceLimit(op, "dimension_range", float64(hi-lo+1), MaxScalingSpan)
	}

	dims := make([]int, 0, hi-lo+1)
	values := make([]float64, 0, hi-lo+1)
	peakDim, peakValue := lo, -1.0

	for n := lo; n <= hi; n++ {
		s, err := shape.New(kind, n, parameters)
		if err != nil {
			return ScalingReport{}, err
		}
		var v float64
		if property == "volume" {
			v, err = s.Volume()
		} else {
			v, err = s.Surface()
		}
		if err != nil {
			return ScalingReport{}, err
		}
		dims = append(dims, n)
		values = append(values, v)
		if v > peakValue {
			peakValue = v
			peakDim = n
		}
	}

	return ScalingReport{
		Kind:     kind,
		Property: property,
		Dims:     dims,
		Values:   values,
		PeakDim:  peakDim,
	}, nil
}
