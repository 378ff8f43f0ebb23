package shape

import (
	"math"

	"github.com/hypershape/hypershape/errs"
)

// validateDimension checks N >= min (min is 1 unless a shape requires more,
// e.g. HyperPyramid requires N >= 2).
func validateDimension(op string, n, min int) error {
	if n < min {
		return errs.NewDomainError(op, "dimension must be >= %d, got %d", min, n)
	}
	return nil
}

// validateParams checks every parameter is finite and non-negative.
func validateParams(op string, names []string, values []float64) error {
	if len(names) != len(values) {
		return errs.NewInternalError(op, "parameter name/value arity mismatch: %d names, %d values", len(names), len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.NewDomainError(op, "parameter %s must be finite, got %v", names[i], v)
		}
		if v < 0 {
			return errs.NewDomainError(op, "parameter %s must be >= 0, got %v", names[i], v)
		}
	}
	return nil
}

// validatePoint checks that point has exactly n finite coordinates.
func validatePoint(op string, n int, point []float64) error {
	if len(point) != n {
		return errs.NewDomainError(op, "point must have %d coordinates, got %d", n, len(point))
	}
	for i, v := range point {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.NewDomainError(op, "coordinate %d must be finite, got %v", i, v)
		}
	}
	return nil
}
