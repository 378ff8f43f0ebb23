package shape

import "github.com/hypershape/hypershape/errs"

// DefaultMaxDimension is the soft budget on N for a single shape calculation
// (spec section 5): "max dimension 1000 for single calculations".
const DefaultMaxDimension = 1000

// New constructs a Shape of the given kind, applying the shared dimension
// budget before delegating to the kind-specific constructor. params are
// positional per kind:
//
//	sphere:    [r]
//	cube:      [s]
//	ellipsoid: [a_1, ..., a_N]
//	simplex:   [a]
//	pyramid:   [s, h]
func New(kind Kind, n int, params []float64) (Shape, error) {
	const op = "New"
	if n > DefaultMaxDimension {
		return nil, errs.NewResourceLimit(op, "dimension", float64(n), DefaultMaxDimension)
	}

	switch kind {
	case KindSphere:
		if len(params) != 1 {
			return nil, errs.NewDomainError(op, "sphere expects 1 parameter (r), got %d", len(params))
		}
		return NewHyperSphere(n, params[0])
	case KindCube:
		if len(params) != 1 {
			return nil, errs.NewDomainError(op, "cube expects 1 parameter (s), got %d", len(params))
		}
		return NewHyperCube(n, params[0])
	case KindEllipsoid:
		return NewHyperEllipsoid(n, params)
	case KindSimplex:
		if len(params) != 1 {
			return nil, errs.NewDomainError(op, "simplex expects 1 parameter (a), got %d", len(params))
		}
		return NewSimplex(n, params[0])
	case KindPyramid:
		if len(params) != 2 {
			return nil, errs.NewDomainError(op, "pyramid expects 2 parameters (s, h), got %d", len(params))
		}
		return NewHyperPyramid(n, params[0], params[1])
	default:
		return nil, errs.NewDomainError(op, "unknown shape kind %q", kind)
	}
}
