package tiling

import "github.com/hypershape/hypershape/errs"

// DomainError reports that a region or unit parameter violates a
// tessellation precondition (spec section 4.3: "W,H,u ≤ 0 ... → DomainError").
type DomainError = errs.DomainError

func newDomainError(op, format string, args ...interface{}) error {
	return errs.NewDomainError(op, format, args...)
}

func validateRegion(op string, w, h float64) error {
	if w <= 0 || h <= 0 {
		return newDomainError(op, "region must have positive width and height, got %gx%g", w, h)
	}
	return nil
}

func validateUnit(op string, u float64) error {
	if u <= 0 {
		return newDomainError(op, "unit must be positive, got %g", u)
	}
	return nil
}
