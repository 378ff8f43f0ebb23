package kernel

import "github.com/hypershape/hypershape/errs"

// DomainError is the kernel's error kind for precondition violations; it is
// an alias of errs.DomainError so callers across the module can use a single
// errors.As(&errs.DomainError{}) check regardless of which package raised
// the error. See spec section 7: "the math kernel raises DomainError only".
type DomainError = errs.DomainError

func newDomainError(op, format string, args ...interface{}) *DomainError {
	return errs.NewDomainError(op, format, args...)
}
