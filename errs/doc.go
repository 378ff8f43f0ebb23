// Package errs defines the five stable error kinds shared across the
// kernel, shape, tiling, analyze and query packages, per spec section 7:
//
//	DomainError   - a parameter violates a mathematical precondition.
//	QueryError    - the dispatcher could not extract a required slot/intent.
//	ResourceLimit - declared inputs exceed a configured soft budget.
//	Approximation - not an error; see shape.Report.Approximate instead.
//	InternalError - an invariant violation; surfacing it is always a bug.
//
// Each of the four error kinds is a distinct Go type so callers can branch
// with errors.As; Approximation has no type.
// Message text is stable across runs (no timestamps, pointers, or map
// iteration order) so it can be asserted on in tests.
package errs
