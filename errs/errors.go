package errs

import "fmt"

// DomainError reports that a parameter violates a mathematical precondition:
// negative, non-finite, wrong arity, N < 1, or N < 2 where the operation
// requires it.
type DomainError struct {
	Op  string
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error in %s: %s", e.Op, e.Msg)
}

// NewDomainError builds a *DomainError with a stable, formatted message.
func NewDomainError(op, format string, args ...interface{}) *DomainError {
	return &DomainError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// QueryError reports that the dispatcher could not extract a required
// intent or slot from free text. Slot is empty when the failure is at the
// intent-classification step rather than slot-filling.
type QueryError struct {
	Slot string
	Span string
	Msg  string
}

func (e *QueryError) Error() string {
	if e.Slot != "" {
		return fmt.Sprintf("query error: %s (slot %q, near %q)", e.Msg, e.Slot, e.Span)
	}
	return fmt.Sprintf("query error: %s (near %q)", e.Msg, e.Span)
}

// NewQueryError builds a *QueryError with the offending text span and,
// optionally, the slot name that could not be filled.
func NewQueryError(slot, span, format string, args ...interface{}) *QueryError {
	return &QueryError{Slot: slot, Span: span, Msg: fmt.Sprintf(format, args...)}
}

// ResourceLimit reports that a declared input exceeded a configured soft
// budget (max dimension, max batch size, max tile count, ...).
type ResourceLimit struct {
	Op       string
	Limit    string
	Value    float64
	Budget   float64
	Exceeded bool
}

func (e *ResourceLimit) Error() string {
	return fmt.Sprintf("resource limit in %s: %s %v exceeds budget %v", e.Op, e.Limit, e.Value, e.Budget)
}

// NewResourceLimit builds a *ResourceLimit describing which named limit was
// exceeded, by how much, against which budget.
func NewResourceLimit(op, limit string, value, budget float64) *ResourceLimit {
	return &ResourceLimit{Op: op, Limit: limit, Value: value, Budget: budget, Exceeded: true}
}

// InternalError reports an invariant violation that should be unreachable.
// Surfacing one is always a bug in this module, never a caller mistake.
type InternalError struct {
	Op  string
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error in %s: %s", e.Op, e.Msg)
}

// NewInternalError builds an *InternalError. Reserve this for branches that
// "cannot happen" given the validation already performed.
func NewInternalError(op, format string, args ...interface{}) *InternalError {
	return &InternalError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
