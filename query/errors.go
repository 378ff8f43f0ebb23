package query

import "github.com/hypershape/hypershape/errs"

// QueryError reports that the dispatcher could not extract a required
// intent or slot from free text (spec section 7).
type QueryError = errs.QueryError

func newQueryError(slot, span, format string, args ...interface{}) error {
	return errs.NewQueryError(slot, span, format, args...)
}
