package analyze

import (
	"github.com/hypershape/hypershape/errs"
	"github.com/hypershape/hypershape/shape"
)

// MaxBatchSize is the soft budget on the number of shapes per Batch call
// (spec section 5: "50 items per batch"). Exceeding it fails fast with
// ResourceLimit rather than silently truncating the request.
const MaxBatchSize = 50

// Batch describes every shape in shapes, in order, yielding one
// shape.Report per input (spec's `batch(shapes, operations)`). operations
// is currently unused beyond validation: Describe already computes volume,
// surface, and every derived property in one pass, so there is nothing to
// selectively skip.
func Batch(shapes []shape.Shape, operations []string) (BatchReport, error) {
	const op = "analyze.Batch"
	if len(shapes) > MaxBatchSize {
		return BatchReport{}, errs.NewResourceLimit(op, "batch_size", float64(len(shapes)), MaxBatchSize)
	}
	for _, o := range operations {
		switch o {
		case "volume", "surface", "properties":
		default:
			return BatchReport{}, errs.NewDomainError(op, "unknown batch operation %q", o)
		}
	}

	reports := make([]shape.Report, 0, len(shapes))
	for _, s := range shapes {
		r, err := s.Describe()
		if err != nil {
			return BatchReport{}, err
		}
		reports = append(reports, r)
	}
	return BatchReport{Reports: reports}, nil
}
