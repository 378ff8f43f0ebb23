package query

import (
	"github.com/hypershape/hypershape/analyze"
	"github.com/hypershape/hypershape/shape"
)

// State is a step in the dispatcher's linear state machine (spec section 4.4).
type State string

const (
	StateIdle          State = "IDLE"
	StateTokenized     State = "TOKENIZED"
	StateClassified    State = "CLASSIFIED"
	StateSlotted       State = "SLOTTED"
	StateExecuted      State = "EXECUTED"
	StateRendered      State = "RENDERED"
	StateErrorReported State = "ERROR_REPORTED"
)

// Intent is the classified purpose of a request.
type Intent string

const (
	IntentCreate      Intent = "create"
	IntentProperty    Intent = "property"
	IntentCompare     Intent = "compare"
	IntentDimAnalysis Intent = "dim_analysis"
	IntentExplain     Intent = "explain"
	IntentList        Intent = "list"
	IntentHelp        Intent = "help"
)

// Property is the requested measurement for a `property` intent.
type Property string

const (
	PropertyVolume  Property = "volume"
	PropertySurface Property = "surface"
	PropertyBoth    Property = "both"
)

// Slots holds every value the slot filler extracted for one request. Which
// fields are populated depends on Intent; see fillSlots for the mapping.
type Slots struct {
	Kind         shape.Kind
	Dimension    int
	Parameter    float64
	Name         string
	SecondKind   shape.Kind
	Property     Property
	DimLo, DimHi int
}

// Response is the rendered result of one dispatched request. Which fields
// are populated depends on Intent.
type Response struct {
	Intent     Intent
	State      State
	ShapeName  string
	Report     *shape.Report
	Comparison *analyze.ComparisonReport
	Scaling    *analyze.ScalingReport
	Text       string
	Catalog    []string
}
