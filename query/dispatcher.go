package query

import (
	"fmt"

	"github.com/hypershape/hypershape/analyze"
	"github.com/hypershape/hypershape/shape"
)

// Execute drives one request through the dispatcher's linear state machine:
// IDLE → TOKENIZED → CLASSIFIED → SLOTTED → EXECUTED → RENDERED, or
// ERROR_REPORTED at the first failing step (spec section 4.4). The
// returned error, when non-nil, is always a *QueryError, *DomainError, or
// *ResourceLimit (spec section 7); Response.State reports how far the
// request got.
func Execute(sess *Session, text string) (Response, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Response{State: StateErrorReported}, newQueryError("", text, "empty request")
	}

	intent := classifyIntent(tokens)

	slots, err := fillSlots(intent, tokens, text)
	if err != nil {
		return Response{Intent: intent, State: StateErrorReported}, err
	}

	resp, err := dispatch(sess, intent, slots)
	if err != nil {
		return Response{Intent: intent, State: StateErrorReported}, err
	}
	resp.Intent = intent
	resp.State = StateRendered
	return resp, nil
}

func dispatch(sess *Session, intent Intent, slots Slots) (Response, error) {
	switch intent {
	case IntentCreate:
		return dispatchCreate(sess, slots)
	case IntentProperty:
		return dispatchProperty(slots)
	case IntentCompare:
		return dispatchCompare(slots)
	case IntentDimAnalysis:
		return dispatchDimAnalysis(slots)
	case IntentExplain:
		return dispatchExplain(slots)
	case IntentList:
		return Response{Catalog: sess.Names()}, nil
	case IntentHelp:
		return Response{Catalog: Catalog()}, nil
	default:
		return Response{}, newQueryError("", string(intent), "unhandled intent %q", intent)
	}
}

func dispatchCreate(sess *Session, slots Slots) (Response, error) {
	s, err := shape.New(slots.Kind, slots.Dimension, paramsFor(slots.Kind, slots.Dimension, slots.Parameter))
	if err != nil {
		return Response{}, err
	}
	name := sess.create(s)
	report, err := s.Describe()
	if err != nil {
		return Response{}, err
	}
	return Response{ShapeName: name, Report: &report}, nil
}

func dispatchProperty(slots Slots) (Response, error) {
	s, err := shape.New(slots.Kind, slots.Dimension, paramsFor(slots.Kind, slots.Dimension, slots.Parameter))
	if err != nil {
		return Response{}, err
	}
	report, err := s.Describe()
	if err != nil {
		return Response{}, err
	}
	return Response{Report: &report}, nil
}

func dispatchCompare(slots Slots) (Response, error) {
	a, err := shape.New(slots.Kind, slots.Dimension, paramsFor(slots.Kind, slots.Dimension, slots.Parameter))
	if err != nil {
		return Response{}, err
	}
	b, err := shape.New(slots.SecondKind, slots.Dimension, paramsFor(slots.SecondKind, slots.Dimension, slots.Parameter))
	if err != nil {
		return Response{}, err
	}
	comparison, err := analyze.Compare(a, b)
	if err != nil {
		return Response{}, err
	}
	return Response{Comparison: &comparison}, nil
}

func dispatchDimAnalysis(slots Slots) (Response, error) {
	property := string(slots.Property)
	if property == "generic" || property == "" {
		property = "volume"
	}
	sweep, err := analyze.ScalingSweep(shape.KindSphere, property, slots.DimLo, slots.DimHi, []float64{1.0})
	if err != nil {
		return Response{}, err
	}
	return Response{Scaling: &sweep}, nil
}

func dispatchExplain(slots Slots) (Response, error) {
	s, err := shape.New(slots.Kind, slots.Dimension, paramsFor(slots.Kind, slots.Dimension, 1.0))
	if err != nil {
		return Response{}, err
	}
	report, err := s.Describe()
	if err != nil {
		return Response{}, err
	}
	text := fmt.Sprintf("%s\n%s", report.VolumeFormula, report.SurfaceFormula)
	return Response{Report: &report, Text: text}, nil
}

// paramsFor builds the positional parameter slice shape.New expects for
// kind, broadcasting the single extracted parameter across every axis for
// ellipsoid and reusing it as both base edge and height for pyramid.
func paramsFor(kind shape.Kind, n int, p float64) []float64 {
	switch kind {
	case shape.KindEllipsoid:
		axes := make([]float64, n)
		for i := range axes {
			axes[i] = p
		}
		return axes
	case shape.KindPyramid:
		return []float64{p, p}
	default:
		return []float64{p}
	}
}
