package query

import (
	"regexp"
	"strconv"

	"github.com/hypershape/hypershape/shape"
)

// dimensionPattern matches "<digits> d", "<digits>-dimensional", or
// "<digits> dimensional" (spec section 4.4); the first match in the text wins.
var dimensionPattern = regexp.MustCompile(`(\d+)\s*-?(?:dimensional|dimensions?|d)\b`)

// extractDimension returns the first regex-matched dimension in text, or
// the intent's default (compare/explain → 3), or a QueryError for MissingSlot.
func extractDimension(intent Intent, text string) (int, error) {
	m := dimensionPattern.FindStringSubmatch(text)
	if m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, nil
		}
	}
	switch intent {
	case IntentCompare, IntentExplain:
		return 3, nil
	default:
		return 0, newQueryError("dimension", text, "no dimension found and intent %q has no default", intent)
	}
}

// extractParameter returns the first numeric token adjacent to one of the
// parameter keywords (following preferred, then preceding), per spec
// section 4.4.
func extractParameter(tokens []string) (float64, bool) {
	isNumeric := func(s string) bool {
		_, err := strconv.ParseFloat(s, 64)
		return err == nil
	}
	isKeyword := func(s string) bool {
		for _, kw := range keywords.ParameterKeywords {
			if s == kw {
				return true
			}
		}
		return s == "="
	}

	for i, t := range tokens {
		if isKeyword(t) && i+1 < len(tokens) && isNumeric(tokens[i+1]) {
			v, _ := strconv.ParseFloat(tokens[i+1], 64)
			return v, true
		}
	}
	for i, t := range tokens {
		if isKeyword(t) && i > 0 && isNumeric(tokens[i-1]) {
			v, _ := strconv.ParseFloat(tokens[i-1], 64)
			return v, true
		}
	}
	return 0, false
}

// fillSlots extracts every slot the given intent requires (spec section
// 4.4), returning a QueryError (never a panic) for anything missing or
// malformed.
func fillSlots(intent Intent, tokens []string, text string) (Slots, error) {
	const op = "query.fillSlots"
	var s Slots

	switch intent {
	case IntentCreate, IntentProperty:
		dim, err := extractDimension(intent, text)
		if err != nil {
			return Slots{}, err
		}
		param, ok := extractParameter(tokens)
		if !ok {
			return Slots{}, newQueryError("parameter", text, "no numeric parameter found")
		}
		s.Kind = shape.Kind(shapeKindFor(tokens))
		s.Dimension = dim
		s.Parameter = param
		if intent == IntentProperty {
			s.Property = propertyFor(tokens)
		}
		return s, nil

	case IntentCompare:
		dim, err := extractDimension(intent, text)
		if err != nil {
			return Slots{}, err
		}
		kinds := allShapeKindsIn(tokens)
		if len(kinds) < 2 {
			return Slots{}, newQueryError("shape_kind", text, "compare requires two shape kinds, found %d", len(kinds))
		}
		s.Kind = shape.Kind(kinds[0])
		s.SecondKind = shape.Kind(kinds[1])
		s.Dimension = dim
		s.Parameter = 1.0
		if param, ok := extractParameter(tokens); ok {
			s.Parameter = param
		}
		return s, nil

	case IntentDimAnalysis:
		s.Property = propertyFor(tokens)
		if s.Property == "" {
			s.Property = "generic"
		}
		s.DimLo, s.DimHi = 1, 10
		return s, nil

	case IntentExplain:
		dim, err := extractDimension(intent, text)
		if err != nil {
			return Slots{}, err
		}
		s.Kind = shape.Kind(shapeKindFor(tokens))
		s.Dimension = dim
		return s, nil

	case IntentList, IntentHelp:
		return s, nil

	default:
		return Slots{}, newQueryError("", text, "unreachable intent %q in %s", intent, op)
	}
}

// propertyFor reports which property keyword(s) matched; "both" if the text
// mentions both a volume-family and surface keyword distinctly.
func propertyFor(tokens []string) Property {
	hasVolume := containsToken(tokens, "volume")
	hasSurface := containsToken(tokens, "area") || containsToken(tokens, "surface")
	switch {
	case hasVolume && hasSurface:
		return PropertyBoth
	case hasSurface:
		return PropertySurface
	case hasVolume:
		return PropertyVolume
	default:
		return ""
	}
}

// allShapeKindsIn returns every distinct shape kind named in tokens, in the
// fixed order cube, ellipsoid, simplex, pyramid (not the order they appear
// in the text), defaulting the first slot to "sphere" if exactly one kind
// is mentioned (e.g. "compare sphere vs cube").
func allShapeKindsIn(tokens []string) []string {
	order := []string{"cube", "ellipsoid", "simplex", "pyramid"}
	var found []string
	for _, kind := range order {
		for _, kw := range keywords.ShapeKinds[kind] {
			if containsToken(tokens, kw) {
				found = append(found, kind)
				break
			}
		}
	}
	if len(found) == 1 {
		return []string{"sphere", found[0]}
	}
	if len(found) == 0 {
		return nil
	}
	return found
}
