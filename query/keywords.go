package query

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var keywordsYAML []byte

// keywordTable is the data-driven vocabulary backing intent classification
// and shape-kind detection (spec section 4.4). Keeping it in YAML rather
// than Go literals means the parser and the Catalog listing stay in sync
// with a single source of truth.
type keywordTable struct {
	ShapeKinds        map[string][]string `yaml:"shape_kinds"`
	Intents           map[string][]string `yaml:"intents"`
	DimAnalysisPhrase string              `yaml:"dim_analysis_phrase"`
	ParameterKeywords []string            `yaml:"parameter_keywords"`
}

var keywords = mustLoadKeywords()

func mustLoadKeywords() keywordTable {
	var kt keywordTable
	if err := yaml.Unmarshal(keywordsYAML, &kt); err != nil {
		panic("query: embedded keywords.yaml is malformed: " + err.Error())
	}
	return kt
}

// shapeKindFor returns the shape kind whose keyword list contains any of
// tokens, or "sphere" (the default per spec section 4.4) if none match.
func shapeKindFor(tokens []string) string {
	for kind, kws := range keywords.ShapeKinds {
		for _, kw := range kws {
			if containsToken(tokens, kw) {
				return kind
			}
		}
	}
	return "sphere"
}

func containsToken(tokens []string, phrase string) bool {
	phraseTokens := tokenize(phrase)
	if len(phraseTokens) == 1 {
		for _, t := range tokens {
			if t == phraseTokens[0] {
				return true
			}
		}
		return false
	}
	for i := 0; i+len(phraseTokens) <= len(tokens); i++ {
		match := true
		for j, pt := range phraseTokens {
			if tokens[i+j] != pt {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
