package query

// classifyIntent applies the fixed priority order of spec section 4.4: the
// first matching rule wins, and unmatched text falls back to `help`.
func classifyIntent(tokens []string) Intent {
	switch {
	case anyKeyword(tokens, "create"):
		return IntentCreate
	case anyKeyword(tokens, "compare"):
		return IntentCompare
	case anyKeyword(tokens, "property"):
		return IntentProperty
	case anyKeyword(tokens, "dim_analysis") || containsToken(tokens, keywords.DimAnalysisPhrase):
		return IntentDimAnalysis
	case anyKeyword(tokens, "explain"):
		return IntentExplain
	case anyKeyword(tokens, "list"):
		return IntentList
	default:
		return IntentHelp
	}
}

func anyKeyword(tokens []string, group string) bool {
	for _, kw := range keywords.Intents[group] {
		if containsToken(tokens, kw) {
			return true
		}
	}
	return false
}
