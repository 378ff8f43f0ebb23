package query

import (
	"regexp"
	"strings"
)

// tokenPattern splits on runs of letters/digits, keeping a decimal point
// attached to its digit run (spec section 4.4: "a decimal point is '.' only").
var tokenPattern = regexp.MustCompile(`[0-9]+\.[0-9]+|[0-9]+|[a-zA-Z]+|=`)

// tokenize lower-cases and splits free text into word and numeric tokens,
// discarding punctuation and whitespace.
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return tokenPattern.FindAllString(lower, -1)
}
