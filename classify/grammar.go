package classify

import (
	"regexp"
	"sort"
	"strings"
)

// The dimension token grammar, in priority order: decimal, mixed
// integer-and-fraction, plain fraction, bare integer. Each form may carry a
// trailing inch mark.
var dimensionPattern = regexp.MustCompile(`\d+\.\d+\s*"?|\d+-\d+/\d+\s*"?|\d+/\d+\s*"?|\d+\s*"?`)

var (
	bareShortInteger = regexp.MustCompile(`^\d{1,3}$`)
	bareInteger      = regexp.MustCompile(`^\d+$`)
	neutralChars     = regexp.MustCompile(`[0-9\s.\-/"°xX]`)
	letter           = regexp.MustCompile(`[A-Z]`)
)

// MatchesGrammar reports whether text contains at least one dimension token.
func MatchesGrammar(text string) bool {
	return dimensionPattern.MatchString(text)
}

// DefaultAllowlist is the standard engineering-abbreviation allow-list.
// Tokens in this list may accompany a dimension without disqualifying it.
func DefaultAllowlist() []string {
	return []string{
		"TYP", "REF", "R", "Ø", "DIA", "MIN", "MAX", "TO",
		"UNC", "UNF", "UNEF", "THRU", "FLAT",
	}
}

// hasInvalidLetters reports whether text still contains letters after
// stripping every allow-listed abbreviation plus digits, separators, and
// degree marks. Any surviving letter disqualifies the span.
//
// Tokens are stripped longest-first so that UNEF is not shadowed by UNF and
// REF is not shadowed by R.
func hasInvalidLetters(text string, allowlist []string) bool {
	tokens := make([]string, len(allowlist))
	copy(tokens, allowlist)
	sort.SliceStable(tokens, func(i, j int) bool {
		return len(tokens[i]) > len(tokens[j])
	})

	t := strings.ToUpper(text)
	for _, tok := range tokens {
		t = strings.ReplaceAll(t, tok, "")
	}
	t = neutralChars.ReplaceAllString(t, "")
	return letter.MatchString(t)
}
