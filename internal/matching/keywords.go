package matching

import (
	"strings"
	"unicode"
)

// minKeywordLen is the shortest token kept, in runes. Tokens of 3 runes or
// fewer are noise for expertise matching ("the", "and", "co2").
const minKeywordLen = 4

// ExtractKeywords tokenizes free project text (title + description +
// requirements) into a deduplicated set of lowercase keywords.
//
// Characters that are neither word characters nor whitespace are stripped
// before splitting, so "carbon-neutral" tokenizes as "carbonneutral", not as
// two words. Empty input yields an empty set.
func ExtractKeywords(text string) map[string]bool {
	keywords := make(map[string]bool)
	var word strings.Builder

	flush := func() {
		w := word.String()
		word.Reset()
		if len([]rune(w)) >= minKeywordLen {
			keywords[w] = true
		}
	}

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			word.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		}
		// anything else (punctuation, symbols) is stripped, not a separator
	}
	flush()

	return keywords
}
