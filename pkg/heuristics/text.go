package heuristics

import (
	"regexp"
	"strings"
	"unicode"
)

// termPattern matches term as a whole word, case-insensitively. Letters or
// digits on either side prevent a match, so "man" does not match "woman".
func termPattern(term string, caseSensitive bool) *regexp.Regexp {
	prefix := "(?i)"
	if caseSensitive {
		prefix = ""
	}
	return regexp.MustCompile(prefix + `(^|[^\p{L}\p{N}])` + regexp.QuoteMeta(term) + `($|[^\p{L}\p{N}])`)
}

// words splits s into lower-cased runs of letters.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
