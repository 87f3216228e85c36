package index

import (
	"strings"
	"unicode"
)

// minTokenLen filters out short noise words ("a", "is", "to", "id").
const minTokenLen = 3

// Tokenize normalizes text into lower-case word tokens: every rune outside
// [a-z0-9] becomes a space, runs of whitespace split tokens, and tokens
// shorter than three characters are dropped. The builder and the fulltext
// query share this function so token identity is consistent on both sides.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
