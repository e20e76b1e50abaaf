// internal/pkg/slug/slug.go
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	nonWord    = regexp.MustCompile(`[^\w-]`)
	hyphenRuns = regexp.MustCompile(`-{2,}`)
)

// stripMarks removes combining marks after NFD decomposition, so "ế" becomes "e".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts arbitrary display text into a URL-safe slug. The same
// transform is used to build search haystacks and tokens, so it must stay
// deterministic: same input, same output, no locale or time dependence.
func Make(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(text)

	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	// đ carries a stroke, not a combining mark, so NFD leaves it alone.
	s = strings.ReplaceAll(s, "đ", "d")

	s = whitespace.ReplaceAllString(strings.TrimSpace(s), "-")
	s = nonWord.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// Tokens splits a free-text query into normalized search tokens.
func Tokens(text string) []string {
	slugged := Make(text)
	if slugged == "" {
		return nil
	}

	parts := strings.Split(slugged, "-")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
