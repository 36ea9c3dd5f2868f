package extraction

import (
	"regexp"
	"strings"
)

var excessiveNewlineRegex = regexp.MustCompile(`\n{3,}`)

// NormalizeWhitespace strips trailing whitespace from every line, collapses
// runs of three or more line breaks to a single blank line, and trims the
// whole text. Trailing whitespace goes first: a line holding only spaces
// must count as blank before the collapse, or the result would not be
// idempotent.
func NormalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	text = strings.Join(lines, "\n")

	text = excessiveNewlineRegex.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
