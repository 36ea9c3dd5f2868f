package extraction

import "regexp"

// (?s) so comments spanning multiple lines are matched; non-greedy so
// adjacent comments are removed individually.
var htmlCommentRegex = regexp.MustCompile(`(?s)<!--.*?-->`)

// StripComments removes every HTML comment from the raw markup. It operates
// on text rather than the parsed tree so that tracking payloads hidden
// inside comments are gone before the parser ever sees them.
func StripComments(htmlStr string) string {
	return htmlCommentRegex.ReplaceAllString(htmlStr, "")
}
