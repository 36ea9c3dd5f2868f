package extraction

import (
	"regexp"
	"strings"
)

// Matches a URL up to the first whitespace, quote or angle bracket.
var urlRegex = regexp.MustCompile(`https?://[^\s<>"]+`)

// filterURLs removes tracking URLs from the rendered text line by line,
// leaving the surrounding text intact. A URL matching both a tracking
// pattern and a keep pattern is preserved. Only the first URL on each line
// is evaluated; receipt pages put at most one URL per rendered line.
func (e *Extractor) filterURLs(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		loc := urlRegex.FindStringIndex(line)
		if loc == nil {
			continue
		}

		url := line[loc[0]:loc[1]]
		if e.isTrackingURL(url) && !e.isKeepURL(url) {
			lines[i] = line[:loc[0]] + line[loc[1]:]
		}
	}
	return strings.Join(lines, "\n")
}

func (e *Extractor) isTrackingURL(url string) bool {
	for _, re := range e.trackingPatterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

func (e *Extractor) isKeepURL(url string) bool {
	for _, re := range e.keepPatterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}
