package extraction

import (
	"regexp"
	"strings"
)

var (
	blankLineRunRegex = regexp.MustCompile(`\n{2,}`)
	spaceRunRegex     = regexp.MustCompile(` {2,}`)
)

// scrubNoise strips known promotional and decorative text, then compacts
// what remains. Phrase removal runs before whitespace collapse: removed
// phrases leave dangling blank lines that the compaction pass cleans up.
func (e *Extractor) scrubNoise(text string) string {
	for _, re := range e.noisePatterns {
		text = re.ReplaceAllString(text, "")
	}

	text = blankLineRunRegex.ReplaceAllString(text, "\n")
	text = spaceRunRegex.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
