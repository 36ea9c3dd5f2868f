package extraction

import (
	"html"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// minEncodedContentLength guards the encoded-container rule against firing
// on near-empty placeholder elements.
const minEncodedContentLength = 100

// minReadabilityDocLength is the document text size below which the
// readability heuristic is skipped. Readability is tuned for article-length
// pages; on short documents it tends to discard headings and return empty
// content, so those render from the whole tree instead.
const minReadabilityDocLength = 500

// containerRule describes one known content container, in priority order.
// When encodedContent is set, the matched element holds HTML-escaped markup
// as its text content, which must be unescaped and re-parsed.
type containerRule struct {
	selector       string
	encodedContent bool
}

// Known OFD receipt containers, most specific first. Selection is
// deterministic: the first rule whose selector matches wins.
var defaultContainerRules = []containerRule{
	{selector: "#fido_cheque_container", encodedContent: true},
	{selector: ".check_ctn"},
	{selector: ".js__cheque_fido_constructor"},
}

// selectContent picks the subtree holding the primary content. It walks the
// container rules in order and returns the first match; when none matches it
// falls back to the readability heuristic, and to the whole document when
// that also yields nothing. The returned strategy name is for logging only.
func (e *Extractor) selectContent(doc *goquery.Document, rawHTML string) (*goquery.Selection, string) {
	for _, rule := range e.containerRules {
		container := doc.Find(rule.selector).First()
		if container.Length() == 0 {
			continue
		}

		if rule.encodedContent {
			decoded := decodeEncodedContainer(container)
			if decoded == nil {
				// Container matched but held no usable encoded
				// markup; keep trying less specific rules.
				continue
			}
			return decoded, rule.selector
		}

		return container, rule.selector
	}

	if utf8.RuneCountInString(doc.Text()) >= minReadabilityDocLength {
		if main := e.extractMainContent(rawHTML); main != nil {
			return main, "readability"
		}
	}

	return doc.Selection, "document"
}

// decodeEncodedContainer handles containers whose text content is itself
// HTML-escaped markup. Returns nil when the decoded text is too short to be
// a real receipt.
func decodeEncodedContainer(container *goquery.Selection) *goquery.Selection {
	inner := container.Text()
	if utf8.RuneCountInString(inner) <= minEncodedContentLength {
		return nil
	}

	decoded := html.UnescapeString(inner)
	fresh, err := goquery.NewDocumentFromReader(strings.NewReader(decoded))
	if err != nil {
		slog.Warn("Failed to re-parse encoded container content", "error", err)
		return nil
	}
	return fresh.Selection
}
