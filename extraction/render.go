package extraction

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/jaytaylor/html2text"
)

// renderText converts the pruned subtree into plain text. Tables are kept as
// aligned text and inline link URLs are suppressed; link destinations worth
// keeping are surfaced separately by the link harvester.
func renderText(content *goquery.Selection) (string, error) {
	markup, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("failed to serialize content subtree: %w", err)
	}

	text, err := html2text.FromString(markup, html2text.Options{
		OmitLinks:    true,
		PrettyTables: true,
	})
	if err != nil {
		return "", fmt.Errorf("html2text conversion failed: %w", err)
	}

	return text, nil
}
