package extraction

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Tags that never contribute human-readable content.
var unwantedTags = []string{
	"script", "style", "meta", "link", "noscript", "iframe", "svg", "img",
}

var unwantedTagSelector = strings.Join(unwantedTags, ", ")

// removeUnwantedTags drops every non-content element and its descendants
// from the subtree in place. Safe to re-run: pruning an already-pruned tree
// is a no-op.
func (e *Extractor) removeUnwantedTags(content *goquery.Selection) {
	content.Find(unwantedTagSelector).Remove()
}

// removeAdBlocks drops known advertising widgets by CSS selector before text
// rendering, so structured promo markup never reaches the renderer.
func (e *Extractor) removeAdBlocks(content *goquery.Selection) {
	for _, selector := range e.adSelectors {
		content.Find(selector).Remove()
	}
}
