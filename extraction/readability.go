package extraction

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
)

// Readability resolves relative links against a base URL; extraction runs on
// request bodies with no origin, so a placeholder is used.
var readabilityBaseURL, _ = url.Parse("http://localhost")

// The UGC policy strips the scripts, trackers and layout noise that throw
// the readability scorer off, without touching article markup.
var readabilityPolicy = bluemonday.UGCPolicy()

// extractMainContent runs the readability main-content heuristic over the
// full document, used when no known receipt container matched. The HTML is
// sanitized first so the scorer sees content markup only. Returns nil when
// readability fails or finds no content; callers then fall back to the whole
// document.
func (e *Extractor) extractMainContent(rawHTML string) *goquery.Selection {
	cleaned := readabilityPolicy.Sanitize(rawHTML)
	if cleaned == "" {
		slog.Warn("Sanitizer reduced non-empty HTML to an empty string, skipping readability")
		return nil
	}

	article, err := readability.FromReader(strings.NewReader(cleaned), readabilityBaseURL)
	if err != nil {
		slog.Warn("Readability extraction failed, falling back to full document", "error", err)
		return nil
	}
	if article.Content == "" {
		slog.Warn("Readability returned empty content, falling back to full document")
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		slog.Warn("Failed to parse readability output", "error", err)
		return nil
	}

	slog.Debug("Readability extracted main content", "title", article.Title)
	return doc.Selection
}
