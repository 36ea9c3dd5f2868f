package extraction

import (
	"fmt"
	"html"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Result holds the outcome of a single extraction run.
type Result struct {
	Text   string  // Cleaned, human-readable text.
	Length int     // Character (rune) count of Text.
	Links  LinkSet // Important links harvested before cleaning.
}

// Config carries the pattern lists the pipeline is built from. Zero-value
// fields fall back to the built-in OFD defaults, so Config{} gives the
// standard receipt-tuned pipeline.
type Config struct {
	TrackingURLPatterns []string // URLs matching any of these are candidates for removal.
	KeepURLPatterns     []string // URLs matching any of these are never removed.
	NoisePatterns       []string // Promotional/decorative text to strip (compiled case-insensitive).
	AdSelectors         []string // CSS selectors for advertising blocks to drop from the DOM.
}

// Extractor runs the content-extraction pipeline. All pattern tables are
// compiled once at construction and are read-only afterward, so a single
// Extractor is safe for concurrent use across requests.
type Extractor struct {
	trackingPatterns []*regexp.Regexp
	keepPatterns     []*regexp.Regexp
	noisePatterns    []*regexp.Regexp
	adSelectors      []string
	containerRules   []containerRule
}

// NewExtractor compiles the configured pattern lists into an Extractor.
// It returns an error if any pattern fails to compile, so a misconfigured
// deployment fails at startup rather than on the first request.
func NewExtractor(cfg Config) (*Extractor, error) {
	tracking := cfg.TrackingURLPatterns
	if len(tracking) == 0 {
		tracking = defaultTrackingURLPatterns
	}
	keep := cfg.KeepURLPatterns
	if len(keep) == 0 {
		keep = defaultKeepURLPatterns
	}
	noise := cfg.NoisePatterns
	if len(noise) == 0 {
		noise = defaultNoisePatterns
	}
	adSelectors := cfg.AdSelectors
	if len(adSelectors) == 0 {
		adSelectors = defaultAdSelectors
	}

	trackingRes, err := compilePatterns(tracking, false)
	if err != nil {
		return nil, fmt.Errorf("invalid tracking URL pattern: %w", err)
	}
	keepRes, err := compilePatterns(keep, false)
	if err != nil {
		return nil, fmt.Errorf("invalid keep URL pattern: %w", err)
	}
	noiseRes, err := compilePatterns(noise, true)
	if err != nil {
		return nil, fmt.Errorf("invalid noise pattern: %w", err)
	}

	return &Extractor{
		trackingPatterns: trackingRes,
		keepPatterns:     keepRes,
		noisePatterns:    noiseRes,
		adSelectors:      adSelectors,
		containerRules:   defaultContainerRules,
	}, nil
}

func compilePatterns(patterns []string, caseInsensitive bool) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if caseInsensitive {
			p = "(?i)" + p
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Extract runs the full pipeline over one raw HTML document and returns the
// cleaned text, its character count, and any harvested links. The input is
// never mutated; every run allocates its own tree.
func (e *Extractor) Extract(rawHTML string) (*Result, error) {
	if rawHTML == "" {
		return nil, fmt.Errorf("raw HTML content is empty")
	}

	// Decode HTML entities in the input before anything else; receipt
	// pages frequently arrive double-encoded.
	decoded := html.UnescapeString(rawHTML)

	// Comments are stripped from the text form so comment-hidden payloads
	// never reach the parser.
	stripped := StripComments(decoded)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(stripped))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Harvest important links before any destructive mutation of the tree.
	links := e.harvestLinks(doc)

	content, strategy := e.selectContent(doc, stripped)
	slog.Debug("Selected content container", "strategy", strategy)

	e.removeAdBlocks(content)
	e.removeUnwantedTags(content)

	text, err := renderText(content)
	if err != nil {
		return nil, fmt.Errorf("failed to render text: %w", err)
	}

	text = e.filterURLs(text)
	text = e.scrubNoise(text)
	text = NormalizeWhitespace(text)
	text = appendLinks(text, links)

	return &Result{
		Text:   text,
		Length: utf8.RuneCountInString(text),
		Links:  links,
	}, nil
}
