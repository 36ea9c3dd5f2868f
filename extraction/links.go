package extraction

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Link kinds surfaced in the response and the trailer section.
const (
	LinkKindPDF = "pdf" // receipt PDF download
	LinkKindFNS = "fns" // FNS verification page
)

const (
	pdfLinkPathFragment   = "/cheque/pdf"
	pdfLinkExclusion      = "oferta" // public-offer PDFs are not receipts
	fnsLinkDomainFragment = "nalog.gov.ru"
)

// LinkSet maps link kinds to URLs, holding at most one URL per kind.
type LinkSet map[string]string

// harvestLinks scans every hyperlink in the document and picks out the
// receipt PDF and FNS verification links. It must run before any
// destructive mutation, since the links usually live outside the content
// container. Each anchor is classified as at most one kind, PDF checked
// first; a later match for a kind overwrites an earlier one.
func (e *Extractor) harvestLinks(doc *goquery.Document) LinkSet {
	links := LinkSet{}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, exists := a.Attr("href")
		if !exists || href == "" {
			return
		}

		switch {
		case strings.Contains(href, pdfLinkPathFragment) &&
			!strings.Contains(strings.ToLower(href), pdfLinkExclusion):
			links[LinkKindPDF] = href
		case strings.Contains(href, fnsLinkDomainFragment):
			links[LinkKindFNS] = href
		}
	})

	return links
}

// appendLinks attaches harvested links as a labeled trailer section, PDF
// first. Texts with no harvested links are returned unchanged.
func appendLinks(text string, links LinkSet) string {
	if len(links) == 0 {
		return text
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n--- Ссылки ---")
	if pdf, ok := links[LinkKindPDF]; ok {
		b.WriteString("\nPDF чека: " + pdf)
	}
	if fns, ok := links[LinkKindFNS]; ok {
		b.WriteString("\nПроверка ФНС: " + fns)
	}
	return b.String()
}
