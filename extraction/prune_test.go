package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PuerkitoBio/goquery"
)

func TestRemoveUnwantedTags(t *testing.T) {
	e := newTestExtractor(t)
	doc := parseDoc(t, `<html><head>
		<meta charset="utf-8"><link rel="stylesheet" href="a.css">
		<style>body{color:red}</style>
	</head><body>
		<script>alert("x")</script>
		<noscript>enable js</noscript>
		<iframe src="https://ads.example"></iframe>
		<svg><circle r="1"/></svg>
		<img src="wave.png" alt="волна">
		<p>Кассовый чек</p>
	</body></html>`)

	e.removeUnwantedTags(doc.Selection)

	rendered, err := goquery.OuterHtml(doc.Selection)
	require.NoError(t, err)

	for _, tag := range unwantedTags {
		assert.Zero(t, doc.Find(tag).Length(), "tag %q should be removed", tag)
	}
	assert.NotContains(t, rendered, "alert")
	assert.NotContains(t, rendered, "enable js")
	assert.Contains(t, rendered, "Кассовый чек")
}

func TestRemoveUnwantedTagsIdempotent(t *testing.T) {
	e := newTestExtractor(t)
	doc := parseDoc(t, `<html><body><script>x</script><p>text</p></body></html>`)

	e.removeUnwantedTags(doc.Selection)
	first, err := goquery.OuterHtml(doc.Selection)
	require.NoError(t, err)

	e.removeUnwantedTags(doc.Selection)
	second, err := goquery.OuterHtml(doc.Selection)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRemoveAdBlocks(t *testing.T) {
	e := newTestExtractor(t)
	doc := parseDoc(t, `<html><body>
		<div class="checkmarketing"><p>Акция!</p></div>
		<div class="banner">Баннер</div>
		<div id="marketing_widget">widget</div>
		<p>Итого: 134.50</p>
	</body></html>`)

	e.removeAdBlocks(doc.Selection)

	text := doc.Text()
	assert.NotContains(t, text, "Акция")
	assert.NotContains(t, text, "Баннер")
	assert.NotContains(t, text, "widget")
	assert.Contains(t, text, "Итого: 134.50")
}
