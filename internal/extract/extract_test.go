package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canvas_sync/internal/domain"
)

const testBase = "https://canvas.example.edu"

func TestExtract_PlainParagraphs(t *testing.T) {
	e := New(testBase)

	content := e.Extract(`<p>Hello <strong>world</strong></p><p>Second paragraph</p>`)

	assert.Equal(t, "Hello world\n\nSecond paragraph", content.Text)
	assert.Empty(t, content.Links)
}

func TestExtract_ListItems(t *testing.T) {
	e := New(testBase)

	content := e.Extract(`<ul><li>One</li><li>Two</li></ul>`)

	assert.Equal(t, "• One\n• Two", content.Text)
}

func TestExtract_SkipsScriptAndStyle(t *testing.T) {
	e := New(testBase)

	content := e.Extract(`<p>Visible</p><script>var x = 1;</script><style>.a{}</style>`)

	assert.Equal(t, "Visible", content.Text)
}

func TestExtract_AnchorBecomesLink(t *testing.T) {
	e := New(testBase)

	content := e.Extract(`<p>See <a href="/courses/1/files/42" title="slides">the slides</a></p>`)

	require.Len(t, content.Links, 1)
	l := content.Links[0]
	assert.Equal(t, testBase+"/courses/1/files/42", l.URL)
	assert.Equal(t, "the slides", l.Text)
	assert.Equal(t, "slides", l.Title)
	assert.Equal(t, domain.LinkCategoryFile, l.Category)
}

func TestExtract_IgnoresFragmentAndJavascriptHrefs(t *testing.T) {
	e := New(testBase)

	content := e.Extract(`<a href="#section">jump</a><a href="javascript:void(0)">noop</a>`)

	assert.Empty(t, content.Links)
}

func TestExtract_IframeSource(t *testing.T) {
	e := New(testBase)

	content := e.Extract(`<iframe src="https://www.youtube.com/embed/abc123"></iframe>`)

	require.Len(t, content.Links, 1)
	assert.Equal(t, domain.LinkCategoryVideo, content.Links[0].Category)
}

func TestExtract_MalformedFragmentDegradesToStripping(t *testing.T) {
	e := New(testBase)

	content := e.Extract(`plain <b>bold text`)

	assert.Contains(t, content.Text, "plain")
	assert.Contains(t, content.Text, "bold text")
}

func TestLinksByCategory(t *testing.T) {
	e := New(testBase)

	content := e.Extract(`<a href="/courses/1/files/5">f</a><a href="https://example.org/x">e</a>`)

	require.Len(t, content.Links, 2)
	files := content.LinksByCategory(domain.LinkCategoryFile)
	require.Len(t, files, 1)
	assert.Equal(t, testBase+"/courses/1/files/5", files[0].URL)
}
