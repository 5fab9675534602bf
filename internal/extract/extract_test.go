package extract_test

import (
	"strings"
	"testing"

	"github.com/arjunvale/domselect/internal/build"
	"github.com/arjunvale/domselect/internal/extract"
	"github.com/arjunvale/domselect/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *store.Document {
	t.Helper()
	doc, err := build.BuildFromHTML(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func findTag(t *testing.T, doc *store.Document, tag string) int {
	t.Helper()
	for _, id := range doc.Walk() {
		n := doc.MustGet(id)
		if n.Kind == store.KindElement && n.Tag == tag {
			return id
		}
	}
	t.Fatalf("no <%s> found", tag)
	return -1
}

func TestTextIncludesDescendantsAndCollapsesWhitespace(t *testing.T) {
	doc := parseHTML(t, "<div>Hello,   \n<b>World!</b></div>")
	r := extract.New(doc, findTag(t, doc, "div"))
	assert.Equal(t, "Hello, World!", r.Text())
}

func TestOwnTextExcludesDescendantText(t *testing.T) {
	doc := parseHTML(t, "<div>Hello, <b>World!</b></div>")
	r := extract.New(doc, findTag(t, doc, "div"))
	assert.Equal(t, "Hello,", r.OwnText())
}

func TestDataReturnsScriptContent(t *testing.T) {
	doc := parseHTML(t, `<script>console.log("hi")</script>`)
	r := extract.New(doc, findTag(t, doc, "script"))
	assert.Equal(t, `console.log("hi")`, r.Data())
}

func TestAttrCaseInsensitiveOnHTML(t *testing.T) {
	doc := parseHTML(t, `<a href="/x"></a>`)
	r := extract.New(doc, findTag(t, doc, "a"))
	v, ok := r.Attr("HREF")
	require.True(t, ok)
	assert.Equal(t, "/x", v)
}

func TestAttrCaseSensitiveOnXML(t *testing.T) {
	doc, err := build.BuildFromXML(strings.NewReader(`<a Href="/x"></a>`))
	require.NoError(t, err)
	r := extract.New(doc, doc.RootIDs()[0])
	_, ok := r.Attr("href")
	assert.False(t, ok)
	v, ok := r.Attr("Href")
	require.True(t, ok)
	assert.Equal(t, "/x", v)
}

func TestAttrsReturnsOrderedList(t *testing.T) {
	doc := parseHTML(t, `<a href="/x" title="y"></a>`)
	r := extract.New(doc, findTag(t, doc, "a"))
	attrs, ok := r.Attrs()
	require.True(t, ok)
	require.Len(t, attrs, 2)
	assert.Equal(t, "href", attrs[0].Name)
	assert.Equal(t, "title", attrs[1].Name)
}

func TestTagReportsFalseForTextNode(t *testing.T) {
	doc := parseHTML(t, `<p>x</p>`)
	p := findTag(t, doc, "p")
	textID := doc.MustGet(p).Children[0]
	r := extract.New(doc, textID)
	_, ok := r.Tag()
	assert.False(t, ok)
}

func TestDatasetCamelCasesHyphenatedSuffix(t *testing.T) {
	doc := parseHTML(t, `<div data-x-val="1" data-y-val="2"></div>`)
	r := extract.New(doc, findTag(t, doc, "div"))
	ds, ok := r.Dataset()
	require.True(t, ok)
	assert.Equal(t, "1", ds["xVal"])
	assert.Equal(t, "2", ds["yVal"])
}

func TestHTMLSerializesVoidElementsWithoutClosingTag(t *testing.T) {
	doc := parseHTML(t, `<div><br><img src="x.png"></div>`)
	r := extract.New(doc, findTag(t, doc, "div"))
	html := r.HTML()
	assert.Equal(t, `<div><br><img src="x.png"></div>`, html)
}

func TestHTMLEscapesTextAndAttributes(t *testing.T) {
	doc := parseHTML(t, `<p title="a &amp; b">x &lt; y</p>`)
	r := extract.New(doc, findTag(t, doc, "p"))
	assert.Equal(t, `<p title="a &amp; b">x &lt; y</p>`, r.HTML())
}

func TestHTMLSerializesComment(t *testing.T) {
	doc := parseHTML(t, `<div><!-- note --></div>`)
	r := extract.New(doc, findTag(t, doc, "div"))
	assert.Equal(t, "<div><!-- note --></div>", r.HTML())
}

func TestEqualComparesDocAndID(t *testing.T) {
	doc := parseHTML(t, `<p>x</p>`)
	id := findTag(t, doc, "p")
	a := extract.New(doc, id)
	b := extract.New(doc, id)
	assert.True(t, a.Equal(b))

	other := parseHTML(t, `<p>x</p>`)
	c := extract.New(other, findTag(t, other, "p"))
	assert.False(t, a.Equal(c))
}
