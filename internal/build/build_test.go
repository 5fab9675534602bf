package build_test

import (
	"strings"
	"testing"

	"github.com/arjunvale/domselect/internal/build"
	"github.com/arjunvale/domselect/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromHTMLBasic(t *testing.T) {
	doc, err := build.BuildFromHTML(strings.NewReader(`<div id=main><p>1</p><p>2</p><p>3</p></div>`))
	require.NoError(t, err)

	var paragraphs []int
	for _, id := range doc.Walk() {
		n := doc.MustGet(id)
		if n.Kind == store.KindElement && n.Tag == "p" {
			paragraphs = append(paragraphs, id)
		}
	}
	require.Len(t, paragraphs, 3)
}

func TestBuildFromHTMLLowercasesTags(t *testing.T) {
	doc, err := build.BuildFromHTML(strings.NewReader(`<DIV><P>x</P></DIV>`))
	require.NoError(t, err)
	found := false
	for _, id := range doc.Walk() {
		n := doc.MustGet(id)
		if n.Kind == store.KindElement {
			assert.Equal(t, strings.ToLower(n.Tag), n.Tag)
			if n.Tag == "p" {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestBuildFromHTMLScriptIsData(t *testing.T) {
	doc, err := build.BuildFromHTML(strings.NewReader(`<script id=x>Hi</script>`))
	require.NoError(t, err)
	var script *store.Node
	for _, id := range doc.Walk() {
		n := doc.MustGet(id)
		if n.Tag == "script" {
			script = n
		}
	}
	require.NotNil(t, script)
	assert.Equal(t, store.KindData, script.Kind)
	assert.Equal(t, store.DataScript, script.DataSubtype)
	assert.Equal(t, "Hi", script.Content)
}

func TestBuildFromXMLPreservesCase(t *testing.T) {
	doc, err := build.BuildFromXML(strings.NewReader(`<Root><Item id="1">a</Item></Root>`))
	require.NoError(t, err)
	roots := doc.RootIDs()
	require.Len(t, roots, 1)
	root := doc.MustGet(roots[0])
	assert.Equal(t, "Root", root.Tag)

	children, err := doc.Children(roots[0])
	require.NoError(t, err)
	require.Len(t, children, 1)
	item := doc.MustGet(children[0])
	assert.Equal(t, "Item", item.Tag)
	v, ok := item.Attr("id", true)
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestBuildFromXMLSiblingsDoNotLeak(t *testing.T) {
	doc, err := build.BuildFromXML(strings.NewReader(`<r><a><x/><y/></a><b><z/></b></r>`))
	require.NoError(t, err)
	root := doc.MustGet(doc.RootIDs()[0])
	children, err := doc.Children(root.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)

	aChildren, err := doc.Children(children[0])
	require.NoError(t, err)
	require.Len(t, aChildren, 2)
	assert.Equal(t, "x", doc.MustGet(aChildren[0]).Tag)
	assert.Equal(t, "y", doc.MustGet(aChildren[1]).Tag)

	bChildren, err := doc.Children(children[1])
	require.NoError(t, err)
	require.Len(t, bChildren, 1)
	assert.Equal(t, "z", doc.MustGet(bChildren[0]).Tag)
}

func TestFromTupleAcceptsCommentWithoutText(t *testing.T) {
	_, err := build.FromTuple([]build.Tuple{
		{Tag: build.TagComment}, // comment with no text child is fine (empty content)
	}, store.ModeXML)
	require.NoError(t, err)
}
