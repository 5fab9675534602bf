package matcher_test

import (
	"strings"
	"testing"

	"github.com/arjunvale/domselect/internal/build"
	"github.com/arjunvale/domselect/internal/matcher"
	"github.com/arjunvale/domselect/internal/selector"
	"github.com/arjunvale/domselect/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *store.Document {
	t.Helper()
	doc, err := build.BuildFromHTML(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func findByTag(t *testing.T, doc *store.Document, tag string) []int {
	t.Helper()
	var out []int
	for _, id := range doc.Walk() {
		n := doc.MustGet(id)
		if n.Kind == store.KindElement && n.Tag == tag {
			out = append(out, id)
		}
	}
	return out
}

func TestTagMatcherCaseInsensitiveHTML(t *testing.T) {
	doc := parse(t, `<DIV></DIV>`)
	divs := findByTag(t, doc, "div")
	require.Len(t, divs, 1)
	ok, err := matcher.Tag{Name: "DIV"}.Match(doc, divs[0], nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAttributeOperators(t *testing.T) {
	doc := parse(t, `<a class="foo bar" data-x="hello-world" href="https://example.com/page"></a>`)
	a := findByTag(t, doc, "a")[0]

	cases := []struct {
		name string
		m    matcher.Attribute
		want bool
	}{
		{"includes word", matcher.Class("bar"), true},
		{"includes missing word", matcher.Class("baz"), false},
		{"dash prefix exact", matcher.Attribute{Name: "data-x", Op: matcher.AttrDashPrefix, Value: "hello", CaseSensitiveValue: true}, true},
		{"prefix", matcher.Attribute{Name: "href", Op: matcher.AttrPrefix, Value: "https://", CaseSensitiveValue: true}, true},
		{"suffix", matcher.Attribute{Name: "href", Op: matcher.AttrSuffix, Value: "/page", CaseSensitiveValue: true}, true},
		{"substring", matcher.Attribute{Name: "href", Op: matcher.AttrSubstring, Value: "example", CaseSensitiveValue: true}, true},
		{"list op with spaces in value matches nothing", matcher.Attribute{Name: "class", Op: matcher.AttrIncludesWord, Value: "foo bar", CaseSensitiveValue: true}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ok, err := c.m.Match(doc, a, nil)
			require.NoError(t, err)
			assert.Equal(t, c.want, ok)
		})
	}
}

func TestNthChild(t *testing.T) {
	doc := parse(t, `<ul><li>a</li><li>b</li><li>c</li><li>d</li></ul>`)
	lis := findByTag(t, doc, "li")
	require.Len(t, lis, 4)

	a, b, err := matcher.ParseNth("2n+1")
	require.NoError(t, err)
	sel := matcher.NthChild(a, b, false)
	var got []int
	for _, li := range lis {
		ok, err := sel.Match(doc, li, nil)
		require.NoError(t, err)
		if ok {
			got = append(got, li)
		}
	}
	assert.Equal(t, []int{lis[0], lis[2]}, got)
}

func TestNthLastChild(t *testing.T) {
	doc := parse(t, `<ul><li>a</li><li>b</li><li>c</li></ul>`)
	lis := findByTag(t, doc, "li")
	sel := matcher.NthChild(0, 1, true) // :nth-last-child(1) == :last-child
	ok, err := sel.Match(doc, lis[2], nil)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = sel.Match(doc, lis[0], nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFirstLastOnlyChild(t *testing.T) {
	doc := parse(t, `<div><p>1</p><p>2</p></div><div><span>only</span></div>`)
	ps := findByTag(t, doc, "p")
	spans := findByTag(t, doc, "span")

	ok, _ := matcher.FirstChild().Match(doc, ps[0], nil)
	assert.True(t, ok)
	ok, _ = matcher.FirstChild().Match(doc, ps[1], nil)
	assert.False(t, ok)
	ok, _ = matcher.LastChild().Match(doc, ps[1], nil)
	assert.True(t, ok)
	ok, _ = matcher.OnlyChild().Match(doc, spans[0], nil)
	assert.True(t, ok)
	ok, _ = matcher.OnlyChild().Match(doc, ps[0], nil)
	assert.False(t, ok)
}

func TestOfType(t *testing.T) {
	doc := parse(t, `<div><p>1</p><span>x</span><p>2</p><p>3</p></div>`)
	ps := findByTag(t, doc, "p")
	require.Len(t, ps, 3)

	ok, _ := matcher.FirstOfType().Match(doc, ps[0], nil)
	assert.True(t, ok)
	ok, _ = matcher.LastOfType().Match(doc, ps[2], nil)
	assert.True(t, ok)
	ok, _ = matcher.OnlyOfType().Match(doc, ps[1], nil)
	assert.False(t, ok)
}

func TestRootPseudoVsRootMatcher(t *testing.T) {
	doc := parse(t, `<html><body>x</body></html>`)
	roots := doc.RootIDs()
	require.Len(t, roots, 1)

	ok, _ := matcher.Root{}.Match(doc, roots[0], nil)
	assert.True(t, ok)
	ok, _ = matcher.RootPseudo().Match(doc, roots[0], nil)
	assert.True(t, ok)
}

func TestNotPseudo(t *testing.T) {
	doc := parse(t, `<div class="a"></div><div class="b"></div>`)
	divs := findByTag(t, doc, "div")
	notA := matcher.Not{Inner: matcher.Class("a")}
	ok, err := notA.Match(doc, divs[0], nil)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = notA.Match(doc, divs[1], nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasPseudoDescendant(t *testing.T) {
	doc := parse(t, `<div><p class="target"></p></div><div><span></span></div>`)
	divs := findByTag(t, doc, "div")
	has := matcher.Has{Inner: matcher.Class("target")}
	ok, err := has.Match(doc, divs[0], nil)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = has.Match(doc, divs[1], nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompoundFiltersViaAccepts(t *testing.T) {
	doc := parse(t, `<p class="active">x</p><p class="idle">y</p>`)
	ps := findByTag(t, doc, "p")
	c := matcher.Compound{Base: matcher.Tag{Name: "p"}, Extra: []selector.Selector{matcher.Class("active")}}
	ok, err := selector.Accepts(c, doc, ps[0], nil)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = selector.Accepts(c, doc, ps[1], nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
