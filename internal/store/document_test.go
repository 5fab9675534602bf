package store_test

import (
	"testing"

	"github.com/arjunvale/domselect/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLinear builds <div id=main><p>1</p><p>2</p><p>3</p></div> by hand,
// id-assigning in pre-order, to exercise the store without going through
// the tuple-tree builder.
func buildLinear(t *testing.T) (*store.Document, int, []int) {
	t.Helper()
	nodes := []store.Node{
		{ID: 0, Parent: -1, Kind: store.KindElement, Tag: "div",
			Attrs: []store.Attr{{Name: "id", Value: "main"}}, Children: []int{1, 3, 5}},
		{ID: 1, Parent: 0, Kind: store.KindElement, Tag: "p", Children: []int{2}},
		{ID: 2, Parent: 1, Kind: store.KindText, Content: "1"},
		{ID: 3, Parent: 0, Kind: store.KindElement, Tag: "p", Children: []int{4}},
		{ID: 4, Parent: 3, Kind: store.KindText, Content: "2"},
		{ID: 5, Parent: 0, Kind: store.KindElement, Tag: "p", Children: []int{6}},
		{ID: 6, Parent: 5, Kind: store.KindText, Content: "3"},
	}
	doc, err := store.New(nodes, []int{0}, store.ModeHTML)
	require.NoError(t, err)
	return doc, 0, []int{1, 3, 5}
}

func TestWalkIsDocumentOrder(t *testing.T) {
	doc, _, _ := buildLinear(t)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, doc.Walk())
}

func TestWalkVisitsEachIDExactlyOnce(t *testing.T) {
	doc, _, _ := buildLinear(t)
	seen := map[int]int{}
	for _, id := range doc.Walk() {
		seen[id]++
	}
	for id, n := range seen {
		assert.Equalf(t, 1, n, "id %d visited %d times", id, n)
	}
	assert.Len(t, seen, doc.Len())
}

func TestChildrenAndSiblings(t *testing.T) {
	doc, main, ps := buildLinear(t)
	children, err := doc.Children(main)
	require.NoError(t, err)
	assert.Equal(t, ps, children)

	sibs, err := doc.Siblings(ps[1])
	require.NoError(t, err)
	assert.Equal(t, ps, sibs)

	following, err := doc.FollowingSiblings(ps[0])
	require.NoError(t, err)
	assert.Equal(t, ps[1:], following)

	preceding, err := doc.PrecedingSiblings(ps[2])
	require.NoError(t, err)
	assert.Equal(t, []int{ps[1], ps[0]}, preceding)
}

func TestAncestorsFromImmediateParentUp(t *testing.T) {
	doc, main, ps := buildLinear(t)
	textID := 2
	ancestors, err := doc.Ancestors(textID)
	require.NoError(t, err)
	assert.Equal(t, []int{ps[0], main}, ancestors)
}

func TestDescendantsExcludesSelf(t *testing.T) {
	doc, main, ps := buildLinear(t)
	desc, err := doc.Descendants(main)
	require.NoError(t, err)
	assert.NotContains(t, desc, main)
	assert.Equal(t, []int{ps[0], 2, ps[1], 4, ps[2], 6}, desc)
}

func TestGetUnknownNode(t *testing.T) {
	doc, _, _ := buildLinear(t)
	_, err := doc.Get(999)
	require.Error(t, err)
	var unk *store.UnknownNode
	assert.ErrorAs(t, err, &unk)
}

func TestNewRejectsCycle(t *testing.T) {
	nodes := []store.Node{
		{ID: 0, Parent: 1, Kind: store.KindElement, Tag: "a", Children: []int{1}},
		{ID: 1, Parent: 0, Kind: store.KindElement, Tag: "b", Children: []int{0}},
	}
	_, err := store.New(nodes, []int{0}, store.ModeHTML)
	require.Error(t, err)
}

func TestNewRejectsUnreachableNode(t *testing.T) {
	nodes := []store.Node{
		{ID: 0, Parent: -1, Kind: store.KindElement, Tag: "a"},
		{ID: 1, Parent: -1, Kind: store.KindElement, Tag: "b"},
	}
	_, err := store.New(nodes, []int{0}, store.ModeHTML)
	require.Error(t, err)
}
