package test

import (
	"testing"

	"github.com/arjunvale/domselect/internal/build"
	"github.com/arjunvale/domselect/internal/extract"
	"github.com/arjunvale/domselect/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTreeRoundTripsElementStructure checks testable property 4:
// tree(build(T)) is a canonical form of T — element structure, tags, and
// attributes survive a build-then-walk-back round trip exactly, modulo
// the text-node coalescing and attribute deduplication the property
// explicitly permits.
func TestTreeRoundTripsElementStructure(t *testing.T) {
	input := []build.Tuple{
		{
			Tag:   "div",
			Attrs: []store.Attr{{Name: "id", Value: "main"}},
			Children: []build.Tuple{
				{Tag: "p", Children: []build.Tuple{{Text: "hello", IsText: true}}},
				{Tag: "p", Children: []build.Tuple{{Text: "world", IsText: true}}},
			},
		},
	}

	doc, err := build.FromTuple(input, store.ModeHTML)
	require.NoError(t, err)

	root := doc.RootIDs()[0]
	got := extract.New(doc, root).Tree()

	assert.Equal(t, "div", got.Tag)
	assert.False(t, got.IsText)
	require.Len(t, got.Attrs, 1)
	assert.Equal(t, "id", got.Attrs[0].Name)
	assert.Equal(t, "main", got.Attrs[0].Value)

	require.Len(t, got.Children, 2)
	assert.Equal(t, "p", got.Children[0].Tag)
	require.Len(t, got.Children[0].Children, 1)
	assert.True(t, got.Children[0].Children[0].IsText)
	assert.Equal(t, "hello", got.Children[0].Children[0].Text)

	assert.Equal(t, "p", got.Children[1].Tag)
	assert.Equal(t, "world", got.Children[1].Children[0].Text)
}
