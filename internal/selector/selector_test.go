package selector_test

import (
	"testing"

	"github.com/arjunvale/domselect/internal/selector"
	"github.com/stretchr/testify/assert"
)

func TestContextDerivationDoesNotMutateParent(t *testing.T) {
	base := selector.Empty().With("k", "v")
	derived := base.With("k", "v2")

	v, ok := base.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	v2, ok := derived.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v2", v2)
}

func TestWithNodeSet(t *testing.T) {
	ctx := selector.Empty().WithNodeSet([]int{1, 2, 3}, 2)
	assert.Equal(t, []int{1, 2, 3}, ctx.Nodes())
	assert.Equal(t, 2, ctx.Position())
	assert.Equal(t, 3, ctx.Last())
}

func TestFuncSelectorIsTerminal(t *testing.T) {
	var s selector.Selector = selector.Func(nil)
	assert.Equal(t, selector.NoCombinator, s.Combinator())
	assert.Nil(t, s.Filters())
	assert.NoError(t, s.Validate())
}
