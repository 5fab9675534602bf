package matcher

import (
	"github.com/arjunvale/domselect/internal/selector"
	"github.com/arjunvale/domselect/internal/store"
)

// Compound is a CSS compound selector: one base element matcher (Tag,
// usually) plus zero or more co-required Extra selectors
// (attribute/id/class/pseudo-class matchers) that must all accept the
// same node, with Comb giving the combinator token that chained this
// compound to whatever comes next (the leftmost compound in a selector
// group carries NoCombinator and is matched against the full walk).
type Compound struct {
	Base  selector.Selector
	Extra []selector.Selector
	Comb  selector.Combinator
}

func (c Compound) Match(doc *store.Document, node int, ctx *selector.Context) (bool, error) {
	return c.Base.Match(doc, node, ctx)
}

func (c Compound) Combinator() selector.Combinator { return c.Comb }
func (c Compound) Filters() []selector.Selector    { return c.Extra }

func (c Compound) Validate() error {
	if c.Base == nil {
		return &BadArgs{PseudoClass: "compound", Reason: "missing base matcher"}
	}
	if err := c.Base.Validate(); err != nil {
		return err
	}
	for _, f := range c.Extra {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}
