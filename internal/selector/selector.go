// Package selector defines the capability every CSS matcher, XPath
// expression node, and user-defined matcher conforms to. The CSS chain
// evaluator (internal/css) is written entirely against this
// interface — it never knows whether a given Selector is a built-in
// matcher or a caller's own type.
package selector

import "github.com/arjunvale/domselect/internal/store"

// Combinator names the relation a Selector's combinator stage uses to
// compute the next-in-chain candidate set from a matched node. It is a
// closed set — Descendant/Children/NextSibling/NextSiblings — rather
// than an open interface, so the driver can switch on it instead of
// dispatching through another layer of polymorphism.
type Combinator int

const (
	// NoCombinator means the Selector is terminal: matching it alone
	// decides membership, nothing downstream depends on it.
	NoCombinator Combinator = iota
	Descendant
	Children
	NextSibling
	NextSiblings
)

// Candidates computes the next-stage candidate node ids for a matched
// node m under combinator c.
func Candidates(doc *store.Document, c Combinator, m int) ([]int, error) {
	switch c {
	case Descendant:
		return doc.Descendants(m)
	case Children:
		return doc.Children(m)
	case NextSibling:
		sibs, err := doc.FollowingSiblings(m)
		if err != nil {
			return nil, err
		}
		for _, s := range sibs {
			if doc.MustGet(s).IsElement() {
				return []int{s}, nil
			}
		}
		return nil, nil
	case NextSiblings:
		sibs, err := doc.FollowingSiblings(m)
		if err != nil {
			return nil, err
		}
		var out []int
		for _, s := range sibs {
			if doc.MustGet(s).IsElement() {
				out = append(out, s)
			}
		}
		return out, nil
	default:
		return nil, nil
	}
}

// Selector is the narrow capability a chain stage requires: a
// single-node predicate, an optional combinator describing the next
// stage's
// candidates, optional extra filters co-required on the same node (used to
// encode compound selectors and pseudo-class stacks), and compile-time
// structural validation.
//
// Built-in CSS/XPath matchers and caller-supplied types satisfy this
// interface identically — there is no base type or inheritance hierarchy
// to opt into, only these four methods.
type Selector interface {
	// Match reports whether node satisfies the selector in doc under ctx.
	Match(doc *store.Document, node int, ctx *Context) (bool, error)

	// Combinator returns the combinator governing the next selector in a
	// chain, or NoCombinator if this selector is terminal.
	Combinator() Combinator

	// Filters returns extra selectors that must also match the same node
	// for it to be accepted, or nil.
	Filters() []Selector

	// Validate performs structural validation at compile time.
	Validate() error
}

// Func adapts a plain predicate function into a terminal, filter-free
// Selector — an extension escape hatch letting a caller plug in an
// arbitrary matcher (e.g. "comment whose content contains TODO")
// without implementing the full interface by hand.
type Func func(doc *store.Document, node int, ctx *Context) (bool, error)

func (f Func) Match(doc *store.Document, node int, ctx *Context) (bool, error) {
	return f(doc, node, ctx)
}
func (f Func) Combinator() Combinator { return NoCombinator }
func (f Func) Filters() []Selector    { return nil }
func (f Func) Validate() error        { return nil }

// Accepts is the shared acceptance rule of the chain evaluation
// procedure: a node is accepted by s iff s.Match holds and every entry of
// s.Filters() is itself accepted (recursively, since a filter may in turn
// carry its own filters — :not and :has wrap compound selectors this way).
// internal/css's chain evaluation and the :not/:has pseudo-classes both call this instead
// of duplicating the recursion.
func Accepts(s Selector, doc *store.Document, node int, ctx *Context) (bool, error) {
	ok, err := s.Match(doc, node, ctx)
	if err != nil || !ok {
		return ok, err
	}
	for _, f := range s.Filters() {
		fok, err := Accepts(f, doc, node, ctx)
		if err != nil {
			return false, err
		}
		if !fok {
			return false, nil
		}
	}
	return true, nil
}
