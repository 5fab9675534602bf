package matcher

import (
	"github.com/arjunvale/domselect/internal/selector"
	"github.com/arjunvale/domselect/internal/store"
)

// elementSiblings returns the ordered list of node's sibling elements,
// including node itself if it is one, and node's 0-based index within
// that list (-1 if node is not an element or has no parent).
func elementSiblings(doc *store.Document, node int) ([]int, int, error) {
	sibs, err := doc.Siblings(node)
	if err != nil {
		return nil, -1, err
	}
	var els []int
	idx := -1
	for _, s := range sibs {
		n := doc.MustGet(s)
		if !n.IsElement() {
			continue
		}
		if s == node {
			idx = len(els)
		}
		els = append(els, s)
	}
	return els, idx, nil
}

// sameTypeSiblings narrows elementSiblings to elements sharing node's tag
// and namespace, used by the of-type family.
func sameTypeSiblings(doc *store.Document, node int) ([]int, int, error) {
	n, err := doc.Get(node)
	if err != nil {
		return nil, -1, err
	}
	sibs, err := doc.Siblings(node)
	if err != nil {
		return nil, -1, err
	}
	var els []int
	idx := -1
	for _, s := range sibs {
		sn := doc.MustGet(s)
		if !sn.IsElement() || sn.Tag != n.Tag || sn.Namespace != n.Namespace {
			continue
		}
		if s == node {
			idx = len(els)
		}
		els = append(els, s)
	}
	return els, idx, nil
}

// structuralPseudo is the common shape of every positional pseudo-class
// below: compute a sibling list and this node's index, then test it.
type structuralPseudo struct {
	name   string
	lookup func(doc *store.Document, node int) ([]int, int, error)
	test   func(els []int, idx int) bool
}

func (p structuralPseudo) Match(doc *store.Document, node int, _ *selector.Context) (bool, error) {
	n, err := doc.Get(node)
	if err != nil {
		return false, err
	}
	if !n.IsElement() {
		return false, nil
	}
	els, idx, err := p.lookup(doc, node)
	if err != nil {
		return false, err
	}
	if idx < 0 {
		return false, nil
	}
	return p.test(els, idx), nil
}

func (p structuralPseudo) Combinator() selector.Combinator { return selector.NoCombinator }
func (p structuralPseudo) Filters() []selector.Selector    { return nil }
func (p structuralPseudo) Validate() error                 { return nil }

// FirstChild matches :first-child.
func FirstChild() selector.Selector {
	return structuralPseudo{name: "first-child", lookup: elementSiblings,
		test: func(_ []int, idx int) bool { return idx == 0 }}
}

// LastChild matches :last-child.
func LastChild() selector.Selector {
	return structuralPseudo{name: "last-child", lookup: elementSiblings,
		test: func(els []int, idx int) bool { return idx == len(els)-1 }}
}

// OnlyChild matches :only-child.
func OnlyChild() selector.Selector {
	return structuralPseudo{name: "only-child", lookup: elementSiblings,
		test: func(els []int, _ int) bool { return len(els) == 1 }}
}

// FirstOfType matches :first-of-type.
func FirstOfType() selector.Selector {
	return structuralPseudo{name: "first-of-type", lookup: sameTypeSiblings,
		test: func(_ []int, idx int) bool { return idx == 0 }}
}

// LastOfType matches :last-of-type.
func LastOfType() selector.Selector {
	return structuralPseudo{name: "last-of-type", lookup: sameTypeSiblings,
		test: func(els []int, idx int) bool { return idx == len(els)-1 }}
}

// OnlyOfType matches :only-of-type.
func OnlyOfType() selector.Selector {
	return structuralPseudo{name: "only-of-type", lookup: sameTypeSiblings,
		test: func(els []int, _ int) bool { return len(els) == 1 }}
}

// NthChild matches :nth-child(an+b) when last is false, :nth-last-child
// when true.
func NthChild(a, b int, last bool) selector.Selector {
	return structuralPseudo{name: "nth-child", lookup: elementSiblings,
		test: nthTest(a, b, last)}
}

// NthOfType matches :nth-of-type(an+b) when last is false,
// :nth-last-of-type when true.
func NthOfType(a, b int, last bool) selector.Selector {
	return structuralPseudo{name: "nth-of-type", lookup: sameTypeSiblings,
		test: nthTest(a, b, last)}
}

func nthTest(a, b int, last bool) func(els []int, idx int) bool {
	return func(els []int, idx int) bool {
		pos := idx + 1
		if last {
			pos = len(els) - idx
		}
		return MatchesNth(a, b, pos)
	}
}

// RootPseudo matches CSS :root — an element with no parent. Unlike the
// standalone Root matcher (nodekind.go), this additionally requires
// Kind == Element.
func RootPseudo() selector.Selector {
	return structuralPseudo{name: "root",
		lookup: func(doc *store.Document, node int) ([]int, int, error) {
			n, err := doc.Get(node)
			if err != nil {
				return nil, -1, err
			}
			if n.IsRoot() {
				return []int{node}, 0, nil
			}
			return nil, -1, nil
		},
		test: func(_ []int, _ int) bool { return true },
	}
}

// Not matches :not(inner) — accepted iff inner does not match.
type Not struct {
	Inner selector.Selector
}

func (m Not) Match(doc *store.Document, node int, ctx *selector.Context) (bool, error) {
	ok, err := selector.Accepts(m.Inner, doc, node, ctx)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (m Not) Combinator() selector.Combinator { return selector.NoCombinator }
func (m Not) Filters() []selector.Selector    { return nil }
func (m Not) Validate() error {
	if m.Inner == nil {
		return &BadArgs{PseudoClass: "not", Reason: "missing argument"}
	}
	return m.Inner.Validate()
}

// Has matches :has(inner) — accepted iff some node reachable from node
// via Comb matches inner. Comb is Descendant by default; when the argument
// starts with an explicit combinator it is that combinator (">" Children,
// "+" NextSibling, "~" NextSiblings).
type Has struct {
	Inner selector.Selector
	Comb  selector.Combinator
}

func (m Has) Match(doc *store.Document, node int, ctx *selector.Context) (bool, error) {
	comb := m.Comb
	if comb == selector.NoCombinator {
		comb = selector.Descendant
	}
	candidates, err := selector.Candidates(doc, comb, node)
	if err != nil {
		return false, err
	}
	for _, c := range candidates {
		ok, err := selector.Accepts(m.Inner, doc, c, ctx)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (m Has) Combinator() selector.Combinator { return selector.NoCombinator }
func (m Has) Filters() []selector.Selector    { return nil }
func (m Has) Validate() error {
	if m.Inner == nil {
		return &BadArgs{PseudoClass: "has", Reason: "missing argument"}
	}
	return m.Inner.Validate()
}
