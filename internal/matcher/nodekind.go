package matcher

import (
	"github.com/arjunvale/domselect/internal/selector"
	"github.com/arjunvale/domselect/internal/store"
)

// NodeKind matches any node whose Kind is in the given set. An empty set
// matches every node — used for XPath's node() test. Kinds is small
// enough that a linear scan beats building a map.
type NodeKind struct {
	Kinds []store.Kind
}

// AnyNode matches every node regardless of kind (XPath node()).
func AnyNode() NodeKind { return NodeKind{} }

// CommentNode matches comment nodes (XPath comment()).
func CommentNode() NodeKind { return NodeKind{Kinds: []store.Kind{store.KindComment}} }

// TextNode matches text nodes (XPath text()).
func TextNode() NodeKind { return NodeKind{Kinds: []store.Kind{store.KindText}} }

// ProcessingInstructionNode matches PI nodes (XPath
// processing-instruction()).
func ProcessingInstructionNode() NodeKind {
	return NodeKind{Kinds: []store.Kind{store.KindProcessingInstruction}}
}

func (m NodeKind) Match(doc *store.Document, node int, _ *selector.Context) (bool, error) {
	n, err := doc.Get(node)
	if err != nil {
		return false, err
	}
	if len(m.Kinds) == 0 {
		return true, nil
	}
	for _, k := range m.Kinds {
		if n.Kind == k {
			return true, nil
		}
	}
	return false, nil
}

func (m NodeKind) Combinator() selector.Combinator { return selector.NoCombinator }
func (m NodeKind) Filters() []selector.Selector    { return nil }
func (m NodeKind) Validate() error                 { return nil }

// Root matches iff node has no parent, regardless of kind.
// This is distinct from the :root CSS pseudo-class, which additionally
// requires the node to be an element (see pseudo.go).
type Root struct{}

func (m Root) Match(doc *store.Document, node int, _ *selector.Context) (bool, error) {
	n, err := doc.Get(node)
	if err != nil {
		return false, err
	}
	return n.IsRoot(), nil
}

func (m Root) Combinator() selector.Combinator { return selector.NoCombinator }
func (m Root) Filters() []selector.Selector    { return nil }
func (m Root) Validate() error                 { return nil }
