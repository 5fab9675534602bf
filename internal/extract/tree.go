package extract

import (
	"github.com/arjunvale/domselect/internal/build"
	"github.com/arjunvale/domselect/internal/store"
)

// Tree returns the tuple-tree representation of the node and its
// subtree — the inverse of internal/build.FromTuple, modulo the
// permitted round-trip slack (text-node coalescing, attribute
// deduplication) invariant 4 allows.
func (r Result) Tree() build.Tuple {
	return toTuple(r.doc, r.id)
}

func toTuple(doc *store.Document, id int) build.Tuple {
	n := doc.MustGet(id)
	switch n.Kind {
	case store.KindText:
		return build.Text(n.Content)
	case store.KindComment:
		return build.Comment(n.Content)
	case store.KindDoctype:
		return build.Doctype(n.Content, n.PublicID, n.SystemID)
	case store.KindProcessingInstruction:
		return build.ProcessingInstruction(n.Target, n.Content)
	case store.KindData:
		if n.DataSubtype == store.DataCDATA {
			return build.CDATA(n.Content)
		}
		// script/style: the builder folds the whole tag into one Data
		// node carrying its own namespace/tag/attrs.
		return build.Tuple{
			Namespace: n.Namespace,
			Tag:       n.Tag,
			Attrs:     n.Attrs,
			Children:  []build.Tuple{build.Text(n.Content)},
		}
	default: // Element
		children := make([]build.Tuple, len(n.Children))
		for i, c := range n.Children {
			children[i] = toTuple(doc, c)
		}
		return build.Tuple{
			Namespace: n.Namespace,
			Tag:       n.Tag,
			Attrs:     n.Attrs,
			Children:  children,
		}
	}
}
