// Package textutil holds the small amount of text-content logic shared by
// the XPath evaluator's string-value conversions (internal/xpath) and the
// extraction operator text() (internal/extract), so
// neither reimplements the other's notion of "the text under a node".
package textutil

import "github.com/arjunvale/domselect/internal/store"

// Concat returns the raw concatenation of every Text and Data-kind node's
// Content reachable from id (id included), in document order, with no
// whitespace collapsing or normalization — XPath's string-value of an
// element or root node.
func Concat(doc *store.Document, id int) string {
	var b []byte
	concatInto(doc, id, &b)
	return string(b)
}

func concatInto(doc *store.Document, id int, b *[]byte) {
	n := doc.MustGet(id)
	switch n.Kind {
	case store.KindText, store.KindData:
		*b = append(*b, n.Content...)
	case store.KindElement:
		for _, c := range n.Children {
			concatInto(doc, c, b)
		}
	}
}
