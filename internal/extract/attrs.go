package extract

import "github.com/arjunvale/domselect/internal/store"

// Attr returns the first value of the named attribute, and whether the
// node is an element carrying it. Name comparison is case-insensitive in
// HTML documents and case-sensitive in XML documents.
func (r Result) Attr(name string) (string, bool) {
	n := r.node()
	if !n.IsElement() {
		return "", false
	}
	return n.Attr(name, r.doc.Mode() == store.ModeXML)
}

// Attrs returns the node's ordered attribute list, and whether the node
// carries one at all (elements and script/style Data nodes do).
func (r Result) Attrs() ([]store.Attr, bool) {
	n := r.node()
	if !n.IsElement() {
		return nil, false
	}
	out := make([]store.Attr, len(n.Attrs))
	copy(out, n.Attrs)
	return out, true
}

// Tag returns the element's tag name, and whether the node is an element
// (or a script/style Data node, which carries its own tag).
func (r Result) Tag() (string, bool) {
	n := r.node()
	if !n.IsElement() {
		return "", false
	}
	return n.Tag, true
}
