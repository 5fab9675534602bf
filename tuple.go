package domselect

import "github.com/arjunvale/domselect/internal/build"

// Attr is a single (name, value) attribute pair, in source order.
type Attr struct {
	Name  string
	Value string
}

// Tuple is the tuple-tree representation of a node: either literal text
// (IsText true) or a tagged element with attributes and children. The
// special tags "-doctype", "-comment", "-pi", and "-cdata" carry the
// corresponding non-element node kinds.
type Tuple struct {
	Text   string
	IsText bool

	Namespace string
	Tag       string
	Attrs     []Attr
	Children  []Tuple
}

func wrapTuple(t build.Tuple) Tuple {
	if t.IsText {
		return Tuple{Text: t.Text, IsText: true}
	}
	attrs := make([]Attr, len(t.Attrs))
	for i, a := range t.Attrs {
		attrs[i] = Attr{Name: a.Name, Value: a.Value}
	}
	children := make([]Tuple, len(t.Children))
	for i, c := range t.Children {
		children[i] = wrapTuple(c)
	}
	return Tuple{
		Namespace: t.Namespace,
		Tag:       t.Tag,
		Attrs:     attrs,
		Children:  children,
	}
}
