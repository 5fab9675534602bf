package build

import (
	"io"

	"github.com/arjunvale/domselect/internal/store"
	"golang.org/x/net/html"
)

// BuildFromHTML parses r with the external HTML5 tokenizer/tree-constructor
// (golang.org/x/net/html) and folds the result into a Document. This is
// the "html" parse mode of the raw-markup build path.
func BuildFromHTML(r io.Reader) (*store.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, &ParseMarkup{Reason: "html.Parse failed", Err: err}
	}
	var roots []Tuple
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		roots = append(roots, htmlToTuple(c))
	}
	return FromTuple(roots, store.ModeHTML)
}

func htmlToTuple(n *html.Node) Tuple {
	switch n.Type {
	case html.TextNode:
		return Text(n.Data)
	case html.CommentNode:
		return Comment(n.Data)
	case html.DoctypeNode:
		var public, system string
		for _, a := range n.Attr {
			switch a.Key {
			case "public":
				public = a.Val
			case "system":
				system = a.Val
			}
		}
		return Doctype(n.Data, public, system)
	default: // html.ElementNode and any unrecognized type are treated as elements
		attrs := make([]store.Attr, len(n.Attr))
		for i, a := range n.Attr {
			attrs[i] = store.Attr{Name: a.Key, Value: a.Val}
		}
		children := make([]Tuple, 0, 4)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			children = append(children, htmlToTuple(c))
		}
		return Tuple{Namespace: n.Namespace, Tag: n.Data, Attrs: attrs, Children: children}
	}
}
