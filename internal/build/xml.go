package build

import (
	"encoding/xml"
	"io"

	"github.com/arjunvale/domselect/internal/store"
)

// BuildFromXML parses r with encoding/xml's token decoder — the XML
// counterpart of BuildFromHTML's parser boundary, grounded the same way
// the pack's XPath-flavored example repos (go-xmlpath, beevik/etree)
// tokenize XML — and folds the result into a Document in XML mode (case
// preserved, no void-element or script/style special-casing).
func BuildFromXML(r io.Reader) (*store.Document, error) {
	dec := xml.NewDecoder(r)
	b := &xmlBuilder{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseMarkup{Reason: "xml decode failed", Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			tag := t.Name.Local
			if t.Name.Space != "" {
				tag = t.Name.Space + ":" + t.Name.Local
			}
			attrs := make([]store.Attr, len(t.Attr))
			for i, a := range t.Attr {
				name := a.Name.Local
				if a.Name.Space != "" {
					name = a.Name.Space + ":" + a.Name.Local
				}
				attrs[i] = store.Attr{Name: name, Value: a.Value}
			}
			b.open(Tuple{Namespace: t.Name.Space, Tag: tag, Attrs: attrs})
		case xml.EndElement:
			b.close()
		case xml.CharData:
			if s := string(t); s != "" {
				b.leaf(Text(s))
			}
		case xml.Comment:
			b.leaf(Comment(string(t)))
		case xml.ProcInst:
			b.leaf(ProcessingInstruction(t.Target, string(t.Inst)))
		case xml.Directive:
			// DOCTYPE and other markup declarations arrive as raw
			// directives; encoding/xml does not parse their internals, so
			// the name is all we can recover.
			b.leaf(Doctype(string(t), "", ""))
		}
	}

	return FromTuple(b.roots, store.ModeXML)
}

// xmlBuilder grows a forest of Tuples as encoding/xml tokens arrive. Each
// stack entry is the index path from roots down to the currently open
// element, so appends to a slice never leave a stale pointer behind —
// every access re-walks the path from roots.
type xmlBuilder struct {
	roots []Tuple
	stack [][]int // each entry is a path of child indices from roots
}

// locate returns a pointer to the element at path within b.roots.
func (b *xmlBuilder) locate(path []int) *Tuple {
	t := &b.roots[path[0]]
	for _, i := range path[1:] {
		t = &t.Children[i]
	}
	return t
}

// currentPath returns the path of the innermost open element, or nil at
// forest level.
func (b *xmlBuilder) currentPath() []int {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *xmlBuilder) open(t Tuple) {
	path := b.currentPath()
	if path == nil {
		b.roots = append(b.roots, t)
		b.stack = append(b.stack, []int{len(b.roots) - 1})
		return
	}
	parent := b.locate(path)
	parent.Children = append(parent.Children, t)
	childPath := append(append([]int(nil), path...), len(parent.Children)-1)
	b.stack = append(b.stack, childPath)
}

func (b *xmlBuilder) close() {
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *xmlBuilder) leaf(t Tuple) {
	path := b.currentPath()
	if path == nil {
		b.roots = append(b.roots, t)
		return
	}
	parent := b.locate(path)
	parent.Children = append(parent.Children, t)
}
