// Package build converts the external parser's output — a tuple-tree —
// into an internal/store.Document. It owns the one depth-first pass
// that assigns node ids in pre-order; internal/store itself never
// constructs a Document except through this package.
package build

import "github.com/arjunvale/domselect/internal/store"

// Tag sentinels for non-element tuple nodes. They are chosen to never
// collide with a real HTML or XML tag name.
const (
	TagDoctype = "-doctype"
	TagComment = "-comment"
	TagPI      = "-pi"
	TagCDATA   = "-cdata"
)

// Tuple is the external parser/caller-facing tuple-tree node: either a bare
// string (text) or an element tuple (tag, attrs, children). Special tags
// TagDoctype/TagComment/TagPI/TagCDATA and the real tags "script"/"style"
// carry the non-element kinds; see newNode.
type Tuple struct {
	// Text holds the node's literal text when IsText is true; all other
	// fields are ignored.
	Text   string
	IsText bool

	Namespace string
	Tag       string
	Attrs     []store.Attr
	Children  []Tuple
}

// Text builds a text tuple node — the string variant of the grammar.
func Text(s string) Tuple { return Tuple{Text: s, IsText: true} }

// Element builds an element tuple node.
func Element(tag string, attrs []store.Attr, children ...Tuple) Tuple {
	return Tuple{Tag: tag, Attrs: attrs, Children: children}
}

// Comment builds a "-comment" tuple node.
func Comment(content string) Tuple {
	return Tuple{Tag: TagComment, Children: []Tuple{Text(content)}}
}

// Doctype builds a "-doctype" tuple node.
func Doctype(name, publicID, systemID string) Tuple {
	return Tuple{Tag: TagDoctype, Attrs: []store.Attr{
		{Name: "name", Value: name},
		{Name: "public", Value: publicID},
		{Name: "system", Value: systemID},
	}}
}

// ProcessingInstruction builds a "-pi" tuple node.
func ProcessingInstruction(target, content string) Tuple {
	return Tuple{Tag: TagPI, Attrs: []store.Attr{{Name: "target", Value: target}},
		Children: []Tuple{Text(content)}}
}

// CDATA builds a "-cdata" tuple node, serialized by internal/extract
// using a load-bearing substring convention: detection is by markers
// alone ("[CDATA[" ... "]]"), not by a parser-verified nesting check.
func CDATA(content string) Tuple {
	return Tuple{Tag: TagCDATA, Children: []Tuple{Text(content)}}
}

// FromTuple builds a Document from an ordered list of top-level tuple
// nodes (the roots) in the given mode. It is the second of the two build
// inputs — the first (raw markup) goes through BuildFromHTML or
// BuildFromXML, which both reduce to a call to FromTuple.
func FromTuple(roots []Tuple, mode store.Mode) (*store.Document, error) {
	b := &builder{mode: mode}
	rootIDs := make([]int, 0, len(roots))
	for _, t := range roots {
		id, err := b.add(t, -1)
		if err != nil {
			return nil, err
		}
		rootIDs = append(rootIDs, id)
	}
	return store.New(b.nodes, rootIDs, mode)
}

type builder struct {
	mode  store.Mode
	nodes []store.Node
}

// add assigns the next id in pre-order to t, recursing into its children,
// and returns the new node's id.
func (b *builder) add(t Tuple, parent int) (int, error) {
	id := len(b.nodes)
	n, err := b.newNode(t, id, parent)
	if err != nil {
		return 0, err
	}
	b.nodes = append(b.nodes, n)
	if len(t.Children) > 0 && !allowsChildren(n.Kind) {
		return 0, &store.MalformedTree{Reason: "non-element tuple node has children"}
	}
	if n.Kind != store.KindElement {
		// Comment/PI/Data content was already read from the text child by
		// soleText; that child is not stored as a node of its own.
		return id, nil
	}
	for _, c := range t.Children {
		cid, err := b.add(c, id)
		if err != nil {
			return 0, err
		}
		if n.Kind == store.KindElement {
			b.nodes[id].Children = append(b.nodes[id].Children, cid)
		}
	}
	return id, nil
}

// allowsChildren reports whether a node of this kind may own tuple
// children in the source tree. Element owns real children; Comment, PI,
// and Data (script/style/CDATA) own exactly the text child their content
// lives in, consumed by soleText and discarded from the stored tree.
func allowsChildren(k store.Kind) bool {
	switch k {
	case store.KindElement, store.KindComment, store.KindProcessingInstruction, store.KindData:
		return true
	default:
		return false
	}
}

func (b *builder) newNode(t Tuple, id, parent int) (store.Node, error) {
	base := store.Node{ID: id, Parent: parent}

	if t.IsText {
		base.Kind = store.KindText
		base.Content = t.Text
		return base, nil
	}

	if b.mode == store.ModeXML && (t.Tag == "script" || t.Tag == "style") {
		// script/style are raw-text elements only in HTML; in XML mode
		// they are ordinary elements.
		base.Kind = store.KindElement
		base.Namespace = t.Namespace
		base.Tag = t.Tag
		base.Attrs = append([]store.Attr(nil), t.Attrs...)
		return base, nil
	}

	switch t.Tag {
	case "":
		return store.Node{}, &store.MalformedTree{Reason: "element tuple has empty tag"}
	case TagDoctype:
		base.Kind = store.KindDoctype
		for _, a := range t.Attrs {
			switch a.Name {
			case "name":
				base.Content = a.Value
			case "public":
				base.PublicID = a.Value
			case "system":
				base.SystemID = a.Value
			}
		}
		return base, nil
	case TagComment:
		base.Kind = store.KindComment
		base.Content = soleText(t)
		return base, nil
	case TagPI:
		base.Kind = store.KindProcessingInstruction
		for _, a := range t.Attrs {
			if a.Name == "target" {
				base.Target = a.Value
			}
		}
		base.Content = soleText(t)
		return base, nil
	case TagCDATA:
		base.Kind = store.KindData
		base.DataSubtype = store.DataCDATA
		base.Content = soleText(t)
		return base, nil
	case "script":
		base.Kind = store.KindData
		base.DataSubtype = store.DataScript
		base.Content = soleText(t)
		base.Tag = normalizeTag(t.Tag, b.mode)
		base.Namespace = t.Namespace
		base.Attrs = append([]store.Attr(nil), t.Attrs...)
		return base, nil
	case "style":
		base.Kind = store.KindData
		base.DataSubtype = store.DataStyle
		base.Content = soleText(t)
		base.Tag = normalizeTag(t.Tag, b.mode)
		base.Namespace = t.Namespace
		base.Attrs = append([]store.Attr(nil), t.Attrs...)
		return base, nil
	default:
		base.Kind = store.KindElement
		base.Namespace = t.Namespace
		base.Tag = normalizeTag(t.Tag, b.mode)
		base.Attrs = append([]store.Attr(nil), t.Attrs...)
		return base, nil
	}
}

// soleText returns the concatenated text of t's children, the convention
// used by Comment/ProcessingInstruction/CDATA/script/style tuples, whose
// content lives in a text child rather than a struct field.
func soleText(t Tuple) string {
	var out string
	for _, c := range t.Children {
		if c.IsText {
			out += c.Text
		}
	}
	return out
}

func normalizeTag(tag string, mode store.Mode) string {
	if mode == store.ModeHTML {
		return toLowerASCII(tag)
	}
	return tag
}

func toLowerASCII(s string) string {
	out := []byte(s)
	changed := false
	for i, c := range out {
		if 'A' <= c && c <= 'Z' {
			out[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(out)
}
