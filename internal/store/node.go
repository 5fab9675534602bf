package store

import "strings"

// Kind tags the variant a Node carries. Every operation that needs to
// branch on node shape switches on Kind rather than using a type
// assertion, since all variants live in the same flat Node record.
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindData
	KindComment
	KindDoctype
	KindProcessingInstruction
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindData:
		return "data"
	case KindComment:
		return "comment"
	case KindDoctype:
		return "doctype"
	case KindProcessingInstruction:
		return "pi"
	default:
		return "unknown"
	}
}

// DataSubtype distinguishes the three kinds of raw content grouped
// under Kind Data.
type DataSubtype int

const (
	DataScript DataSubtype = iota
	DataStyle
	DataCDATA
)

// Attr is a single (name, value) pair. Attribute lists preserve source
// order and duplicates, so Attr is a slice element, never a map value.
type Attr struct {
	Name  string
	Value string
}

// Node is the flat record every document id maps to. Only the fields
// relevant to Kind are populated; the rest are left at their zero value.
// There is no back-pointer to the owning Document — traversal operations
// take the Document explicitly.
type Node struct {
	ID     int
	Parent int  // -1 for roots
	Kind   Kind

	// Element
	Namespace string
	Tag       string
	Attrs     []Attr
	Children  []int

	// Text / Comment / ProcessingInstruction content, or Data content.
	Content string

	// Data
	DataSubtype DataSubtype

	// Doctype
	PublicID string
	SystemID string

	// ProcessingInstruction
	Target string
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.Parent < 0 }

// IsElement reports whether n participates in the element hierarchy for
// tag/attribute matching and sibling-counting purposes. True Elements
// qualify, and so do script/style Data nodes: the builder folds a whole
// <script>/<style> tag into a single Data-kind node carrying its own Tag
// and Attrs (see internal/build), so it still needs to be selectable by
// tag name or by an attribute like its id. CDATA Data nodes have no Tag
// and never qualify.
func (n *Node) IsElement() bool {
	return n.Kind == KindElement || (n.Kind == KindData && n.Tag != "")
}

// Attr returns the first attribute matching name under the given
// case-sensitivity policy, and whether it was found.
func (n *Node) Attr(name string, caseSensitive bool) (string, bool) {
	for _, a := range n.Attrs {
		if caseSensitive {
			if a.Name == name {
				return a.Value, true
			}
		} else if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}
