// Package store implements the flat, id-indexed document representation
// every selector and extraction operation in domselect reads from. A
// Document is built once (see internal/build) and is immutable afterward;
// there is no node-deletion or mutation API.
package store

// HTML or XML: governs case sensitivity for tag and attribute name
// comparisons throughout matching and extraction.
type Mode int

const (
	ModeHTML Mode = iota
	ModeXML
)

// VirtualRoot is the sentinel context id representing the document
// itself: the implicit ancestor of every RootIDs() element. The document
// model has no real id for "the document node," so a selector evaluated
// against the whole document is seeded with this id rather than a real
// one; it is never a valid node id (those are all >= 0). Both
// internal/css and internal/xpath's Select recognize it as "start from
// the whole document" rather than a specific anchor node.
const VirtualRoot = -1

// Document is a read-only table of Nodes addressable by a stable,
// contiguous integer id, plus the ordered list of top-level root ids.
// It is safe for concurrent reads from multiple goroutines once built.
type Document struct {
	mode  Mode
	nodes []Node
	roots []int
}

// Mode reports whether the document was built in HTML or XML mode.
func (d *Document) Mode() Mode { return d.mode }

// Len returns N, the number of nodes, i.e. the exclusive upper bound of
// valid ids.
func (d *Document) Len() int { return len(d.nodes) }

// RootIDs returns the ordered list of top-level node ids.
func (d *Document) RootIDs() []int {
	out := make([]int, len(d.roots))
	copy(out, d.roots)
	return out
}

// Get returns the node record for id, or UnknownNode if id is out of range.
func (d *Document) Get(id int) (*Node, error) {
	if id < 0 || id >= len(d.nodes) {
		return nil, &UnknownNode{ID: id}
	}
	return &d.nodes[id], nil
}

// MustGet is Get without the error return, for call sites that have
// already validated id came from this Document (e.g. from Children or
// Walk). A bad id here is the UnknownNode invariant violation and panics.
func (d *Document) MustGet(id int) *Node {
	n, err := d.Get(id)
	if err != nil {
		panic(err)
	}
	return n
}

// Children returns the ordered child ids of id. Non-element nodes have no
// children.
func (d *Document) Children(id int) ([]int, error) {
	n, err := d.Get(id)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(n.Children))
	copy(out, n.Children)
	return out, nil
}

// Descendants returns every strict descendant of id, in document order.
func (d *Document) Descendants(id int) ([]int, error) {
	n, err := d.Get(id)
	if err != nil {
		return nil, err
	}
	var out []int
	d.appendDescendants(n, &out)
	return out, nil
}

func (d *Document) appendDescendants(n *Node, out *[]int) {
	for _, c := range n.Children {
		*out = append(*out, c)
		d.appendDescendants(&d.nodes[c], out)
	}
}

// Ancestors returns the chain from id's immediate parent up to (and
// including) its root, nearest first.
func (d *Document) Ancestors(id int) ([]int, error) {
	n, err := d.Get(id)
	if err != nil {
		return nil, err
	}
	var out []int
	for !n.IsRoot() {
		out = append(out, n.Parent)
		n = &d.nodes[n.Parent]
	}
	return out, nil
}

// Siblings returns the ordered child list of id's parent, including id
// itself. Roots have no siblings list (it is empty).
func (d *Document) Siblings(id int) ([]int, error) {
	n, err := d.Get(id)
	if err != nil {
		return nil, err
	}
	if n.IsRoot() {
		return nil, nil
	}
	return d.Children(n.Parent)
}

// FollowingSiblings returns the ids after id in its sibling list,
// exclusive of id.
func (d *Document) FollowingSiblings(id int) ([]int, error) {
	sibs, err := d.Siblings(id)
	if err != nil {
		return nil, err
	}
	for i, s := range sibs {
		if s == id {
			return sibs[i+1:], nil
		}
	}
	return nil, nil
}

// PrecedingSiblings returns the ids before id in its sibling list,
// exclusive of id, nearest first (reverse document order).
func (d *Document) PrecedingSiblings(id int) ([]int, error) {
	sibs, err := d.Siblings(id)
	if err != nil {
		return nil, err
	}
	for i, s := range sibs {
		if s == id {
			out := make([]int, i)
			for j := 0; j < i; j++ {
				out[j] = sibs[i-1-j]
			}
			return out, nil
		}
	}
	return nil, nil
}

// Walk returns every id in the document, in document order: depth-first
// pre-order over RootIDs in root-list order.
func (d *Document) Walk() []int {
	out := make([]int, 0, len(d.nodes))
	for _, r := range d.roots {
		out = append(out, r)
		d.appendDescendants(&d.nodes[r], &out)
	}
	return out
}

// WalkFrom restricts Walk to id's own subtree: id followed by its
// descendants in document order. Used when a Queryable is a prior Result,
// anchoring the walk at that node.
func (d *Document) WalkFrom(id int) ([]int, error) {
	n, err := d.Get(id)
	if err != nil {
		return nil, err
	}
	out := []int{id}
	d.appendDescendants(n, &out)
	return out, nil
}
