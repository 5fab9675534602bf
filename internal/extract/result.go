// Package extract implements the extraction operations available on a
// matched node: attribute/text/HTML access plus the tuple-tree and
// dataset views, grounded on the same flat store.Document representation
// the selector engine walks.
package extract

import "github.com/arjunvale/domselect/internal/store"

// Result is a handle to a single matched node: a document plus the id of
// one of its nodes. Results never outlive the document they were taken
// from — callers must keep doc alive for as long as a Result derived
// from it is in use.
type Result struct {
	doc *store.Document
	id  int
}

// New wraps (doc, id) as a Result.
func New(doc *store.Document, id int) Result {
	return Result{doc: doc, id: id}
}

// Doc returns the Result's document.
func (r Result) Doc() *store.Document { return r.doc }

// ID returns the Result's node id.
func (r Result) ID() int { return r.id }

// Equal reports whether r and other are structurally the same result:
// same document and same node id.
func (r Result) Equal(other Result) bool {
	return r.doc == other.doc && r.id == other.id
}

func (r Result) node() *store.Node { return r.doc.MustGet(r.id) }
