package driver

import (
	"io"

	"github.com/arjunvale/domselect/internal/build"
	"github.com/arjunvale/domselect/internal/extract"
	"github.com/arjunvale/domselect/internal/store"
)

// Queryable is anything the driver can walk: raw markup (parsed on
// demand, HTML mode), a built document, or a prior Result (which
// restricts the walk to that node's own subtree, the combinators
// applying as if the subtree root had no parent). resolve returns the
// document plus the anchor root id(s) a Selectable starts from —
// store.VirtualRoot for the whole document, or a real node id to
// restrict evaluation to its subtree; internal/css and internal/xpath's
// Select both expand this the same way.
type Queryable interface {
	resolve() (*store.Document, []int, error)
}

type markupQueryable struct{ r io.Reader }

// Markup builds a Queryable from raw HTML read from r, parsed in HTML
// mode each time it is resolved; nothing is cached, and the first resolve
// reads r to its end.
func Markup(r io.Reader) Queryable { return markupQueryable{r: r} }

func (q markupQueryable) resolve() (*store.Document, []int, error) {
	doc, err := build.BuildFromHTML(q.r)
	if err != nil {
		return nil, nil, err
	}
	return doc, []int{store.VirtualRoot}, nil
}

type docQueryable struct{ doc *store.Document }

// Doc builds a Queryable over an already-built document, walking it in
// its entirety.
func Doc(doc *store.Document) Queryable { return docQueryable{doc: doc} }

func (q docQueryable) resolve() (*store.Document, []int, error) {
	return q.doc, []int{store.VirtualRoot}, nil
}

type resultQueryable struct{ result extract.Result }

// FromResult builds a Queryable anchored at a prior Result's node,
// restricting the walk to that node and its descendants.
func FromResult(r extract.Result) Queryable { return resultQueryable{result: r} }

func (q resultQueryable) resolve() (*store.Document, []int, error) {
	return q.result.Doc(), []int{q.result.ID()}, nil
}
