package domselect

import (
	"io"

	"github.com/arjunvale/domselect/internal/build"
	"github.com/arjunvale/domselect/internal/css"
	"github.com/arjunvale/domselect/internal/driver"
	"github.com/arjunvale/domselect/internal/extract"
	"github.com/arjunvale/domselect/internal/store"
	"github.com/arjunvale/domselect/internal/xpath"
)

// Document is an immutable, parsed HTML or XML document ready for
// selection. Build one with Parse.
type Document struct {
	doc *store.Document
}

// Parse reads and builds a Document from r, per the mode Options
// request (HTML by default).
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	var doc *store.Document
	var err error
	if cfg.Mode == store.ModeXML {
		doc, err = build.BuildFromXML(r)
	} else {
		doc, err = build.BuildFromHTML(r)
	}
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// Selector is a compiled CSS or XPath selector, ready to evaluate
// against a Document or a Result.
type Selector struct {
	sel driver.Selectable
}

// CSS compiles a comma-separated CSS selector group.
func CSS(selector string) (Selector, error) {
	compiled, err := css.Compile(selector)
	if err != nil {
		return Selector{}, err
	}
	return Selector{sel: compiled}, nil
}

// XPath compiles an XPath expression.
func XPath(expr string) (Selector, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return Selector{}, err
	}
	return Selector{sel: compiled}, nil
}

func selectables(selectors []Selector) []driver.Selectable {
	out := make([]driver.Selectable, len(selectors))
	for i, s := range selectors {
		out[i] = s.sel
	}
	return out
}

// All returns every node any of selectors matches against the whole
// document: each selector's matches in document order, concatenated in
// argument order, with a node matched again by a later selector kept at
// its first position.
func (d *Document) All(selectors ...Selector) ([]Result, error) {
	return wrapAll(driver.All(driver.Doc(d.doc), selectables(selectors)))
}

// One returns the first node any of selectors would match, per All's
// ordering.
func (d *Document) One(selectors ...Selector) (Result, bool, error) {
	return wrapOne(driver.One(driver.Doc(d.doc), selectables(selectors)))
}

// Select folds every match into ctx's Accumulator and returns its final
// value. It fails with an error if ctx carries no Accumulator.
func (d *Document) Select(ctx Context, selectors ...Selector) (any, error) {
	dctx, err := toDriverContext(ctx)
	if err != nil {
		return nil, err
	}
	return driver.Select(driver.Doc(d.doc), selectables(selectors), dctx)
}

// Result is a handle to one matched node, with extraction operations.
type Result struct {
	r extract.Result
}

// All restricts the walk to r's own subtree (combinators apply as if
// the subtree root had no parent) and returns every match.
func (r Result) All(selectors ...Selector) ([]Result, error) {
	return wrapAll(driver.All(driver.FromResult(r.r), selectables(selectors)))
}

// One is All's first result.
func (r Result) One(selectors ...Selector) (Result, bool, error) {
	return wrapOne(driver.One(driver.FromResult(r.r), selectables(selectors)))
}

// Select is Document.Select, anchored at r's subtree.
func (r Result) Select(ctx Context, selectors ...Selector) (any, error) {
	dctx, err := toDriverContext(ctx)
	if err != nil {
		return nil, err
	}
	return driver.Select(driver.FromResult(r.r), selectables(selectors), dctx)
}

// Equal reports whether r and other identify the same node of the same
// Document.
func (r Result) Equal(other Result) bool { return r.r.Equal(other.r) }

// Attr returns the first value of the named attribute, and whether the
// node carries it.
func (r Result) Attr(name string) (string, bool) { return r.r.Attr(name) }

// Attrs returns the node's ordered attribute list, and whether the node
// is element-like.
func (r Result) Attrs() ([]Attr, bool) {
	attrs, ok := r.r.Attrs()
	if !ok {
		return nil, false
	}
	out := make([]Attr, len(attrs))
	for i, a := range attrs {
		out[i] = Attr{Name: a.Name, Value: a.Value}
	}
	return out, true
}

// Tag returns the element's tag name, and whether the node is element-like.
func (r Result) Tag() (string, bool) { return r.r.Tag() }

// Text is the node's text content, descendants included, whitespace
// collapsed.
func (r Result) Text() string { return r.r.Text() }

// OwnText is the node's direct text children only.
func (r Result) OwnText() string { return r.r.OwnText() }

// HTML serializes the node and its subtree back to markup.
func (r Result) HTML() string { return r.r.HTML() }

// Data returns the node's script/style/CDATA content.
func (r Result) Data() string { return r.r.Data() }

// Dataset returns the element's data-* attributes as a lowerCamelCase
// map, and whether the node is element-like.
func (r Result) Dataset() (map[string]string, bool) { return r.r.Dataset() }

// Tree returns the tuple-tree representation of the node's subtree.
func (r Result) Tree() Tuple { return wrapTuple(r.r.Tree()) }

func wrapAll(results []extract.Result, err error) ([]Result, error) {
	if err != nil {
		return nil, err
	}
	out := make([]Result, len(results))
	for i, res := range results {
		out[i] = Result{r: res}
	}
	return out, nil
}

func wrapOne(res extract.Result, ok bool, err error) (Result, bool, error) {
	if err != nil || !ok {
		return Result{}, ok, err
	}
	return Result{r: res}, true, nil
}
