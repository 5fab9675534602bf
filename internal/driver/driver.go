// Package driver implements the selection engine that walks a Queryable
// with one or more compiled selectors and folds the matches into an
// Accumulator. internal/css's Selection and internal/xpath's Compiled
// both already expose the Select(doc, context) contract this package
// consumes; the driver adds nothing selector-specific, only the
// queryable/accumulator plumbing around it.
package driver

import (
	"github.com/arjunvale/domselect/internal/extract"
	"github.com/arjunvale/domselect/internal/store"
)

// Selectable is anything that can evaluate against a document from a
// set of anchor root ids (store.VirtualRoot for the whole document, or a
// real node id to restrict evaluation to its subtree):
// internal/css.Selection and *internal/xpath.Compiled both satisfy this
// structurally.
type Selectable interface {
	Select(doc *store.Document, context []int) ([]int, error)
}

// Context carries the per-selection state Select needs beyond the
// queryable and selectors. The driver never mutates a caller's Context
// in place — Select takes it by value.
type Context struct {
	Accumulator Accumulator
}

// All walks q with every selector in selectors and returns every
// matching node exactly once, in the order produced by unionSelectors.
func All(q Queryable, selectors []Selectable) ([]extract.Result, error) {
	doc, context, err := q.resolve()
	if err != nil {
		return nil, err
	}
	ids, err := unionSelectors(doc, selectors, context)
	if err != nil {
		return nil, err
	}
	out := make([]extract.Result, len(ids))
	for i, id := range ids {
		out[i] = extract.New(doc, id)
	}
	return out, nil
}

// One returns the first match All(q, selectors) would return, and
// whether there was one.
func One(q Queryable, selectors []Selectable) (extract.Result, bool, error) {
	results, err := All(q, selectors)
	if err != nil {
		return extract.Result{}, false, err
	}
	if len(results) == 0 {
		return extract.Result{}, false, nil
	}
	return results[0], true, nil
}

// Select walks q with selectors, folding every match into ctx's
// Accumulator in order, stopping early once the accumulator reports
// Complete, and returns its final Value. Fails with NoAccumulator if ctx
// carries none.
func Select(q Queryable, selectors []Selectable, ctx Context) (any, error) {
	if ctx.Accumulator == nil {
		return nil, &NoAccumulator{}
	}
	doc, context, err := q.resolve()
	if err != nil {
		return nil, err
	}
	ids, err := unionSelectors(doc, selectors, context)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		ctx.Accumulator.Include(extract.New(doc, id))
		if ctx.Accumulator.Complete() {
			break
		}
	}
	return ctx.Accumulator.Value(), nil
}

// unionSelectors evaluates every selector against context in turn and
// concatenates their matches, deduplicated by id, keeping each id's
// first-seen position across the concatenation. When context holds real
// node ids (a Result-anchored query), only matches inside those nodes'
// subtrees are kept, whichever combinator or axis reached them.
func unionSelectors(doc *store.Document, selectors []Selectable, context []int) ([]int, error) {
	var within map[int]bool
	if len(context) == 1 && context[0] != store.VirtualRoot {
		sub, err := doc.WalkFrom(context[0])
		if err != nil {
			return nil, err
		}
		within = make(map[int]bool, len(sub))
		for _, id := range sub {
			within[id] = true
		}
	}
	seen := map[int]bool{}
	var out []int
	for _, sel := range selectors {
		ids, err := sel.Select(doc, context)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if !seen[id] && (within == nil || within[id]) {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out, nil
}
