// Package css implements the CSS front-end: a tokenizer and
// recursive-descent parser that compile a CSS selector group into the
// selector algebra (internal/selector, internal/matcher), plus the
// forward-feed evaluation procedure for walking a compiled chain over a
// document. It is the driver's CSS-side implementation of the generic
// "compile once, select many" contract.
package css

import (
	"github.com/arjunvale/domselect/internal/selector"
	"github.com/arjunvale/domselect/internal/store"
)

// Selection is a compiled, comma-separated CSS selector group: one Chain
// per alternative. Select unions the ids each Chain matches.
type Selection []Chain

// Compile parses a comma-separated CSS selector group into a Selection.
func Compile(sel string) (Selection, error) {
	tokens, err := lex(sel)
	if err != nil {
		return nil, err
	}
	group, err := parse(tokens)
	if err != nil {
		return nil, err
	}
	for _, chain := range group {
		for _, stage := range chain {
			if err := stage.Validate(); err != nil {
				return nil, err
			}
		}
	}
	return Selection(group), nil
}

// MustCompile is Compile but panics on error, for selectors fixed in Go
// source (e.g. internal call sites, table-driven tests).
func MustCompile(sel string) Selection {
	group, err := Compile(sel)
	if err != nil {
		panic(err)
	}
	return group
}

// Select evaluates every chain in the group against context — one or
// more anchor root ids a query starts from: store.VirtualRoot for a
// whole-document query, or a Result's own node id to restrict the walk
// to its subtree — and unions the matches in document order, deduplicated.
func (s Selection) Select(doc *store.Document, context []int) ([]int, error) {
	candidates, err := expandRoots(doc, context)
	if err != nil {
		return nil, err
	}
	seen := map[int]bool{}
	var out []int
	for _, chain := range s {
		ids, err := evalChain(doc, chain, candidates)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return sortDocOrder(doc, out), nil
}

// expandRoots turns a set of anchor root ids into the flat candidate
// pool every chain's first stage filters: store.VirtualRoot expands to
// the whole document, any real id expands to itself plus its
// descendants.
func expandRoots(doc *store.Document, roots []int) ([]int, error) {
	seen := map[int]bool{}
	var out []int
	for _, r := range roots {
		if r == store.VirtualRoot {
			for _, id := range doc.Walk() {
				if !seen[id] {
					seen[id] = true
					out = append(out, id)
				}
			}
			continue
		}
		ids, err := doc.WalkFrom(r)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out, nil
}

// evalChain applies one Chain's stages left to right over the starting
// candidate set: match the current stage against every candidate, then,
// unless it's the chain's last stage, use its combinator to compute the
// next stage's candidates from every match.
func evalChain(doc *store.Document, chain Chain, context []int) ([]int, error) {
	candidates := context
	var matched []int
	for i, stage := range chain {
		matched = nil
		for _, c := range candidates {
			ok, err := selector.Accepts(stage, doc, c, nil)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = append(matched, c)
			}
		}
		if i == len(chain)-1 {
			return matched, nil
		}
		var next []int
		seen := map[int]bool{}
		for _, m := range matched {
			ns, err := selector.Candidates(doc, stage.Combinator(), m)
			if err != nil {
				return nil, err
			}
			for _, n := range ns {
				if !seen[n] {
					seen[n] = true
					next = append(next, n)
				}
			}
		}
		candidates = next
	}
	return matched, nil
}

func sortDocOrder(doc *store.Document, ids []int) []int {
	order := make(map[int]int, doc.Len())
	for i, id := range doc.Walk() {
		order[id] = i
	}
	out := append([]int(nil), ids...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && order[out[j-1]] > order[out[j]]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
