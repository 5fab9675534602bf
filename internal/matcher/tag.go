// Package matcher implements the primitive matchers CSS selectors and
// XPath node tests compile down to: element-by-tag, attribute, id/class
// sugar, structural pseudo-classes, node-kind, and root — plus the
// Compound wrapper that attaches a combinator and co-required filters to
// a base matcher.
package matcher

import (
	"github.com/arjunvale/domselect/internal/selector"
	"github.com/arjunvale/domselect/internal/store"
)

// Tag matches an element by exact tag name, case-insensitively in HTML
// documents and case-sensitively in XML documents. An empty Name matches
// any element (the "*" wildcard).
type Tag struct {
	Name string
}

func (m Tag) Match(doc *store.Document, node int, _ *selector.Context) (bool, error) {
	n, err := doc.Get(node)
	if err != nil {
		return false, err
	}
	if !n.IsElement() {
		return false, nil
	}
	if m.Name == "" || m.Name == "*" {
		return true, nil
	}
	if doc.Mode() == store.ModeHTML {
		return equalFoldASCII(n.Tag, m.Name), nil
	}
	return n.Tag == m.Name, nil
}

func (m Tag) Combinator() selector.Combinator { return selector.NoCombinator }
func (m Tag) Filters() []selector.Selector     { return nil }
func (m Tag) Validate() error                  { return nil }

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
