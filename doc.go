/*
Package domselect extracts structured data out of HTML or XML documents
using CSS or XPath selectors, without driving a browser or a DOM
mutation API — it builds a read-only document once, evaluates selectors
against it, and hands back Results you can pull text, attributes, or
markup out of.

Basic Usage:

	import "github.com/arjunvale/domselect"

	doc, err := domselect.Parse(strings.NewReader(html))
	if err != nil {
	    // handle error
	}

	sel, err := domselect.CSS("#main p")
	if err != nil {
	    // handle error
	}

	results, err := doc.All(sel)
	for _, r := range results {
	    fmt.Println(r.Text())
	}

XPath selectors work the same way:

	sel, err := domselect.XPath("//li[2]")
	result, ok, err := doc.One(sel)

Advanced Usage with Options:

	doc, err := domselect.Parse(r, domselect.WithXMLMode())

Features:

  - CSS selector groups: tag/class/id/attribute/pseudo-class selectors,
    descendant/child/sibling combinators, comma-separated alternatives.
  - A practical XPath subset: axes, node tests, predicates, the core
    function and operator set.
  - Result extraction: text, own text, attributes, a dataset map, HTML
    serialization, and a tuple-tree view of the matched subtree.
  - Accumulator-driven Select for custom result folding beyond All/One.
*/
package domselect
