package extract

import "github.com/arjunvale/domselect/internal/store"

// Data returns the content of Data-kind nodes (script/style, or a bare
// CDATA section) and CDATA-marked comments reachable from the node,
// concatenated in document order with whitespace collapsed.
//
// CDATA detection is by substring markers alone — a comment whose
// content begins with "[CDATA[" and ends with "]]" contributes its
// interior — matching the upstream HTML5 parser's convention of lowering
// CDATA sections into comments. This does not validate marker nesting:
// an unterminated "[CDATA[" followed by "]]" elsewhere in the same
// comment is treated as CDATA regardless.
func (r Result) Data() string {
	var parts []string
	var walk func(id int)
	walk = func(id int) {
		n := r.doc.MustGet(id)
		switch n.Kind {
		case store.KindData:
			parts = append(parts, collapseWhitespace(n.Content))
		case store.KindComment:
			if inner, ok := cdataInterior(n.Content); ok {
				parts = append(parts, collapseWhitespace(inner))
			}
		case store.KindElement:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(r.id)
	return join(parts)
}

func join(parts []string) string {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	b := make([]byte, 0, total)
	for _, p := range parts {
		b = append(b, p...)
	}
	return string(b)
}

const (
	cdataPrefix = "[CDATA["
	cdataSuffix = "]]"
)

func cdataInterior(content string) (string, bool) {
	if len(content) < len(cdataPrefix)+len(cdataSuffix) {
		return "", false
	}
	if content[:len(cdataPrefix)] != cdataPrefix {
		return "", false
	}
	if content[len(content)-len(cdataSuffix):] != cdataSuffix {
		return "", false
	}
	return content[len(cdataPrefix) : len(content)-len(cdataSuffix)], true
}
