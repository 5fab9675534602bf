package extract

import "strings"

// Dataset returns the element's data-* attributes as a map keyed by the
// lowerCamelCase form of the hyphen-separated suffix after "data-"
// ("data-x-val" → "xVal"), and whether the node is an element. A suffix
// containing anything other than lowercase letters, digits, or hyphens
// is not a valid dataset key and its attribute is ignored.
func (r Result) Dataset() (map[string]string, bool) {
	n := r.node()
	if !n.IsElement() {
		return nil, false
	}
	out := map[string]string{}
	for _, a := range n.Attrs {
		suffix, ok := strings.CutPrefix(a.Name, "data-")
		if !ok || !validDatasetSuffix(suffix) {
			continue
		}
		out[lowerCamel(suffix)] = a.Value
	}
	return out, true
}

func validDatasetSuffix(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

func lowerCamel(hyphenated string) string {
	segs := strings.Split(hyphenated, "-")
	var b strings.Builder
	for i, seg := range segs {
		if seg == "" {
			continue
		}
		if i == 0 {
			b.WriteString(seg)
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}
