package extract

import (
	"regexp"
	"strings"

	"github.com/arjunvale/domselect/internal/store"
	"github.com/arjunvale/domselect/internal/textutil"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// collapseWhitespace normalizes s to NFC and folds every run of
// space/tab/CR/LF into a single space, trimming the ends.
func collapseWhitespace(s string) string {
	s = norm.NFC.String(s)
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Text concatenates the text content of the node and every descendant,
// with whitespace runs collapsed to a single space and the ends trimmed.
func (r Result) Text() string {
	return collapseWhitespace(textutil.Concat(r.doc, r.id))
}

// OwnText concatenates the literal content of the node's direct text
// children only, separated by a single space, trimmed. Descendant text
// nested under a child element is excluded.
func (r Result) OwnText() string {
	n := r.node()
	var parts []string
	for _, c := range n.Children {
		cn := r.doc.MustGet(c)
		if cn.Kind == store.KindText {
			parts = append(parts, cn.Content)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
