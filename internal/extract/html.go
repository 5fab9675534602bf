package extract

import (
	"strings"

	"github.com/arjunvale/domselect/internal/store"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// HTML serializes the node and its descendants back to markup: double-
// quoted, &-escaped attribute values, void elements with no closing tag,
// <, >, & escaped in text, CDATA/comment/doctype/PI in their literal
// forms.
func (r Result) HTML() string {
	var b strings.Builder
	writeNode(&b, r.doc, r.id)
	return b.String()
}

func writeNode(b *strings.Builder, doc *store.Document, id int) {
	n := doc.MustGet(id)
	switch n.Kind {
	case store.KindText:
		b.WriteString(escapeText(n.Content))
	case store.KindComment:
		b.WriteString("<!--")
		b.WriteString(n.Content)
		b.WriteString("-->")
	case store.KindDoctype:
		b.WriteString("<!DOCTYPE ")
		b.WriteString(n.Content)
		if n.PublicID != "" {
			b.WriteString(` PUBLIC "`)
			b.WriteString(n.PublicID)
			b.WriteByte('"')
		}
		if n.SystemID != "" {
			if n.PublicID == "" {
				b.WriteString(" SYSTEM")
			}
			b.WriteString(` "`)
			b.WriteString(n.SystemID)
			b.WriteByte('"')
		}
		b.WriteByte('>')
	case store.KindProcessingInstruction:
		b.WriteString("<?")
		b.WriteString(n.Target)
		b.WriteByte(' ')
		b.WriteString(n.Content)
		b.WriteString("?>")
	case store.KindData:
		if n.DataSubtype == store.DataCDATA {
			b.WriteString("<![CDATA[")
			b.WriteString(n.Content)
			b.WriteString("]]>")
			return
		}
		writeTag(b, n, false)
		b.WriteString(n.Content)
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	default: // Element
		if voidElements[n.Tag] {
			writeTag(b, n, true)
			return
		}
		writeTag(b, n, false)
		for _, c := range n.Children {
			writeNode(b, doc, c)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}

func writeTag(b *strings.Builder, n *store.Node, selfClosing bool) {
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
