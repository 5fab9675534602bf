package compat

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// XPathOracle runs expr against markup using antchfx/htmlquery (backed by
// antchfx/xpath) and returns one OracleMatch per matched node in document
// order.
func XPathOracle(markup, expr string) ([]OracleMatch, error) {
	doc, err := htmlquery.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	nodes, err := htmlquery.QueryAll(doc, expr)
	if err != nil {
		return nil, err
	}
	out := make([]OracleMatch, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, OracleMatch{
			Tag:       nodeTag(n),
			OuterHTML: htmlquery.OutputHTML(n, true),
			Text:      strings.TrimSpace(htmlquery.InnerText(n)),
		})
	}
	return out, nil
}

func nodeTag(n *html.Node) string {
	if n.Type == html.ElementNode {
		return n.Data
	}
	return ""
}
