// Package compat wraps two independent reference implementations —
// goquery/cascadia for CSS and antchfx/htmlquery+antchfx/xpath for XPath
// — used only to cross-check internal/css and internal/xpath in tests
// and the CLI's -verify flag. Nothing in the production selection path
// (internal/driver, internal/css, internal/xpath) imports this package:
// a bug shared between an oracle and the engine it checks would
// otherwise cancel out in the comparison.
package compat

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// OracleMatch is the reference implementations' common result shape,
// comparable against this repository's own Result.Tag/HTML/Text.
type OracleMatch struct {
	Tag       string
	OuterHTML string
	Text      string
}

// CSSOracle runs selector against markup using goquery (backed by
// cascadia, goquery's own CSS engine) and returns one OracleMatch per
// matched element in document order.
func CSSOracle(markup, selector string) ([]OracleMatch, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	sel := doc.Find(selector)
	out := make([]OracleMatch, 0, sel.Length())
	var oracleErr error
	sel.Each(func(_ int, s *goquery.Selection) {
		if oracleErr != nil {
			return
		}
		outer, err := goquery.OuterHtml(s)
		if err != nil {
			oracleErr = err
			return
		}
		out = append(out, OracleMatch{
			Tag:       goquery.NodeName(s),
			OuterHTML: outer,
			Text:      strings.TrimSpace(s.Text()),
		})
	})
	if oracleErr != nil {
		return nil, oracleErr
	}
	return out, nil
}
