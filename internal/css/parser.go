package css

import (
	"github.com/arjunvale/domselect/internal/matcher"
	"github.com/arjunvale/domselect/internal/selector"
)

// Chain is one comma-separated alternative of a compiled selector group:
// an ordered list of compound-selector stages, left to right, each
// carrying the combinator that relates it to the next stage. The last
// stage's Combinator is always NoCombinator.
type Chain []selector.Selector

var combinatorByToken = map[string]selector.Combinator{
	">": selector.Children,
	"+": selector.NextSibling,
	"~": selector.NextSiblings,
}

// parse turns a token stream into a selector group: one Chain per
// comma-separated alternative.
func parse(tokens []token) ([]Chain, error) {
	p := &parser{tokens: tokens}
	group, err := p.parseGroup()
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tEOF {
		return nil, &Parse{Msg: "unexpected trailing input"}
	}
	return group, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) cur() token  { return p.tokens[p.pos] }
func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) parseGroup() ([]Chain, error) {
	var group []Chain
	for {
		chain, err := p.parseChain()
		if err != nil {
			return nil, err
		}
		group = append(group, chain)
		if p.cur().kind == tComma {
			p.advance()
			continue
		}
		return group, nil
	}
}

func (p *parser) parseChain() (Chain, error) {
	var chain Chain
	first, err := p.parseCompound()
	if err != nil {
		return nil, err
	}
	chain = append(chain, first)

	for {
		t := p.cur()
		switch {
		case t.kind == tComma || t.kind == tEOF || t.kind == tRParen:
			return chain, nil
		case t.kind == tCombinator:
			p.advance()
			comb, ok := combinatorByToken[t.text]
			if !ok {
				return nil, &Parse{Msg: "unknown combinator " + t.text}
			}
			next, err := p.parseCompound()
			if err != nil {
				return nil, err
			}
			chain[len(chain)-1] = withCombinator(chain[len(chain)-1], comb)
			chain = append(chain, next)
		case t.ws:
			// Whitespace with no explicit combinator token is the
			// descendant combinator.
			next, err := p.parseCompound()
			if err != nil {
				return nil, err
			}
			chain[len(chain)-1] = withCombinator(chain[len(chain)-1], selector.Descendant)
			chain = append(chain, next)
		default:
			return nil, &Parse{Msg: "unexpected token in selector chain"}
		}
	}
}

func withCombinator(s selector.Selector, comb selector.Combinator) selector.Selector {
	c, ok := s.(matcher.Compound)
	if !ok {
		c = matcher.Compound{Base: s}
	}
	c.Comb = comb
	return c
}

// parseCompound parses one type selector (or "*") followed by any number
// of id/class/attribute/pseudo-class simple selectors.
func (p *parser) parseCompound() (selector.Selector, error) {
	var base selector.Selector
	consumed := false
	switch t := p.cur(); {
	case t.kind == tIdent:
		p.advance()
		base = matcher.Tag{Name: t.text}
		consumed = true
	case t.kind == tStar:
		p.advance()
		base = matcher.Tag{Name: "*"}
		consumed = true
	default:
		base = matcher.Tag{Name: "*"}
	}

	var extra []selector.Selector
	for {
		t := p.cur()
		// A leading-whitespace token only marks the start of a new
		// compound once this call has already consumed something —
		// on the first token, ws is leftover from whatever consumed
		// the preceding combinator/comma/paren, not a real boundary.
		if (t.ws && consumed) || t.kind == tEOF || t.kind == tComma ||
			t.kind == tCombinator || t.kind == tRParen {
			break
		}
		switch t.kind {
		case tHash:
			p.advance()
			extra = append(extra, matcher.ID(t.text))
		case tClass:
			p.advance()
			extra = append(extra, matcher.Class(t.text))
		case tLBracket:
			sel, err := p.parseAttr()
			if err != nil {
				return nil, err
			}
			extra = append(extra, sel)
		case tColon:
			sel, err := p.parsePseudo()
			if err != nil {
				return nil, err
			}
			extra = append(extra, sel)
		default:
			return nil, &Parse{Msg: "unexpected token in compound selector"}
		}
		consumed = true
	}

	if len(extra) == 0 {
		return base, nil
	}
	return matcher.Compound{Base: base, Extra: extra}, nil
}

func (p *parser) parseAttr() (selector.Selector, error) {
	p.advance() // '['
	name := p.cur()
	if name.kind != tIdent {
		return nil, &Parse{Msg: "expected attribute name"}
	}
	p.advance()

	if p.cur().kind == tRBracket {
		p.advance()
		return matcher.Attribute{Name: name.text, Op: matcher.AttrPresent}, nil
	}

	opTok := p.cur()
	if opTok.kind != tAttrOp {
		return nil, &Parse{Msg: "expected attribute operator"}
	}
	p.advance()

	valTok := p.cur()
	if valTok.kind != tIdent && valTok.kind != tString {
		return nil, &Parse{Msg: "expected attribute value"}
	}
	p.advance()

	if p.cur().kind != tRBracket {
		return nil, &Parse{Msg: "expected ]"}
	}
	p.advance()

	return matcher.Attribute{
		Name:               name.text,
		Op:                 attrOpByToken[opTok.text],
		Value:              valTok.text,
		CaseSensitiveValue: true,
	}, nil
}

var attrOpByToken = map[string]matcher.AttrOp{
	"=":  matcher.AttrEquals,
	"~=": matcher.AttrIncludesWord,
	"|=": matcher.AttrDashPrefix,
	"^=": matcher.AttrPrefix,
	"$=": matcher.AttrSuffix,
	"*=": matcher.AttrSubstring,
}

func (p *parser) parsePseudo() (selector.Selector, error) {
	p.advance() // ':'
	nameTok := p.cur()
	if nameTok.kind != tIdent {
		return nil, &Parse{Msg: "expected pseudo-class name"}
	}
	p.advance()
	name := nameTok.text

	hasArgs := p.cur().kind == tLParen
	var argText []token
	if hasArgs {
		p.advance() // '('
		depth := 1
		for {
			t := p.cur()
			if t.kind == tEOF {
				return nil, &Parse{Msg: "unterminated pseudo-class arguments"}
			}
			if t.kind == tLParen {
				depth++
			}
			if t.kind == tRParen {
				depth--
				if depth == 0 {
					p.advance()
					break
				}
			}
			argText = append(argText, t)
			p.advance()
		}
		argText = append(argText, token{kind: tEOF})
	}

	return buildPseudo(name, hasArgs, argText)
}

func buildPseudo(name string, hasArgs bool, args []token) (selector.Selector, error) {
	noArgOnly := func(s selector.Selector) (selector.Selector, error) {
		if hasArgs {
			return nil, &matcher.BadArgs{PseudoClass: name, Reason: "does not accept arguments"}
		}
		return s, nil
	}
	switch name {
	case "root":
		return noArgOnly(matcher.RootPseudo())
	case "first-child":
		return noArgOnly(matcher.FirstChild())
	case "last-child":
		return noArgOnly(matcher.LastChild())
	case "only-child":
		return noArgOnly(matcher.OnlyChild())
	case "first-of-type":
		return noArgOnly(matcher.FirstOfType())
	case "last-of-type":
		return noArgOnly(matcher.LastOfType())
	case "only-of-type":
		return noArgOnly(matcher.OnlyOfType())
	case "nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type":
		if !hasArgs || len(args) == 0 {
			return nil, &matcher.BadArgs{PseudoClass: name, Reason: "requires an nth formula"}
		}
		formula := joinTokens(args)
		a, b, err := matcher.ParseNth(formula)
		if err != nil {
			return nil, err
		}
		last := name == "nth-last-child" || name == "nth-last-of-type"
		if name == "nth-child" || name == "nth-last-child" {
			return matcher.NthChild(a, b, last), nil
		}
		return matcher.NthOfType(a, b, last), nil
	case "not":
		if !hasArgs {
			return nil, &matcher.BadArgs{PseudoClass: name, Reason: "requires an argument"}
		}
		inner, err := parseSimpleOnly(args)
		if err != nil {
			return nil, err
		}
		return matcher.Not{Inner: inner}, nil
	case "has":
		if !hasArgs {
			return nil, &matcher.BadArgs{PseudoClass: name, Reason: "requires an argument"}
		}
		inner, comb, err := parseHasArg(args)
		if err != nil {
			return nil, err
		}
		return matcher.Has{Inner: inner, Comb: comb}, nil
	default:
		return nil, &matcher.UnknownPseudoClass{Name: name}
	}
}

func joinTokens(tokens []token) string {
	var out string
	for _, t := range tokens {
		if t.kind == tEOF {
			break
		}
		out += t.text
	}
	return out
}

// parseSimpleOnly parses a single compound selector, rejecting any
// combinator — :not(...) only accepts simple selectors.
func parseSimpleOnly(args []token) (selector.Selector, error) {
	p := &parser{tokens: args}
	compound, err := p.parseCompound()
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tEOF {
		return nil, &Parse{Msg: ":not() accepts only a simple selector"}
	}
	return compound, nil
}

// parseHasArg parses :has(...)'s argument: an optional leading combinator
// token (explicit "children" request) followed by a single compound.
func parseHasArg(args []token) (selector.Selector, selector.Combinator, error) {
	p := &parser{tokens: args}
	comb := selector.NoCombinator
	if p.cur().kind == tCombinator {
		t := p.advance()
		c, ok := combinatorByToken[t.text]
		if !ok {
			return nil, selector.NoCombinator, &Parse{Msg: "unknown combinator in :has()"}
		}
		comb = c
	}
	compound, err := p.parseCompound()
	if err != nil {
		return nil, selector.NoCombinator, err
	}
	if p.cur().kind != tEOF {
		return nil, selector.NoCombinator, &Parse{Msg: ":has() accepts only a simple selector"}
	}
	return compound, comb, nil
}
