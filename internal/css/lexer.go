package css

import "strings"

// lex tokenizes a CSS selector group. It absorbs runs of whitespace
// itself rather than emitting tokens for them, recording only whether a
// run preceded the next significant token — the descendant combinator is
// exactly that fact surfacing at parse time.
func lex(s string) ([]token, error) {
	l := &lexer{s: s}
	var out []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.kind == tEOF {
			return out, nil
		}
	}
}

type lexer struct {
	s   string
	pos int
}

func (l *lexer) peekByte() byte {
	if l.pos >= len(l.s) {
		return 0
	}
	return l.s[l.pos]
}

func (l *lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.s) {
		return 0
	}
	return l.s[l.pos+offset]
}

func (l *lexer) skipWhitespace() bool {
	start := l.pos
	for l.pos < len(l.s) && isSpace(l.s[l.pos]) {
		l.pos++
	}
	return l.pos > start
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '-' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}

func (l *lexer) next() (token, error) {
	ws := l.skipWhitespace()
	start := l.pos
	if l.pos >= len(l.s) {
		return token{kind: tEOF, pos: start, ws: ws}, nil
	}

	c := l.s[l.pos]
	switch {
	case c == '*' && l.peekAt(1) != '=':
		l.pos++
		return token{kind: tStar, pos: start, ws: ws}, nil
	case c == ',':
		l.pos++
		return token{kind: tComma, pos: start, ws: ws}, nil
	case c == '>' || c == '+' || c == '~':
		l.pos++
		if c == '~' && l.peekByte() == '=' {
			l.pos++
			return token{kind: tAttrOp, text: "~=", pos: start, ws: ws}, nil
		}
		return token{kind: tCombinator, text: string(c), pos: start, ws: ws}, nil
	case c == '#':
		l.pos++
		name, err := l.readIdent()
		if err != nil {
			return token{}, err
		}
		return token{kind: tHash, text: name, pos: start, ws: ws}, nil
	case c == '.':
		l.pos++
		name, err := l.readIdent()
		if err != nil {
			return token{}, err
		}
		return token{kind: tClass, text: name, pos: start, ws: ws}, nil
	case c == '[':
		l.pos++
		return token{kind: tLBracket, pos: start, ws: ws}, nil
	case c == ']':
		l.pos++
		return token{kind: tRBracket, pos: start, ws: ws}, nil
	case c == '(':
		l.pos++
		return token{kind: tLParen, pos: start, ws: ws}, nil
	case c == ')':
		l.pos++
		return token{kind: tRParen, pos: start, ws: ws}, nil
	case c == ':':
		l.pos++
		return token{kind: tColon, pos: start, ws: ws}, nil
	case c == '=':
		l.pos++
		return token{kind: tAttrOp, text: "=", pos: start, ws: ws}, nil
	case c == '^' || c == '$' || c == '*' || c == '|':
		if l.pos+1 < len(l.s) && l.s[l.pos+1] == '=' {
			op := string(c) + "="
			l.pos += 2
			return token{kind: tAttrOp, text: op, pos: start, ws: ws}, nil
		}
		return token{}, &Tokenize{Pos: start, Msg: "unexpected character " + string(c)}
	case c == '"' || c == '\'':
		return l.readString(c, ws)
	case isIdentStart(c):
		name, err := l.readIdent()
		if err != nil {
			return token{}, err
		}
		return token{kind: tIdent, text: name, pos: start, ws: ws}, nil
	case c >= '0' && c <= '9' || c == '-':
		// Bare numbers/signed numbers occur inside :nth-*(...) formulas
		// and are lexed as idents; the matcher package's ParseNth parses
		// their text.
		name, err := l.readNumberLike()
		if err != nil {
			return token{}, err
		}
		return token{kind: tIdent, text: name, pos: start, ws: ws}, nil
	default:
		return token{}, &Tokenize{Pos: start, Msg: "unexpected character " + string(c)}
	}
}

func (l *lexer) readIdent() (string, error) {
	start := l.pos
	if l.pos >= len(l.s) || !isIdentStart(l.s[l.pos]) {
		return "", &Tokenize{Pos: l.pos, Msg: "expected identifier"}
	}
	l.pos++
	for l.pos < len(l.s) && isIdentPart(l.s[l.pos]) {
		l.pos++
	}
	return l.s[start:l.pos], nil
}

// readNumberLike consumes an an+b style token such as "2n+1", "-n", "3",
// stopping at whitespace, ')', or ','.
func (l *lexer) readNumberLike() (string, error) {
	start := l.pos
	for l.pos < len(l.s) {
		c := l.s[l.pos]
		if isSpace(c) || c == ')' || c == ',' {
			break
		}
		l.pos++
	}
	if l.pos == start {
		return "", &Tokenize{Pos: start, Msg: "expected nth formula"}
	}
	return l.s[start:l.pos], nil
}

func (l *lexer) readString(quote byte, ws bool) (token, error) {
	start := l.pos
	l.pos++ // opening quote
	var b strings.Builder
	for {
		if l.pos >= len(l.s) {
			return token{}, &Tokenize{Pos: start, Msg: "unterminated string"}
		}
		c := l.s[l.pos]
		if c == quote {
			l.pos++
			return token{kind: tString, text: b.String(), pos: start, ws: ws}, nil
		}
		if c == '\\' && l.pos+1 < len(l.s) {
			b.WriteByte(l.s[l.pos+1])
			l.pos += 2
			continue
		}
		b.WriteByte(c)
		l.pos++
	}
}
