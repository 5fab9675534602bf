package css

// kind enumerates the token shapes the CSS tokenizer produces:
// identifiers, "#id", ".class", "[name op value]", combinators,
// pseudo-classes, the group comma, and "*".
type kind int

const (
	tEOF kind = iota
	tIdent
	tString
	tHash
	tClass
	tStar
	tLBracket
	tRBracket
	tAttrOp
	tColon
	tLParen
	tRParen
	tComma
	tCombinator
)

type token struct {
	kind kind
	text string
	// ws reports whether this token was preceded by insignificant
	// whitespace in the source — the parser promotes that whitespace to
	// a descendant combinator when it separates two compounds.
	ws  bool
	pos int
}
