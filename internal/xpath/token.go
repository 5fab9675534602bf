package xpath

// kind enumerates the token shapes the XPath tokenizer produces: steps,
// axes, node tests, predicates, functions, and operators including
// node-set union.
type kind int

const (
	tEOF kind = iota
	tIdent // names, axis names, function names, and word operators
	// (div, mod, and, or) — the parser disambiguates by grammar position.
	tNumber
	tString
	tSlash       // /
	tDoubleSlash // //
	tDot         // .
	tDotDot      // ..
	tAt          // @
	tLBracket
	tRBracket
	tLParen
	tRParen
	tComma
	tStar
	tColonColon // ::
	tColon      // :
	tPipe       // |
	tEq
	tNe
	tLt
	tLe
	tGt
	tGe
	tPlus
	tMinus
)

type token struct {
	kind kind
	text string
	num  float64
	pos  int
}
