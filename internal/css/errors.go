package css

import "fmt"

// Tokenize reports a lexical error at a byte offset in the selector text.
type Tokenize struct {
	Pos int
	Msg string
}

func (e *Tokenize) Error() string {
	return fmt.Sprintf("css: tokenize at %d: %s", e.Pos, e.Msg)
}

// Parse reports a grammar error while building the selector tree from
// tokens.
type Parse struct {
	Msg string
}

func (e *Parse) Error() string { return fmt.Sprintf("css: parse: %s", e.Msg) }
