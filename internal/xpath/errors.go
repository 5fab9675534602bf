package xpath

import "fmt"

// Tokenize reports a lexical error at a byte offset in the expression text.
type Tokenize struct {
	Pos int
	Msg string
}

func (e *Tokenize) Error() string {
	return fmt.Sprintf("xpath: tokenize at %d: %s", e.Pos, e.Msg)
}

// Parse reports a grammar error while building the expression tree.
type Parse struct {
	Msg string
}

func (e *Parse) Error() string { return fmt.Sprintf("xpath: parse: %s", e.Msg) }

// Eval reports a runtime error: an unknown function, a wrong argument
// count, or a type conversion XPath's coercion rules don't define.
type Eval struct {
	Msg string
}

func (e *Eval) Error() string { return fmt.Sprintf("xpath: eval: %s", e.Msg) }
