// Package xpath implements the XPath front-end: a tokenizer,
// recursive-descent parser, and evaluator for an XPath 1.0 subset —
// axes, node tests, predicates, the four core literal/expression types,
// and the operators including node-set union.
//
// Unlike internal/css, which compiles down into the internal/selector
// algebra for its own chain evaluator to walk, XPath's axis/predicate/function
// evaluation model doesn't reduce cleanly onto that algebra's four
// combinators, so Compile/Eval here run their own evaluator directly
// against internal/store.Document.
package xpath
