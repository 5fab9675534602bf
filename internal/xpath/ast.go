package xpath

// Axis enumerates the axes the grammar names.
type Axis int

const (
	AxisChild Axis = iota
	AxisDescendant
	AxisDescendantOrSelf
	AxisParent
	AxisAncestor
	AxisAncestorOrSelf
	AxisFollowingSibling
	AxisPrecedingSibling
	AxisSelf
	AxisAttribute
)

var axisByName = map[string]Axis{
	"child":              AxisChild,
	"descendant":         AxisDescendant,
	"descendant-or-self": AxisDescendantOrSelf,
	"parent":             AxisParent,
	"ancestor":           AxisAncestor,
	"ancestor-or-self":   AxisAncestorOrSelf,
	"following-sibling":  AxisFollowingSibling,
	"preceding-sibling":  AxisPrecedingSibling,
	"self":               AxisSelf,
	"attribute":          AxisAttribute,
}

// testKind tags a nodeTest's variant.
type testKind int

const (
	testName testKind = iota
	testWildcard
	testNode
	testText
	testComment
	testPI
)

type nodeTest struct {
	kind   testKind
	prefix string
	name   string
	// piTarget is processing-instruction()'s optional literal argument;
	// empty means match any target.
	piTarget string
	hasPI    bool
}

// step is one axis::test[predicate]* segment of a location path.
type step struct {
	axis       Axis
	test       nodeTest
	predicates []Expr
}

// Expr is any node of a compiled XPath expression tree. Each concrete
// type below implements eval against an evaluator carrying the document
// and the current context node-set.
type Expr interface {
	eval(c *evalCtx) (Value, error)
}

// locationPath is an absolute ("/" or "//" prefixed) or relative sequence
// of steps.
type locationPath struct {
	absolute bool
	// doubleSlashLead records whether the path begins with "//" (i.e. the
	// first real step is implicitly preceded by descendant-or-self).
	doubleSlashLead bool
	steps           []step
}

type unionExpr struct {
	parts []Expr
}

type binaryExpr struct {
	op  string
	lhs Expr
	rhs Expr
}

type unaryMinus struct {
	inner Expr
}

type literalString struct{ s string }
type literalNumber struct{ n float64 }

type funcCall struct {
	name string
	args []Expr
}

// filteredExpr wraps a primary expression (e.g. a function call result)
// with trailing predicates, as in "count(//p)[1]"'s generalized form;
// the grammar only requires this for steps, but the parser threads it
// uniformly.
type filteredExpr struct {
	base       Expr
	predicates []Expr
}
