package xpath

import (
	"strings"

	"github.com/arjunvale/domselect/internal/selector"
	"github.com/arjunvale/domselect/internal/store"
	"github.com/arjunvale/domselect/internal/textutil"
)

// virtualRoot is the context node id representing the document itself,
// the implicit ancestor of every RootIDs() element — the document model
// has no id for "the document node," so an absolute path's first step
// needs one to step off of. It is never a valid store.Document id
// (those are all >= 0), and is shared with internal/css so the driver
// can seed both engines with the same sentinel for a whole-document query.
const virtualRoot = store.VirtualRoot

// Compiled is an XPath expression parsed once by Compile and evaluated by
// Eval against a document and a context node-set (the nodes an unqualified
// relative path or a predicate's position()/last() are relative to).
type Compiled struct {
	expr Expr
}

// Compile parses an XPath expression into a reusable, document-independent
// tree.
func Compile(expr string) (*Compiled, error) {
	e, err := parse(expr)
	if err != nil {
		return nil, err
	}
	return &Compiled{expr: e}, nil
}

// Eval runs the compiled expression against doc with the given context
// node-set. contextNodes is typically []int{virtualRoot} when querying a
// whole document, or a prior Result's anchored node(s) when restricting
// evaluation to a subtree.
func (c *Compiled) Eval(doc *store.Document, contextNodes []int) (Value, error) {
	e := &evaluator{doc: doc}
	return e.evalWithContext(c.expr, contextNodes, selector.Empty())
}

// VirtualRoot exposes the sentinel context id representing the document
// itself, for callers seeding a fresh top-level query.
func VirtualRoot() int { return virtualRoot }

// Select adapts Eval to the driver's uniform node-id query contract: it
// evaluates the expression and requires the result to be a node-set,
// erroring on expressions whose top-level result is an attribute-set or a
// scalar (e.g. "count(//p)" or a bare "@href") — those are only useful
// nested inside a larger expression or read directly via Eval, not as a
// document query.
func (c *Compiled) Select(doc *store.Document, context []int) ([]int, error) {
	v, err := c.Eval(doc, context)
	if err != nil {
		return nil, err
	}
	if v.Kind != vkNodeSet {
		return nil, &Eval{Msg: "expression does not select nodes"}
	}
	return v.Nodes, nil
}

type evaluator struct {
	doc *store.Document
}

// evalWithContext evaluates expr once per node in contextNodes when expr
// is context-dependent (a location path or a function reading the current
// node), unioning node-set results and threading position()/last()
// through ctx. Scalar-only expressions (arithmetic between literals, for
// instance) are context-independent but still routed through this so
// predicates nested anywhere can call position()/last().
func (e *evaluator) evalWithContext(expr Expr, contextNodes []int, ctx *selector.Context) (Value, error) {
	if len(contextNodes) == 0 {
		return expr.eval(&evalCtx{e: e, node: virtualRoot, ctx: ctx})
	}
	if len(contextNodes) == 1 {
		return expr.eval(&evalCtx{e: e, node: contextNodes[0], ctx: ctx})
	}
	var nodes []int
	seen := map[int]bool{}
	for i, n := range contextNodes {
		v, err := expr.eval(&evalCtx{e: e, node: n, ctx: ctx.WithNodeSet(contextNodes, i+1)})
		if err != nil {
			return Value{}, err
		}
		if !v.IsNodeSet() {
			// Non-node-set results don't union across multiple context
			// nodes; the first one decides, matching how a driver would
			// apply such an expression to a single candidate at a time.
			return v, nil
		}
		for _, id := range v.Nodes {
			if !seen[id] {
				seen[id] = true
				nodes = append(nodes, id)
			}
		}
	}
	return nodeSetValue(sortDocOrder(e.doc, nodes)), nil
}

// evalCtx is the per-node-evaluation frame an Expr's eval method receives:
// the current context node and the ambient Context carrying position()/
// last() bindings for the enclosing predicate, if any.
type evalCtx struct {
	e    *evaluator
	node int
	ctx  *selector.Context
}

func (c *evalCtx) doc() *store.Document { return c.e.doc }

func (lp locationPath) eval(c *evalCtx) (Value, error) {
	nodes := []int{c.node}
	if lp.absolute {
		// An absolute path always starts at the document itself,
		// regardless of the current context node.
		nodes = []int{virtualRoot}
		if len(lp.steps) == 0 {
			return nodeSetValue(nodes), nil
		}
	}
	for i, st := range lp.steps {
		if st.axis == AxisAttribute {
			if i != len(lp.steps)-1 {
				return Value{}, &Eval{Msg: "the attribute axis may only be the last step of a path"}
			}
			var attrs []AttrRef
			for _, n := range nodes {
				as, err := axisAttributes(c.doc(), n, st.test)
				if err != nil {
					return Value{}, err
				}
				attrs = append(attrs, as...)
			}
			filtered, err := filterAttrPredicates(c.e, attrs, st.predicates, c.ctx)
			if err != nil {
				return Value{}, err
			}
			return attrSetValue(filtered), nil
		}
		next, err := runStep(c.e, st, nodes, c.ctx)
		if err != nil {
			return Value{}, err
		}
		nodes = next
	}
	return nodeSetValue(nodes), nil
}

// runStep applies one node-axis step to every node in current, unions the
// matches in document order, and evaluates the step's predicates against
// each candidate with position()/last() bound over the full candidate
// list, generalizing the same match-then-advance procedure the CSS chain
// evaluator uses to XPath's axes. The attribute axis is handled
// separately by locationPath.eval, since it produces AttrRef values
// rather than node ids.
func runStep(e *evaluator, st step, current []int, ctx *selector.Context) ([]int, error) {
	var candidates []int
	seen := map[int]bool{}
	for _, ctxNode := range current {
		ids, err := axisNodes(e.doc, st.axis, ctxNode)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if matchesNodeTest(e.doc, id, st.test) && !seen[id] {
				seen[id] = true
				candidates = append(candidates, id)
			}
		}
	}
	candidates = sortDocOrder(e.doc, candidates)
	return filterPredicates(e, candidates, st.predicates, ctx)
}

func filterPredicates(e *evaluator, candidates []int, preds []Expr, ctx *selector.Context) ([]int, error) {
	for _, pred := range preds {
		var kept []int
		for i, cand := range candidates {
			pc := ctx.WithNodeSet(candidates, i+1)
			v, err := pred.eval(&evalCtx{e: e, node: cand, ctx: pc})
			if err != nil {
				return nil, err
			}
			if predicateHolds(v, i+1) {
				kept = append(kept, cand)
			}
		}
		candidates = kept
	}
	return candidates, nil
}

func filterAttrPredicates(e *evaluator, attrs []AttrRef, preds []Expr, ctx *selector.Context) ([]AttrRef, error) {
	for _, pred := range preds {
		var kept []AttrRef
		nodes := make([]int, len(attrs))
		for i, a := range attrs {
			nodes[i] = a.Elem
		}
		for i, a := range attrs {
			pc := ctx.WithNodeSet(nodes, i+1)
			v, err := pred.eval(&evalCtx{e: e, node: a.Elem, ctx: pc})
			if err != nil {
				return nil, err
			}
			if predicateHolds(v, i+1) {
				kept = append(kept, a)
			}
		}
		attrs = kept
	}
	return attrs, nil
}

// predicateHolds applies XPath's predicate-truth rule: a numeric result
// compares equal to the 1-based position, anything else coerces via
// boolean().
func predicateHolds(v Value, pos int) bool {
	if v.Kind == vkNumber {
		return int(v.Num) == pos && v.Num == float64(int(v.Num))
	}
	return v.ToBool()
}

func sortDocOrder(doc *store.Document, ids []int) []int {
	order := make(map[int]int, doc.Len())
	for i, id := range doc.Walk() {
		order[id] = i
	}
	out := append([]int(nil), ids...)
	// Simple insertion sort: candidate sets here are small (one axis
	// step's worth of nodes), and avoids pulling in sort for a handful
	// of comparisons against a precomputed rank map.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && order[out[j-1]] > order[out[j]]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func axisNodes(doc *store.Document, axis Axis, node int) ([]int, error) {
	if node == virtualRoot {
		switch axis {
		case AxisChild:
			return doc.RootIDs(), nil
		case AxisDescendant, AxisDescendantOrSelf:
			return doc.Walk(), nil
		default:
			return nil, nil
		}
	}
	switch axis {
	case AxisChild:
		return doc.Children(node)
	case AxisDescendant:
		return doc.Descendants(node)
	case AxisDescendantOrSelf:
		desc, err := doc.Descendants(node)
		if err != nil {
			return nil, err
		}
		return append([]int{node}, desc...), nil
	case AxisParent:
		n, err := doc.Get(node)
		if err != nil {
			return nil, err
		}
		if n.IsRoot() {
			return []int{virtualRoot}, nil
		}
		return []int{n.Parent}, nil
	case AxisAncestor:
		anc, err := doc.Ancestors(node)
		if err != nil {
			return nil, err
		}
		return append(anc, virtualRoot), nil
	case AxisAncestorOrSelf:
		anc, err := doc.Ancestors(node)
		if err != nil {
			return nil, err
		}
		out := append([]int{node}, anc...)
		return append(out, virtualRoot), nil
	case AxisFollowingSibling:
		return doc.FollowingSiblings(node)
	case AxisPrecedingSibling:
		return doc.PrecedingSiblings(node)
	case AxisSelf:
		return []int{node}, nil
	default:
		return nil, nil
	}
}

func axisAttributes(doc *store.Document, node int, test nodeTest) ([]AttrRef, error) {
	if node == virtualRoot {
		return nil, nil
	}
	n, err := doc.Get(node)
	if err != nil {
		return nil, err
	}
	if n.Kind != store.KindElement {
		return nil, nil
	}
	var out []AttrRef
	for _, a := range n.Attrs {
		if matchesAttrNameTest(doc, a.Name, test) {
			out = append(out, AttrRef{Elem: node, Name: a.Name, Value: a.Value})
		}
	}
	return out, nil
}

func matchesAttrNameTest(doc *store.Document, name string, test nodeTest) bool {
	switch test.kind {
	case testWildcard, testNode:
		return true
	case testName:
		if doc.Mode() == store.ModeXML {
			return name == test.name
		}
		return strings.EqualFold(name, test.name)
	default:
		return false
	}
}

func matchesNodeTest(doc *store.Document, id int, test nodeTest) bool {
	if id == virtualRoot {
		return false
	}
	n := doc.MustGet(id)
	switch test.kind {
	case testNode:
		return true
	case testWildcard:
		return n.IsElement()
	case testText:
		return n.Kind == store.KindText
	case testComment:
		return n.Kind == store.KindComment
	case testPI:
		if n.Kind != store.KindProcessingInstruction {
			return false
		}
		return !test.hasPI || n.Target == test.piTarget
	case testName:
		if !n.IsElement() {
			return false
		}
		if test.prefix != "" && test.prefix != n.Namespace {
			return false
		}
		if doc.Mode() == store.ModeXML {
			return n.Tag == test.name
		}
		return strings.EqualFold(n.Tag, test.name)
	default:
		return false
	}
}

func (u unionExpr) eval(c *evalCtx) (Value, error) {
	seen := map[int]bool{}
	var out []int
	for _, part := range u.parts {
		v, err := part.eval(c)
		if err != nil {
			return Value{}, err
		}
		if v.Kind != vkNodeSet {
			return Value{}, &Eval{Msg: "union operand must be a node-set"}
		}
		for _, id := range v.Nodes {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return nodeSetValue(sortDocOrder(c.doc(), out)), nil
}

func (b binaryExpr) eval(c *evalCtx) (Value, error) {
	switch b.op {
	case "and":
		lv, err := b.lhs.eval(c)
		if err != nil {
			return Value{}, err
		}
		if !lv.ToBool() {
			return boolValue(false), nil
		}
		rv, err := b.rhs.eval(c)
		if err != nil {
			return Value{}, err
		}
		return boolValue(rv.ToBool()), nil
	case "or":
		lv, err := b.lhs.eval(c)
		if err != nil {
			return Value{}, err
		}
		if lv.ToBool() {
			return boolValue(true), nil
		}
		rv, err := b.rhs.eval(c)
		if err != nil {
			return Value{}, err
		}
		return boolValue(rv.ToBool()), nil
	}

	lv, err := b.lhs.eval(c)
	if err != nil {
		return Value{}, err
	}
	rv, err := b.rhs.eval(c)
	if err != nil {
		return Value{}, err
	}

	switch b.op {
	case "=", "!=":
		eq := compareEquality(c.doc(), lv, rv)
		if b.op == "!=" {
			eq = !eq
		}
		return boolValue(eq), nil
	case "<", "<=", ">", ">=":
		return boolValue(compareRelational(c.doc(), lv, rv, b.op)), nil
	case "+":
		return numberValue(lv.ToNumber() + rv.ToNumber()), nil
	case "-":
		return numberValue(lv.ToNumber() - rv.ToNumber()), nil
	case "*":
		return numberValue(lv.ToNumber() * rv.ToNumber()), nil
	case "div":
		return numberValue(lv.ToNumber() / rv.ToNumber()), nil
	case "mod":
		l, r := lv.ToNumber(), rv.ToNumber()
		return numberValue(float64(int64(l) % int64(r))), nil
	default:
		return Value{}, &Eval{Msg: "unknown operator " + b.op}
	}
}

// compareEquality implements XPath 1.0's node-set-aware "=" rule: when
// either side is a node-set, equality holds if some member's string-value
// equals the other side under that side's own coercion; otherwise it's a
// plain scalar comparison after coercing to the "richer" side's type.
func compareEquality(doc *store.Document, l, r Value) bool {
	if l.IsNodeSet() && r.IsNodeSet() {
		for _, ls := range nodeSetStrings(doc, l) {
			for _, rs := range nodeSetStrings(doc, r) {
				if ls == rs {
					return true
				}
			}
		}
		return false
	}
	if l.IsNodeSet() {
		return nodeSetMatchesScalar(doc, l, r)
	}
	if r.IsNodeSet() {
		return nodeSetMatchesScalar(doc, r, l)
	}
	if l.Kind == vkBool || r.Kind == vkBool {
		return l.ToBool() == r.ToBool()
	}
	if l.Kind == vkNumber || r.Kind == vkNumber {
		return l.ToNumber() == r.ToNumber()
	}
	return l.ToString(doc) == r.ToString(doc)
}

func nodeSetStrings(doc *store.Document, v Value) []string {
	var out []string
	if v.Kind == vkNodeSet {
		for _, id := range v.Nodes {
			out = append(out, nodeStringValue(doc, id))
		}
	} else {
		for _, a := range v.Attrs {
			out = append(out, a.Value)
		}
	}
	return out
}

func nodeSetMatchesScalar(doc *store.Document, ns Value, scalar Value) bool {
	for _, s := range nodeSetStrings(doc, ns) {
		switch scalar.Kind {
		case vkNumber:
			if strToNumber(s) == scalar.Num {
				return true
			}
		case vkBool:
			if (s != "") == scalar.Bool {
				return true
			}
		default:
			if s == scalar.ToString(doc) {
				return true
			}
		}
	}
	return false
}

func compareRelational(doc *store.Document, l, r Value, op string) bool {
	a, b := l.ToNumber(), r.ToNumber()
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	default:
		return a >= b
	}
}

func nodeStringValue(doc *store.Document, id int) string {
	if id == virtualRoot {
		var b []byte
		for _, r := range doc.RootIDs() {
			b = append(b, []byte(nodeStringValue(doc, r))...)
		}
		return string(b)
	}
	n := doc.MustGet(id)
	switch n.Kind {
	case store.KindComment, store.KindProcessingInstruction:
		return n.Content
	default:
		return textutil.Concat(doc, id)
	}
}

func (u unaryMinus) eval(c *evalCtx) (Value, error) {
	v, err := u.inner.eval(c)
	if err != nil {
		return Value{}, err
	}
	return numberValue(-v.ToNumber()), nil
}

func (l literalString) eval(c *evalCtx) (Value, error) { return stringValue(l.s), nil }
func (l literalNumber) eval(c *evalCtx) (Value, error) { return numberValue(l.n), nil }

func (f filteredExpr) eval(c *evalCtx) (Value, error) {
	v, err := f.base.eval(c)
	if err != nil {
		return Value{}, err
	}
	if !v.IsNodeSet() {
		// Predicates on a scalar base are not meaningful; the grammar
		// only requires predicates on steps and function calls that
		// themselves return node-sets.
		return v, nil
	}
	if v.Kind == vkAttrSet {
		filtered, err := filterAttrPredicates(c.e, v.Attrs, f.predicates, c.ctx)
		if err != nil {
			return Value{}, err
		}
		return attrSetValue(filtered), nil
	}
	filtered, err := filterPredicates(c.e, v.Nodes, f.predicates, c.ctx)
	if err != nil {
		return Value{}, err
	}
	return nodeSetValue(filtered), nil
}
