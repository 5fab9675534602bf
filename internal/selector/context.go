package selector

// Context is the key→value mapping threaded through selection. Every
// derive call returns a new Context sharing the parent's entries by
// reference — callers must never mutate a Context in place, only derive
// from it.
type Context struct {
	parent *Context
	key    string
	value  any
}

// Recognized keys. User keys are untouched by the engine and may be any
// string that isn't one of these.
const (
	KeyAccumulator = "accumulator"
	KeyNodes       = "nodes"
	KeyPosition    = "position"
	KeyLast        = "last"
)

// Empty returns a Context with no entries.
func Empty() *Context { return nil }

// With returns a new Context with key bound to value, leaving ctx (and
// everything reachable from it) unmodified.
func (ctx *Context) With(key string, value any) *Context {
	return &Context{parent: ctx, key: key, value: value}
}

// Get walks up the derivation chain for the nearest binding of key.
func (ctx *Context) Get(key string) (any, bool) {
	for c := ctx; c != nil; c = c.parent {
		if c.key == key {
			return c.value, true
		}
	}
	return nil, false
}

// WithNodeSet binds position/last/nodes together for one predicate
// evaluation step over candidates, with the current 1-based position
// pos within it.
func (ctx *Context) WithNodeSet(nodes []int, pos int) *Context {
	return ctx.With(KeyNodes, nodes).With(KeyPosition, pos).With(KeyLast, len(nodes))
}

// Nodes returns the current-step node set, or nil if unset.
func (ctx *Context) Nodes() []int {
	v, ok := ctx.Get(KeyNodes)
	if !ok {
		return nil
	}
	return v.([]int)
}

// Position returns the current 1-based position, or 0 if unset.
func (ctx *Context) Position() int {
	v, ok := ctx.Get(KeyPosition)
	if !ok {
		return 0
	}
	return v.(int)
}

// Last returns the current step's node-set size, or 0 if unset.
func (ctx *Context) Last() int {
	v, ok := ctx.Get(KeyLast)
	if !ok {
		return 0
	}
	return v.(int)
}

// Accumulator returns the bound accumulator and whether one is set.
func (ctx *Context) Accumulator() (any, bool) {
	return ctx.Get(KeyAccumulator)
}
