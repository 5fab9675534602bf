package domselect

import (
	"github.com/arjunvale/domselect/internal/driver"
	"github.com/arjunvale/domselect/internal/extract"
)

// Accumulator gathers results during a Select walk. Include folds a
// match in, in document order; Complete reports whether the walk may
// stop early; Value produces the final extraction. Build one with
// OneAccumulator or AllAccumulator, or implement this directly for a
// custom fold.
type Accumulator interface {
	Include(r Result)
	Complete() bool
	Value() any
}

// Context carries the Accumulator a Select call folds results into.
type Context struct {
	Accumulator Accumulator
}

// accumulatorAdapter lets a public Accumulator satisfy the internal
// driver's Accumulator contract, converting each extract.Result to the
// public Result the caller's Include actually understands.
type accumulatorAdapter struct{ pub Accumulator }

func (a accumulatorAdapter) Include(r extract.Result) { a.pub.Include(Result{r: r}) }
func (a accumulatorAdapter) Complete() bool           { return a.pub.Complete() }
func (a accumulatorAdapter) Value() any               { return a.pub.Value() }

func toDriverContext(ctx Context) (driver.Context, error) {
	if ctx.Accumulator == nil {
		return driver.Context{}, &driver.NoAccumulator{}
	}
	return driver.Context{Accumulator: accumulatorAdapter{pub: ctx.Accumulator}}, nil
}

type oneAccumulator struct {
	result Result
	found  bool
}

// OneAccumulator keeps the first match in document order and completes
// the walk immediately.
func OneAccumulator() Accumulator { return &oneAccumulator{} }

func (a *oneAccumulator) Include(r Result) {
	if !a.found {
		a.result = r
		a.found = true
	}
}

func (a *oneAccumulator) Complete() bool { return a.found }

func (a *oneAccumulator) Value() any {
	if !a.found {
		return nil
	}
	return a.result
}

type allAccumulator struct {
	results []Result
}

// AllAccumulator keeps every match in document order and never
// completes early.
func AllAccumulator() Accumulator { return &allAccumulator{} }

func (a *allAccumulator) Include(r Result) { a.results = append(a.results, r) }

func (a *allAccumulator) Complete() bool { return false }

func (a *allAccumulator) Value() any { return a.results }
