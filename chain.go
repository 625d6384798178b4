package rxchain

import (
	"slices"

	"github.com/fxsml/rxchain/stream"
)

// Stage produces the next stream of a chain from every value produced
// before it, oldest first: prev[0] comes from the producer, prev[1] from
// the first stage and so on. prev must not be modified.
type Stage func(prev []any) stream.Stream[any]

// Chain is a reusable sequence of stages joined with one policy. It is the
// arity-free form of the FlattenN, OrderedN and LatestN helpers. A Chain is
// immutable: Then returns a new Chain.
type Chain struct {
	policy Policy
	opts   []stream.Option
	stages []Stage
}

// New returns an empty Chain joining stages with p. Options are passed to
// every join.
func New(p Policy, opts ...stream.Option) *Chain {
	return &Chain{
		policy: p,
		opts:   opts,
	}
}

// Then returns a Chain with stages appended.
func (c *Chain) Then(stages ...Stage) *Chain {
	return &Chain{
		policy: c.policy,
		opts:   c.opts,
		stages: append(slices.Clip(c.stages), stages...),
	}
}

// Len returns the number of stages of c.
func (c *Chain) Len() int {
	return len(c.stages)
}

// From returns the stream of the chain started by zero. zero is called once
// per observation. Without stages the stream of zero is returned as is.
func (c *Chain) From(zero func() stream.Stream[any]) stream.Stream[any] {
	if len(c.stages) == 0 {
		return stream.Defer(zero)
	}
	return Bind(c.policy, stream.Defer(zero), func(v any) stream.Stream[any] {
		return c.link([]any{v}, c.stages)
	}, c.opts...)
}

// link runs the first of stages on the values produced so far and joins the
// remaining stages onto its stream. Each continuation gets its own copy of
// prev so concurrent branches never share a backing array.
func (c *Chain) link(prev []any, stages []Stage) stream.Stream[any] {
	s := stages[0](prev)
	if len(stages) == 1 {
		return s
	}
	return Bind(c.policy, s, func(v any) stream.Stream[any] {
		return c.link(append(slices.Clip(prev), v), stages[1:])
	}, c.opts...)
}

// Stages chains stages after zero with policy p. It is shorthand for
// New(p).Then(stages...).From(zero).
func Stages(
	p Policy,
	zero func() stream.Stream[any],
	stages ...Stage,
) stream.Stream[any] {
	return New(p).Then(stages...).From(zero)
}
