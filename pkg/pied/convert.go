package pied

import "context"

// Composed owns an upstream and a downstream stage and runs them one after
// the other. It is itself a Stage[I, O] so it can be composed again.
type Composed[I, M, O any] struct {
	upstream   Stage[I, M]
	downstream Stage[M, O]
}

// Convert creates a Composed stage from two stages. Neither stage is called.
func Convert[I, M, O any](upstream Stage[I, M], downstream Stage[M, O]) Composed[I, M, O] {
	return Composed[I, M, O]{
		upstream:   upstream,
		downstream: downstream,
	}
}

// Transform runs upstream to completion and feeds its output to downstream
func (c Composed[I, M, O]) Transform(ctx context.Context, in I) O {
	m := c.upstream.Transform(ctx, in)
	return c.downstream.Transform(ctx, m)
}

func (c Composed[I, M, O]) Upstream() Stage[I, M] {
	return c.upstream
}

func (c Composed[I, M, O]) Downstream() Stage[M, O] {
	return c.downstream
}
