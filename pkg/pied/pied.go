package pied

import "context"

// Pied is the pipeline returned by every pipe helper. Whatever the number of
// stages folded into it, it only exposes the outer input and output types.
type Pied[I, O any] struct {
	stage Stage[I, O]
}

// From wraps a single stage into a Pied
func From[I, O any](s Stage[I, O]) Pied[I, O] {
	if p, ok := s.(Pied[I, O]); ok {
		return p
	}
	return Pied[I, O]{stage: s}
}

func (p Pied[I, O]) Transform(ctx context.Context, in I) O {
	return p.stage.Transform(ctx, in)
}

// Stage returns the folded stage behind the pipeline
func (p Pied[I, O]) Stage() Stage[I, O] {
	return p.stage
}
