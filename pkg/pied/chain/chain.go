package chain

import (
	"context"

	"github.com/ib-77/pied/pkg/pied"
)

// Chain holds the stages appended so far as one stage I -> O
type Chain[I, O any] struct {
	stage pied.Stage[I, O]
}

// Start creates a new chain from its first stage
func Start[I, O any](s pied.Stage[I, O]) Chain[I, O] {
	return Chain[I, O]{stage: s}
}

// FromFunc creates a new chain from a plain function
func FromFunc[I, O any](f func(ctx context.Context, in I) O) Chain[I, O] {
	return Start[I, O](pied.Func[I, O](f))
}

// FromProducer creates a new chain from a function without input
func FromProducer[O any](f func(ctx context.Context) O) Chain[pied.Unit, O] {
	return Start[pied.Unit, O](pied.Producer[O](f))
}

// Then appends a stage consuming the current output
func Then[I, M, O any](c Chain[I, M], next pied.Stage[M, O]) Chain[I, O] {
	return Chain[I, O]{stage: pied.Convert(c.stage, next)}
}

// ThenFunc appends a plain function consuming the current output
func ThenFunc[I, M, O any](c Chain[I, M], next func(ctx context.Context, in M) O) Chain[I, O] {
	return Then[I, M, O](c, pied.Func[M, O](next))
}

// Append adds a stage that keeps the current output type
func (c Chain[I, O]) Append(next pied.Stage[O, O]) Chain[I, O] {
	return Then(c, next)
}

// Ensure performs a side effect on the current output and passes it on unchanged
func (c Chain[I, O]) Ensure(sideEffect func(ctx context.Context, out O)) Chain[I, O] {
	return c.Append(pied.Func[O, O](func(ctx context.Context, out O) O {
		sideEffect(ctx, out)
		return out
	}))
}

// Finally appends a sink and closes the chain
func Finally[I, M any](c Chain[I, M], sink func(ctx context.Context, in M)) pied.Pied[I, pied.Unit] {
	return ThenFunc(c, func(ctx context.Context, in M) pied.Unit {
		sink(ctx, in)
		return pied.Unit{}
	}).Pied()
}

// Pied returns the chain as a pipeline
func (c Chain[I, O]) Pied() pied.Pied[I, O] {
	return pied.From(c.stage)
}

func (c Chain[I, O]) Transform(ctx context.Context, in I) O {
	return c.stage.Transform(ctx, in)
}
