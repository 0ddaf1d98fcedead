package pied

import "context"

// Unit is the empty value consumed by producers and returned by sinks.
type Unit = struct{}

// Stage is anything that turns one input into one output.
type Stage[I, O any] interface {
	// Transform runs the stage to completion and returns its output
	Transform(ctx context.Context, in I) O
}

// Func adapts a plain function into a Stage
type Func[I, O any] func(ctx context.Context, in I) O

func (f Func[I, O]) Transform(ctx context.Context, in I) O {
	return f(ctx, in)
}

// Producer adapts a function without input into a Stage[Unit, O]
type Producer[O any] func(ctx context.Context) O

func (p Producer[O]) Transform(ctx context.Context, _ Unit) O {
	return p(ctx)
}

// Sink adapts a function without output into a Stage[I, Unit]
type Sink[I any] func(ctx context.Context, in I)

func (s Sink[I]) Transform(ctx context.Context, in I) Unit {
	s(ctx, in)
	return Unit{}
}

// Await adapts a function returning a future channel into a Stage.
// The first value received is the output; a channel closed without a value
// yields the zero value of O.
type Await[I, O any] func(ctx context.Context, in I) <-chan O

func (a Await[I, O]) Transform(ctx context.Context, in I) O {
	var out O
	if v, ok := <-a(ctx, in); ok {
		out = v
	}
	return out
}

// Go runs the stage on its own goroutine. The returned channel receives
// exactly one value and is then closed.
func Go[I, O any](ctx context.Context, s Stage[I, O], in I) <-chan O {
	out := make(chan O, 1)

	go func() {
		defer close(out)
		out <- s.Transform(ctx, in)
	}()

	return out
}
