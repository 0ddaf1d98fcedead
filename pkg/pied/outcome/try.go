package outcome

import (
	"context"

	"github.com/ib-77/pied/pkg/pied"
)

// Try turns a function returning (Out, error) into a stage whose output is a
// Result. Context cancellation and deadline errors become cancelled results.
func Try[In, Out any](tryExecute func(ctx context.Context, in In) (Out, error)) pied.Func[In, Result[Out]] {
	return func(ctx context.Context, in In) Result[Out] {
		out, err := tryExecute(ctx, in)
		if err != nil {
			if IsCancellationError(err) {
				return Cancel[Out](err)
			}
			return Fail[Out](err)
		}
		return Success(out)
	}
}

// Finally reduces a Result to a plain value with one handler per outcome.
// It is a stage like any other and does not stop the pipeline.
func Finally[In, Out any](onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) pied.Func[Result[In], Out] {
	return func(ctx context.Context, in Result[In]) Out {
		switch {
		case in.IsSuccess():
			return onSuccess(ctx, in.Result())
		case in.IsCancel():
			return onCancel(ctx, in.Err())
		default:
			return onError(ctx, in.Err())
		}
	}
}
