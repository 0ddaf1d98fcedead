package pied

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuple_PipeMatchesFreeFunction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	prod := Producer[int](producer)
	mul := Func[int, int](multiplier)
	str := Func[int, string](stringer)

	fluent := NewTuple3(prod, mul, str).Pipe()
	free := Pipe3(prod, mul, str)
	assert.Equal(t, free.Transform(ctx, Unit{}), fluent.Transform(ctx, Unit{}))
	assert.Equal(t, "96", fluent.Transform(ctx, Unit{}))

	tuple := Tuple3[int, int, int, string]{S1: mul, S2: mul, S3: str}
	for _, x := range []int{1, 2, 3} {
		assert.Equal(t, Pipe3(mul, mul, str).Transform(ctx, x), tuple.Pipe().Transform(ctx, x))
	}
}

func TestTuple_AllArities(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inc := Func[int, int](func(_ context.Context, i int) int { return i + 1 })

	assert.Equal(t, 2, NewTuple2(inc, inc).Pipe().Transform(ctx, 0))
	assert.Equal(t, 3, NewTuple3(inc, inc, inc).Pipe().Transform(ctx, 0))
	assert.Equal(t, 4, NewTuple4(inc, inc, inc, inc).Pipe().Transform(ctx, 0))
	assert.Equal(t, 5, NewTuple5(inc, inc, inc, inc, inc).Pipe().Transform(ctx, 0))
	assert.Equal(t, 6, NewTuple6(inc, inc, inc, inc, inc, inc).Pipe().Transform(ctx, 0))
	assert.Equal(t, 7, NewTuple7(inc, inc, inc, inc, inc, inc, inc).Pipe().Transform(ctx, 0))
	assert.Equal(t, 8, NewTuple8(inc, inc, inc, inc, inc, inc, inc, inc).Pipe().Transform(ctx, 0))
}

func TestTuple_MixedTypes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	length := Func[string, int](func(_ context.Context, s string) int { return len(s) })
	even := Func[int, bool](func(_ context.Context, n int) bool { return n%2 == 0 })
	label := Func[bool, string](func(_ context.Context, b bool) string {
		if b {
			return "even"
		}
		return "odd"
	})

	p := NewTuple3(length, even, label).Pipe()

	assert.Equal(t, "even", p.Transform(ctx, "ab"))
	assert.Equal(t, "odd", p.Transform(ctx, "abc"))
}
