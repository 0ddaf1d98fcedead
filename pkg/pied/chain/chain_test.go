package chain

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/pied/pkg/pied"
)

func TestThen_BuildsIncrementally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := FromProducer(func(ctx context.Context) int { return 3 })
	c2 := ThenFunc(c, func(ctx context.Context, i int) int { return i * 32 })
	c3 := ThenFunc(c2, func(ctx context.Context, i int) string { return strconv.Itoa(i) })

	assert.Equal(t, 3, c.Transform(ctx, pied.Unit{}))
	assert.Equal(t, 96, c2.Transform(ctx, pied.Unit{}))
	assert.Equal(t, "96", c3.Transform(ctx, pied.Unit{}))
	assert.Equal(t, "96", c3.Pied().Transform(ctx, pied.Unit{}))
}

func TestThen_MatchesPipe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mul := pied.Func[int, int](func(ctx context.Context, i int) int { return i * 32 })
	str := pied.Func[int, string](func(ctx context.Context, i int) string { return strconv.Itoa(i) })

	built := Then(Then(Start[int, int](mul), mul), str)
	piped := pied.Pipe3(mul, mul, str)

	for _, x := range []int{1, 2, 3} {
		assert.Equal(t, piped.Transform(ctx, x), built.Transform(ctx, x))
	}
}

func TestAppend_BeyondFixedArity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inc := pied.Func[int, int](func(ctx context.Context, i int) int { return i + 1 })
	c := Start[int, int](inc)
	for range 19 {
		c = c.Append(inc)
	}

	assert.Equal(t, 20, c.Transform(ctx, 0))
}

func TestEnsure_SideEffectKeepsValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []int
	c := FromFunc(func(ctx context.Context, i int) int { return i * 2 }).
		Ensure(func(ctx context.Context, out int) { seen = append(seen, out) })

	assert.Equal(t, 10, c.Transform(ctx, 5))
	assert.Equal(t, 14, c.Transform(ctx, 7))
	assert.Equal(t, []int{10, 14}, seen)
}

func TestFinally_Sink(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var got []int
	p := Finally(FromProducer(func(ctx context.Context) int { return 3 }),
		func(ctx context.Context, n int) { got = append(got, n) })

	assert.Equal(t, pied.Unit{}, p.Transform(ctx, pied.Unit{}))
	assert.Equal(t, []int{3}, got)
}

func TestChain_IsAStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := FromFunc(func(ctx context.Context, s string) int { return len(s) })
	var s pied.Stage[string, int] = c

	p := pied.Pipe2(s, pied.Func[int, bool](func(ctx context.Context, n int) bool { return n > 2 }))

	assert.True(t, p.Transform(ctx, "abc"))
	assert.False(t, p.Transform(ctx, "ab"))
}
