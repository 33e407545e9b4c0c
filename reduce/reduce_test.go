package reduce_test

import (
	"testing"

	"github.com/katalvlaran/dgon/divisor"
	"github.com/katalvlaran/dgon/graph"
	"github.com/katalvlaran/dgon/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cycle(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%n))
	}
	require.NoError(t, g.Validate(true))

	return g
}

func k4(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.Validate(true))

	return g
}

func TestReduce_Idempotent(t *testing.T) {
	g := cycle(t, 6)
	ctx := reduce.NewContext(g.N())
	d := divisor.Divisor{0, 3, 0, 0, 0, 0}
	once := ctx.Reduce(g, d, 0, nil)
	twice := ctx.Reduce(g, once, 0, nil)
	assert.True(t, once.Equal(twice))
}

func TestReduce_Canonicalizes(t *testing.T) {
	// Two linearly equivalent divisors reduce to the same representative.
	g := cycle(t, 6)
	ctx := reduce.NewContext(g.N())
	d1 := divisor.Divisor{1, 0, 0, 1, 0, 0}
	d2 := d1.Clone()
	divisor.Fire(g, d2, []int{0, 3, 4, 5}) // equivalent and still effective: [0, 1, 1, 0, 0, 0]
	r1 := ctx.Reduce(g, d1, 0, nil)
	r2 := ctx.Reduce(g, d2, 0, nil)
	assert.True(t, r1.Equal(r2))
}

func TestReduce_ScriptZeroAtTarget(t *testing.T) {
	g := k4(t)
	ctx := reduce.NewContext(g.N())
	d := divisor.Divisor{0, 3, 0, 0}
	script := divisor.New(g.N())
	_ = ctx.Reduce(g, d, 0, script)
	assert.Equal(t, 0, script[0])
}

func TestIsReduced_MatchesBurn(t *testing.T) {
	g := cycle(t, 4)
	ctx := reduce.NewContext(g.N())
	assert.True(t, ctx.IsReduced(g, divisor.Divisor{2, 0, 0, 0}, 0))
	assert.False(t, ctx.IsReduced(g, divisor.Divisor{0, 1, 0, 1}, 0))
}

func TestHasPositiveRank_K4_ThreeChipsSpread(t *testing.T) {
	g := k4(t)
	ctx := reduce.NewContext(g.N())
	assert.True(t, ctx.HasPositiveRank(g, divisor.Divisor{1, 1, 1, 0}))
}

func TestHasPositiveRank_Monotone(t *testing.T) {
	g := k4(t)
	ctx := reduce.NewContext(g.N())
	d := divisor.Divisor{1, 1, 1, 0}
	require.True(t, ctx.HasPositiveRank(g, d))
	bigger := divisor.Divisor{2, 1, 1, 0}
	assert.True(t, ctx.HasPositiveRank(g, bigger))
}

func TestHasPositiveRank_ZeroDivisorOnMultiVertexGraph(t *testing.T) {
	g := cycle(t, 6)
	ctx := reduce.NewContext(g.N())
	assert.False(t, ctx.HasPositiveRank(g, divisor.New(g.N())))
}

func TestHasPositiveRank_SingleVertex(t *testing.T) {
	g, err := graph.NewGraph(1)
	require.NoError(t, err)
	require.NoError(t, g.Validate(true))
	ctx := reduce.NewContext(g.N())
	assert.True(t, ctx.HasPositiveRank(g, divisor.Divisor{1}))
}
