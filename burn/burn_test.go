package burn_test

import (
	"testing"

	"github.com/katalvlaran/dgon/burn"
	"github.com/katalvlaran/dgon/divisor"
	"github.com/katalvlaran/dgon/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c4(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 0))
	require.NoError(t, g.Validate(true))

	return g
}

func TestBurn_C4_Reduced(t *testing.T) {
	g := c4(t)
	ctx := burn.NewContext(g.N())
	d := divisor.Divisor{2, 0, 0, 0}
	f := ctx.Burn(g, d, 0)
	assert.Empty(t, f)
}

func TestBurn_C4_Blocked(t *testing.T) {
	g := c4(t)
	ctx := burn.NewContext(g.N())
	d := divisor.Divisor{0, 1, 0, 1}
	f := ctx.Burn(g, d, 0)
	assert.ElementsMatch(t, []int{1, 2, 3}, f)
}

func TestBurn_StartAlwaysBurnt_ChipIgnored(t *testing.T) {
	g := c4(t)
	ctx := burn.NewContext(g.N())
	// Even with a huge pile of chips on the start vertex itself, it is
	// irrelevant: only chips on OTHER vertices can block the fire.
	d := divisor.Divisor{1000, 0, 0, 0}
	f := ctx.Burn(g, d, 0)
	assert.Empty(t, f)
}

func TestBurn_IsolatedVertex(t *testing.T) {
	g, err := graph.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.Validate(true))
	ctx := burn.NewContext(g.N())
	d := divisor.Divisor{0, 0}
	f := ctx.Burn(g, d, 0)
	assert.Equal(t, []int{1}, f)
}

func TestBurn_ReusesScratchAcrossCalls(t *testing.T) {
	g := c4(t)
	ctx := burn.NewContext(g.N())
	_ = ctx.Burn(g, divisor.Divisor{0, 1, 0, 1}, 0)
	f := ctx.Burn(g, divisor.Divisor{2, 0, 0, 0}, 0)
	assert.Empty(t, f)
}
