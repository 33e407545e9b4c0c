package divisor_test

import (
	"testing"

	"github.com/katalvlaran/dgon/divisor"
	"github.com/katalvlaran/dgon/graph"
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

func TestDegreeAndEffective(t *testing.T) {
	d := divisor.Divisor{2, 0, -1, 3}
	assert.Equal(t, 4, d.Degree())
	assert.False(t, d.Effective())

	d2 := divisor.Divisor{2, 0, 1, 3}
	assert.True(t, d2.Effective())
}

func TestCloneIsIndependent(t *testing.T) {
	d := divisor.Divisor{1, 2, 3}
	c := d.Clone()
	c[0] = 99
	assert.Equal(t, 1, d[0])
	assert.True(t, d.Equal(divisor.Divisor{1, 2, 3}))
}

func TestFire_MultigraphParallelEdges(t *testing.T) {
	// Two vertices joined by 3 parallel edges: firing vertex 0 sends 3 chips to 1.
	g, err := graph.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.Validate(false))

	d := divisor.Divisor{3, 0}
	divisor.FireVertex(g, d, 0)
	assert.Equal(t, divisor.Divisor{0, 3}, d)
}

func TestFire_CycleConservesDegree(t *testing.T) {
	g := cycle(t, 6)
	d := divisor.Divisor{1, 0, 0, 1, 0, 0}
	before := d.Clone().Degree()
	divisor.Fire(g, d, []int{0, 3})
	assert.Equal(t, before, d.Degree())
}

func TestString(t *testing.T) {
	d := divisor.Divisor{1, 0, 2}
	assert.Equal(t, "[1, 0, 2]", d.String())
}
