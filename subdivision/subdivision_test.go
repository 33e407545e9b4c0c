package subdivision_test

import (
	"testing"

	"github.com/katalvlaran/dgon/graph"
	"github.com/katalvlaran/dgon/subdivision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(3)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.Validate(true))

	return g
}

func twoParallel(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.Validate(false))

	return g
}

func TestSubdivide_VertexAndEdgeCounts(t *testing.T) {
	g := triangle(t)
	h, err := subdivision.Subdivide(g, 3)
	require.NoError(t, err)

	assert.Equal(t, g.N()+g.EdgeCount()*2, h.N())
	assert.Equal(t, g.EdgeCount()*3, h.EdgeCount())
}

func TestSubdivide_IsAlwaysSimpleForMultigraph(t *testing.T) {
	g := twoParallel(t)
	assert.False(t, g.Simple())

	h, err := subdivision.Subdivide(g, 2)
	require.NoError(t, err)
	assert.True(t, h.Simple())
	assert.Equal(t, 4, h.N())
	assert.Equal(t, 4, h.EdgeCount())
}

func TestSubdivide_OriginalVerticesPreserveDegree(t *testing.T) {
	g := triangle(t)
	h, err := subdivision.Subdivide(g, 2)
	require.NoError(t, err)

	for v := 0; v < g.N(); v++ {
		assert.Equal(t, g.Degree(v), h.Degree(v))
	}
	for v := g.N(); v < h.N(); v++ {
		assert.Equal(t, 2, h.Degree(v))
	}
}

func TestSubdivide_RejectsOutOfRangeK(t *testing.T) {
	g := triangle(t)

	_, err := subdivision.Subdivide(g, 1)
	assert.ErrorIs(t, err, subdivision.ErrPartsPerEdgeOutOfRange)

	_, err = subdivision.Subdivide(g, subdivision.MaxPartsPerEdge+1)
	assert.ErrorIs(t, err, subdivision.ErrPartsPerEdgeOutOfRange)
}
