package graph6_test

import (
	"testing"

	"github.com/katalvlaran/dgon/graph"
	"github.com/katalvlaran/dgon/graph6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestEncodeDecode_RoundTrip_K4(t *testing.T) {
	g := k4(t)
	s, err := graph6.Encode(g)
	require.NoError(t, err)

	back, err := graph6.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, g.N(), back.N())
	assert.Equal(t, g.AdjacencyMatrix(), back.AdjacencyMatrix())
}

func TestEncode_EmptyGraph(t *testing.T) {
	g, err := graph.NewGraph(0)
	require.NoError(t, err)
	require.NoError(t, g.Validate(true))
	s, err := graph6.Encode(g)
	require.NoError(t, err)
	assert.Equal(t, "?", s)
}

func TestEncode_RejectsMultigraph(t *testing.T) {
	g, err := graph.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.Validate(false))
	_, err = graph6.Encode(g)
	assert.ErrorIs(t, err, graph6.ErrNotSimple)
}

func TestDecode_EmptyInput(t *testing.T) {
	_, err := graph6.Decode("")
	assert.ErrorIs(t, err, graph6.ErrEmptyInput)
}

func TestDecode_BadByte(t *testing.T) {
	_, err := graph6.Decode("\x01\x02")
	assert.ErrorIs(t, err, graph6.ErrBadByte)
}

func TestDecode_SingleVertexNoEdges(t *testing.T) {
	g, err := graph.NewGraph(1)
	require.NoError(t, err)
	require.NoError(t, g.Validate(true))
	s, err := graph6.Encode(g)
	require.NoError(t, err)

	back, err := graph6.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, 1, back.N())
	assert.Equal(t, 0, back.EdgeCount())
}

func TestEncodeDecode_LargerN(t *testing.T) {
	// n = 70 exercises the 0x7e-escaped, 18-bit vertex-count path.
	g, err := graph.NewGraph(70)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 69))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.Validate(true))

	s, err := graph6.Encode(g)
	require.NoError(t, err)
	back, err := graph6.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, 70, back.N())
	assert.Equal(t, 2, back.EdgeCount())
}
