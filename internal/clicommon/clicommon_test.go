package clicommon_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/dgon/divisor"
	"github.com/katalvlaran/dgon/graph"
	"github.com/katalvlaran/dgon/internal/clicommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseK_Valid(t *testing.T) {
	k, err := clicommon.ParseK("3", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, k)
}

func TestParseK_OutOfRange(t *testing.T) {
	_, err := clicommon.ParseK("11", 1, 10)
	assert.Error(t, err)
}

func TestParseK_NotRoundTripping(t *testing.T) {
	_, err := clicommon.ParseK("03", 1, 10)
	assert.Error(t, err)
}

func TestFormatDivisor(t *testing.T) {
	d := divisor.Divisor{1, 0, 2}
	assert.Equal(t, "[1, 0, 2]", clicommon.FormatDivisor(d))
}

func TestReadGraphs_Graph6(t *testing.T) {
	// K3 in graph6: n=3, upper triangle all set -> "B" + writeR([true,true,true])
	var got []int
	err := clicommon.ReadGraphs(strings.NewReader("Bw\n"), true, func(g *graph.Graph) error {
		got = append(got, g.N())

		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0])
}

func TestReadGraphs_Plain(t *testing.T) {
	input := "K3\n3 3\n0 1\n0 2\n1 2\n"
	var got []string
	err := clicommon.ReadGraphs(strings.NewReader(input), false, func(g *graph.Graph) error {
		got = append(got, g.Name())

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"K3"}, got)
}
