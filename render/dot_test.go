package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/wordchain/render"
	"github.com/katalvlaran/wordchain/wordchain"
	"github.com/stretchr/testify/require"
)

func TestToDOT_Chain(t *testing.T) {
	res, err := wordchain.Solve([]string{"cat", "dog", "cot", "dot"})
	require.NoError(t, err)
	require.True(t, res.Found())

	dot := render.ToDOT(res, render.Options{Detailed: true})
	require.True(t, strings.HasPrefix(dot, "graph G {\n"))
	require.True(t, strings.HasSuffix(dot, "}\n"))
	for i := range res.Words {
		require.Contains(t, dot, "  n"+string(rune('0'+i))+" [")
	}
	// cat–cot, cot–dot and dot–dog are the only edges; all are on the chain.
	require.Equal(t, 3, strings.Count(dot, "penwidth=3"))
	require.Contains(t, dot, `label="1. `)
}

func TestToDOT_NoChain(t *testing.T) {
	res, err := wordchain.Solve([]string{"cats", "at", "cat", "cot"})
	require.NoError(t, err)
	require.False(t, res.Found())

	dot := render.ToDOT(res, render.Options{})
	require.NotContains(t, dot, "penwidth")
	require.Equal(t, 3, strings.Count(dot, " -- "))
	require.Contains(t, dot, `n0 [label="cats"]`)
}

func TestSVG(t *testing.T) {
	res, err := wordchain.Solve([]string{"hat", "hot"})
	require.NoError(t, err)

	svg, err := render.SVG(context.Background(), render.ToDOT(res, render.Options{}))
	require.NoError(t, err)
	require.Contains(t, string(svg), "<svg")
}
