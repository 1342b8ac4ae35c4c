package bfs_test

import (
	"context"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/wordchain/bfs"
	"github.com/katalvlaran/wordchain/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// connected and components unwrap the error for table-style assertions.
func connected(t *testing.T, g *matrix.Adjacency) bool {
	t.Helper()
	ok, err := bfs.Connected(g)
	require.NoError(t, err)
	return ok
}

func components(t *testing.T, g *matrix.Adjacency) [][]int {
	t.Helper()
	comps, err := bfs.Components(g)
	require.NoError(t, err)
	return comps
}

func TestConnected(t *testing.T) {
	require.True(t, connected(t, undirected(t, 0)), "empty graph is vacuously connected")
	require.True(t, connected(t, nil), "nil graph is treated as empty")
	require.True(t, connected(t, undirected(t, 1)))
	require.False(t, connected(t, undirected(t, 2)))
	require.True(t, connected(t, undirected(t, 3, [2]int{0, 2}, [2]int{2, 1})))
	require.False(t, connected(t, undirected(t, 4, [2]int{0, 1}, [2]int{2, 3})))

	// A cycle must terminate and still be connected.
	require.True(t, connected(t, undirected(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})))
}

// TestConnected_Deep runs a long path that would be deep for a recursive walk.
func TestConnected_Deep(t *testing.T) {
	const n = 5000
	edges := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	require.True(t, connected(t, undirected(t, n, edges...)))
}

func TestComponents(t *testing.T) {
	g := undirected(t, 6, [2]int{0, 3}, [2]int{3, 5}, [2]int{1, 4})
	require.Equal(t, [][]int{{0, 3, 5}, {1, 4}, {2}}, components(t, g))

	require.Nil(t, components(t, undirected(t, 0)))
	require.Nil(t, components(t, nil))
}

// TestComponents_Directed checks that a later root does not walk back into
// a component collected earlier.
func TestComponents_Directed(t *testing.T) {
	g, err := matrix.NewAdjacency(3)
	require.NoError(t, err)
	require.NoError(t, g.Set(2, 0, true))
	require.NoError(t, g.Set(2, 1, true))
	require.Equal(t, [][]int{{0}, {1}, {2}}, components(t, g))
}

func TestComponents_Follow(t *testing.T) {
	g := undirected(t, 3, [2]int{0, 1}, [2]int{1, 2})
	comps, err := bfs.Components(g, bfs.WithFollow(func(curr, next int) bool {
		return curr+next != 3 // drop the 1–2 edge
	}))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {2}}, comps)
}

func TestConnectedAndComponents_Cancelled(t *testing.T) {
	g := undirected(t, 4, [2]int{0, 1}, [2]int{2, 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := bfs.Connected(g, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, ok)

	comps, err := bfs.Components(g, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, comps)
}

// TestComponents_AgainstGonum compares component partitions with gonum's
// topo.ConnectedComponents on random sparse graphs.
func TestComponents_AgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(20)
		ref := simple.NewUndirectedGraph()
		for i := 0; i < n; i++ {
			ref.AddNode(simple.Node(i))
		}
		g, err := matrix.Build(n, func(i, j int) bool {
			return (i*31+j*17+trial)%11 == 0 || (j*31+i*17+trial)%11 == 0
		})
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if g.Has(i, j) {
					ref.SetEdge(ref.NewEdge(simple.Node(i), simple.Node(j)))
				}
			}
		}

		want := make([][]int, 0)
		for _, comp := range topo.ConnectedComponents(ref) {
			ids := make([]int, len(comp))
			for k, node := range comp {
				ids[k] = int(node.ID())
			}
			slices.Sort(ids)
			want = append(want, ids)
		}
		got := make([][]int, 0)
		for _, comp := range components(t, g) {
			ids := slices.Clone(comp)
			slices.Sort(ids)
			got = append(got, ids)
		}
		byFirst := func(a, b []int) int { return a[0] - b[0] }
		slices.SortFunc(want, byFirst)
		slices.SortFunc(got, byFirst)

		require.Equal(t, want, got, "trial %d, n=%d", trial, n)
		require.Equal(t, len(want) == 1, connected(t, g))
	}
}
