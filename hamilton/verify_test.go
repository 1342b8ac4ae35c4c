package hamilton_test

import (
	"testing"

	"github.com/katalvlaran/wordchain/hamilton"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	g := undirected(t, 3, [2]int{0, 1}, [2]int{1, 2})

	require.NoError(t, hamilton.Verify(g, []int{0, 1, 2}))
	require.NoError(t, hamilton.Verify(g, []int{2, 1, 0}))

	require.ErrorIs(t, hamilton.Verify(nil, nil), hamilton.ErrGraphNil)
	require.ErrorIs(t, hamilton.Verify(g, []int{0, 1}), hamilton.ErrNotPermutation)
	require.ErrorIs(t, hamilton.Verify(g, []int{0, 1, 1}), hamilton.ErrNotPermutation)
	require.ErrorIs(t, hamilton.Verify(g, []int{0, 1, 3}), hamilton.ErrNotPermutation)
	require.ErrorIs(t, hamilton.Verify(g, []int{1, 0, 2}), hamilton.ErrBrokenPath)

	require.NoError(t, hamilton.Verify(undirected(t, 0), nil))
}
