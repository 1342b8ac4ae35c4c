package hamilton

import (
	"fmt"

	"github.com/katalvlaran/wordchain/matrix"
)

// Verify checks that order is a Hamiltonian path of g: a permutation of
// 0..n-1 in which every consecutive pair order[k-1]→order[k] is an edge.
//
// Returns ErrGraphNil, ErrNotPermutation or ErrBrokenPath (wrapped with
// the offending position), or nil.
// Complexity: O(n).
func Verify(g *matrix.Adjacency, order []int) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.Size()
	if len(order) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(order), n)
	}

	seen := make([]bool, n)
	for k, v := range order {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: vertex %d at position %d out of range", ErrNotPermutation, v, k)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %d repeated at position %d", ErrNotPermutation, v, k)
		}
		seen[v] = true
		if k > 0 && !g.Has(order[k-1], v) {
			return fmt.Errorf("%w: %d→%d at position %d", ErrBrokenPath, order[k-1], v, k)
		}
	}

	return nil
}
