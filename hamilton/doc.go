// Package hamilton finds a Hamiltonian path in a small graph exactly.
//
// It includes:
//
//   - Path — the classic bitmask dynamic program over vertex subsets.
//
//   - Complexity: O(n²·2ⁿ) in the textbook form; the table keeps one
//     n-bit row per subset, so the inner scan over predecessors is a
//     single mask test and the fill runs in O(n·2ⁿ) word operations.
//
//   - Memory:     O(n·2ⁿ) bits, 4·2ⁿ bytes (see TableBytes)
//
//   - Verify — checks that an order is a permutation of all vertices
//     whose consecutive entries are adjacent.
//
// Path works on a *matrix.Adjacency. An edge j→i is required to step from
// j to i; for the symmetric matrices built from an undirected relation this
// is the ordinary undirected Hamiltonian path.
//
// "No path" is not an error: Path returns an empty order. The only
// distinguishable failures are a nil graph, invalid options, cancellation,
// and ErrTooManyVertices, which is returned before the table is allocated
// whenever n exceeds the configured ceiling (DefaultMaxVertices unless
// overridden with WithMaxVertices).
//
// Use this package for instances up to a couple of dozen vertices; beyond
// that the table no longer fits in memory.
package hamilton
