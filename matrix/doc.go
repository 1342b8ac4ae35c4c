// Package matrix offers the boolean adjacency matrix used to represent
// the "one edit apart" relation between words.
//
// Adjacency stores an n×n boolean matrix in a single flat, row-major slice:
//
//   - O(1) edge lookups via At/Set, bounds-checked and returning
//     ErrIndexOutOfBounds instead of panicking.
//   - O(n²) memory, acceptable because the graphs fed to the exact
//     Hamiltonian-path solver are small by construction.
//   - Has(i, j) is the unchecked lookup for hot loops: bfs scans rows with
//     it in ascending index order, so traversals are deterministic.
//   - Neighbors(i), Clone and String are conveniences for callers and
//     tests; the solver itself never needs them.
//
// An empty (0×0) matrix is valid and represents the graph with no vertices.
//
// Build is the usual constructor: it evaluates a pairwise predicate for
// every ordered pair i ≠ j, which keeps the diagonal false.
package matrix
