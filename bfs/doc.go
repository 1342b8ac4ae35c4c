// Package bfs provides breadth-first search over a matrix.Adjacency and the
// connectivity gate used before any Hamiltonian-path search.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex
//     and returns a Result with the visit Order and each vertex's Depth
//     (-1 if unreached). Result.Eccentricity is the largest depth.
//   - Connected reports whether every vertex is reachable from vertex 0.
//   - Components lists every connected component, each found by one BFS.
//
// Why
//
//   - A Hamiltonian path visits every vertex, so a disconnected graph can
//     be rejected in O(n²) before the exponential solver runs.
//   - The traversal uses an explicit queue; there is no recursion, so the
//     vertex count is never limited by call-stack depth.
//
// Determinism
//
//	Neighbors are scanned in ascending index order, so the visit sequence is
//	fully reproducible.
//
// Complexity (n = vertex count)
//
//   - Time:   O(n²)   (each adjacency row scanned once)
//   - Memory: O(n)    (Order, Depth)
//
// Usage
//
//	ok, err := bfs.Connected(g, bfs.WithContext(ctx))
//	if err != nil {
//	    // ctx.Err()
//	}
//	if !ok {
//	    // no Hamiltonian path can exist
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil (BFS only).
//   - ErrStartVertexNotFound  if the start index is outside [0, n).
//   - The context error when WithContext's context is done.
package bfs
