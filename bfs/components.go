package bfs

import "github.com/katalvlaran/wordchain/matrix"

// Connected reports whether every vertex of g is reachable from vertex 0.
//
// The graph with no vertices is connected (vacuously). A nil graph is
// treated as empty. A disconnected graph is the normal negative outcome and
// is reported as false; the only error is the context's.
//
// Time:   O(n²) on the adjacency matrix.
// Memory: O(n).
func Connected(g *matrix.Adjacency, opts ...Option) (bool, error) {
	n := g.Size()
	if n == 0 {
		return true, nil
	}
	res, err := BFS(g, 0, opts...)
	if err != nil {
		return false, err
	}

	return len(res.Order) == n, nil
}

// Components finds all connected components of g.
// Each component lists its vertices in BFS order from its smallest index;
// components are ordered by their smallest index.
//
// Edges are followed in the stored direction only, and never into a vertex
// that an earlier component already holds, so for a symmetric matrix these
// are the ordinary connected components.
//
// Time:   O(n²) in total; every adjacency row is scanned once.
// Memory: O(n) per component for its BFS result.
func Components(g *matrix.Adjacency, opts ...Option) ([][]int, error) {
	n := g.Size()
	if n == 0 {
		return nil, nil
	}
	base := DefaultOptions()
	for _, opt := range opts {
		opt(&base)
	}

	seen := make([]bool, n)
	walk := []Option{
		WithContext(base.Ctx),
		WithFollow(func(curr, next int) bool {
			return !seen[next] && base.Follow(curr, next)
		}),
	}

	var comps [][]int
	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		res, err := BFS(g, root, walk...)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}
