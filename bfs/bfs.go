package bfs

import (
	"fmt"

	"github.com/katalvlaran/wordchain/matrix"
)

// BFS walks g breadth-first from start and records visit order and depths.
//
// Neighbors are scanned in ascending index order, so Order is reproducible.
// The queue is a slice consumed through a head index; no recursion is used.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, or the context error.
// Time: O(n²) on the adjacency matrix. Memory: O(n).
func BFS(g *matrix.Adjacency, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrStartVertexNotFound, start, n)
	}

	res := &Result{
		Order: make([]int, 0, n),
		Depth: make([]int, n),
	}
	for v := range res.Depth {
		res.Depth[v] = -1
	}

	// Order doubles as the queue: every enqueued vertex is eventually visited.
	res.Depth[start] = 0
	res.Order = append(res.Order, start)
	for head := 0; head < len(res.Order); head++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		u := res.Order[head]
		for v := 0; v < n; v++ {
			if res.Depth[v] >= 0 || !g.Has(u, v) || !o.Follow(u, v) {
				continue
			}
			res.Depth[v] = res.Depth[u] + 1
			res.Order = append(res.Order, v)
		}
	}

	return res, nil
}
