package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is outside [0, n).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures a traversal via functional arguments.
type Option func(*Options)

// Options holds the traversal parameters.
type Options struct {
	// Ctx is checked before each vertex is dequeued.
	Ctx context.Context

	// Follow reports whether the edge curr→next may be taken.
	// Components uses it to keep a walk out of components already collected.
	Follow func(curr, next int) bool
}

// DefaultOptions returns Options with context.Background() and every edge followed.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Follow: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFollow restricts the traversal to edges for which fn returns true.
func WithFollow(fn func(curr, next int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Follow = fn
		}
	}
}

// Result holds the outcome of a traversal from one start vertex.
type Result struct {
	// Order lists the reached vertices in visit sequence, start first.
	Order []int

	// Depth[v] is the edge distance from the start, or -1 if v was not reached.
	Depth []int
}

// Eccentricity returns the largest depth among reached vertices.
func (r *Result) Eccentricity() int {
	if len(r.Order) == 0 {
		return 0
	}
	// Order is non-decreasing in depth.
	return r.Depth[r.Order[len(r.Order)-1]]
}
