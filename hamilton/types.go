package hamilton

import (
	"context"
	"errors"
	"fmt"
)

const (
	// DefaultMaxVertices is the vertex ceiling applied when no WithMaxVertices
	// option is given: 2²⁴ table rows of 4 bytes, 64 MiB.
	DefaultMaxVertices = 24

	// HardMaxVertices is the largest ceiling WithMaxVertices accepts.
	HardMaxVertices = 30
)

// Sentinel errors for the Hamiltonian path solver.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("hamilton: graph is nil")

	// ErrTooManyVertices is returned when the DP table for n vertices would
	// exceed the configured ceiling. Nothing is allocated in that case.
	ErrTooManyVertices = errors.New("hamilton: too many vertices for exact search")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hamilton: invalid option supplied")

	// ErrNotPermutation is returned by Verify when the order does not list
	// every vertex exactly once.
	ErrNotPermutation = errors.New("hamilton: order is not a permutation of the vertices")

	// ErrBrokenPath is returned by Verify when two consecutive vertices are not adjacent.
	ErrBrokenPath = errors.New("hamilton: consecutive vertices are not adjacent")
)

// Option configures Path via functional arguments.
type Option func(*Options)

// Options holds the solver configuration.
type Options struct {
	// MaxVertices is the largest vertex count Path will attempt.
	MaxVertices int

	// Ctx allows cooperative cancellation; it is polled every ctxPollEvery subsets.
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultMaxVertices and context.Background().
func DefaultOptions() Options {
	return Options{
		MaxVertices: DefaultMaxVertices,
		Ctx:         context.Background(),
	}
}

// WithMaxVertices sets the vertex ceiling.
//
//	1 ≤ k ≤ HardMaxVertices: accepted
//	otherwise:               ErrOptionViolation
func WithMaxVertices(k int) Option {
	return func(o *Options) {
		if k < 1 || k > HardMaxVertices {
			o.err = fmt.Errorf("%w: MaxVertices must be in [1,%d], got %d", ErrOptionViolation, HardMaxVertices, k)
			return
		}
		o.MaxVertices = k
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
