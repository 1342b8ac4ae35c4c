package wordchain

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/wordchain/hamilton"
)

// Option configures Solve and Chain via functional arguments.
type Option func(*Options)

// Options holds the orchestrator configuration.
type Options struct {
	// MaxWords is the largest input Solve accepts; see hamilton.WithMaxVertices.
	MaxWords int

	// Logger receives debug-level progress; discarded by default.
	Logger *log.Logger

	// Ctx allows cancellation of the exponential search.
	Ctx context.Context

	err error
}

// DefaultOptions returns Options with hamilton.DefaultMaxVertices, a
// discarding logger and context.Background().
func DefaultOptions() Options {
	return Options{
		MaxWords: hamilton.DefaultMaxVertices,
		Logger:   log.New(io.Discard),
		Ctx:      context.Background(),
	}
}

// WithMaxWords sets the word-count ceiling, 1 ≤ k ≤ hamilton.HardMaxVertices.
func WithMaxWords(k int) Option {
	return func(o *Options) {
		if k < 1 || k > hamilton.HardMaxVertices {
			o.err = fmt.Errorf("%w: MaxWords must be in [1,%d], got %d", ErrOptionViolation, hamilton.HardMaxVertices, k)
			return
		}
		o.MaxWords = k
	}
}

// WithLogger routes progress messages to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
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

// buildOptions applies opts over DefaultOptions and surfaces any recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
