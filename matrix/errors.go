// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All methods return these sentinels (optionally wrapped with method
// context via %w); tests match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that a negative vertex count was requested.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates that a nil *Adjacency was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// adjacencyErrorf wraps an underlying error with Adjacency method context.
func adjacencyErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Adjacency.%s(%d,%d): %w", method, row, col, err)
}
