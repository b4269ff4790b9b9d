// SPDX-License-Identifier: MIT

package sparse

import "errors"

var (
	// ErrInvalidDimensions indicates a negative matrix dimension was requested.
	ErrInvalidDimensions = errors.New("sparse: dimension must be non-negative")

	// ErrOutOfRange indicates that a row or column index is outside [0, N).
	// Public accessors return this sentinel; they never panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrShrink indicates an attempt to grow the matrix to a smaller
	// dimension. Vertex removal is unsupported by design; rebuild instead.
	ErrShrink = errors.New("sparse: matrix cannot shrink")
)
