// SPDX-License-Identifier: MIT

package core

import "errors"

var (
	// ErrVertexRange indicates a vertex index outside [1, N].
	ErrVertexRange = errors.New("core: vertex index out of range")

	// ErrBadEdge indicates a list constructor was fed an edge with a
	// non-positive endpoint.
	ErrBadEdge = errors.New("core: edge endpoint must be positive")

	// ErrNotSymmetric indicates an asymmetric matrix was adopted as an
	// undirected weight matrix.
	ErrNotSymmetric = errors.New("core: weight matrix is not symmetric")

	// ErrNilGraph indicates a nil *Graph passed into a converter.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNilMatrix indicates a nil *sparse.Matrix passed into a constructor.
	ErrNilMatrix = errors.New("core: matrix is nil")

	// ErrNegativeGrowth indicates AddVertices was called with k < 0.
	ErrNegativeGrowth = errors.New("core: vertex count can only grow")
)
