// SPDX-License-Identifier: MIT

// File: conversions.go
// Role: the conversion layer between the two graph variants. Both
// converters operate directly on the underlying matrices.

package core

// NewUndirectedFromDirected converts a directed graph into a new
// undirected graph by symmetrization: the result matrix is the directed
// matrix plus its transpose, so opposite-direction edges between the
// same pair combine by addition (weights 3 and 4 become one undirected
// edge of weight 7), a one-directional edge becomes symmetric with its
// own weight, and a self-loop keeps its weight once.
//
// The round trip directed→undirected→directed is lossy whenever
// opposite-direction weights differed; that is the documented
// summation semantics, not a defect.
//
// Complexity: O(n + nnz).
func NewUndirectedFromDirected(g *Graph) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.directed {
		return &Graph{mat: g.mat.Clone(), directed: false}, nil
	}

	return &Graph{mat: g.mat.AddTranspose(), directed: false}, nil
}

// NewDirectedFromUndirected converts an undirected graph into a new
// directed graph by copying the symmetric matrix as-is: every
// undirected edge is already represented once per direction, so no
// duplication step is needed.
// Complexity: O(n + nnz).
func NewDirectedFromUndirected(g *Graph) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Graph{mat: g.mat.Clone(), directed: true}, nil
}
