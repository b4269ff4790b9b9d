// SPDX-License-Identifier: MIT

// File: graph.go
// Role: Graph type, constructors (empty, from edge list, from matrix)
// and the basic capability getters the external collaborators consume.

package core

import (
	"fmt"

	"github.com/katalvlaran/swgraph/sparse"
)

// Graph is a weighted graph over a column-compressed sparse weight
// matrix. The directed tag decides how AddEdge and RemoveEdge project
// onto the store; everything else is shared between the two variants.
type Graph struct {
	mat      *sparse.Matrix // square N×N weight store; symmetric when !directed
	directed bool
}

// NewUndirected returns an empty undirected graph with n vertices.
// Complexity: O(n).
func NewUndirected(n int) (*Graph, error) {
	m, err := sparse.New(n)
	if err != nil {
		return nil, err
	}

	return &Graph{mat: m, directed: false}, nil
}

// NewDirected returns an empty directed graph with n vertices.
// Complexity: O(n).
func NewDirected(n int) (*Graph, error) {
	m, err := sparse.New(n)
	if err != nil {
		return nil, err
	}

	return &Graph{mat: m, directed: true}, nil
}

// NewUndirectedFromEdges builds an undirected graph from an edge list.
// The vertex count is the largest endpoint mentioned. Zero-weight edges
// are skipped (the AddEdge no-op rule); a repeated position overwrites
// the earlier weight, last writer wins.
// Complexity: O(m·nnz) worst case; fine for batch construction.
func NewUndirectedFromEdges(edges []Edge) (*Graph, error) {
	return fromEdges(edges, false)
}

// NewDirectedFromEdges builds a directed graph from an edge list, with
// the same endpoint validation and overwrite rules as the undirected
// constructor.
func NewDirectedFromEdges(edges []Edge) (*Graph, error) {
	return fromEdges(edges, true)
}

// fromEdges validates endpoints, sizes the matrix by the largest one
// and replays the list through AddEdge.
func fromEdges(edges []Edge, directed bool) (*Graph, error) {
	n := 0
	for _, e := range edges {
		if e.From < 1 || e.To < 1 {
			return nil, fmt.Errorf("core: edge (%d,%d): %w", e.From, e.To, ErrBadEdge)
		}
		if e.From > n {
			n = e.From
		}
		if e.To > n {
			n = e.To
		}
	}

	m, err := sparse.New(n)
	if err != nil {
		return nil, err
	}
	g := &Graph{mat: m, directed: directed}
	for _, e := range edges {
		if _, err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// NewUndirectedFromMatrix adopts m as the weight matrix of an
// undirected graph. The matrix must already be symmetric; asymmetric
// input is rejected with ErrNotSymmetric rather than silently summed
// (symmetrization by summation is the explicit directed-to-undirected
// conversion, see NewUndirectedFromDirected).
// Ownership of m transfers to the graph.
// Complexity: O(nnz log k) for the symmetry check.
func NewUndirectedFromMatrix(m *sparse.Matrix) (*Graph, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !m.Symmetric() {
		return nil, ErrNotSymmetric
	}

	return &Graph{mat: m, directed: false}, nil
}

// NewDirectedFromMatrix adopts m as the weight matrix of a directed
// graph. Ownership of m transfers to the graph.
// Complexity: O(1).
func NewDirectedFromMatrix(m *sparse.Matrix) (*Graph, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return &Graph{mat: m, directed: true}, nil
}

// Directed reports the graph variant.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns N, the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.mat.Dim() }

// Vertices enumerates the vertex indices 1..N in order.
// Complexity: O(n).
func (g *Graph) Vertices() []int {
	out := make([]int, g.mat.Dim())
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// Matrix exposes the underlying weight store. Callers must treat it as
// read-only; mutating it directly bypasses the symmetry invariant.
// Complexity: O(1).
func (g *Graph) Matrix() *sparse.Matrix { return g.mat }

// checkVertex validates a 1-based vertex index against [1, N].
func (g *Graph) checkVertex(v int) error {
	if v < 1 || v > g.mat.Dim() {
		return fmt.Errorf("core: vertex %d of %d: %w", v, g.mat.Dim(), ErrVertexRange)
	}

	return nil
}
