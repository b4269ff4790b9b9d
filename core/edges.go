// SPDX-License-Identifier: MIT

// File: edges.go
// Role: edge counting and enumeration. Enumeration order is the
// deterministic column-major order of the store: grouped by source,
// ascending destination inside each group. For undirected graphs each
// edge appears once, with From ≤ To.

package core

import "iter"

// EdgeCount returns the number of edges. Each undirected edge counts
// once regardless of its two stored entries; a self-loop counts once
// in either variant.
// Complexity: O(1) directed, O(n log k) undirected (diagonal probe).
func (g *Graph) EdgeCount() int {
	if g.directed {
		return g.mat.NNZ()
	}

	// Symmetric matrix: off-diagonal entries are stored twice, the
	// diagonal once.
	return (g.mat.NNZ() + g.mat.DiagonalNNZ()) / 2
}

// EdgeSeq returns a lazy, restartable sequence of the graph's edges in
// column-major order. The sequence is finite and re-iterable; breaking
// out of a range loop stops the underlying scan immediately.
// Complexity: O(nnz) per full iteration, no allocations.
func (g *Graph) EdgeSeq() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		g.mat.All(func(row, col int, v float64) bool {
			if !g.directed && row < col {
				return true // upper-triangle mirror; emitted from the lower side
			}

			return yield(Edge{From: col + 1, To: row + 1, Weight: v})
		})
	}
}

// Edges materializes EdgeSeq into a slice.
// Complexity: O(nnz).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for e := range g.EdgeSeq() {
		out = append(out, e)
	}

	return out
}
