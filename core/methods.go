// SPDX-License-Identifier: MIT

// File: methods.go
// Role: mutation surface: AddEdge, RemoveEdge, AddVertices.
// The store does the heavy lifting; this layer translates the 1-based
// vertex convention into matrix coordinates (column = source,
// row = destination) and enforces the symmetry rule.

package core

import "fmt"

// AddEdge sets the weight of the edge u→v (both directions for an
// undirected graph, the single diagonal entry for a self-loop) and
// reports whether a new edge was created, as opposed to an existing
// edge's weight being updated.
//
// A weight of exactly 0 is a silent no-op returning (false, nil):
// zero-weight edges are unsupported by contract.
//
// Complexity: O(log k) on overwrite, O(nnz) worst case on insert.
func (g *Graph) AddEdge(u, v int, weight float64) (bool, error) {
	if err := g.checkVertex(u); err != nil {
		return false, fmt.Errorf("AddEdge: %w", err)
	}
	if err := g.checkVertex(v); err != nil {
		return false, fmt.Errorf("AddEdge: %w", err)
	}
	if weight == 0 {
		return false, nil // documented no-op, not an error
	}

	row, col := v-1, u-1
	present, err := g.mat.Has(row, col)
	if err != nil {
		return false, err
	}
	if err = g.mat.Set(row, col, weight); err != nil {
		return false, err
	}
	if !g.directed && u != v {
		// Mirror write keeps the matrix equal to its transpose. A failure
		// between the two writes leaves the graph inconsistent; per the
		// resource model that is fatal to the instance.
		if err = g.mat.Set(col, row, weight); err != nil {
			return false, err
		}
	}

	return !present, nil
}

// RemoveEdge deletes the edge u→v (both symmetric entries for an
// undirected graph, the single diagonal entry for a self-loop) and
// reports whether an edge existed. Removing an absent edge is a
// boolean false, never an error.
// Complexity: O(nnz) worst case (store shift).
func (g *Graph) RemoveEdge(u, v int) (bool, error) {
	if err := g.checkVertex(u); err != nil {
		return false, fmt.Errorf("RemoveEdge: %w", err)
	}
	if err := g.checkVertex(v); err != nil {
		return false, fmt.Errorf("RemoveEdge: %w", err)
	}

	existed, err := g.mat.Delete(v-1, u-1)
	if err != nil {
		return false, err
	}
	if existed && !g.directed && u != v {
		if _, err = g.mat.Delete(u-1, v-1); err != nil {
			return false, err
		}
	}

	return existed, nil
}

// AddVertices grows the vertex count by k. Every existing edge keeps
// its weight; the new vertices start isolated. k must be non-negative:
// vertex removal is unsupported, shrinking requires an external rebuild.
// Complexity: O(k) amortized.
func (g *Graph) AddVertices(k int) error {
	if k < 0 {
		return fmt.Errorf("AddVertices(%d): %w", k, ErrNegativeGrowth)
	}

	return g.mat.Grow(g.mat.Dim() + k)
}
