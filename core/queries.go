// SPDX-License-Identifier: MIT

// File: queries.go
// Role: read-only query surface: weight lookup, membership, degree and
// neighbor enumeration. This is the capability set the external
// algorithm collaborator consumes (see gonumadapter).

package core

import "fmt"

// Weight returns the stored weight of the edge u→v, or 0 when no edge
// is stored (the structural zero). Symmetric for undirected graphs by
// invariant.
// Complexity: O(log k).
func (g *Graph) Weight(u, v int) (float64, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, fmt.Errorf("Weight: %w", err)
	}
	if err := g.checkVertex(v); err != nil {
		return 0, fmt.Errorf("Weight: %w", err)
	}

	return g.mat.At(v-1, u-1)
}

// HasEdge reports whether the edge u→v is stored.
// Complexity: O(log k).
func (g *Graph) HasEdge(u, v int) (bool, error) {
	if err := g.checkVertex(u); err != nil {
		return false, fmt.Errorf("HasEdge: %w", err)
	}
	if err := g.checkVertex(v); err != nil {
		return false, fmt.Errorf("HasEdge: %w", err)
	}

	return g.mat.Has(v-1, u-1)
}

// Degree returns the number of distinct neighbors of v: the nonzero
// count of v's column. A self-loop counts once. For a directed graph
// this is the out-degree; see InNeighbors for the inbound side.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}

	return g.mat.ColumnNNZ(v - 1)
}

// Neighbors returns the distinct neighbors of v in ascending order.
// For an undirected graph column and row views coincide by symmetry;
// for a directed graph this is OutNeighbors.
// Complexity: O(degree).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}

	return g.columnNeighbors(v)
}

// OutNeighbors returns the vertices reachable by one edge out of v,
// ascending: the sorted row indices of column v, read contiguously.
// Complexity: O(degree).
func (g *Graph) OutNeighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, fmt.Errorf("OutNeighbors: %w", err)
	}

	return g.columnNeighbors(v)
}

// InNeighbors returns the vertices with an edge into v, ascending.
//
// This is the expensive direction of column-major storage: every
// column is probed for row v, a full-structure scan. Prefer
// OutNeighbors in hot paths, or maintain an external transposed index
// when inbound queries dominate.
// Complexity: O(N log k); O(degree) for undirected graphs (symmetry
// makes the column view equivalent).
func (g *Graph) InNeighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, fmt.Errorf("InNeighbors: %w", err)
	}
	if !g.directed {
		return g.columnNeighbors(v)
	}

	row := v - 1
	var in []int
	for col := 0; col < g.mat.Dim(); col++ {
		ok, err := g.mat.Has(row, col)
		if err != nil {
			return nil, err
		}
		if ok {
			in = append(in, col+1)
		}
	}

	return in, nil
}

// columnNeighbors maps the stored rows of column v to 1-based indices.
func (g *Graph) columnNeighbors(v int) ([]int, error) {
	rows, err := g.mat.ColumnRows(v - 1)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i]++
	}

	return rows, nil
}
