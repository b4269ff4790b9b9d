// SPDX-License-Identifier: MIT

// Package sparse: Matrix type, constructor and read-only accessors.
// Mutations live in mutate.go, the position locator in locate.go,
// whole-matrix transforms in transform.go.

package sparse

import "fmt"

// Matrix is a square N×N column-compressed sparse store of float64
// weights. For each column j, the window rowIdx[colPtr[j]:colPtr[j+1]]
// holds the stored row indices in strictly ascending order, and
// values holds the weights aligned position by position.
//
// Invariants (maintained by every mutation):
//   - len(colPtr) == n+1, colPtr[0] == 0, colPtr monotone non-decreasing.
//   - len(rowIdx) == len(values) == colPtr[n] == NNZ.
//   - rows strictly ascending inside each column window.
//   - no stored value is zero.
type Matrix struct {
	n      int       // dimension (rows == cols == n)
	colPtr []int     // column boundaries, len n+1
	rowIdx []int     // stored row indices, column-major
	values []float64 // stored weights, aligned with rowIdx
}

// New returns an empty n×n matrix.
// Complexity: O(n).
func New(n int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("sparse.New(%d): %w", n, ErrInvalidDimensions)
	}

	return &Matrix{
		n:      n,
		colPtr: make([]int, n+1),
		rowIdx: make([]int, 0),
		values: make([]float64, 0),
	}, nil
}

// Dim returns the matrix dimension N.
// Complexity: O(1).
func (m *Matrix) Dim() int { return m.n }

// NNZ returns the number of stored (nonzero) entries.
// Complexity: O(1).
func (m *Matrix) NNZ() int { return m.colPtr[m.n] }

// checkIndex validates a (row, col) pair against [0, N).
func (m *Matrix) checkIndex(row, col int) error {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return ErrOutOfRange
	}

	return nil
}

// At returns the stored weight at (row, col), or 0 when the entry is
// structurally absent. It never fails for in-range indices.
// Complexity: O(log k), k = nonzeros in column col.
func (m *Matrix) At(row, col int) (float64, error) {
	if err := m.checkIndex(row, col); err != nil {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, err)
	}
	pos, ok := m.locate(row, col)
	if !ok {
		return 0, nil // structural zero
	}

	return m.values[pos], nil
}

// Has reports whether an entry is stored at (row, col).
// Complexity: O(log k).
func (m *Matrix) Has(row, col int) (bool, error) {
	if err := m.checkIndex(row, col); err != nil {
		return false, fmt.Errorf("Matrix.Has(%d,%d): %w", row, col, err)
	}
	_, ok := m.locate(row, col)

	return ok, nil
}

// ColumnNNZ returns the number of stored entries in column col.
// Complexity: O(1).
func (m *Matrix) ColumnNNZ(col int) (int, error) {
	if col < 0 || col >= m.n {
		return 0, fmt.Errorf("Matrix.ColumnNNZ(%d): %w", col, ErrOutOfRange)
	}

	return m.colPtr[col+1] - m.colPtr[col], nil
}

// ColumnRows returns a fresh slice with the stored row indices of
// column col, ascending. Mutating the result does not affect the matrix.
// Complexity: O(k).
func (m *Matrix) ColumnRows(col int) ([]int, error) {
	if col < 0 || col >= m.n {
		return nil, fmt.Errorf("Matrix.ColumnRows(%d): %w", col, ErrOutOfRange)
	}
	lo, hi := m.colPtr[col], m.colPtr[col+1]
	out := make([]int, hi-lo)
	copy(out, m.rowIdx[lo:hi])

	return out, nil
}

// DiagonalNNZ returns the number of stored diagonal entries.
// Complexity: O(n log k).
func (m *Matrix) DiagonalNNZ() int {
	count := 0
	for j := 0; j < m.n; j++ {
		if _, ok := m.locate(j, j); ok {
			count++
		}
	}

	return count
}

// All visits every stored entry in column-major order (column ascending,
// rows ascending inside each column) and calls fn(row, col, v).
// Iteration stops early when fn returns false.
// Complexity: O(nnz), no allocations.
func (m *Matrix) All(fn func(row, col int, v float64) bool) {
	var j, p int
	for j = 0; j < m.n; j++ {
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			if !fn(m.rowIdx[p], j, m.values[p]) {
				return
			}
		}
	}
}
