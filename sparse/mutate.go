// SPDX-License-Identifier: MIT

// Package sparse: mutating operations. Set and Delete preserve the CSC
// invariants documented on Matrix; Grow extends the dimension without
// touching stored entries.

package sparse

import "fmt"

// Set stores v at (row, col).
//
// An existing entry is overwritten in place, O(log k). An absent entry
// is inserted at its sorted position: all row/value data stored after
// the insertion point shifts one slot right and every later column
// boundary is incremented. O(nnz) worst case, the fundamental cost
// model of a column-compressed store.
//
// Set(row, col, 0) deletes the entry instead: the store never holds an
// explicit zero, keeping "stored weight" and "nonzero" synonymous.
func (m *Matrix) Set(row, col int, v float64) error {
	if err := m.checkIndex(row, col); err != nil {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", row, col, err)
	}
	if v == 0 {
		_, err := m.Delete(row, col)

		return err
	}

	pos, ok := m.locate(row, col)
	if ok {
		m.values[pos] = v // overwrite in place

		return nil
	}

	// Insert at pos: extend by one slot, shift the tail right.
	m.rowIdx = append(m.rowIdx, 0)
	copy(m.rowIdx[pos+1:], m.rowIdx[pos:])
	m.rowIdx[pos] = row

	m.values = append(m.values, 0)
	copy(m.values[pos+1:], m.values[pos:])
	m.values[pos] = v

	// Bump the boundary of every column after col.
	for j := col + 1; j <= m.n; j++ {
		m.colPtr[j]++
	}

	return nil
}

// Delete removes the entry at (row, col) and reports whether one
// existed. The symmetric inverse of insertion: the tail shifts one slot
// left and every later column boundary is decremented.
// Complexity: O(log k) lookup + O(nnz) shift.
func (m *Matrix) Delete(row, col int) (bool, error) {
	if err := m.checkIndex(row, col); err != nil {
		return false, fmt.Errorf("Matrix.Delete(%d,%d): %w", row, col, err)
	}
	pos, ok := m.locate(row, col)
	if !ok {
		return false, nil
	}

	m.rowIdx = append(m.rowIdx[:pos], m.rowIdx[pos+1:]...)
	m.values = append(m.values[:pos], m.values[pos+1:]...)
	for j := col + 1; j <= m.n; j++ {
		m.colPtr[j]--
	}

	return true, nil
}

// Grow extends the matrix to newN×newN, preserving all stored entries.
// New rows and columns start empty. Shrinking returns ErrShrink.
// Complexity: O(newN - n) amortized.
func (m *Matrix) Grow(newN int) error {
	if newN < m.n {
		return fmt.Errorf("Matrix.Grow(%d): %w", newN, ErrShrink)
	}
	nnz := m.colPtr[m.n]
	for j := m.n; j < newN; j++ {
		m.colPtr = append(m.colPtr, nnz) // new columns are empty
	}
	m.n = newN

	return nil
}
