// SPDX-License-Identifier: MIT

// Package sparse: the position locator. Every mutating operation and
// every point lookup funnels through locate, so its contract is the
// contract of the whole store.

package sparse

import "sort"

// locate finds the storage position of (row, col).
//
// When the entry is present it returns (position, true). When absent it
// returns (insertion point, false): the position at which the entry
// would have to be inserted to keep the column's rows ascending.
//
// Precondition: row and col are already validated by the caller. This
// is the hot-path primitive; it performs no bounds checking of its own.
//
// Complexity: O(log k), k = nonzeros in column col.
func (m *Matrix) locate(row, col int) (int, bool) {
	lo, hi := m.colPtr[col], m.colPtr[col+1]
	pos := lo + sort.SearchInts(m.rowIdx[lo:hi], row)
	if pos < hi && m.rowIdx[pos] == row {
		return pos, true
	}

	return pos, false
}
