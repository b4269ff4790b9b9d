// SPDX-License-Identifier: MIT

// Package sparse: whole-matrix transforms used by the conversion layer.

package sparse

// Clone returns an independent deep copy of the matrix.
// Complexity: O(n + nnz).
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{
		n:      m.n,
		colPtr: make([]int, len(m.colPtr)),
		rowIdx: make([]int, len(m.rowIdx)),
		values: make([]float64, len(m.values)),
	}
	copy(cp.colPtr, m.colPtr)
	copy(cp.rowIdx, m.rowIdx)
	copy(cp.values, m.values)

	return cp
}

// Transpose returns a new matrix with every entry (i,j) moved to (j,i),
// built with a counting pass over the column boundaries.
// Complexity: O(n + nnz).
func (m *Matrix) Transpose() *Matrix {
	nnz := m.NNZ()
	t := &Matrix{
		n:      m.n,
		colPtr: make([]int, m.n+1),
		rowIdx: make([]int, nnz),
		values: make([]float64, nnz),
	}

	// Count entries per result column (= source row).
	for _, r := range m.rowIdx {
		t.colPtr[r+1]++
	}
	for j := 0; j < m.n; j++ {
		t.colPtr[j+1] += t.colPtr[j]
	}

	// Scatter. Source iteration is column-major with ascending rows, so
	// each result column fills with ascending source columns: the strict
	// row ordering of the result holds without a sort.
	next := make([]int, m.n)
	copy(next, t.colPtr[:m.n])
	var j, p, r int
	for j = 0; j < m.n; j++ {
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			r = m.rowIdx[p]
			t.rowIdx[next[r]] = j
			t.values[next[r]] = m.values[p]
			next[r]++
		}
	}

	return t
}

// AddTranspose returns the symmetrization of the matrix: off-diagonal
// result entries are a(i,j)+a(j,i), diagonal entries are taken once.
// The result equals its own transpose. Used for the directed to
// undirected conversion, where opposite edges combine by addition and a
// self-loop has no opposite counterpart to add.
// Complexity: O(n + nnz).
func (m *Matrix) AddTranspose() *Matrix {
	t := m.Transpose()
	out := &Matrix{
		n:      m.n,
		colPtr: make([]int, m.n+1),
		rowIdx: make([]int, 0, m.NNZ()),
		values: make([]float64, 0, m.NNZ()),
	}

	// Merge column j of m with column j of t (both row-sorted), summing
	// weights on matching rows. Diagonal entries exist identically in
	// both operands; take the value from m alone.
	var j int
	for j = 0; j < m.n; j++ {
		a, aEnd := m.colPtr[j], m.colPtr[j+1]
		b, bEnd := t.colPtr[j], t.colPtr[j+1]
		for a < aEnd || b < bEnd {
			switch {
			case b >= bEnd || (a < aEnd && m.rowIdx[a] < t.rowIdx[b]):
				out.rowIdx = append(out.rowIdx, m.rowIdx[a])
				out.values = append(out.values, m.values[a])
				a++
			case a >= aEnd || t.rowIdx[b] < m.rowIdx[a]:
				out.rowIdx = append(out.rowIdx, t.rowIdx[b])
				out.values = append(out.values, t.values[b])
				b++
			default: // same row in both operands
				row := m.rowIdx[a]
				v := m.values[a]
				if row != j {
					v += t.values[b] // opposite-direction weights add
				}
				if v != 0 { // summation may cancel exactly
					out.rowIdx = append(out.rowIdx, row)
					out.values = append(out.values, v)
				}
				a++
				b++
			}
		}
		out.colPtr[j+1] = len(out.rowIdx)
	}

	return out
}

// Symmetric reports whether the matrix equals its own transpose.
// Complexity: O(nnz log k).
func (m *Matrix) Symmetric() bool {
	sym := true
	m.All(func(row, col int, v float64) bool {
		pos, ok := m.locate(col, row)
		if !ok || m.values[pos] != v {
			sym = false

			return false
		}

		return true
	})

	return sym
}
