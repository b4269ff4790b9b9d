// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swgraph/sparse"
)

func TestNew_RejectsNegativeDimension(t *testing.T) {
	_, err := sparse.New(-1)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}

func TestNew_EmptyMatrix(t *testing.T) {
	m, err := sparse.New(0)
	require.NoError(t, err)
	require.Zero(t, m.Dim())
	require.Zero(t, m.NNZ())
}

func TestMatrix_AtAbsentReturnsStructuralZero(t *testing.T) {
	m, err := sparse.New(5)
	require.NoError(t, err)

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			v, atErr := m.At(row, col)
			require.NoError(t, atErr)
			require.Zero(t, v)
		}
	}
}

func TestMatrix_SetGetDelete(t *testing.T) {
	m, err := sparse.New(6)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 5))
	require.NoError(t, m.Set(2, 1, 1))
	require.NoError(t, m.Set(0, 1, 2.5))
	require.Equal(t, 3, m.NNZ())

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)

	// Overwrite in place: value changes, nnz does not.
	require.NoError(t, m.Set(0, 1, 9))
	v, err = m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)
	require.Equal(t, 3, m.NNZ())

	existed, err := m.Delete(0, 1)
	require.NoError(t, err)
	require.True(t, existed)
	require.Equal(t, 2, m.NNZ())

	existed, err = m.Delete(0, 1)
	require.NoError(t, err)
	require.False(t, existed, "second delete finds nothing")

	v, err = m.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, v, "deleted entry reads as structural zero")
}

func TestMatrix_OutOfRangeAccess(t *testing.T) {
	m, err := sparse.New(3)
	require.NoError(t, err)

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), sparse.ErrOutOfRange)
	_, err = m.Delete(-1, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.ColumnRows(3)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestMatrix_ColumnRowsSortedAndDetached(t *testing.T) {
	m, err := sparse.New(8)
	require.NoError(t, err)
	for _, row := range []int{7, 0, 4, 2} {
		require.NoError(t, m.Set(row, 5, 1))
	}

	rows, err := m.ColumnRows(5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4, 7}, rows)

	k, err := m.ColumnNNZ(5)
	require.NoError(t, err)
	require.Equal(t, 4, k)

	rows[0] = 99 // caller mutation must not reach the store
	again, err := m.ColumnRows(5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4, 7}, again)
}

func TestMatrix_GrowPreservesEntries(t *testing.T) {
	m, err := sparse.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(2, 1, 4))

	require.NoError(t, m.Grow(7))
	require.Equal(t, 7, m.Dim())
	require.Equal(t, 1, m.NNZ())

	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	// New columns start empty and are writable.
	require.NoError(t, m.Set(6, 6, 1))
	require.Equal(t, 2, m.NNZ())
}

func TestMatrix_GrowRejectsShrink(t *testing.T) {
	m, err := sparse.New(5)
	require.NoError(t, err)
	require.ErrorIs(t, m.Grow(4), sparse.ErrShrink)
	require.NoError(t, m.Grow(5), "same dimension is a no-op")
}

func TestMatrix_AllColumnMajorOrder(t *testing.T) {
	m, err := sparse.New(4)
	require.NoError(t, err)
	require.NoError(t, m.Set(3, 0, 1))
	require.NoError(t, m.Set(1, 0, 2))
	require.NoError(t, m.Set(2, 2, 3))
	require.NoError(t, m.Set(0, 3, 4))

	var got [][3]float64
	m.All(func(row, col int, v float64) bool {
		got = append(got, [3]float64{float64(row), float64(col), v})

		return true
	})
	want := [][3]float64{{1, 0, 2}, {3, 0, 1}, {2, 2, 3}, {0, 3, 4}}
	require.Equal(t, want, got)

	// Early stop after the first entry.
	count := 0
	m.All(func(int, int, float64) bool {
		count++

		return false
	})
	require.Equal(t, 1, count)
}

func TestMatrix_CloneIsIndependent(t *testing.T) {
	m, err := sparse.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 2, 6))

	cp := m.Clone()
	require.NoError(t, cp.Set(1, 1, 5))

	has, err := m.Has(1, 1)
	require.NoError(t, err)
	require.False(t, has, "mutating the clone must not touch the original")
	require.Equal(t, 1, m.NNZ())
	require.Equal(t, 2, cp.NNZ())
}

func TestMatrix_Transpose(t *testing.T) {
	m, err := sparse.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 3)) // edge 0→1
	require.NoError(t, m.Set(2, 0, 4)) // edge 0→2
	require.NoError(t, m.Set(0, 2, 5)) // edge 2→0

	tr := m.Transpose()
	require.Equal(t, m.NNZ(), tr.NNZ())

	v, err := tr.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
	v, err = tr.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
	v, err = tr.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

func TestMatrix_AddTranspose(t *testing.T) {
	m, err := sparse.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 3)) // 0→1 weight 3
	require.NoError(t, m.Set(0, 1, 4)) // 1→0 weight 4
	require.NoError(t, m.Set(2, 1, 2)) // 1→2 weight 2
	require.NoError(t, m.Set(2, 2, 8)) // self-loop at 2

	sym := m.AddTranspose()
	require.True(t, sym.Symmetric())

	v, err := sym.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v, "opposite directions combine by addition")
	v, err = sym.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	v, err = sym.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v, "one-directional edge becomes symmetric as-is")
	v, err = sym.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	v, err = sym.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 8.0, v, "diagonal is taken once, not doubled")
}

func TestMatrix_AddTransposeCancellation(t *testing.T) {
	m, err := sparse.New(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 3))
	require.NoError(t, m.Set(0, 1, -3))

	sym := m.AddTranspose()
	require.Zero(t, sym.NNZ(), "exact cancellation must not store a zero")
}

func TestMatrix_Symmetric(t *testing.T) {
	m, err := sparse.New(3)
	require.NoError(t, err)
	require.True(t, m.Symmetric(), "empty matrix is symmetric")

	require.NoError(t, m.Set(1, 0, 2))
	require.False(t, m.Symmetric())

	require.NoError(t, m.Set(0, 1, 2))
	require.True(t, m.Symmetric())

	require.NoError(t, m.Set(0, 1, 3)) // same position, different weight
	require.False(t, m.Symmetric())
}

func TestMatrix_DiagonalNNZ(t *testing.T) {
	m, err := sparse.New(4)
	require.NoError(t, err)
	require.Zero(t, m.DiagonalNNZ())

	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(2, 2, 1))
	require.NoError(t, m.Set(1, 2, 1))
	require.Equal(t, 2, m.DiagonalNNZ())
}
