// Package sparse implements the column-compressed weight-matrix store
// that backs every graph in swgraph.
//
// What:
//
//   - Matrix is a square N×N structure holding only nonzero weights,
//     organized by column: colPtr marks each column's window into the
//     parallel rowIdx/values arrays, and rows stay strictly ascending
//     inside every column.
//   - A binary-search position locator underpins every access; all
//     mutations (overwrite, insert with right-shift, delete with
//     left-shift) are expressed through it.
//   - The matrix only grows: Grow extends N, shrinking is rejected.
//
// Why:
//
//   - Contiguous column windows give O(degree) neighbor iteration and a
//     deterministic column-major edge order.
//   - The price is the classic CSC cost model: a single insert or
//     delete shifts every entry stored after it, O(nnz) worst case.
//     Batch-build then query is the intended usage pattern.
//
// Complexity:
//
//   - At:       O(log k), k = nonzeros in the column.
//   - Set:      O(log k) overwrite, O(nnz) insert or delete.
//   - Delete:   O(log k) + O(nnz) shift.
//   - Grow:     O(newN).
//   - Transpose, AddTranspose, Clone: O(N + nnz).
//
// Errors:
//
//   - ErrInvalidDimensions: requested dimension is negative.
//   - ErrOutOfRange: row or column outside [0, N).
//   - ErrShrink: Grow called with a smaller dimension.
//
// Zeros are never stored: Set with value 0 deletes the entry, so a
// structural absence and an explicit zero are indistinguishable by
// construction.
//
// The package performs no locking; see the module doc for the
// concurrency contract.
package sparse
