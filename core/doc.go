// Package core defines the weighted-graph types of swgraph: the Edge
// value, the Graph structure in its undirected and directed variants,
// and the conversions between them.
//
// What:
//
//   - Vertices are implicit integers 1..N; they are positions in the
//     underlying sparse weight matrix, never allocated objects.
//   - Entry (i,j) of the matrix holds the weight of the edge j→i:
//     column = source, row = destination. An undirected graph keeps the
//     matrix equal to its own transpose; a self-loop is a single
//     diagonal entry and counts once.
//   - One Graph type serves both variants; the directed tag controls
//     only how AddEdge and RemoveEdge project onto the store, the store
//     mutation algorithm is shared.
//
// Why:
//
//   - Column windows make out-neighbor queries O(degree) and edge
//     enumeration deterministic (column-major: grouped by source,
//     ascending destination). The flip side is documented honestly:
//     InNeighbors on a directed graph scans the whole structure.
//
// Complexity:
//
//   - Weight, HasEdge:          O(log k).
//   - AddEdge, RemoveEdge:      O(nnz) worst case (store shift).
//   - OutNeighbors, Degree:     O(degree).
//   - InNeighbors (directed):   O(N log k) full-structure scan.
//   - Edges, EdgeSeq:           O(nnz).
//
// Errors:
//
//   - ErrVertexRange: vertex index outside [1, N].
//   - ErrBadEdge: list constructor fed a non-positive endpoint.
//   - ErrNotSymmetric: undirected adopt-matrix constructor fed an
//     asymmetric matrix.
//   - ErrNilGraph, ErrNilMatrix: nil inputs to constructors.
//
// AddEdge with weight 0 is a deliberate silent no-op returning
// (false, nil): zero-weight edges are unsupported, because a stored
// zero would be indistinguishable from a structural absence.
//
// Nothing here locks. Concurrent reads are safe, concurrent mutation is
// not; a mutation that fails midway (allocation failure between the two
// symmetric writes of an undirected AddEdge) leaves the graph
// inconsistent and must be treated as fatal to the instance.
package core
