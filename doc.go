// Package swgraph provides mutable weighted graphs backed by a
// column-compressed sparse weight matrix.
//
// 🚀 What is swgraph?
//
//	A compact, deterministic library for weighted graphs whose adjacency
//	lives in a sparse matrix: entry (i,j) holds the weight of the edge
//	j→i, and undirected graphs keep the matrix equal to its transpose.
//		• sparse/       — the CSC weight-matrix store and its position locator
//		• core/         — Edge, undirected & directed graphs, conversions
//		• graphio/      — XDR edge-list persistence, optional LZ4 compression
//		• gonumadapter/ — read-only gonum/graph conformance + dense export
//		• cmd/swg/      — small stats/convert command-line tool
//
// ✨ Why choose swgraph?
//
//   - Deterministic – column-major iteration, sorted rows, no map order
//   - Honest cost model – O(log k) lookups, O(nnz) worst-case single insert
//   - Pure data structure – algorithms run externally via gonumadapter
//   - Exact persistence – round trips preserve weights bit for bit
//
// Vertices are implicit integers 1..N; growing N is cheap, removing a
// vertex is intentionally unsupported (rebuild instead). All graph
// operations are single-threaded: concurrent readers are safe, any
// concurrent mutation needs external locking.
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	an undirected square: four vertices, four symmetric matrix pairs.
//
//	go get github.com/katalvlaran/swgraph
package swgraph
