// Package graphio persists swgraph graphs as a compact binary edge
// list and restores them exactly.
//
// What:
//
//   - A fixed 28-byte XDR header: magic "SWG1", format version, flags
//     (directedness, compression), vertex count, edge count.
//   - An edge section of (from, to, weight-bits) triples in the graph's
//     column-major enumeration order, XDR-encoded, optionally wrapped
//     in an LZ4 frame.
//   - Weights travel as raw IEEE-754 bit patterns, so a round trip
//     reproduces the exact edge set and the exact weights, not a
//     tolerance-based approximation.
//
// Why:
//
//   - The edge list plus directedness flag and vertex count is the
//     minimal information sufficient to reconstruct an identical graph;
//     isolated vertices survive through the recorded vertex count.
//
// Errors:
//
//   - ErrBadMagic: the stream does not start with the SWG1 magic.
//   - ErrBadVersion: the format version is newer than this package.
//   - ErrCorrupt: header fields are internally inconsistent.
//   - ErrTruncated: the stream ends before the declared edge count.
//
// Complexity: Write and Read are O(nnz) plus the cost of rebuilding
// the sparse store on Read.
package graphio
