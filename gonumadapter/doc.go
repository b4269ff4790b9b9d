// Package gonumadapter lets gonum's graph algorithms run over swgraph
// graphs without copying them.
//
// What:
//
//   - Undirected and Directed are read-only views implementing
//     gonum.org/v1/gonum/graph.WeightedUndirected and WeightedDirected.
//     Node IDs are the 1-based swgraph vertex indices.
//   - ToDense exports the weight matrix as a gonum/mat Dense for
//     numeric workflows.
//
// Why:
//
//   - swgraph deliberately implements no algorithms of its own; the
//     capability set (vertex/edge iteration, neighbor queries, weight
//     lookup) is exactly what gonum's path, topo and traverse packages
//     consume.
//
// The adapters never mutate the wrapped graph and never panic: an
// unknown node ID reads as absent, matching the gonum conventions.
// A stored self-loop is reported like any other adjacency, so From(id)
// (and Directed.To(id)) can yield id itself; strip loops before
// wrapping when feeding algorithms that assume loop-free neighborhoods.
// Directed.To is backed by InNeighbors and inherits its full-structure
// scan cost; algorithms that lean on inbound adjacency pay O(N log k)
// per call.
package gonumadapter
