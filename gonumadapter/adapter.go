// SPDX-License-Identifier: MIT

// Package gonumadapter: the graph.Weighted(Un)Directed views.
// Queries funnel through the core capability set; range errors from
// core are translated into the gonum "absent" conventions (nil edge,
// empty iterator, ok=false) because the gonum surface has no error
// returns.

package gonumadapter

import (
	"errors"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/swgraph/core"
)

var (
	// ErrNilGraph indicates a nil *core.Graph passed to a constructor.
	ErrNilGraph = errors.New("gonumadapter: graph is nil")

	// ErrVariantMismatch indicates the wrong graph variant for the
	// requested adapter (directed graph into NewUndirected or vice versa).
	ErrVariantMismatch = errors.New("gonumadapter: graph variant mismatch")
)

// Undirected is a read-only gonum view over an undirected swgraph graph.
type Undirected struct {
	g *core.Graph
}

// Directed is a read-only gonum view over a directed swgraph graph.
type Directed struct {
	g *core.Graph
}

// Compile-time conformance anchors.
var (
	_ graph.WeightedUndirected = (*Undirected)(nil)
	_ graph.WeightedDirected   = (*Directed)(nil)
)

// NewUndirected wraps an undirected graph.
func NewUndirected(g *core.Graph) (*Undirected, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrVariantMismatch
	}

	return &Undirected{g: g}, nil
}

// NewDirected wraps a directed graph.
func NewDirected(g *core.Graph) (*Directed, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrVariantMismatch
	}

	return &Directed{g: g}, nil
}

// ---------- shared helpers ----------

// inRange reports whether id is a live 1-based vertex index.
func inRange(g *core.Graph, id int64) bool {
	return id >= 1 && id <= int64(g.VertexCount())
}

// allNodes enumerates 1..N as a gonum node iterator.
func allNodes(g *core.Graph) graph.Nodes {
	n := g.VertexCount()
	if n == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, n)
	for i := range nodes {
		nodes[i] = simple.Node(i + 1)
	}

	return iterator.NewOrderedNodes(nodes)
}

// neighborNodes converts a 1-based neighbor list into a node iterator.
func neighborNodes(ids []int) graph.Nodes {
	if len(ids) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(ids))
	for i, v := range ids {
		nodes[i] = simple.Node(v)
	}

	return iterator.NewOrderedNodes(nodes)
}

// weightedEdge builds the gonum edge for u→v, or nil when absent.
func weightedEdge(g *core.Graph, uid, vid int64) graph.WeightedEdge {
	if !inRange(g, uid) || !inRange(g, vid) {
		return nil
	}
	w, err := g.Weight(int(uid), int(vid))
	if err != nil || w == 0 {
		return nil
	}

	return simple.WeightedEdge{F: simple.Node(uid), T: simple.Node(vid), W: w}
}

// ---------- Undirected ----------

// Node returns the node with the given ID, or nil when out of range.
func (u *Undirected) Node(id int64) graph.Node {
	if !inRange(u.g, id) {
		return nil
	}

	return simple.Node(id)
}

// Nodes enumerates the vertices 1..N in order.
func (u *Undirected) Nodes() graph.Nodes { return allNodes(u.g) }

// From enumerates the neighbors of id in ascending order.
func (u *Undirected) From(id int64) graph.Nodes {
	if !inRange(u.g, id) {
		return graph.Empty
	}
	nb, err := u.g.Neighbors(int(id))
	if err != nil {
		return graph.Empty
	}

	return neighborNodes(nb)
}

// HasEdgeBetween reports whether an edge joins x and y.
func (u *Undirected) HasEdgeBetween(xid, yid int64) bool {
	return weightedEdge(u.g, xid, yid) != nil
}

// Edge returns the edge between u and v, or nil when absent.
func (u *Undirected) Edge(uid, vid int64) graph.Edge {
	if e := weightedEdge(u.g, uid, vid); e != nil {
		return e
	}

	return nil
}

// EdgeBetween is Edge under the undirected reading.
func (u *Undirected) EdgeBetween(xid, yid int64) graph.Edge { return u.Edge(xid, yid) }

// WeightedEdge returns the weighted edge between u and v, or nil.
func (u *Undirected) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	if e := weightedEdge(u.g, uid, vid); e != nil {
		return e
	}

	return nil
}

// WeightedEdgeBetween is WeightedEdge under the undirected reading.
func (u *Undirected) WeightedEdgeBetween(xid, yid int64) graph.WeightedEdge {
	return u.WeightedEdge(xid, yid)
}

// Weight returns the edge weight and presence. Following the gonum
// simple-graph convention, Weight(x,x) is (stored loop weight, true)
// even when no loop is stored.
func (u *Undirected) Weight(xid, yid int64) (float64, bool) {
	return adapterWeight(u.g, xid, yid)
}

// ---------- Directed ----------

// Node returns the node with the given ID, or nil when out of range.
func (d *Directed) Node(id int64) graph.Node {
	if !inRange(d.g, id) {
		return nil
	}

	return simple.Node(id)
}

// Nodes enumerates the vertices 1..N in order.
func (d *Directed) Nodes() graph.Nodes { return allNodes(d.g) }

// From enumerates the out-neighbors of id, ascending. O(degree).
func (d *Directed) From(id int64) graph.Nodes {
	if !inRange(d.g, id) {
		return graph.Empty
	}
	out, err := d.g.OutNeighbors(int(id))
	if err != nil {
		return graph.Empty
	}

	return neighborNodes(out)
}

// To enumerates the in-neighbors of id, ascending. Expensive: backed by
// the documented full-structure scan of InNeighbors.
func (d *Directed) To(id int64) graph.Nodes {
	if !inRange(d.g, id) {
		return graph.Empty
	}
	in, err := d.g.InNeighbors(int(id))
	if err != nil {
		return graph.Empty
	}

	return neighborNodes(in)
}

// HasEdgeBetween reports whether an edge joins x and y in either direction.
func (d *Directed) HasEdgeBetween(xid, yid int64) bool {
	return weightedEdge(d.g, xid, yid) != nil || weightedEdge(d.g, yid, xid) != nil
}

// HasEdgeFromTo reports whether the directed edge u→v exists.
func (d *Directed) HasEdgeFromTo(uid, vid int64) bool {
	return weightedEdge(d.g, uid, vid) != nil
}

// Edge returns the directed edge u→v, or nil when absent.
func (d *Directed) Edge(uid, vid int64) graph.Edge {
	if e := weightedEdge(d.g, uid, vid); e != nil {
		return e
	}

	return nil
}

// WeightedEdge returns the weighted directed edge u→v, or nil.
func (d *Directed) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	if e := weightedEdge(d.g, uid, vid); e != nil {
		return e
	}

	return nil
}

// Weight returns the edge weight and presence, with the same self-edge
// convention as the undirected adapter.
func (d *Directed) Weight(xid, yid int64) (float64, bool) {
	return adapterWeight(d.g, xid, yid)
}

// adapterWeight implements the shared Weight contract.
func adapterWeight(g *core.Graph, xid, yid int64) (float64, bool) {
	if !inRange(g, xid) || !inRange(g, yid) {
		return 0, false
	}
	w, err := g.Weight(int(xid), int(yid))
	if err != nil {
		return 0, false
	}
	if xid == yid {
		return w, true // self weight, stored loop or zero
	}
	if w == 0 {
		return 0, false
	}

	return w, true
}
