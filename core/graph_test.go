// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swgraph/core"
	"github.com/katalvlaran/swgraph/sparse"
)

func TestAddEdge_WeightRoundTrip(t *testing.T) {
	g, err := core.NewUndirected(5)
	require.NoError(t, err)

	created, err := g.AddEdge(2, 4, 3.5)
	require.NoError(t, err)
	require.True(t, created)

	w, err := g.Weight(2, 4)
	require.NoError(t, err)
	require.Equal(t, 3.5, w)

	w, err = g.Weight(4, 2)
	require.NoError(t, err)
	require.Equal(t, 3.5, w, "undirected weight is symmetric")
}

func TestAddEdge_ZeroWeightIsNoOp(t *testing.T) {
	g, err := core.NewUndirected(3)
	require.NoError(t, err)

	created, err := g.AddEdge(1, 2, 0)
	require.NoError(t, err)
	require.False(t, created)
	require.Zero(t, g.EdgeCount())

	// Idempotent: repeating changes nothing either.
	created, err = g.AddEdge(1, 2, 0)
	require.NoError(t, err)
	require.False(t, created)
	require.Zero(t, g.Matrix().NNZ())
}

func TestAddEdge_CountAndOverwrite(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := newGraph(t, directed, 4)

		created, err := g.AddEdge(1, 2, 5)
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, 1, g.EdgeCount())

		// Same position, different nonzero weight: update, not insert.
		created, err = g.AddEdge(1, 2, 8)
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, 1, g.EdgeCount())

		w, err := g.Weight(1, 2)
		require.NoError(t, err)
		require.Equal(t, 8.0, w)
	}
}

func TestAddEdge_SelfLoopCountsOnce(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := newGraph(t, directed, 3)

		created, err := g.AddEdge(2, 2, 4)
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, 1, g.EdgeCount())
		require.Equal(t, 1, g.Matrix().NNZ(), "one diagonal entry, not two")

		deg, err := g.Degree(2)
		require.NoError(t, err)
		require.Equal(t, 1, deg, "self-loop contributes once to degree")
	}
}

func TestAddEdge_VertexRange(t *testing.T) {
	g, err := core.NewDirected(3)
	require.NoError(t, err)

	_, err = g.AddEdge(0, 1, 1)
	require.ErrorIs(t, err, core.ErrVertexRange)
	_, err = g.AddEdge(1, 4, 1)
	require.ErrorIs(t, err, core.ErrVertexRange)
	require.Zero(t, g.EdgeCount(), "failed call has no partial effect")
}

func TestRemoveEdge_Undirected(t *testing.T) {
	g, err := core.NewUndirectedFromEdges([]core.Edge{
		core.W(1, 2, 5), core.W(2, 3, 1),
	})
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())

	existed, err := g.RemoveEdge(2, 1) // either orientation addresses the edge
	require.NoError(t, err)
	require.True(t, existed)
	require.Equal(t, 1, g.EdgeCount())

	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	require.Zero(t, w)
	w, err = g.Weight(2, 1)
	require.NoError(t, err)
	require.Zero(t, w, "both symmetric entries are gone")

	existed, err = g.RemoveEdge(1, 2)
	require.NoError(t, err)
	require.False(t, existed, "absent edge removal is boolean false, not an error")
}

func TestRemoveEdge_SelfLoop(t *testing.T) {
	g, err := core.NewUndirectedFromEdges([]core.Edge{core.W(3, 3, 2)})
	require.NoError(t, err)

	existed, err := g.RemoveEdge(3, 3)
	require.NoError(t, err)
	require.True(t, existed)
	require.Zero(t, g.EdgeCount())
}

func TestWeight_AbsentPairIsZero(t *testing.T) {
	g, err := core.NewDirected(4)
	require.NoError(t, err)
	for u := 1; u <= 4; u++ {
		for v := 1; v <= 4; v++ {
			w, wErr := g.Weight(u, v)
			require.NoError(t, wErr)
			require.Zero(t, w)
		}
	}
}

func TestAddVertices_GrowsAndPreserves(t *testing.T) {
	g, err := core.NewUndirectedFromEdges([]core.Edge{core.W(1, 2, 5)})
	require.NoError(t, err)
	require.Equal(t, 2, g.VertexCount())

	require.NoError(t, g.AddVertices(3))
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, []int{1, 2, 3, 4, 5}, g.Vertices())

	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, w, "existing weights survive growth")

	_, err = g.AddEdge(5, 1, 2)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddVertices(-1), core.ErrNegativeGrowth)
}

func TestDirected_NeighborQueries(t *testing.T) {
	g, err := core.NewDirectedFromEdges([]core.Edge{
		core.E(1, 2), core.E(1, 3), core.E(2, 3),
	})
	require.NoError(t, err)

	out, err := g.OutNeighbors(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, out)

	in, err := g.InNeighbors(3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, in)

	out, err = g.OutNeighbors(3)
	require.NoError(t, err)
	require.Empty(t, out)

	deg, err := g.Degree(1)
	require.NoError(t, err)
	require.Equal(t, 2, deg)
}

func TestUndirected_NeighborsSymmetric(t *testing.T) {
	g, err := core.NewUndirectedFromEdges([]core.Edge{
		core.W(1, 2, 1), core.W(2, 3, 1), core.W(2, 2, 9),
	})
	require.NoError(t, err)

	nb, err := g.Neighbors(2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, nb, "self-loop appears as neighbor 2 itself")

	in, err := g.InNeighbors(2)
	require.NoError(t, err)
	require.Equal(t, nb, in, "in/out views coincide under symmetry")
}

func TestEdgeSeq_ColumnMajorAndRestartable(t *testing.T) {
	g, err := core.NewDirectedFromEdges([]core.Edge{
		core.W(2, 1, 4), core.W(1, 3, 2), core.W(1, 2, 3),
	})
	require.NoError(t, err)

	want := []core.Edge{
		{From: 1, To: 2, Weight: 3},
		{From: 1, To: 3, Weight: 2},
		{From: 2, To: 1, Weight: 4},
	}
	require.Equal(t, want, g.Edges(), "grouped by source, ascending destination")

	// Restartable: a second full pass yields the same sequence.
	var second []core.Edge
	for e := range g.EdgeSeq() {
		second = append(second, e)
	}
	require.Equal(t, want, second)

	// Early break stops cleanly.
	first := core.Edge{}
	for e := range g.EdgeSeq() {
		first = e

		break
	}
	require.Equal(t, want[0], first)
}

func TestEdges_UndirectedEmittedOnce(t *testing.T) {
	g, err := core.NewUndirectedFromEdges([]core.Edge{
		core.W(1, 2, 5), core.W(2, 3, 1), core.W(3, 3, 7),
	})
	require.NoError(t, err)

	want := []core.Edge{
		{From: 1, To: 2, Weight: 5},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 3, Weight: 7},
	}
	require.Equal(t, want, g.Edges(), "each symmetric pair appears once, From ≤ To")
	require.Equal(t, 3, g.EdgeCount())
}

func TestFromEdges_Validation(t *testing.T) {
	_, err := core.NewUndirectedFromEdges([]core.Edge{core.W(0, 2, 1)})
	require.ErrorIs(t, err, core.ErrBadEdge)

	_, err = core.NewDirectedFromEdges([]core.Edge{core.W(1, -3, 1)})
	require.ErrorIs(t, err, core.ErrBadEdge)

	g, err := core.NewDirectedFromEdges(nil)
	require.NoError(t, err)
	require.Zero(t, g.VertexCount(), "empty list builds the empty graph")
}

func TestFromMatrix_Adoption(t *testing.T) {
	m, err := sparse.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 2))

	_, err = core.NewUndirectedFromMatrix(m)
	require.ErrorIs(t, err, core.ErrNotSymmetric)

	require.NoError(t, m.Set(0, 1, 2))
	g, err := core.NewUndirectedFromMatrix(m)
	require.NoError(t, err)
	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2.0, w)

	d, err := core.NewDirectedFromMatrix(m)
	require.NoError(t, err)
	require.Equal(t, 2, d.EdgeCount(), "directed adoption keeps both entries as two edges")

	_, err = core.NewUndirectedFromMatrix(nil)
	require.ErrorIs(t, err, core.ErrNilMatrix)
}

func TestHasEdge(t *testing.T) {
	g, err := core.NewDirectedFromEdges([]core.Edge{core.E(1, 2)})
	require.NoError(t, err)

	has, err := g.HasEdge(1, 2)
	require.NoError(t, err)
	require.True(t, has)

	has, err = g.HasEdge(2, 1)
	require.NoError(t, err)
	require.False(t, has, "directed edges are one-way")

	_, err = g.HasEdge(1, 5)
	require.ErrorIs(t, err, core.ErrVertexRange)
}

// newGraph builds an empty graph of either variant for table loops.
func newGraph(t *testing.T, directed bool, n int) *core.Graph {
	t.Helper()
	var (
		g   *core.Graph
		err error
	)
	if directed {
		g, err = core.NewDirected(n)
	} else {
		g, err = core.NewUndirected(n)
	}
	require.NoError(t, err)

	return g
}
