// SPDX-License-Identifier: MIT

// Package gonumadapter: dense export for numeric workflows.

package gonumadapter

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/swgraph/core"
)

// ErrEmptyGraph indicates a dense export of a graph with no vertices
// (gonum/mat has no 0×0 Dense).
var ErrEmptyGraph = errors.New("gonumadapter: graph has no vertices")

// ToDense materializes the weight matrix as an N×N gonum Dense, with
// the same orientation as the sparse store: entry (i,j) is the weight
// of the edge j→i. Structural zeros become numeric zeros.
// Complexity: O(n²) allocation + O(nnz) fill.
func ToDense(g *core.Graph) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	d := mat.NewDense(n, n, nil)
	g.Matrix().All(func(row, col int, v float64) bool {
		d.Set(row, col, v)

		return true
	})

	return d, nil
}
