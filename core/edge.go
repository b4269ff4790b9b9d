// SPDX-License-Identifier: MIT

package core

// Edge is an immutable edge value: source, destination, weight.
// Equality compares all three fields; two edges with the same endpoints
// but different weights are distinct values that address the same
// matrix position, so inserting the second overwrites the first's
// stored weight (the structure holds no parallel edges).
type Edge struct {
	// From is the source vertex index (1-based).
	From int

	// To is the destination vertex index (1-based).
	To int

	// Weight is the stored weight; never zero for a stored edge.
	Weight float64
}

// W builds an Edge with an explicit weight.
// Complexity: O(1).
func W(from, to int, weight float64) Edge {
	return Edge{From: from, To: to, Weight: weight}
}

// E builds an Edge with the default weight 1, for callers that only
// care about structure.
// Complexity: O(1).
func E(from, to int) Edge {
	return Edge{From: from, To: to, Weight: 1}
}

// Reversed returns the edge with its endpoints swapped.
// Complexity: O(1).
func (e Edge) Reversed() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}
