// SPDX-License-Identifier: MIT

// Package core declares the Graph type, its sentinel errors and the
// NewGraph constructor. Methods live in methods.go per the package
// conventions (types and errors first, behavior second).
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates NewGraph was called with a negative vertex count.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex index outside the 0..N-1 range.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide; self-loops are
	// not representable in a simple graph.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrDuplicateEdge indicates an attempt to add an edge that already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Graph is an undirected, unweighted, simple graph over the fixed vertex set
// 0..N-1.
//
// adj[v] holds the neighbors of v in ascending order; len(adj[v]) is the
// degree of v. edgeCount tracks undirected edges (each stored twice in adj).
type Graph struct {
	adj       [][]int // sorted neighbor lists, one per vertex
	edgeCount int     // number of undirected edges
}

// NewGraph creates a graph with n vertices (0..n-1) and no edges.
// n == 0 yields a valid empty graph; consumers that require a non-empty
// graph must validate separately.
// Returns ErrNegativeOrder if n < 0.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}

	return &Graph{adj: make([][]int, n)}, nil
}
