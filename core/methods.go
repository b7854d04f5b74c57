// SPDX-License-Identifier: MIT

// Package core — Graph methods.
//
// Contract:
//   - All index-taking methods validate bounds and return sentinel errors;
//     no method panics at runtime.
//   - Neighbor lists stay sorted ascending after every mutation, so every
//     read path (and everything derived from it) is deterministic.
package core

import (
	"fmt"
	"sort"
)

// Order returns the number of vertices N.
// Complexity: O(1).
func (g *Graph) Order() int {
	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// checkVertex validates that v lies within 0..N-1.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("core: vertex %d of %d: %w", v, len(g.adj), ErrVertexOutOfRange)
	}

	return nil
}

// AddEdge inserts the undirected edge {u, v}.
// Returns ErrVertexOutOfRange, ErrSelfLoop or ErrDuplicateEdge on invalid
// input; the graph is unchanged on failure.
// Complexity: O(deg(u) + deg(v)) due to sorted insertion.
func (g *Graph) AddEdge(u, v int) error {
	// Stage 1: Validate endpoints (fail fast, no partial mutation).
	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	if err := g.checkVertex(v); err != nil {
		return fmt.Errorf("AddEdge: %w", err)
	}
	if u == v {
		return fmt.Errorf("AddEdge: vertex %d: %w", u, ErrSelfLoop)
	}
	if g.HasEdge(u, v) {
		return fmt.Errorf("AddEdge: {%d,%d}: %w", u, v, ErrDuplicateEdge)
	}

	// Stage 2: Execute the symmetric insertion.
	g.adj[u] = insertSorted(g.adj[u], v)
	g.adj[v] = insertSorted(g.adj[v], u)
	g.edgeCount++

	return nil
}

// HasEdge reports whether the undirected edge {u, v} exists.
// Out-of-range indices report false rather than erroring; existence queries
// on unknown vertices are vacuously negative.
// Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return false
	}
	row := g.adj[u]
	i := sort.SearchInts(row, v)

	return i < len(row) && row[i] == v
}

// Degree returns the number of neighbors of v.
// Returns ErrVertexOutOfRange for invalid indices.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}

	return len(g.adj[v]), nil
}

// Neighbors returns the neighbors of v in ascending order.
// The returned slice is a copy; callers may mutate it freely.
// Returns ErrVertexOutOfRange for invalid indices.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// insertSorted inserts x into the sorted slice s, preserving order.
// The caller guarantees x is not already present.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}
