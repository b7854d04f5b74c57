// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types and sentinel errors.
// Construction and numeric behavior live in csr.go and adjacency.go;
// validation helpers live in validators.go per the package conventions.
package matrix

import "errors"

// Sentinel errors for graph-matrix construction.
var (
	// ErrNilGraph indicates a nil Graph was passed to a constructor.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates the graph has no vertices; no matrix of
	// meaningful shape can be derived from it.
	ErrEmptyGraph = errors.New("matrix: graph has no vertices")

	// ErrZeroDegreeVertex indicates a vertex with no incident edges, for
	// which the inverse degree 1/0 is undefined.
	ErrZeroDegreeVertex = errors.New("matrix: vertex has degree zero")

	// ErrBadCSR indicates inconsistent raw CSR components (row pointer,
	// column index or data length mismatch, or out-of-range columns).
	ErrBadCSR = errors.New("matrix: inconsistent CSR components")
)

// Graph is the capability surface this package requires from a topology:
// contiguous vertex indices 0..Order()-1, O(1) degree lookup, and neighbor
// enumeration. *core.Graph satisfies it; so does any caller-supplied
// representation with the same contract.
type Graph interface {
	// Order returns the number of vertices N.
	Order() int

	// Degree returns the number of neighbors of v, or an error for
	// out-of-range indices.
	Degree(v int) (int, error)

	// Neighbors returns the neighbors of v in ascending order, or an error
	// for out-of-range indices.
	Neighbors(v int) ([]int, error)
}
