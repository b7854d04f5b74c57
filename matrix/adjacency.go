// SPDX-License-Identifier: MIT

// Package matrix — graph-derived matrix constructors.
//
// Contract:
//   - Both constructors validate the topology first (nil/empty/zero-degree)
//     and fail before allocating numeric storage.
//   - Vertex v maps to row v and column v; ordering is the graph's own
//     0..N-1 indexing, never re-derived.
//   - Outputs are freshly allocated on every call (ephemeral by contract);
//     nothing is cached between calls.
package matrix

import "fmt"

// NewInverseDegreeDiagonal builds the N×N diagonal matrix D⁻¹ with
// 1/degree(v) at (v, v).
// Returns ErrNilGraph, ErrEmptyGraph or ErrZeroDegreeVertex.
// Complexity: O(N) time and space.
func NewInverseDegreeDiagonal(g Graph) (*CSR, error) {
	// Stage 1: Validate topology (includes the zero-degree guard).
	if err := ValidateTopology(g); err != nil {
		return nil, fmt.Errorf("NewInverseDegreeDiagonal: %w", err)
	}

	// Stage 2: Assemble the diagonal in CSR form.
	var (
		n       = g.Order()
		indptr  = make([]int, n+1)
		indices = make([]int, n)
		data    = make([]float64, n)
		v, d    int
	)
	for v = 0; v < n; v++ {
		d, _ = g.Degree(v) // validated above
		indptr[v] = v
		indices[v] = v
		data[v] = 1.0 / float64(d)
	}
	indptr[n] = n

	return &CSR{rows: n, cols: n, indptr: indptr, indices: indices, data: data}, nil
}

// NewNormalizedAdjacency builds the row-normalized adjacency matrix
// Ã = D⁻¹·A, where A is the 0/1 adjacency matrix of g. The product is
// assembled row-wise: row v holds 1/degree(v) at each neighbor column,
// columns ascending.
// Returns ErrNilGraph, ErrEmptyGraph or ErrZeroDegreeVertex.
// Complexity: O(N + E) time and space.
func NewNormalizedAdjacency(g Graph) (*CSR, error) {
	// Stage 1: Validate topology (includes the zero-degree guard).
	if err := ValidateTopology(g); err != nil {
		return nil, fmt.Errorf("NewNormalizedAdjacency: %w", err)
	}

	// Stage 2: Size the row pointer from degrees.
	var (
		n      = g.Order()
		indptr = make([]int, n+1)
		v, d   int
		nnz    int
	)
	for v = 0; v < n; v++ {
		d, _ = g.Degree(v) // validated above
		indptr[v] = nnz
		nnz += d
	}
	indptr[n] = nnz

	// Stage 3: Fill columns and the per-row inverse-degree weight.
	var (
		indices = make([]int, nnz)
		data    = make([]float64, nnz)
		nbr     []int
		err     error
		inv     float64
		p, j    int
	)
	for v = 0; v < n; v++ {
		nbr, err = g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("NewNormalizedAdjacency: neighbors of %d: %w", v, err)
		}
		if len(nbr) != indptr[v+1]-indptr[v] {
			return nil, fmt.Errorf("NewNormalizedAdjacency: vertex %d degree/neighbor mismatch: %w", v, ErrBadCSR)
		}
		inv = 1.0 / float64(len(nbr))
		p = indptr[v]
		for j = range nbr {
			indices[p+j] = nbr[j]
			data[p+j] = inv
		}
	}

	return &CSR{rows: n, cols: n, indptr: indptr, indices: indices, data: data}, nil
}
