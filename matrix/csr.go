// SPDX-License-Identifier: MIT

// Package matrix — CSR storage.
//
// Contract:
//   - indptr has length rows+1, is non-decreasing, starts at 0 and ends at
//     len(indices) == len(data).
//   - Columns within each row are strictly ascending (validated), which
//     makes At a binary search and keeps every product deterministic.
//   - CSR implements gonum's mat.Matrix; per gonum convention At panics on
//     out-of-range indices (mat.ErrRowAccess / mat.ErrColAccess) instead of
//     returning an error.
package matrix

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CSR is an immutable sparse matrix in compressed sparse row form.
// The zero value is not usable; construct via NewCSR or the graph-derived
// constructors in adjacency.go.
type CSR struct {
	rows, cols int
	indptr     []int     // row i occupies indices[indptr[i]:indptr[i+1]]
	indices    []int     // column index per stored entry, ascending per row
	data       []float64 // value per stored entry
}

// NewCSR assembles a CSR matrix from raw components, validating their
// consistency. The slices are retained, not copied; callers hand over
// ownership.
// Returns ErrBadCSR on any structural inconsistency.
// Complexity: O(nnz) validation.
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	// Stage 1: Validate shape and component lengths.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewCSR: negative shape %dx%d: %w", rows, cols, ErrBadCSR)
	}
	if len(indptr) != rows+1 {
		return nil, fmt.Errorf("NewCSR: indptr length %d != rows+1 (%d): %w", len(indptr), rows+1, ErrBadCSR)
	}
	if len(indices) != len(data) {
		return nil, fmt.Errorf("NewCSR: indices length %d != data length %d: %w", len(indices), len(data), ErrBadCSR)
	}
	if indptr[0] != 0 || indptr[rows] != len(indices) {
		return nil, fmt.Errorf("NewCSR: indptr bounds [%d..%d] for nnz=%d: %w", indptr[0], indptr[rows], len(indices), ErrBadCSR)
	}

	// Stage 2: Validate per-row monotonicity and column ranges.
	var i, p int
	for i = 0; i < rows; i++ {
		if indptr[i] > indptr[i+1] {
			return nil, fmt.Errorf("NewCSR: indptr decreases at row %d: %w", i, ErrBadCSR)
		}
		for p = indptr[i]; p < indptr[i+1]; p++ {
			if indices[p] < 0 || indices[p] >= cols {
				return nil, fmt.Errorf("NewCSR: column %d out of %d at row %d: %w", indices[p], cols, i, ErrBadCSR)
			}
			if p > indptr[i] && indices[p] <= indices[p-1] {
				return nil, fmt.Errorf("NewCSR: non-ascending columns at row %d: %w", i, ErrBadCSR)
			}
		}
	}

	return &CSR{rows: rows, cols: cols, indptr: indptr, indices: indices, data: data}, nil
}

// Dims returns the matrix dimensions. Part of mat.Matrix.
func (m *CSR) Dims() (r, c int) {
	return m.rows, m.cols
}

// At returns the element at (i, j), zero for unstored positions.
// Part of mat.Matrix; panics with mat.ErrRowAccess / mat.ErrColAccess on
// out-of-range indices per gonum convention.
// Complexity: O(log deg(i)).
func (m *CSR) At(i, j int) float64 {
	if i < 0 || i >= m.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= m.cols {
		panic(mat.ErrColAccess)
	}
	row := m.indices[m.indptr[i]:m.indptr[i+1]]
	k := sort.SearchInts(row, j)
	if k < len(row) && row[k] == j {
		return m.data[m.indptr[i]+k]
	}

	return 0
}

// T returns the transpose view. Part of mat.Matrix.
func (m *CSR) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int {
	return len(m.data)
}

// MulDense computes the sparse-dense product m·b into a freshly allocated
// dense matrix. This is the hot path of diffusion stacking: one pass over
// the stored entries, accumulating scaled rows of b.
// Panics with mat.ErrShape if cols(m) != rows(b), per gonum convention.
// Complexity: O(nnz · cols(b)) time, O(rows · cols(b)) space.
func (m *CSR) MulDense(b *mat.Dense) *mat.Dense {
	br, bc := b.Dims()
	if m.cols != br {
		panic(mat.ErrShape)
	}

	out := mat.NewDense(m.rows, bc, nil)
	var (
		i, p, j int
		v       float64
		dst     []float64
		src     []float64
	)
	for i = 0; i < m.rows; i++ {
		dst = out.RawRowView(i)
		for p = m.indptr[i]; p < m.indptr[i+1]; p++ {
			v = m.data[p]
			src = b.RawRowView(m.indices[p])
			for j = 0; j < bc; j++ {
				dst[j] += v * src[j]
			}
		}
	}

	return out
}
