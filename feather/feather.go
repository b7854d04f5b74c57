// SPDX-License-Identifier: MIT

// Package feather — the FeatherNode estimator facade.
//
// Contract:
//   - Fit validates everything eagerly (configuration, graph, shapes) and
//     performs no numeric work until validation passes.
//   - A failed Fit leaves any previously stored embedding untouched; a
//     successful Fit replaces it atomically (compute into locals, assign
//     last).
//   - Returns only sentinel errors with %w context; never panics at
//     runtime.
package feather

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/featherlab/feather/matrix"
	"github.com/featherlab/feather/svd"
)

// FeatherNode estimates attributed node embeddings via characteristic
// functions of reduced attributes diffused over the normalized adjacency
// matrix. Construct with New; the zero value uses zeroed options and will
// fail Fit's configuration check.
//
// Not safe for concurrent use: serialize Fit/Embedding calls externally.
type FeatherNode struct {
	opts      Options
	embedding *mat.Dense // nil until the first successful Fit
}

// New creates a FeatherNode with DefaultOptions overridden by opts.
// Configuration is validated by Fit, not here: a misconfigured estimator
// is inert until used.
// Complexity: O(1).
func New(opts ...Option) *FeatherNode {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &FeatherNode{opts: o}
}

// Dimensions reports the configured embedding width. The value is carried
// for interface compatibility only; the actual embedding width is
// Order·2·ReductionDimensions·EvalPoints.
func (f *FeatherNode) Dimensions() int {
	return f.opts.Dimensions
}

// Fit computes the embedding for graph g with attribute matrix attrs
// (row i ↔ vertex i) and stores it, replacing any prior embedding.
//
// Pipeline: validate → reduce (svd) → expand (cos/sin grid) → diffuse
// (order steps of Ã·X) → concatenate.
//
// Returns ErrBadConfig, ErrInvalidGraph or ErrDimensionMismatch from the
// eager validation pass; on failure the previously stored embedding (if
// any) is left untouched.
// Complexity: see the package documentation.
func (f *FeatherNode) Fit(g Graph, attrs mat.Matrix) error {
	// Stage 1: Validate configuration.
	if err := f.opts.validate(); err != nil {
		return fmt.Errorf("Fit: %w", err)
	}

	// Stage 2: Validate the graph — nil/empty and the zero-degree guard —
	// before any matrix computation begins.
	if g == nil {
		return fmt.Errorf("Fit: nil graph: %w", ErrInvalidGraph)
	}
	n := g.Order()
	if n == 0 {
		return fmt.Errorf("Fit: empty graph: %w", ErrInvalidGraph)
	}
	var (
		v, d int
		err  error
	)
	for v = 0; v < n; v++ {
		d, err = g.Degree(v)
		if err != nil {
			return fmt.Errorf("Fit: degree of vertex %d: %v: %w", v, err, ErrInvalidGraph)
		}
		if d == 0 {
			return fmt.Errorf("Fit: vertex %d has degree zero: %w", v, ErrInvalidGraph)
		}
	}

	// Stage 3: Validate attribute shape against the graph and the
	// configured reduction width R ≤ min(N, F).
	if attrs == nil {
		return fmt.Errorf("Fit: nil attribute matrix: %w", ErrDimensionMismatch)
	}
	rows, cols := attrs.Dims()
	if rows != n {
		return fmt.Errorf("Fit: attribute rows=%d != vertices=%d: %w", rows, n, ErrDimensionMismatch)
	}
	r := f.opts.ReductionDimensions
	if r > n || r > cols {
		return fmt.Errorf("Fit: ReductionDimensions=%d exceeds min(%d,%d): %w", r, n, cols, ErrDimensionMismatch)
	}

	// Stage 4: Reduce attributes to N×R (seeded, deterministic).
	reduced, err := svd.Reduce(attrs, r, f.opts.SVDIterations, f.opts.Seed)
	if err != nil {
		// unreachable after Stage 3, kept as a safety net
		return fmt.Errorf("Fit: reduce: %w", err)
	}

	// Stage 5: Spectral expansion over the evaluation grid.
	theta := evaluationPoints(f.opts.ThetaMax, f.opts.EvalPoints)
	expanded := expand(reduced, theta)

	// Stage 6: Normalized adjacency and diffusion stacking.
	adj, err := matrix.NewNormalizedAdjacency(g)
	if err != nil {
		// unreachable after Stage 2, kept as a safety net
		return fmt.Errorf("Fit: adjacency: %v: %w", err, ErrInvalidGraph)
	}
	embedding := diffusionStack(adj, expanded, f.opts.Order)

	// Stage 7: Atomic replace on success.
	f.embedding = embedding

	return nil
}

// Embedding returns the embedding stored by the last successful Fit: an
// N×(Order·2·ReductionDimensions·EvalPoints) dense matrix, row i ↔ vertex
// i. The matrix is the estimator's own storage, not a copy; treat it as
// read-only (the next Fit replaces, never mutates, it).
// Returns ErrNotFitted before the first successful Fit.
// Complexity: O(1).
func (f *FeatherNode) Embedding() (*mat.Dense, error) {
	if f.embedding == nil {
		return nil, fmt.Errorf("Embedding: %w", ErrNotFitted)
	}

	return f.embedding, nil
}
