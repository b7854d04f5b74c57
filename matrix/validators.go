// SPDX-License-Identifier: MIT

// Package matrix — topology validators shared by the constructors in
// adjacency.go and by feather's eager pre-Fit validation pass.
package matrix

import "fmt"

// ValidateTopology checks that g is non-nil, non-empty, and that every
// vertex has degree at least one. It reports the first violation found,
// wrapping the corresponding sentinel with vertex context.
//
// Degree queries that themselves fail (a misbehaving Graph implementation)
// are wrapped verbatim so callers can still errors.Is against the
// implementation's own sentinels.
// Complexity: O(N).
func ValidateTopology(g Graph) error {
	// Stage 1: Structural checks.
	if g == nil {
		return ErrNilGraph
	}
	n := g.Order()
	if n == 0 {
		return ErrEmptyGraph
	}

	// Stage 2: Per-vertex degree scan (fail fast on the first offender).
	var (
		v, d int
		err  error
	)
	for v = 0; v < n; v++ {
		d, err = g.Degree(v)
		if err != nil {
			return fmt.Errorf("matrix: degree query for vertex %d: %w", v, err)
		}
		if d == 0 {
			return fmt.Errorf("matrix: vertex %d: %w", v, ErrZeroDegreeVertex)
		}
	}

	return nil
}
