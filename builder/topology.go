// SPDX-License-Identifier: MIT
//
// topology.go — deterministic topology constructors.
//
// Contract:
//   - Vertices are always 0..n-1; edges are emitted in increasing index
//     order, so every build is reproducible byte for byte.
//   - Each constructor validates its parameter domain first (fail fast,
//     no work on invalid input) and returns only sentinel errors.
//   - All results are simple undirected graphs; core enforces no loops and
//     no parallel edges, and the emission orders below never produce them.
//
// Complexity: O(n) to O(n²) per constructor (noted per function); memory is
// that of the resulting adjacency.
package builder

import (
	"fmt"

	"github.com/featherlab/feather/core"
)

// File-local minimums (no magic numbers; stable method tags for context).
const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodCirc     = "Circulant"

	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minCompleteNodes = 2
	minCircNodes     = 3
)

// Cycle builds the n-vertex simple cycle C_n: edges i—(i+1)%n.
// Every vertex has degree 2. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}
	for i := 0; i < n; i++ {
		if err = g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, i, (i+1)%n, err)
		}
	}

	return g, nil
}

// Path builds the n-vertex path P_n: edges i—(i+1).
// Endpoint degrees are 1, interior degrees 2. Requires n ≥ 2.
// Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	for i := 0; i < n-1; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, i, i+1, err)
		}
	}

	return g, nil
}

// Star builds the n-vertex star S_n with center 0: edges 0—i for i=1..n-1.
// Center degree n-1, leaf degree 1. Requires n ≥ 2.
// Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStar, err)
	}
	for i := 1; i < n; i++ {
		if err = g.AddEdge(0, i); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(0,%d): %w", methodStar, i, err)
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n: every unordered pair is an edge.
// Every vertex has degree n-1. Requires n ≥ 2.
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
			}
		}
	}

	return g, nil
}

// Circulant builds the circulant graph C_n(offsets): vertex v connects to
// (v±o) mod n for every offset o. Offsets must be strictly increasing and
// lie in 1..n/2. The result is regular: degree 2·len(offsets), minus one
// when n is even and n/2 is among the offsets (that chord pairs vertices).
// Requires n ≥ 3.
// Complexity: O(n · len(offsets)).
func Circulant(n int, offsets []int) (*core.Graph, error) {
	// Stage 1: Validate the parameter domain.
	if n < minCircNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCirc, n, minCircNodes, ErrTooFewVertices)
	}
	if len(offsets) == 0 {
		return nil, fmt.Errorf("%s: empty offsets: %w", methodCirc, ErrBadOffsets)
	}
	for i, o := range offsets {
		if o < 1 || o > n/2 {
			return nil, fmt.Errorf("%s: offset %d outside 1..%d: %w", methodCirc, o, n/2, ErrBadOffsets)
		}
		if i > 0 && o <= offsets[i-1] {
			return nil, fmt.Errorf("%s: offsets not strictly increasing at %d: %w", methodCirc, i, ErrBadOffsets)
		}
	}

	// Stage 2: Emit chords in ascending (vertex, offset) order.
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCirc, err)
	}
	for v := 0; v < n; v++ {
		for _, o := range offsets {
			u := (v + o) % n
			// the half-length chord is generated from both endpoints;
			// keep only the canonical lower-endpoint emission
			if o*2 == n && v > u {
				continue
			}
			if err = g.AddEdge(v, u); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCirc, v, u, err)
			}
		}
	}

	return g, nil
}
