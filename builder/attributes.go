// SPDX-License-Identifier: MIT
//
// attributes.go — seeded synthetic attribute matrices.
//
// This file centralizes deterministic random generation for the builder
// package.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrix across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Safety: no panics or logging; only sentinel errors from errors.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; each call builds its own
//     generator from the seed and discards it.
package builder

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed
// verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Attributes builds an n×f dense matrix of standard-Gaussian node
// attributes, filled row-major from the seeded generator.
// Returns ErrBadShape if n < 1 or f < 1.
// Complexity: O(n·f).
func Attributes(n, f int, seed int64) (*mat.Dense, error) {
	if n < 1 || f < 1 {
		return nil, fmt.Errorf("Attributes: shape %dx%d: %w", n, f, ErrBadShape)
	}

	var (
		rng = rngFromSeed(seed)
		out = mat.NewDense(n, f, nil)
		i   int
		j   int
	)
	for i = 0; i < n; i++ {
		row := out.RawRowView(i)
		for j = 0; j < f; j++ {
			row[j] = rng.NormFloat64()
		}
	}

	return out, nil
}
