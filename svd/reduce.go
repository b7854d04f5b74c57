// SPDX-License-Identifier: MIT

// Package svd — randomized truncated SVD.
//
// Contract:
//   - Reduce never mutates its input; all work happens in fresh panels.
//   - The only dense O(N²) object is never formed: the range basis stays a
//     thin N×k panel, re-orthonormalized in place by modified Gram-Schmidt.
//   - Returns only sentinel errors; never panics at runtime.
package svd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// mgsTolerance is the column-norm threshold below which a panel column is
// treated as numerically dependent and zeroed instead of normalized.
const mgsTolerance = 1e-12

// Reduce computes the truncated-SVD transform of x onto its top `components`
// singular directions.
//
// Algorithm (randomized range finder):
//
//	Stage 1: Validate shapes and parameters.
//	Stage 2: Sketch Y = X·Ω with a seeded F×k Gaussian Ω.
//	Stage 3: Run `iterations` power rounds Y ← X·orth(Xᵀ·orth(Y)).
//	Stage 4: Q = orth(Y); factorize B = Qᵀ·X exactly (k×F, small).
//	Stage 5: Return Q·U_B·Σ, the N×k projection X·V_k.
//
// Determinism: fixed seed ⇒ bit-identical output for identical input.
// Complexity: O(iterations · N · F · k) dense time, O((N+F)·k) space.
func Reduce(x mat.Matrix, components, iterations int, seed int64) (*mat.Dense, error) {
	// Stage 1: Validate.
	if x == nil {
		return nil, fmt.Errorf("Reduce: %w", ErrNilMatrix)
	}
	n, f := x.Dims()
	if components < 1 {
		return nil, fmt.Errorf("Reduce: components=%d: %w", components, ErrBadComponents)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("Reduce: iterations=%d: %w", iterations, ErrBadIterations)
	}
	if components > n || components > f {
		return nil, fmt.Errorf("Reduce: components=%d exceeds min(%d,%d): %w", components, n, f, ErrTooManyComponents)
	}

	// Stage 2: Seeded Gaussian sketch Ω (F×k) and initial range panel Y.
	var (
		k     = components
		rng   = rngFromSeed(seed)
		omega = mat.NewDense(f, k, nil)
		i, j  int
	)
	for i = 0; i < f; i++ {
		row := omega.RawRowView(i)
		for j = 0; j < k; j++ {
			row[j] = rng.NormFloat64()
		}
	}
	var y mat.Dense // N×k range panel
	y.Mul(x, omega)

	// Stage 3: Power iterations with re-orthonormalization each half-step.
	// Orthonormalizing both panels keeps the iteration numerically stable
	// for sharply decaying spectra (the LU/QR-normalized scheme).
	var z mat.Dense // F×k co-range panel
	for it := 0; it < iterations; it++ {
		orthonormalize(&y)
		z.Mul(x.T(), &y)
		orthonormalize(&z)
		y.Mul(x, &z)
	}

	// Stage 4: Final thin basis and exact small factorization.
	orthonormalize(&y) // Q: N×k, orthonormal columns
	var b mat.Dense    // B = Qᵀ·X: k×F
	b.Mul(y.T(), x)

	var dec mat.SVD
	if !dec.Factorize(&b, mat.SVDThin) {
		return nil, fmt.Errorf("Reduce: %w", ErrFactorization)
	}
	var ub mat.Dense // U_B: k×k
	dec.UTo(&ub)
	sigma := dec.Values(nil) // k singular values, descending

	// Stage 5: Assemble the transform Q·U_B·Σ.
	var u mat.Dense // N×k left directions lifted back to sample space
	u.Mul(&y, &ub)
	out := mat.NewDense(n, k, nil)
	for i = 0; i < n; i++ {
		src := u.RawRowView(i)
		dst := out.RawRowView(i)
		for j = 0; j < k; j++ {
			dst[j] = src[j] * sigma[j]
		}
	}

	return out, nil
}

// orthonormalize replaces the columns of a with an orthonormal basis of
// their span using modified Gram-Schmidt. Columns that become numerically
// dependent (norm below mgsTolerance) are zeroed, never divided.
// Operates in place on the raw backing array.
// Complexity: O(rows · cols²) time, O(1) extra space.
func orthonormalize(a *mat.Dense) {
	var (
		raw  = a.RawMatrix()
		rows = raw.Rows
		cols = raw.Cols
		ld   = raw.Stride
		d    = raw.Data

		i, j, k   int
		dot, norm float64
	)
	for j = 0; j < cols; j++ {
		// project out the already-orthonormal columns, one at a time
		for k = 0; k < j; k++ {
			dot = 0
			for i = 0; i < rows; i++ {
				dot += d[i*ld+k] * d[i*ld+j]
			}
			if dot == 0 {
				continue
			}
			for i = 0; i < rows; i++ {
				d[i*ld+j] -= dot * d[i*ld+k]
			}
		}
		// normalize or zero the residual column
		norm = 0
		for i = 0; i < rows; i++ {
			norm += d[i*ld+j] * d[i*ld+j]
		}
		norm = math.Sqrt(norm)
		if norm < mgsTolerance {
			for i = 0; i < rows; i++ {
				d[i*ld+j] = 0
			}

			continue
		}
		for i = 0; i < rows; i++ {
			d[i*ld+j] /= norm
		}
	}
}
