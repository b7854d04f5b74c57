// SPDX-License-Identifier: MIT

// Package feather — spectral expansion (the characteristic-function
// featurization step between reduction and diffusion).
//
// Contract:
//   - The evaluation grid is linspace(0.01, θ_max, E), inclusive of both
//     endpoints; E == 1 degenerates to the single point 0.01.
//   - Layout: value (node i, reduced feature j, point p) lands at column
//     j·E+p in the cos block; the sin block follows at offset R·E.
//   - Output values are bounded in [-1, 1] by construction.
package feather

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// evaluationPoints builds the E-point grid θ = linspace(thetaLow, max, e).
// The caller guarantees e ≥ 1 and max > thetaLow (validated in Fit).
// Complexity: O(E).
func evaluationPoints(max float64, e int) []float64 {
	theta := make([]float64, e)
	if e == 1 {
		theta[0] = thetaLow

		return theta
	}

	step := (max - thetaLow) / float64(e-1)
	for p := 0; p < e; p++ {
		theta[p] = thetaLow + float64(p)*step
	}
	// pin the endpoint exactly, independent of step rounding
	theta[e-1] = max

	return theta
}

// expand maps each reduced feature value through cos/sin at every
// evaluation point: the outer product of the flattened N×R matrix with θ,
// reshaped back to N rows and split into [cos-block | sin-block].
// Output shape: N × (2·R·E).
// Complexity: O(N·R·E) time and space.
func expand(reduced *mat.Dense, theta []float64) *mat.Dense {
	var (
		n, r    = reduced.Dims()
		e       = len(theta)
		width   = r * e
		out     = mat.NewDense(n, 2*width, nil)
		i, j, p int
		v       float64
		src     []float64
		dst     []float64
	)
	for i = 0; i < n; i++ {
		src = reduced.RawRowView(i)
		dst = out.RawRowView(i)
		for j = 0; j < r; j++ {
			for p = 0; p < e; p++ {
				v = src[j] * theta[p]
				dst[j*e+p] = math.Cos(v)
				dst[width+j*e+p] = math.Sin(v)
			}
		}
	}

	return out
}
