// SPDX-License-Identifier: MIT

// Package feather — diffusion stacking.
//
// Contract:
//   - The running matrix starts at the expanded features X_e and is
//     left-multiplied by Ã once per step: block k holds Ã^k·X_e, computed
//     incrementally, never via explicit matrix powers.
//   - Blocks are laid out left to right in increasing step order; the
//     output column span of block k is [k·M, (k+1)·M) with M = 2·R·E.
package feather

import (
	"gonum.org/v1/gonum/mat"

	"github.com/featherlab/feather/matrix"
)

// diffusionStack runs `order` diffusion steps over the expanded feature
// matrix and concatenates the per-step results horizontally.
// The caller guarantees order ≥ 1 and matching shapes (validated in Fit).
// Complexity: O(order · nnz(Ã) · M) time, O(N · order·M) space.
func diffusionStack(adj *matrix.CSR, expanded *mat.Dense, order int) *mat.Dense {
	var (
		n, m    = expanded.Dims()
		out     = mat.NewDense(n, order*m, nil)
		running = expanded
		k, i    int
	)
	for k = 0; k < order; k++ {
		// one more hop of graph diffusion
		running = adj.MulDense(running)
		// append block k at column offset k·M
		for i = 0; i < n; i++ {
			copy(out.RawRowView(i)[k*m:(k+1)*m], running.RawRowView(i))
		}
	}

	return out
}
