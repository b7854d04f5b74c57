// Package svd implements a seeded randomized truncated singular value
// decomposition for reducing wide attribute matrices to a fixed number of
// leading singular directions.
//
// Overview:
//
//   - Reduce(X, k, q, seed) projects an N×F matrix onto its top-k
//     approximate singular directions, returning the N×k transform
//     X·V_k ≈ U_k·Σ_k (the standard truncated-SVD transform).
//   - The algorithm is the classic randomized range finder: a seeded
//     Gaussian sketch, q power iterations with re-orthonormalization, and
//     one exact small factorization of the k×F projected matrix.
//   - Fixing the seed yields bit-identical output across runs on the same
//     input and library version; there are no time-based or global RNG
//     sources anywhere in this package.
//
// Complexity:
//
//	– Time:  O(q · nnz(X) · k + (N + F) · k²) for sparse X,
//	         O(q · N · F · k) dense.
//	– Space: O((N + F) · k).
//
// Errors (sentinel):
//
//   - ErrNilMatrix         if X is nil.
//   - ErrBadComponents     if k < 1.
//   - ErrBadIterations     if q < 0 (q == 0 means sketch-only projection).
//   - ErrTooManyComponents if k exceeds min(N, F), the rank bound.
//   - ErrFactorization     if the final small SVD fails to converge.
//
// The input is any gonum mat.Matrix; dense *mat.Dense and feather's sparse
// CSR both qualify.
package svd
