// Package feather is a small, deterministic library for attributed node
// embeddings on undirected graphs, built around characteristic-function
// featurization and normalized-adjacency diffusion.
//
// 🚀 What is feather?
//
//	A library that turns "graph topology + per-node attribute matrix" into a
//	fixed-width numeric vector per node, suitable for classification,
//	clustering and link prediction:
//		• Core primitives: compact undirected simple graphs over 0..N-1
//		• Builders: deterministic topology generators for tests & demos
//		• Matrix views: CSR sparse matrices, inverse-degree & normalized adjacency
//		• Reduction: seeded randomized truncated SVD over gonum matrices
//		• Estimation: cos/sin spectral expansion + multi-hop diffusion stacking
//
// ✨ Why choose feather?
//
//   - Deterministic – fixed seed means bit-identical embeddings, run after run
//   - Fail-fast – sentinel errors for every invalid graph, shape or option
//   - Interoperable – attribute inputs and embeddings are gonum mat matrices
//   - Minimal API – construct an estimator, Fit, read the Embedding
//
// Everything is organized under five subpackages:
//
//	core/    — fundamental Graph type over contiguous vertex indices
//	builder/ — deterministic graph & attribute generators (cycle, star, ...)
//	matrix/  — CSR storage, inverse-degree diagonal, normalized adjacency
//	svd/     — seeded randomized truncated SVD
//	feather/ — the FeatherNode estimator facade (Fit / Embedding)
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a 4-cycle; with F attributes per node, order k diffusion and E evaluation
//	points the estimator emits a 4×(k·2·R·E) embedding matrix.
//
//	go get github.com/featherlab/feather
package feather
