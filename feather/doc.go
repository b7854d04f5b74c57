// Package feather implements the FeatherNode estimator: attributed node
// embeddings built from characteristic-function features diffused over the
// normalized adjacency matrix.
//
// Overview:
//
//   - Fit reduces an N×F attribute matrix to N×R via seeded randomized
//     truncated SVD, evaluates cos/sin of each reduced value against E
//     evaluation points θ ∈ [0.01, θ_max], then left-multiplies the expanded
//     N×(2·R·E) matrix `order` times by Ã = D⁻¹·A, concatenating every
//     intermediate product.
//   - The final embedding is N×(order·2·R·E); row i always corresponds to
//     vertex i under the graph's fixed 0..N-1 ordering.
//   - Everything is deterministic: a fixed Seed yields bit-identical
//     embeddings across runs on the same input and library version.
//
// When to use:
//
//   - Whenever you need compact per-node numeric representations combining
//     topology and node attributes, for classification, clustering or link
//     prediction, without training a model: the transform has no learned
//     parameters.
//
// Key behaviors:
//
//   - Eager validation: configuration, graph and attribute shapes are all
//     checked before any numeric work starts.
//   - Atomic replace-on-success: a failed Fit leaves any previously stored
//     embedding untouched; a successful Fit fully replaces it.
//   - Block k of the embedding aggregates information from (approximately)
//     the k-hop neighborhood of each vertex, weighted by inverse degrees.
//
// Options (constructor-time, all defaulted):
//
//	– Dimensions:          stored and reported only; does NOT control the
//	                       output width, which is always order·2·R·E. Kept
//	                       for interface compatibility. Default 32.
//	– ReductionDimensions: SVD target width R. Default 64.
//	– SVDIterations:       power-iteration count. Default 20.
//	– Seed:                RNG seed for the SVD sketch. Default 42.
//	– ThetaMax:            upper bound of the evaluation grid. Default 2.5.
//	– EvalPoints:          number of evaluation points E. Default 25.
//	– Order:               diffusion steps / output blocks. Default 5.
//
// Errors (sentinel):
//
//   - ErrInvalidGraph:      nil or empty graph, zero-degree vertex, or a
//     failing Degree/Neighbors query.
//   - ErrDimensionMismatch: attribute rows ≠ vertex count, or
//     ReductionDimensions beyond min(N, F).
//   - ErrBadConfig:         EvalPoints < 1, ThetaMax ≤ 0.01, Order < 1,
//     ReductionDimensions < 1 or SVDIterations < 0.
//   - ErrNotFitted:         Embedding called before a successful Fit.
//
// Complexity:
//
//	– Time:  O(svd) + O(N·R·E) expansion + O(order · E_g · R·E) diffusion,
//	         where E_g is the number of graph edges.
//	– Space: O(N · order·2·R·E) for the final embedding.
//
// Thread safety:
//
//   - A FeatherNode owns its matrices exclusively between calls. Concurrent
//     Fit calls on one instance are undefined behavior; serialize them
//     externally. Fit runs to completion or fails — no cancellation hooks.
//
// See also:
//
//   - core.Graph for the concrete topology type satisfying Graph.
//   - matrix.NewNormalizedAdjacency for the diffusion operator.
//   - svd.Reduce for the attribute reduction.
package feather
