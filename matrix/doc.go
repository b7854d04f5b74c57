// Package matrix provides the sparse linear-algebra views feather derives
// from a graph: compressed sparse row (CSR) storage, the inverse-degree
// diagonal matrix D⁻¹, and the row-normalized adjacency matrix Ã = D⁻¹·A.
//
// Overview:
//
//   - CSR implements gonum's mat.Matrix, so sparse graph matrices plug
//     directly into the dense gonum pipeline used by the estimator.
//   - NewInverseDegreeDiagonal and NewNormalizedAdjacency are pure functions
//     of the graph: they allocate fresh matrices on every call and never
//     cache (the estimator recomputes them per Fit by contract).
//   - Columns within each CSR row are strictly ascending, mirroring the
//     sorted neighbor lists of core.Graph, so all products are deterministic.
//
// Degree-zero policy:
//
//	A vertex with degree 0 makes 1/degree undefined. Rather than silently
//	emitting +Inf or NaN entries that would corrupt every diffusion block
//	downstream, both constructors fail fast with ErrZeroDegreeVertex,
//	identifying the offending vertex in the wrapped message.
//
// Complexity:
//
//	– NewInverseDegreeDiagonal: O(N) time and space.
//	– NewNormalizedAdjacency:   O(N + E) time, O(N + E) space.
//	– CSR.MulDense:             O(nnz · cols(B)) time.
//
// Errors (sentinel):
//
//   - ErrNilGraph          if the graph argument is nil.
//   - ErrEmptyGraph        if the graph has no vertices.
//   - ErrZeroDegreeVertex  if any vertex has no incident edges.
//   - ErrBadCSR            if raw CSR components are inconsistent.
//
// See also: core.Graph for the concrete topology type, and feather.Fit for
// the validation pass that surfaces these errors eagerly.
package matrix
