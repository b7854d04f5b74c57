// Package core provides the fundamental Graph type used across feather:
// an undirected, unweighted, simple graph whose vertices are the contiguous
// integer indices 0..N-1.
//
// Overview:
//
//   - The vertex set is fixed at construction time (NewGraph(n)); only edges
//     are added afterwards. This matches the estimator contract, where row i
//     of every attribute and embedding matrix corresponds to vertex i.
//   - Self-loops and parallel edges are rejected with sentinel errors; the
//     diffusion pipeline is defined on simple graphs only.
//   - Neighbor lists are kept sorted in ascending order, so iteration order,
//     derived matrices and downstream embeddings are fully deterministic.
//
// Complexity:
//
//	– NewGraph(n):     O(n) time, O(n) space.
//	– AddEdge(u, v):   O(deg(u) + deg(v)) time (sorted insertion).
//	– HasEdge(u, v):   O(log deg(u)) time.
//	– Degree(v):       O(1) time.
//	– Neighbors(v):    O(deg(v)) time (defensive copy).
//
// Error handling (sentinel):
//
//   - ErrNegativeOrder     if NewGraph is given n < 0.
//   - ErrVertexOutOfRange  if a vertex index is outside 0..N-1.
//   - ErrSelfLoop          if an edge endpoint pair is (v, v).
//   - ErrDuplicateEdge     if the undirected edge already exists.
//
// Concurrency:
//
//   - Graph is not safe for concurrent mutation. Build it fully, then share
//     it read-only; all feather consumers treat the graph as immutable.
package core
