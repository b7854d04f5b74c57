// Package builder provides deterministic generators for the small canonical
// topologies and synthetic attribute matrices used throughout feather's
// tests, benchmarks and examples.
//
// Overview:
//
//   - Topology constructors (Cycle, Path, Star, Complete, Circulant) return
//     fully built core.Graph values with vertices 0..n-1 and a fixed,
//     documented edge-emission order, so derived matrices and embeddings
//     are reproducible byte for byte.
//   - Attributes produces a seeded Gaussian N×F attribute matrix; the same
//     seed always yields the same matrix.
//   - Circulant builds uniform-degree graphs of arbitrary even degree,
//     which makes it the go-to fixture for shape properties on regular
//     graphs.
//
// Determinism:
//
//   - No constructor reads time, global RNG state or environment; all
//     randomness flows from an explicit seed.
//
// Errors (sentinel):
//
//   - ErrTooFewVertices if n is below the constructor's minimum.
//   - ErrBadOffsets     if Circulant offsets are empty, out of range or
//     not strictly increasing.
//   - ErrBadShape       if Attributes is given a non-positive dimension.
package builder
