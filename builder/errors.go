// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w wrapping at the call site.
//   - Constructors never panic at runtime.
package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the allowed minimum
// for the requested constructor (e.g. Cycle needs n ≥ 3).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadOffsets indicates Circulant offsets that are empty, out of the
// valid 1..n/2 range, or not strictly increasing.
var ErrBadOffsets = errors.New("builder: invalid circulant offsets")

// ErrBadShape indicates a non-positive attribute-matrix dimension.
var ErrBadShape = errors.New("builder: non-positive matrix dimension")
