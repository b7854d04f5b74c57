// SPDX-License-Identifier: MIT

// Package feather — sentinel errors, the graph capability interface, and
// constructor-time configuration.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Fit attaches vertex/shape context via %w wrapping; sentinels are never
//     stringified with parameters at the definition site.
//   - Invalid configuration is reported by Fit (eager validation), never by
//     the option constructors: a misconfigured estimator is inert until
//     used, matching the replace-on-success lifecycle.
package feather

import (
	"errors"
	"fmt"
)

// Sentinel errors for the estimator facade.
var (
	// ErrInvalidGraph indicates the graph cannot be embedded: nil, empty,
	// a zero-degree vertex, or a failing topology query.
	ErrInvalidGraph = errors.New("feather: invalid graph")

	// ErrDimensionMismatch indicates the attribute matrix shape is
	// incompatible with the graph or the configured reduction width.
	ErrDimensionMismatch = errors.New("feather: incompatible dimensions")

	// ErrBadConfig indicates an out-of-domain configuration value.
	ErrBadConfig = errors.New("feather: invalid configuration")

	// ErrNotFitted indicates Embedding was called before a successful Fit.
	ErrNotFitted = errors.New("feather: estimator not fitted")
)

// Graph is the capability surface Fit requires from a topology: contiguous
// vertex indices 0..Order()-1, degree lookup, ascending neighbor
// enumeration. *core.Graph satisfies it, as does matrix.Graph — the method
// sets are identical, so values flow between the two interfaces directly.
type Graph interface {
	// Order returns the number of vertices N.
	Order() int

	// Degree returns the number of neighbors of v, or an error for
	// out-of-range indices.
	Degree(v int) (int, error)

	// Neighbors returns the neighbors of v in ascending order, or an error
	// for out-of-range indices.
	Neighbors(v int) ([]int, error)
}

// Configuration defaults. Each mirrors the corresponding Options field.
const (
	DefaultDimensions          = 32
	DefaultReductionDimensions = 64
	DefaultSVDIterations       = 20
	DefaultSeed          int64 = 42
	DefaultThetaMax            = 2.5
	DefaultEvalPoints          = 25
	DefaultOrder               = 5
)

// thetaLow is the fixed lower bound of the evaluation grid. ThetaMax must
// exceed it for the grid to be increasing.
const thetaLow = 0.01

// Options configures a FeatherNode. Construct via DefaultOptions or New
// with functional options; the struct is copied into the estimator and
// never mutated afterwards.
//
// Dimensions is stored and reported only — the embedding width is always
// Order·2·ReductionDimensions·EvalPoints, regardless of this value.
type Options struct {
	Dimensions          int     // reported width, unused by the math
	ReductionDimensions int     // SVD target width R
	SVDIterations       int     // SVD power-iteration count
	Seed                int64   // SVD sketch seed
	ThetaMax            float64 // upper bound of the evaluation grid
	EvalPoints          int     // number of evaluation points E
	Order               int     // diffusion steps / embedding blocks
}

// Option represents a functional option for configuring a FeatherNode.
type Option func(*Options)

// WithDimensions sets the reported embedding width. The value does not
// participate in the computation; see the Options doc.
func WithDimensions(d int) Option {
	return func(o *Options) { o.Dimensions = d }
}

// WithReductionDimensions sets the SVD target width R.
// Fit fails with ErrBadConfig unless R ≥ 1, and with ErrDimensionMismatch
// if R exceeds min(N, F) of the inputs.
func WithReductionDimensions(r int) Option {
	return func(o *Options) { o.ReductionDimensions = r }
}

// WithSVDIterations sets the SVD power-iteration count.
// Zero is valid (sketch-only projection); negative fails with ErrBadConfig.
func WithSVDIterations(n int) Option {
	return func(o *Options) { o.SVDIterations = n }
}

// WithSeed sets the RNG seed for the SVD sketch. Fixing the seed makes Fit
// bit-deterministic for identical inputs.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithThetaMax sets the upper bound of the evaluation grid.
// Must be > 0.01 (the fixed lower bound), else Fit fails with ErrBadConfig.
func WithThetaMax(max float64) Option {
	return func(o *Options) { o.ThetaMax = max }
}

// WithEvalPoints sets the number of characteristic-function evaluation
// points E. Must be ≥ 1, else Fit fails with ErrBadConfig.
func WithEvalPoints(e int) Option {
	return func(o *Options) { o.EvalPoints = e }
}

// WithOrder sets the number of diffusion steps (= embedding blocks).
// Must be ≥ 1, else Fit fails with ErrBadConfig.
func WithOrder(k int) Option {
	return func(o *Options) { o.Order = k }
}

// DefaultOptions returns the canonical configuration. Use functional
// options (or New) to override individual fields.
func DefaultOptions() Options {
	return Options{
		Dimensions:          DefaultDimensions,
		ReductionDimensions: DefaultReductionDimensions,
		SVDIterations:       DefaultSVDIterations,
		Seed:                DefaultSeed,
		ThetaMax:            DefaultThetaMax,
		EvalPoints:          DefaultEvalPoints,
		Order:               DefaultOrder,
	}
}

// validate checks every configuration field against its domain, reporting
// the first violation wrapped around ErrBadConfig.
// Dimensions is intentionally unvalidated: it is reported, never used.
func (o Options) validate() error {
	if o.ReductionDimensions < 1 {
		return fmt.Errorf("ReductionDimensions=%d must be >= 1: %w", o.ReductionDimensions, ErrBadConfig)
	}
	if o.SVDIterations < 0 {
		return fmt.Errorf("SVDIterations=%d must be >= 0: %w", o.SVDIterations, ErrBadConfig)
	}
	// NaN fails this comparison too, which is exactly what we want.
	if !(o.ThetaMax > thetaLow) {
		return fmt.Errorf("ThetaMax=%v must be > %v: %w", o.ThetaMax, thetaLow, ErrBadConfig)
	}
	if o.EvalPoints < 1 {
		return fmt.Errorf("EvalPoints=%d must be >= 1: %w", o.EvalPoints, ErrBadConfig)
	}
	if o.Order < 1 {
		return fmt.Errorf("Order=%d must be >= 1: %w", o.Order, ErrBadConfig)
	}

	return nil
}
