// SPDX-License-Identifier: MIT
// Package feather_test contains unit tests for the FeatherNode estimator:
// validation, shape properties, determinism, permutation equivariance and
// the incremental-diffusion guarantee.
package feather_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/featherlab/feather/builder"
	"github.com/featherlab/feather/core"
	"github.com/featherlab/feather/feather"
	"github.com/featherlab/feather/matrix"
)

// fitted builds a cycle graph with Gaussian attributes, fits an estimator
// with small dimensions and returns the embedding.
func fitted(t *testing.T, n, f int, opts ...feather.Option) *mat.Dense {
	t.Helper()
	g, err := builder.Cycle(n)
	require.NoError(t, err)
	attrs, err := builder.Attributes(n, f, 42)
	require.NoError(t, err)

	est := feather.New(opts...)
	require.NoError(t, est.Fit(g, attrs))
	emb, err := est.Embedding()
	require.NoError(t, err)

	return emb
}

// TestEmbeddingShape: uniform-degree graphs yield an
// N×(order·2·R·E) embedding.
func TestEmbeddingShape(t *testing.T) {
	t.Parallel()

	emb := fitted(t, 6, 4,
		feather.WithReductionDimensions(2),
		feather.WithEvalPoints(3),
		feather.WithOrder(2),
	)
	r, c := emb.Dims()
	require.Equal(t, 6, r)
	require.Equal(t, 2*2*2*3, c) // order·2·R·E

	// same property on a 4-regular circulant
	g, err := builder.Circulant(8, []int{1, 2})
	require.NoError(t, err)
	attrs, err := builder.Attributes(8, 5, 42)
	require.NoError(t, err)
	est := feather.New(
		feather.WithReductionDimensions(3),
		feather.WithEvalPoints(2),
		feather.WithOrder(3),
	)
	require.NoError(t, est.Fit(g, attrs))
	emb, err = est.Embedding()
	require.NoError(t, err)
	r, c = emb.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 3*2*3*2, c)
}

// TestFitIdempotence: identical inputs and seed produce bit-identical
// embeddings across Fit calls.
func TestFitIdempotence(t *testing.T) {
	t.Parallel()

	g, err := builder.Cycle(6)
	require.NoError(t, err)
	attrs, err := builder.Attributes(6, 4, 42)
	require.NoError(t, err)

	est := feather.New(
		feather.WithReductionDimensions(2),
		feather.WithEvalPoints(3),
		feather.WithOrder(2),
	)
	require.NoError(t, est.Fit(g, attrs))
	first, err := est.Embedding()
	require.NoError(t, err)
	firstData := append([]float64(nil), first.RawMatrix().Data...)

	require.NoError(t, est.Fit(g, attrs))
	second, err := est.Embedding()
	require.NoError(t, err)

	require.Equal(t, firstData, second.RawMatrix().Data)
}

// TestPermutationEquivariance: relabeling the graph and permuting attribute
// rows consistently permutes the embedding rows and nothing else.
func TestPermutationEquivariance(t *testing.T) {
	t.Parallel()

	const (
		n = 6
		f = 4
	)
	perm := []int{2, 0, 5, 1, 3, 4} // vertex i of g1 becomes perm[i] in g2

	g1, err := builder.Cycle(n)
	require.NoError(t, err)
	attrs1, err := builder.Attributes(n, f, 42)
	require.NoError(t, err)

	// relabeled copy: same cycle, vertices renamed by perm
	g2, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, g2.AddEdge(perm[i], perm[(i+1)%n]))
	}
	attrs2 := mat.NewDense(n, f, nil)
	for i := 0; i < n; i++ {
		attrs2.SetRow(perm[i], attrs1.RawRowView(i))
	}

	opts := []feather.Option{
		feather.WithReductionDimensions(2),
		feather.WithEvalPoints(2),
		feather.WithOrder(2),
	}
	e1 := feather.New(opts...)
	e2 := feather.New(opts...)
	require.NoError(t, e1.Fit(g1, attrs1))
	require.NoError(t, e2.Fit(g2, attrs2))

	emb1, err := e1.Embedding()
	require.NoError(t, err)
	emb2, err := e2.Embedding()
	require.NoError(t, err)

	_, c := emb1.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			require.InDeltaf(t, emb1.At(i, j), emb2.At(perm[i], j), 1e-8,
				"row %d col %d under permutation", i, j)
		}
	}
}

// TestDiffusionBlocks: block k+1 equals Ã applied to block k — the
// incremental construction matches explicit powers.
func TestDiffusionBlocks(t *testing.T) {
	t.Parallel()

	const (
		n     = 5
		m     = 2 * 2 * 2 // 2·R·E per block
		order = 3
	)
	g, err := builder.Cycle(n)
	require.NoError(t, err)
	attrs, err := builder.Attributes(n, 4, 42)
	require.NoError(t, err)

	est := feather.New(
		feather.WithReductionDimensions(2),
		feather.WithEvalPoints(2),
		feather.WithOrder(order),
	)
	require.NoError(t, est.Fit(g, attrs))
	emb, err := est.Embedding()
	require.NoError(t, err)

	adj, err := matrix.NewNormalizedAdjacency(g)
	require.NoError(t, err)

	for k := 0; k < order-1; k++ {
		blockK := emb.Slice(0, n, k*m, (k+1)*m).(*mat.Dense)
		blockK1 := emb.Slice(0, n, (k+1)*m, (k+2)*m).(*mat.Dense)
		want := adj.MulDense(blockK)
		require.Truef(t, mat.EqualApprox(want, blockK1, 1e-12),
			"block %d+1 must be Ã·block %d", k, k)
	}
}

// TestCycleScenario: the canonical 4-cycle fixture — shape (4, 8), finite
// values, cos and sin blocks bounded in [-1, 1].
func TestCycleScenario(t *testing.T) {
	t.Parallel()

	g, err := builder.Cycle(4)
	require.NoError(t, err)
	attrs, err := builder.Attributes(4, 3, 42)
	require.NoError(t, err)

	est := feather.New(
		feather.WithReductionDimensions(2),
		feather.WithEvalPoints(2),
		feather.WithOrder(1),
		feather.WithThetaMax(1.0),
	)
	require.NoError(t, est.Fit(g, attrs))
	emb, err := est.Embedding()
	require.NoError(t, err)

	r, c := emb.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 8, c) // 1·2·2·2

	// one diffusion step averages bounded cos/sin values: the result stays
	// finite and inside [-1, 1]
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := emb.At(i, j)
			require.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite at (%d,%d)", i, j)
			require.LessOrEqual(t, v, 1.0+1e-9)
			require.GreaterOrEqual(t, v, -1.0-1e-9)
		}
	}
}

// TestFitInvalidGraph covers nil/empty graphs and the isolated-vertex
// guard, including replace-on-success atomicity.
func TestFitInvalidGraph(t *testing.T) {
	t.Parallel()

	opts := []feather.Option{
		feather.WithReductionDimensions(2),
		feather.WithEvalPoints(2),
		feather.WithOrder(1),
	}

	est := feather.New(opts...)
	attrs, err := builder.Attributes(4, 3, 42)
	require.NoError(t, err)

	// nil graph
	require.ErrorIs(t, est.Fit(nil, attrs), feather.ErrInvalidGraph)

	// empty graph
	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	require.ErrorIs(t, est.Fit(empty, attrs), feather.ErrInvalidGraph)

	// isolated vertex 3
	isolated, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, isolated.AddEdge(0, 1))
	require.NoError(t, isolated.AddEdge(1, 2))
	require.NoError(t, isolated.AddEdge(2, 0))
	require.ErrorIs(t, est.Fit(isolated, attrs), feather.ErrInvalidGraph)

	// a failed Fit must leave a previously stored embedding untouched
	good, err := builder.Cycle(4)
	require.NoError(t, err)
	require.NoError(t, est.Fit(good, attrs))
	before, err := est.Embedding()
	require.NoError(t, err)

	require.ErrorIs(t, est.Fit(isolated, attrs), feather.ErrInvalidGraph)
	after, err := est.Embedding()
	require.NoError(t, err)
	require.Same(t, before, after, "failed Fit must not replace the embedding")
}

// TestFitDimensionErrors covers attribute-shape and reduction-width guards.
func TestFitDimensionErrors(t *testing.T) {
	t.Parallel()

	g, err := builder.Cycle(4)
	require.NoError(t, err)
	attrs, err := builder.Attributes(4, 3, 42)
	require.NoError(t, err)

	// nil attributes
	est := feather.New(feather.WithReductionDimensions(2))
	require.ErrorIs(t, est.Fit(g, nil), feather.ErrDimensionMismatch)

	// row count != vertex count
	wide, err := builder.Attributes(5, 3, 42)
	require.NoError(t, err)
	require.ErrorIs(t, est.Fit(g, wide), feather.ErrDimensionMismatch)

	// reduction width beyond attribute columns
	est = feather.New(
		feather.WithReductionDimensions(5),
		feather.WithEvalPoints(2),
		feather.WithOrder(1),
	)
	require.ErrorIs(t, est.Fit(g, attrs), feather.ErrDimensionMismatch)

	// reduction width beyond vertex count
	tall, err := builder.Attributes(4, 16, 42)
	require.NoError(t, err)
	est = feather.New(feather.WithReductionDimensions(8))
	require.ErrorIs(t, est.Fit(g, tall), feather.ErrDimensionMismatch)
}

// TestFitConfigErrors: each out-of-domain option fails eagerly with
// ErrBadConfig.
func TestFitConfigErrors(t *testing.T) {
	t.Parallel()

	g, err := builder.Cycle(4)
	require.NoError(t, err)
	attrs, err := builder.Attributes(4, 3, 42)
	require.NoError(t, err)

	tests := []struct {
		name string
		opts []feather.Option
	}{
		{"zero reduction dimensions", []feather.Option{feather.WithReductionDimensions(0)}},
		{"negative svd iterations", []feather.Option{feather.WithReductionDimensions(2), feather.WithSVDIterations(-1)}},
		{"zero eval points", []feather.Option{feather.WithReductionDimensions(2), feather.WithEvalPoints(0)}},
		{"theta max at lower bound", []feather.Option{feather.WithReductionDimensions(2), feather.WithThetaMax(0.01)}},
		{"theta max NaN", []feather.Option{feather.WithReductionDimensions(2), feather.WithThetaMax(math.NaN())}},
		{"zero order", []feather.Option{feather.WithReductionDimensions(2), feather.WithOrder(0)}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			est := feather.New(tc.opts...)
			require.ErrorIs(t, est.Fit(g, attrs), feather.ErrBadConfig)
		})
	}
}

// TestEmbeddingBeforeFit: a fresh estimator has no embedding.
func TestEmbeddingBeforeFit(t *testing.T) {
	t.Parallel()

	est := feather.New()
	emb, err := est.Embedding()
	require.Nil(t, emb)
	require.ErrorIs(t, err, feather.ErrNotFitted)
}

// TestSparseAttributes: a CSR attribute matrix flows through the full
// pipeline.
func TestSparseAttributes(t *testing.T) {
	t.Parallel()

	g, err := builder.Cycle(4)
	require.NoError(t, err)
	// identity-like 4×4 sparse attributes
	attrs, err := matrix.NewCSR(4, 4,
		[]int{0, 1, 2, 3, 4},
		[]int{0, 1, 2, 3},
		[]float64{1, 1, 1, 1},
	)
	require.NoError(t, err)

	est := feather.New(
		feather.WithReductionDimensions(2),
		feather.WithEvalPoints(2),
		feather.WithOrder(2),
	)
	require.NoError(t, est.Fit(g, attrs))
	emb, errEmb := est.Embedding()
	require.NoError(t, errEmb)
	r, c := emb.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 2*2*2*2, c)
}

// TestDimensionsReported: the vestigial width is stored and reported but
// never shapes the output.
func TestDimensionsReported(t *testing.T) {
	t.Parallel()

	est := feather.New(
		feather.WithDimensions(128),
		feather.WithReductionDimensions(2),
		feather.WithEvalPoints(2),
		feather.WithOrder(1),
	)
	require.Equal(t, 128, est.Dimensions())

	g, err := builder.Cycle(4)
	require.NoError(t, err)
	attrs, err := builder.Attributes(4, 3, 42)
	require.NoError(t, err)
	require.NoError(t, est.Fit(g, attrs))
	emb, err := est.Embedding()
	require.NoError(t, err)
	_, c := emb.Dims()
	require.Equal(t, 8, c, "output width ignores Dimensions")
}
