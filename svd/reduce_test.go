// SPDX-License-Identifier: MIT
// Package svd_test contains unit tests for the randomized truncated SVD.
package svd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/featherlab/feather/matrix"
	"github.com/featherlab/feather/svd"
)

// rankTwo builds an 8×5 matrix of exact rank two.
func rankTwo() *mat.Dense {
	a := mat.NewVecDense(8, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	b := mat.NewVecDense(5, []float64{1, -1, 2, 0.5, 3})
	c := mat.NewVecDense(8, []float64{2, -1, 0.5, 1, -2, 3, 0, 1})
	d := mat.NewVecDense(5, []float64{-1, 2, 0, 1, 0.25})

	x := mat.NewDense(8, 5, nil)
	var t1, t2 mat.Dense
	t1.Mul(a, b.T())
	t2.Mul(c, d.T())
	x.Add(&t1, &t2)

	return x
}

// frob2 returns the squared Frobenius norm of m.
func frob2(m mat.Matrix) float64 {
	r, c := m.Dims()
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			sum += v * v
		}
	}

	return sum
}

// TestReduceValidation covers the parameter guards.
func TestReduceValidation(t *testing.T) {
	t.Parallel()

	x := mat.NewDense(4, 3, nil)

	tests := []struct {
		name       string
		x          mat.Matrix
		components int
		iterations int
		wantErr    error
	}{
		{"nil matrix", nil, 2, 5, svd.ErrNilMatrix},
		{"zero components", x, 0, 5, svd.ErrBadComponents},
		{"negative components", x, -3, 5, svd.ErrBadComponents},
		{"negative iterations", x, 2, -1, svd.ErrBadIterations},
		{"components beyond columns", x, 4, 5, svd.ErrTooManyComponents},
		{"components beyond rows", mat.NewDense(2, 6, nil), 3, 5, svd.ErrTooManyComponents},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := svd.Reduce(tc.x, tc.components, tc.iterations, 42)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestReduceRankRecovery verifies that on an exactly rank-2 matrix the
// 2-component transform captures the full Frobenius energy and orders the
// singular directions by decreasing strength.
func TestReduceRankRecovery(t *testing.T) {
	t.Parallel()

	x := rankTwo()
	out, err := svd.Reduce(x, 2, 7, 42)
	require.NoError(t, err)

	r, c := out.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 2, c)

	// rank(X) == 2 ⇒ σ₁²+σ₂² == ‖X‖²_F, and ‖out‖²_F == σ₁²+σ₂².
	require.InEpsilon(t, frob2(x), frob2(out), 1e-9)

	// leading column must carry at least as much energy as the second
	col0 := mat.Col(nil, 0, out)
	col1 := mat.Col(nil, 1, out)
	var e0, e1 float64
	for i := range col0 {
		e0 += col0[i] * col0[i]
		e1 += col1[i] * col1[i]
	}
	require.GreaterOrEqual(t, e0, e1)
}

// TestReduceDeterminism: same input, same seed ⇒ bit-identical output.
func TestReduceDeterminism(t *testing.T) {
	t.Parallel()

	x := rankTwo()
	a, err := svd.Reduce(x, 2, 20, 42)
	require.NoError(t, err)
	b, err := svd.Reduce(x, 2, 20, 42)
	require.NoError(t, err)

	require.Equal(t, a.RawMatrix().Data, b.RawMatrix().Data)
}

// TestReduceSketchOnly: iterations == 0 is a valid sketch-only projection.
func TestReduceSketchOnly(t *testing.T) {
	t.Parallel()

	out, err := svd.Reduce(rankTwo(), 2, 0, 7)
	require.NoError(t, err)
	r, c := out.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 2, c)
	// rank-2 input: even the bare sketch spans the full range
	require.InEpsilon(t, frob2(rankTwo()), frob2(out), 1e-9)
}

// TestReduceSparseInput runs the reducer over a CSR attribute matrix.
func TestReduceSparseInput(t *testing.T) {
	t.Parallel()

	// 4×4 identity-like sparse attributes
	x, err := matrix.NewCSR(4, 4,
		[]int{0, 1, 2, 3, 4},
		[]int{0, 1, 2, 3},
		[]float64{1, 1, 1, 1},
	)
	require.NoError(t, err)

	out, errReduce := svd.Reduce(x, 2, 10, 42)
	require.NoError(t, errReduce)
	r, c := out.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 2, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.Falsef(t, math.IsNaN(out.At(i, j)), "NaN at (%d,%d)", i, j)
		}
	}
}
