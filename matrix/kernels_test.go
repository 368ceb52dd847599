// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/orgstat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGram_SmallAndFallback checks XᵀX on a 3×2 input against a hand result.
func TestGram_SmallAndFallback(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	// XᵀX = [[35, 44], [44, 56]]
	for _, in := range []matrix.Matrix{X, hide{X}} {
		G, err := matrix.Gram(in, 0.5)
		require.NoError(t, err)
		require.Equal(t, 2, G.Rows())
		assert.InDelta(t, 17.5, mustAt(t, G, 0, 0), 1e-12)
		assert.InDelta(t, 22.0, mustAt(t, G, 0, 1), 1e-12)
		assert.InDelta(t, 28.0, mustAt(t, G, 1, 1), 1e-12)
		assert.Equal(t, mustAt(t, G, 0, 1), mustAt(t, G, 1, 0))
	}
}

// TestGram_Degenerate covers nil and zero-size inputs.
func TestGram_Degenerate(t *testing.T) {
	t.Parallel()

	_, err := matrix.Gram(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	noRows, _ := matrix.NewDense(0, 3)
	G, err := matrix.Gram(noRows, 1)
	require.NoError(t, err)
	require.Equal(t, 3, G.Rows())
	assert.Equal(t, 0.0, mustAt(t, G, 2, 2))

	noCols, _ := matrix.NewDense(4, 0)
	G, err = matrix.Gram(noCols, 1)
	require.NoError(t, err)
	require.Equal(t, 0, G.Rows())
}

// TestMatVec compares fast and fallback paths and length validation.
func TestMatVec(t *testing.T) {
	t.Parallel()

	A := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	x := []float64{1, 0, -1}

	yf, err := matrix.MatVec(A, x)
	require.NoError(t, err)
	ys, err := matrix.MatVec(hide{A}, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, yf)
	assert.Equal(t, yf, ys)

	_, err = matrix.MatVec(A, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRankOneUpdate deflates an identity by e₀e₀ᵀ.
func TestRankOneUpdate(t *testing.T) {
	t.Parallel()

	for _, wrap := range []bool{false, true} {
		I := mustRows(t, [][]float64{{1, 0}, {0, 1}})
		var A matrix.Matrix = I
		if wrap {
			A = hide{I}
		}
		require.NoError(t, matrix.RankOneUpdate(A, -1, []float64{1, 0}))
		assert.Equal(t, 0.0, mustAt(t, I, 0, 0))
		assert.Equal(t, 1.0, mustAt(t, I, 1, 1))
		assert.Equal(t, 0.0, mustAt(t, I, 0, 1))
	}

	I := mustRows(t, [][]float64{{1, 0}, {0, 1}})
	require.ErrorIs(t, matrix.RankOneUpdate(I, 1, []float64{1}), matrix.ErrDimensionMismatch)
	wide, _ := matrix.NewDense(2, 3)
	require.ErrorIs(t, matrix.RankOneUpdate(wide, 1, []float64{1, 1}), matrix.ErrNonSquare)
}
