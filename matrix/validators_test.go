// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/orgstat/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	square, _ := matrix.NewDense(3, 3)
	wide, _ := matrix.NewDense(2, 3)

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"3x3", square, nil},
		{"2x3", wide, matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateSymmetric checks the eps window and the fallback path.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := mustRows(t, [][]float64{{1, 2}, {2, 1}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 0))

	near := mustRows(t, [][]float64{{1, 2}, {2 + 1e-12, 1}})
	require.NoError(t, matrix.ValidateSymmetric(near, matrix.DefaultEpsilon))
	require.ErrorIs(t, matrix.ValidateSymmetric(near, 0), matrix.ErrAsymmetry)

	skew := mustRows(t, [][]float64{{0, 1}, {-1, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(skew, matrix.DefaultEpsilon), matrix.ErrAsymmetry)

	wide, _ := matrix.NewDense(1, 2)
	require.ErrorIs(t, matrix.ValidateSymmetric(wide, 0), matrix.ErrNonSquare)
}

// TestValidateVecLen enforces exact length match.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrDimensionMismatch)
}

// TestValidateFinite rejects NaN and Inf on both paths.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	ok := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, matrix.ValidateFinite(ok))
	require.NoError(t, matrix.ValidateFinite(hide{ok}))

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m := mustRows(t, [][]float64{{1, bad}})
		require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
		require.ErrorIs(t, matrix.ValidateFinite(hide{m}), matrix.ErrNaNInf)
	}
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}
