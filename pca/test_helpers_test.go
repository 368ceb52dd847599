// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/katalvlaran/orgstat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// mustRows builds a Dense or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// rec builds a record from alternating key/value pairs.
func rec(id string, kv ...any) dataset.Record {
	r := dataset.Record{ID: id, Values: map[string]float64{}}
	for i := 0; i+1 < len(kv); i += 2 {
		r.Values[kv[i].(string)] = kv[i+1].(float64)
	}

	return r
}

func vars(keys ...string) []dataset.Variable {
	out := make([]dataset.Variable, len(keys))
	for i, k := range keys {
		out[i] = dataset.Variable{Key: k}
	}

	return out
}

// requireSameUpToSign asserts a ≈ b or a ≈ −b element-wise.
func requireSameUpToSign(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	neg := make([]float64, len(want))
	copy(neg, want)
	floats.Scale(-1, neg)
	if !floats.EqualApprox(want, got, tol) && !floats.EqualApprox(neg, got, tol) {
		t.Fatalf("vector mismatch up to sign:\n want ±%v\n  got  %v", want, got)
	}
}

// column returns column j of m.
func column(t *testing.T, m *matrix.Dense, j int) []float64 {
	t.Helper()
	c, err := m.Col(j)
	require.NoError(t, err)

	return c
}

func norm(v []float64) float64 { return math.Sqrt(floats.Dot(v, v)) }
