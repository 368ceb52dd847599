// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"

	"github.com/katalvlaran/orgstat/matrix"
	"gonum.org/v1/gonum/floats"
)

// Project returns one score row per row of z: scores[i][c] is the dot product
// of row i with pairs[c].Vector. Row order is preserved.
//
// Errors: matrix.ErrNilMatrix; matrix.ErrDimensionMismatch when a vector's
// length differs from z.Cols().
// Complexity: O(N·p·k).
func Project(z matrix.Matrix, pairs []EigenPair) ([][]float64, error) {
	if err := matrix.ValidateNotNil(z); err != nil {
		return nil, pcaErrorf(opProject, err)
	}

	rows := z.Rows()
	scores := make([][]float64, rows)
	var i int
	for i = 0; i < rows; i++ {
		scores[i] = make([]float64, len(pairs))
	}

	for c, p := range pairs {
		col, err := matrix.MatVec(z, p.Vector)
		if err != nil {
			return nil, pcaErrorf(opProject, fmt.Errorf("component %d: %w", c+1, err))
		}
		for i = 0; i < rows; i++ {
			scores[i][c] = col[i]
		}
	}

	return scores, nil
}

// ExplainedVarianceRatio returns each eigenvalue as a percentage of the sum
// of the given eigenvalues. The ratio is relative to the extracted components
// only; it equals the share of total variance only when every component was
// extracted. A zero sum yields all zeros.
func ExplainedVarianceRatio(eigenvalues []float64) []float64 {
	out := make([]float64, len(eigenvalues))
	total := floats.Sum(eigenvalues)
	if total == 0 {
		return out
	}
	for i, ev := range eigenvalues {
		out[i] = ev / total * 100
	}

	return out
}

// Values returns the eigenvalues of pairs in order.
func Values(pairs []EigenPair) []float64 {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = p.Value
	}

	return out
}
