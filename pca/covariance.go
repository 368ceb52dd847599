// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"

	"github.com/katalvlaran/orgstat/matrix"
)

// Covariance returns (ZᵀZ)/(N−1) for a standardized N×p matrix Z.
// Z is assumed column-centered (Standardize guarantees it); no centering is
// repeated here. The result is exactly symmetric and its diagonal holds each
// column's sample variance (N/(N−1) for a population-standardized column).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when N < 2.
// Complexity: O(N·p²).
func Covariance(z matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(z); err != nil {
		return nil, pcaErrorf(opCovariance, err)
	}
	n := z.Rows()
	if n < 2 {
		return nil, pcaErrorf(opCovariance, fmt.Errorf("%d rows: %w", n, matrix.ErrDimensionMismatch))
	}

	cov, err := matrix.Gram(z, 1/float64(n-1))
	if err != nil {
		return nil, pcaErrorf(opCovariance, err)
	}

	return cov, nil
}
