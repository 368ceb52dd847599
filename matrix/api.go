// SPDX-License-Identifier: MIT

// Package matrix: public facade. Each exported kernel delegates to its
// unexported implementation in impl_kernels.go.
package matrix

// Gram returns scale · XᵀX as a c×c symmetric Dense (c = X.Cols()).
// With scale = 1/(r−1) and column-centered X this is the sample covariance.
func Gram(X Matrix, scale float64) (*Dense, error) { return gram(X, scale) }

// MatVec returns A·x.
func MatVec(A Matrix, x []float64) ([]float64, error) { return matVec(A, x) }

// RankOneUpdate applies A += alpha·v·vᵀ in place. A negative alpha deflates.
func RankOneUpdate(A Matrix, alpha float64, v []float64) error {
	return rankOneUpdate(A, alpha, v)
}
