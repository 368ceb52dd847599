// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the three kernels the PCA pipeline composes:
//     gram (scaled XᵀX), matVec (A·x) and rankOneUpdate (A += α·v·vᵀ).
//
// Determinism & Performance:
//   - Fixed i→j→k traversal for every loop.
//   - Dense fast-paths walk the row-major flat buffer directly; other Matrix
//     implementations go through At/Set with full error propagation.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opGram          = "Gram"
	opMatVec        = "MatVec"
	opRankOneUpdate = "RankOneUpdate"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// gram computes G = scale · XᵀX for an r×c input, returning a c×c Dense.
// Implementation:
//   - Stage 1: Validate X (non-nil); allocate c×c result (0×0 when c==0).
//   - Stage 2: Accumulate the upper triangle row by row (outer products).
//   - Stage 3: Scale and mirror into the lower triangle.
//
// Behavior highlights:
//   - The result is exactly symmetric: G[k,j] is a copy of G[j,k].
//   - r==0 yields an all-zero c×c matrix.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func gram(X Matrix, scale float64) (*Dense, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	r, c := X.Rows(), X.Cols()
	G, err := NewDense(c, c)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	// Stage 2 (Accumulate): upper triangle only.
	var i, j, k int
	var xj, xk float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			row := d.data[i*c : (i+1)*c]
			for j = 0; j < c; j++ {
				xj = row[j]
				for k = j; k < c; k++ {
					G.data[j*c+k] += xj * row[k]
				}
			}
		}
	} else {
		row := make([]float64, c)
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if row[j], err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opGram, err)
				}
			}
			for j = 0; j < c; j++ {
				xj = row[j]
				for k = j; k < c; k++ {
					xk = row[k]
					G.data[j*c+k] += xj * xk
				}
			}
		}
	}

	// Stage 3 (Finalize): scale and mirror.
	for j = 0; j < c; j++ {
		for k = j; k < c; k++ {
			G.data[j*c+k] *= scale
			G.data[k*c+j] = G.data[j*c+k]
		}
	}

	return G, nil
}

// matVec computes y = A·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != A.Cols()).
// Complexity: O(r*c).
func matVec(A Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(A); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, A.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := A.Rows(), A.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := A.(*Dense); ok {
		for i = 0; i < rows; i++ {
			acc = 0
			base := i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		acc = 0
		for j = 0; j < cols; j++ {
			if v, err = A.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// rankOneUpdate applies A[i,j] += alpha · v[i] · v[j] in place.
// A must be square with side len(v).
// Complexity: O(n²).
func rankOneUpdate(A Matrix, alpha float64, v []float64) error {
	if err := ValidateSquare(A); err != nil {
		return matrixErrorf(opRankOneUpdate, err)
	}
	n := A.Rows()
	if err := ValidateVecLen(v, n); err != nil {
		return matrixErrorf(opRankOneUpdate, err)
	}

	var i, j int
	if d, ok := A.(*Dense); ok {
		for i = 0; i < n; i++ {
			base := i * n
			for j = 0; j < n; j++ {
				d.data[base+j] += alpha * v[i] * v[j]
			}
		}

		return nil
	}

	var a float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if a, err = A.At(i, j); err != nil {
				return matrixErrorf(opRankOneUpdate, err)
			}
			if err = A.Set(i, j, a+alpha*v[i]*v[j]); err != nil {
				return matrixErrorf(opRankOneUpdate, err)
			}
		}
	}

	return nil
}
