// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra surface used by the
// statistics and PCA packages.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Sentinel errors shared by every kernel (errors.Is friendly).
//   - Validators (nil, square, symmetric, vector length, finiteness).
//   - Kernels: Gram (scaled XᵀX), MatVec and RankOneUpdate.
//
// Kernels take the Matrix interface and switch to flat-slice loops when the
// operand is a *Dense. Loop order is fixed (i→j), so results are bitwise
// reproducible for identical inputs.
//
// Matrices here are small (records × variables, variables × variables), so
// every kernel is a plain O(r·c²) or better loop without blocking.
package matrix
