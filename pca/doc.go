// SPDX-License-Identifier: MIT

// Package pca projects records onto their leading principal components.
//
// 🚀 Pipeline:
//
//	records ─▶ Standardize ─▶ Covariance ─▶ TopK ─▶ Project
//	                                          └──▶ ExplainedVarianceRatio
//
//   - Standardize keeps only records with every variable present, then
//     z-scores each column with population mean/std (std 0 → divisor 1).
//   - Covariance is (ZᵀZ)/(N−1) over the standardized matrix.
//   - TopK extracts eigenpairs by power iteration with deflation.
//   - Project dots each standardized row with each eigenvector.
//
// Analyze runs the whole pipeline and re-associates scores with records.
//
// ⚙️ Precision:
//
//	TopK runs a fixed iteration budget (DefaultIterations). Precision is set
//	by that budget alone; raise it with WithIterations when eigenvalues are
//	close. WithTolerance adds an optional early stop. The start vector is
//	pseudo-random from a fixed seed, so results are reproducible; vectors are
//	sign-canonicalized (largest-magnitude coefficient positive).
//
// Errors:
//   - ErrInsufficientData — fewer than MinRecords complete records.
//   - ErrNoVariables      — empty variable list.
//   - ErrComponentCount   — k < 1 or k greater than the matrix dimension.
package pca
