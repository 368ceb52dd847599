// Package orgstat is a compact statistics toolkit for small tabular datasets:
// a few dozen records, a handful of numeric variables, some values missing.
//
// 🚀 What is inside?
//
//	• Dataset: tagged values (present/absent), variables with units, an embedded catalog
//	• Descriptive statistics: summary, quantiles, moments, ranking, group summaries
//	• Correlation: pairwise Pearson r over co-present values, full matrix + strongest pairs
//	• PCA: standardization, covariance, power iteration with deflation, projection
//
// ✨ Guarantees
//
//   - Deterministic – fixed default seed, fixed loop order, bit-for-bit repeatable results
//   - Missing-aware – absent values never turn into zeros
//   - Small surface – plain functions over slices and one dense matrix type
//
// Layout:
//
//	dataset/    — Value, Variable, Record, catalog loading and grouping
//	stats/      — Summarize, Correlation, CorrelationMatrix, Rank, SummarizeGroups
//	matrix/     — Dense matrix, validators, Gram / MatVec / RankOneUpdate kernels
//	pca/        — Standardize, Covariance, TopK, Project, Analyze
//	cmd/orgstat — command-line front end over the embedded catalog
//
//	go install github.com/katalvlaran/orgstat/cmd/orgstat@latest
package orgstat
