// SPDX-License-Identifier: MIT

// Package stats computes descriptive statistics and Pearson correlations over
// per-variable columns of dataset records.
//
// 🚀 What's inside:
//   - Summarize: count, extrema, mean, median, quartiles, population
//     variance/std, skewness, excess kurtosis and coefficient of variation.
//   - Correlation: pairwise Pearson r over co-present values, clamped to [-1, 1].
//   - CorrelationMatrix: symmetric r matrix over an ordered variable list.
//   - Rank and SummarizeGroups: ranking-table and per-category views.
//
// Degenerate input never yields NaN or Inf:
//   - no values → nil *Summary;
//   - fewer than two co-present pairs or a constant column → r = 0;
//   - zero standard deviation → skewness, kurtosis and CV are 0.
//
// Quantiles use the truncating nearest-rank rule sorted[floor(N·p)]; the
// median alone averages the two central elements for even N.
package stats
