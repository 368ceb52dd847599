// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"sort"

	"github.com/katalvlaran/orgstat/dataset"
	"gonum.org/v1/gonum/floats"
)

// Quantile positions used by Summarize.
const (
	lowerQuartile = 0.25
	upperQuartile = 0.75
)

// Summary holds descriptive statistics of one variable. Variance and the
// higher moments use population (divide by N) forms.
type Summary struct {
	Count    int     `json:"count"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Range    float64 `json:"range"`
	Sum      float64 `json:"sum"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	IQR      float64 `json:"iqr"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"` // excess kurtosis (normal = 0)
	CV       float64 `json:"cv"`       // StdDev / Mean × 100
}

// Summarize computes a Summary of values, or nil when values is empty.
// Callers filter absent/NaN values first (see SummarizeColumn); the input
// slice is not modified.
//
// Complexity: O(N log N) for the sort, O(N) otherwise.
func Summarize(values []float64) *Summary {
	n := len(values)
	if n == 0 {
		return nil
	}

	// Stage 1 (Prepare): sorted copy for extrema and quantiles.
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	s := &Summary{
		Count: n,
		Min:   sorted[0],
		Max:   sorted[n-1],
		Sum:   floats.Sum(sorted),
	}
	s.Range = s.Max - s.Min
	s.Q1 = sorted[quantileIndex(n, lowerQuartile)]
	s.Q3 = sorted[quantileIndex(n, upperQuartile)]
	s.IQR = s.Q3 - s.Q1
	if n%2 == 0 {
		s.Median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		s.Median = sorted[n/2]
	}

	// Stage 2 (Moments): a constant column has exactly zero spread; skip the
	// accumulation so rounding in the mean cannot fake a tiny variance.
	if s.Min == s.Max {
		s.Mean = s.Min
		return s
	}
	s.Mean = s.Sum / float64(n)

	var m2, m3, m4, d, d2 float64
	for _, x := range sorted {
		d = x - s.Mean
		d2 = d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	inv := 1 / float64(n)
	s.Variance = m2 * inv
	s.StdDev = math.Sqrt(s.Variance)

	// Stage 3 (Shape): guarded standardized moments.
	if s.StdDev > 0 {
		sd2 := s.Variance
		s.Skewness = m3 * inv / (sd2 * s.StdDev)
		s.Kurtosis = m4*inv/(sd2*sd2) - 3
		if s.Mean != 0 {
			s.CV = s.StdDev / s.Mean * 100
		}
	}

	return s
}

// SummarizeColumn summarizes the present values of col.
func SummarizeColumn(col []dataset.Value) *Summary {
	return Summarize(dataset.Present(col))
}

// quantileIndex is floor(n·p), the truncating nearest-rank index.
func quantileIndex(n int, p float64) int {
	return int(math.Floor(float64(n) * p))
}
