// SPDX-License-Identifier: MIT

package stats_test

import (
	"fmt"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/katalvlaran/orgstat/stats"
)

// ExampleSummarize shows the truncating quartiles on five values.
func ExampleSummarize() {
	s := stats.Summarize([]float64{10, 20, 30, 40, 50})
	fmt.Printf("mean=%g median=%g q1=%g q3=%g range=%g\n", s.Mean, s.Median, s.Q1, s.Q3, s.Range)
	// Output:
	// mean=30 median=30 q1=20 q3=40 range=40
}

// ExampleCorrelation shows a perfectly anti-correlated pair.
func ExampleCorrelation() {
	x := []dataset.Value{dataset.Some(1), dataset.Some(2), dataset.Some(3)}
	y := []dataset.Value{dataset.Some(3), dataset.Some(2), dataset.Some(1)}
	fmt.Printf("%.1f\n", stats.Correlation(x, y))
	// Output:
	// -1.0
}
