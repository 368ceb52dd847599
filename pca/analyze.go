// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/katalvlaran/orgstat/matrix"
)

// ProjectedPoint is one complete record placed in component space.
type ProjectedPoint struct {
	Record dataset.Record
	Scores []float64 // Scores[c] is the score on component c+1
}

// PC1 returns the first component score.
func (p ProjectedPoint) PC1() float64 { return p.score(0) }

// PC2 returns the second component score, or 0 when only one was extracted.
func (p ProjectedPoint) PC2() float64 { return p.score(1) }

func (p ProjectedPoint) score(c int) float64 {
	if c >= len(p.Scores) {
		return 0
	}

	return p.Scores[c]
}

// Result is the outcome of one Analyze call. It is computed fresh on every
// call and shares no state with its inputs.
type Result struct {
	Variables    []dataset.Variable
	Standardized *Standardized
	Covariance   *matrix.Dense
	Pairs        []EigenPair
	Explained    []float64 // percent per component, relative to the extracted ones
	Points       []ProjectedPoint
}

// Loading returns the coefficient of variable key on component c (0-based).
func (r *Result) Loading(c int, key string) (float64, bool) {
	if c < 0 || c >= len(r.Pairs) {
		return 0, false
	}
	for j, v := range r.Variables {
		if v.Key == key {
			return r.Pairs[c].Vector[j], true
		}
	}

	return 0, false
}

// Analyze runs Standardize → Covariance → TopK → Project and
// ExplainedVarianceRatio over records. WithComponents picks k (default 2);
// the remaining options tune TopK.
//
// Errors are those of the stages. ErrComponentCount (k > len(vars)) is
// checked first, before any data is read; ErrInsufficientData is reported
// before any eigen work.
func Analyze(records []dataset.Record, vars []dataset.Variable, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if o.components > len(vars) && len(vars) > 0 {
		return nil, pcaErrorf(opAnalyze, fmt.Errorf("%w: k=%d, %d variables", ErrComponentCount, o.components, len(vars)))
	}

	z, err := Standardize(records, vars)
	if err != nil {
		return nil, pcaErrorf(opAnalyze, err)
	}
	cov, err := Covariance(z.Matrix)
	if err != nil {
		return nil, pcaErrorf(opAnalyze, err)
	}
	pairs, err := TopK(cov, o.components, opts...)
	if err != nil {
		return nil, pcaErrorf(opAnalyze, err)
	}
	scores, err := Project(z.Matrix, pairs)
	if err != nil {
		return nil, pcaErrorf(opAnalyze, err)
	}

	points := make([]ProjectedPoint, len(scores))
	for i, s := range scores {
		points[i] = ProjectedPoint{Record: z.Records[i], Scores: s}
	}

	return &Result{
		Variables:    z.Variables,
		Standardized: z,
		Covariance:   cov,
		Pairs:        pairs,
		Explained:    ExplainedVarianceRatio(Values(pairs)),
		Points:       points,
	}, nil
}
