// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/katalvlaran/orgstat/matrix"
)

// MinRecords is the fewest complete records Standardize accepts.
const MinRecords = 3

// Standardized is the z-scored design matrix of the complete records.
type Standardized struct {
	// Matrix holds one row per record in Records and one column per variable.
	Matrix *matrix.Dense

	// Records are the qualifying records in input order.
	Records []dataset.Record

	// Variables is the column order.
	Variables []dataset.Variable

	// Means and StdDevs are the raw population moments per column.
	// A zero StdDev marks a column standardized with divisor 1.
	Means   []float64
	StdDevs []float64
}

// Standardize z-scores records over vars.
// Implementation:
//   - Stage 1: Keep records whose every variable is present; drop the rest.
//   - Stage 2: Population mean/std per column over kept records.
//   - Stage 3: z = (x − mean)/std, with std 0 replaced by 1.
//
// Errors:
//   - ErrNoVariables when vars is empty.
//   - ErrInsufficientData when fewer than MinRecords records qualify.
//
// Complexity: O(N·p) for N records and p variables.
func Standardize(records []dataset.Record, vars []dataset.Variable) (*Standardized, error) {
	p := len(vars)
	if p == 0 {
		return nil, pcaErrorf(opStandardize, ErrNoVariables)
	}

	// Stage 1 (Filter): complete records only, in input order.
	kept := make([]dataset.Record, 0, len(records))
	raw := make([][]float64, 0, len(records))
	var j int
	for _, r := range records {
		row := make([]float64, p)
		complete := true
		for j = 0; j < p; j++ {
			x, ok := r.Value(vars[j].Key).Get()
			if !ok {
				complete = false
				break
			}
			row[j] = x
		}
		if complete {
			kept = append(kept, r)
			raw = append(raw, row)
		}
	}
	n := len(kept)
	if n < MinRecords {
		return nil, pcaErrorf(opStandardize, fmt.Errorf("%w: %d complete records, need %d", ErrInsufficientData, n, MinRecords))
	}

	// Stage 2 (Moments): a constant column gets mean = its value and std 0,
	// so rounding in the mean cannot leak a nonzero z-score.
	means := make([]float64, p)
	stds := make([]float64, p)
	var d float64
	for j = 0; j < p; j++ {
		if constantColumn(raw, j) {
			means[j] = raw[0][j]
			continue
		}
		for _, row := range raw {
			means[j] += row[j]
		}
		means[j] /= float64(n)
		for _, row := range raw {
			d = row[j] - means[j]
			stds[j] += d * d
		}
		stds[j] = math.Sqrt(stds[j] / float64(n))
	}

	// Stage 3 (Scale): in place over the raw rows; std 0 uses divisor 1.
	var div float64
	for _, row := range raw {
		for j = 0; j < p; j++ {
			div = stds[j]
			if div == 0 {
				div = 1
			}
			row[j] = (row[j] - means[j]) / div
		}
	}

	z, err := matrix.NewDenseFromRows(raw)
	if err != nil {
		return nil, pcaErrorf(opStandardize, err)
	}
	cols := make([]dataset.Variable, p)
	copy(cols, vars)

	return &Standardized{Matrix: z, Records: kept, Variables: cols, Means: means, StdDevs: stds}, nil
}

// constantColumn reports whether column j holds a single repeated value.
func constantColumn(rows [][]float64, j int) bool {
	for _, row := range rows[1:] {
		if row[j] != rows[0][j] {
			return false
		}
	}

	return true
}
