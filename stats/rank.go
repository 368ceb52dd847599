// SPDX-License-Identifier: MIT

package stats

import (
	"sort"

	"github.com/katalvlaran/orgstat/dataset"
)

// Order selects the ranking direction.
type Order int

const (
	// Descending ranks the largest value first (default).
	Descending Order = iota

	// Ascending ranks the smallest value first.
	Ascending
)

// Ranked is one row of a ranking table.
type Ranked struct {
	Record   dataset.Record
	Value    float64
	Position int // 1-based; equal values share a position
}

// Rank orders the records that have key present. Ties keep input order and
// share the competition rank ("1, 2, 2, 4").
func Rank(records []dataset.Record, key string, order Order) []Ranked {
	out := make([]Ranked, 0, len(records))
	for _, r := range records {
		if v, ok := r.Value(key).Get(); ok {
			out = append(out, Ranked{Record: r, Value: v})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == Ascending {
			return out[i].Value < out[j].Value
		}
		return out[i].Value > out[j].Value
	})

	for i := range out {
		if i > 0 && out[i].Value == out[i-1].Value {
			out[i].Position = out[i-1].Position
			continue
		}
		out[i].Position = i + 1
	}

	return out
}
