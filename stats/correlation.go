// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/katalvlaran/orgstat/matrix"
)

// minCorrelationPairs is the fewest co-present pairs for a defined r.
const minCorrelationPairs = 2

const panicLengthMismatch = "stats: Correlation: x and y must be index-aligned (len %d != %d)"

// Correlation returns Pearson's r between x and y over indices where both
// values are present.
//
// It returns 0 when fewer than two pairs remain or either filtered series is
// constant. The result is clamped to [-1, 1]. Correlation is symmetric in its
// arguments bit for bit.
//
// x and y are index-aligned per record; different lengths are a programming
// error and panic.
func Correlation(x, y []dataset.Value) float64 {
	if len(x) != len(y) {
		panic(fmt.Sprintf(panicLengthMismatch, len(x), len(y)))
	}

	// Stage 1 (Filter): co-present pairs only.
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	var i int
	for i = range x {
		xv, okX := x[i].Get()
		yv, okY := y[i].Get()
		if okX && okY {
			xs = append(xs, xv)
			ys = append(ys, yv)
		}
	}

	return pearson(xs, ys)
}

// pearson computes r over equal-length, fully present series.
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n < minCorrelationPairs || constant(xs) || constant(ys) {
		return 0
	}

	// Stage 2 (Means).
	var mx, my float64
	var i int
	for i = 0; i < n; i++ {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(n)
	my /= float64(n)

	// Stage 3 (Sums of products of deviations).
	var sxy, sxx, syy, dx, dy float64
	for i = 0; i < n; i++ {
		dx = xs[i] - mx
		dy = ys[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}

	den := math.Sqrt(sxx * syy)
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0
	}

	return clamp(sxy/den, -1, 1)
}

// constant reports whether every element equals the first.
func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}

	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// CorrelationMatrix is the symmetric Pearson matrix over an ordered variable list.
type CorrelationMatrix struct {
	keys []string
	r    *matrix.Dense
}

// Pair is one off-diagonal entry of a CorrelationMatrix.
type Pair struct {
	A string  `json:"a"`
	B string  `json:"b"`
	R float64 `json:"r"`
}

// NewCorrelationMatrix computes r for every variable pair over records.
// Entry (i,j) only uses records where both variables are present. The
// diagonal is 1 for columns with nonzero variance and 0 otherwise.
//
// Complexity: O(n²·N) for n variables and N records.
func NewCorrelationMatrix(records []dataset.Record, vars []dataset.Variable) (*CorrelationMatrix, error) {
	n := len(vars)
	r, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewCorrelationMatrix: %w", err)
	}

	cols := make([][]dataset.Value, n)
	var i, j int
	for i = 0; i < n; i++ {
		cols[i] = dataset.Column(records, vars[i].Key)
	}

	// Upper triangle, mirrored.
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = Correlation(cols[i], cols[j])
			if i == j && v != 0 {
				v = 1 // exact, free of sqrt rounding
			}
			if err = r.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("NewCorrelationMatrix: %w", err)
			}
			if err = r.Set(j, i, v); err != nil {
				return nil, fmt.Errorf("NewCorrelationMatrix: %w", err)
			}
		}
	}

	return &CorrelationMatrix{keys: dataset.Keys(vars), r: r}, nil
}

// Keys returns the axis order.
func (c *CorrelationMatrix) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)

	return out
}

// Size is the number of variables on each axis.
func (c *CorrelationMatrix) Size() int { return len(c.keys) }

// At returns r at (i, j).
func (c *CorrelationMatrix) At(i, j int) (float64, error) { return c.r.At(i, j) }

// Get returns r between the variables keyed a and b.
func (c *CorrelationMatrix) Get(a, b string) (float64, bool) {
	i, j := c.indexOf(a), c.indexOf(b)
	if i < 0 || j < 0 {
		return 0, false
	}
	v, err := c.r.At(i, j)

	return v, err == nil
}

// Matrix returns a copy of the underlying matrix.
func (c *CorrelationMatrix) Matrix() *matrix.Dense {
	return c.r.Clone().(*matrix.Dense)
}

// Pairs lists the upper-triangle entries ordered by |r| descending; ties keep
// row-major order.
func (c *CorrelationMatrix) Pairs() []Pair {
	n := len(c.keys)
	out := make([]Pair, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v, _ := c.r.At(i, j)
			out = append(out, Pair{A: c.keys[i], B: c.keys[j], R: v})
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return math.Abs(out[a].R) > math.Abs(out[b].R)
	})

	return out
}

func (c *CorrelationMatrix) indexOf(key string) int {
	for i, k := range c.keys {
		if k == key {
			return i
		}
	}

	return -1
}
