// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/orgstat/matrix"
	"gonum.org/v1/gonum/floats"
)

// signTieTol is the relative window in which coefficients tie for sign choice.
const signTieTol = 1e-9

// EigenPair is one extracted component: Value is ‖A·v‖ at acceptance and
// Vector is unit-norm with len = matrix dimension.
type EigenPair struct {
	Value      float64   `json:"value"`
	Vector     []float64 `json:"vector"`
	Iterations int       `json:"iterations"` // iterations actually run
}

// TopK extracts the k leading eigenpairs of a symmetric matrix by power
// iteration with deflation.
// Implementation:
//   - Stage 1: Validate m (square, symmetric within matrix.DefaultEpsilon,
//     finite) and 1 ≤ k ≤ n. Work on a private copy of m.
//   - Stage 2: For each component, iterate w = A·v, λ = ‖w‖, v = w/λ for the
//     configured budget (or until the tolerance is met).
//   - Stage 3: Canonicalize the sign of v and deflate A ← A − λ·v·vᵀ.
//
// Behavior highlights:
//   - Pairs come back in extraction order; with imperfect convergence this
//     may differ slightly from true descending order.
//   - Precision is bounded by the iteration budget; raise it with
//     WithIterations. There is no convergence guarantee for near-equal
//     eigenvalues.
//   - λ is a magnitude; for covariance (PSD) input it equals the eigenvalue.
//   - A zero working matrix yields λ = 0 with the current unit iterate.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry, matrix.ErrNaNInf.
//   - ErrComponentCount for k < 1 or k > n (no clamping).
//
// Complexity: O(k·iterations·n²).
func TopK(m matrix.Matrix, k int, opts ...Option) ([]EigenPair, error) {
	// Stage 1 (Validate).
	if err := matrix.ValidateSymmetric(m, matrix.DefaultEpsilon); err != nil {
		return nil, pcaErrorf(opTopK, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, pcaErrorf(opTopK, err)
	}
	n := m.Rows()
	if k < 1 || k > n {
		return nil, pcaErrorf(opTopK, fmt.Errorf("%w: k=%d, dimension %d", ErrComponentCount, k, n))
	}

	o := gatherOptions(opts...)
	rng := o.rng()
	work := m.Clone()

	pairs := make([]EigenPair, 0, k)
	var c int
	for c = 0; c < k; c++ {
		// Stage 2 (Iterate).
		pair, err := powerIterate(work, startVector(rng, n), o)
		if err != nil {
			return nil, pcaErrorf(opTopK, err)
		}

		// Stage 3 (Finalize): sign, then deflate for the next component.
		canonicalSign(pair.Vector)
		if err = matrix.RankOneUpdate(work, -pair.Value, pair.Vector); err != nil {
			return nil, pcaErrorf(opTopK, err)
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}

// powerIterate runs the iteration on A from the unit vector v.
func powerIterate(A matrix.Matrix, v []float64, o options) (EigenPair, error) {
	var (
		lambda float64
		it     int
		w      []float64
		err    error
	)
	for it = 1; it <= o.iterations; it++ {
		if w, err = matrix.MatVec(A, v); err != nil {
			return EigenPair{}, err
		}
		lambda = floats.Norm(w, 2)
		if lambda == 0 {
			break // exhausted: keep the current unit iterate
		}
		floats.Scale(1/lambda, w)
		converged := o.tolerance > 0 && floats.Distance(w, v, math.Inf(1)) < o.tolerance
		v = w
		if converged {
			break
		}
	}
	if it > o.iterations {
		it = o.iterations
	}

	return EigenPair{Value: lambda, Vector: v, Iterations: it}, nil
}

// startVector draws a unit vector with positive entries.
func startVector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1 - rng.Float64() // (0, 1]
	}
	floats.Scale(1/floats.Norm(v, 2), v)

	return v
}

// canonicalSign flips v so its largest-magnitude coefficient is positive.
// Coefficients within signTieTol (relative) of the largest count as ties and
// the lowest index wins, so rounding noise cannot flip the choice.
func canonicalSign(v []float64) {
	var peak float64
	for _, x := range v {
		peak = math.Max(peak, math.Abs(x))
	}
	for _, x := range v {
		if math.Abs(x) >= peak*(1-signTieTol) {
			if x < 0 {
				floats.Scale(-1, v)
			}
			return
		}
	}
}
