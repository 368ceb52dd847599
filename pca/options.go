// SPDX-License-Identifier: MIT

// Package pca: functional configuration for the eigen solver and pipeline.
// WithX constructors panic on nonsensical values (programmer error); public
// entry points accept ...Option and resolve them through gatherOptions.
package pca

import (
	"math"
	"math/rand"
)

// Defaults (single source of truth).
const (
	// DefaultIterations is the power-iteration budget per component.
	DefaultIterations = 100

	// DefaultTolerance disables early stopping; every component runs the full budget.
	DefaultTolerance = 0.0

	// DefaultSeed seeds the start vector. Negative seeds draw a fresh seed per call.
	DefaultSeed int64 = 42

	// DefaultComponents is the number of components Analyze extracts.
	DefaultComponents = 2
)

const (
	panicIterationsInvalid = "pca: WithIterations: n must be >= 1"
	panicToleranceInvalid  = "pca: WithTolerance: tol must be finite and non-negative"
	panicComponentsInvalid = "pca: WithComponents: k must be >= 1"
)

// Option mutates internal options.
type Option func(*options)

type options struct {
	iterations int     // >= 1
	tolerance  float64 // >= 0; 0 disables early stop
	seed       int64   // < 0 → non-deterministic
	components int     // >= 1, Analyze only
}

func defaultOptions() options {
	return options{
		iterations: DefaultIterations,
		tolerance:  DefaultTolerance,
		seed:       DefaultSeed,
		components: DefaultComponents,
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// rng returns the start-vector source for one TopK call.
func (o options) rng() *rand.Rand {
	if o.seed < 0 {
		return rand.New(rand.NewSource(rand.Int63()))
	}

	return rand.New(rand.NewSource(o.seed))
}

// WithIterations sets the power-iteration budget per component.
// DefaultIterations is the smallest budget that converges on covariance
// matrices of this scale (a handful of variables); smaller budgets are
// accepted, but their eigenpairs may be visibly unconverged.
func WithIterations(n int) Option {
	if n < 1 {
		panic(panicIterationsInvalid)
	}

	return func(o *options) { o.iterations = n }
}

// WithTolerance stops a component early once the max-norm change of the
// iterate drops below tol. Zero restores the fixed budget.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolerance = tol }
}

// WithSeed seeds the start vector; a negative seed is non-deterministic.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithComponents sets how many components Analyze extracts.
func WithComponents(k int) Option {
	if k < 1 {
		panic(panicComponentsInvalid)
	}

	return func(o *options) { o.components = k }
}
