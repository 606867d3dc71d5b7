// SPDX-License-Identifier: MIT
// options.go - functional options shared by every solver entry point.
//
// MAIN DESCRIPTION:
//   The package keeps exactly one tunable: the pivot tolerance epsilon. Every
//   magnitude comparison against zero (pivot usability, zero-row detection,
//   singularity) uses this single value, so all four algorithms classify
//   singular inputs consistently.
//
// Behavior highlights:
//   - Epsilon is ABSOLUTE: it is compared against raw entry magnitudes and is
//     deliberately not scaled to the matrix norm. Matrices with extreme
//     magnitudes may need WithEpsilon to be classified sensibly; picking a
//     scaling policy on the caller's behalf would silently change results.
//   - A pivot whose magnitude equals epsilon exactly is usable: the singular
//     test is strict (|pivot| < eps).
//
// Determinism:
//   - Same inputs and same epsilon produce identical results on every call.

package solve

import "math"

const (
	// DefaultEpsilon is the absolute pivot tolerance used when no
	// WithEpsilon option is supplied.
	DefaultEpsilon = 1e-10

	// panicBadEpsilon guards WithEpsilon against unusable tolerances.
	panicBadEpsilon = "solve: epsilon must be finite and > 0"
)

// Options carries the resolved configuration of one solver call.
type Options struct {
	eps float64
}

// Option mutates Options inside NewSolveOptions.
type Option func(*Options)

// NewSolveOptions RESOLVES the effective configuration for one call.
// Implementation:
//   - Stage 1: Start from defaults (eps = DefaultEpsilon).
//   - Stage 2: Apply each non-nil Option in order; later options win.
//
// Returns:
//   - Options: value type, safe to copy and discard.
func NewSolveOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	var fn Option
	for _, fn = range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithEpsilon OVERRIDES the absolute pivot tolerance.
// Implementation:
//   - Stage 1: Reject NaN, ±Inf and eps <= 0 with a panic; a solver running
//     under a non-positive tolerance would divide by raw zeros.
//   - Stage 2: Return the mutator.
//
// Errors:
//   - Panics with panicBadEpsilon on invalid input (misuse, not runtime data).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicBadEpsilon)
	}

	return func(o *Options) {
		o.eps = eps
	}
}

// Epsilon returns the effective tolerance. A zero-value Options (constructed
// directly rather than via NewSolveOptions) resolves to DefaultEpsilon.
func (o Options) Epsilon() float64 {
	if o.eps <= 0 || math.IsNaN(o.eps) || math.IsInf(o.eps, 0) {
		return DefaultEpsilon
	}

	return o.eps
}
