// Package matrix offers dense row-major storage and the small linear-algebra
// toolkit the solver packages build on.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 matrix behind the mutable Matrix
//     interface, with safe At/Set accessors that return errors instead of
//     panicking.
//   - Constructors for common shapes: NewDense, NewFromRows, NewZeros,
//     NewIdentity plus the ...Like variants.
//   - Elementwise and structural kernels: Add, Sub, Mul, Scale, Transpose,
//     MatVec, each with a fast path on *Dense and a generic fallback.
//   - AllClose, the tolerant comparison used to state numeric expectations.
//
// Dense matrices are best for small, fully populated systems where O(r·c)
// memory and direct indexing are acceptable, which is exactly the regime the
// solve package targets.
//
// See the examples in this package and solve for usage patterns.
package matrix
