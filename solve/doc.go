// Package solve implements direct methods for small dense square linear
// systems A·x = b: Gaussian elimination, Gauss-Jordan reduction, Doolittle
// LU factorization with partial pivoting, and Gauss-Jordan matrix inversion.
//
// All four entry points share one contract:
//
//   - Inputs are copied on entry and never mutated, which makes concurrent
//     calls from multiple goroutines safe without locking.
//   - Every pivot decision compares magnitudes against a single absolute
//     tolerance (DefaultEpsilon = 1e-10, override per call via WithEpsilon).
//     The tolerance is deliberately not scaled to the matrix norm; callers
//     working far from magnitude 1 should pick their own epsilon.
//   - Numerical singularity is a business outcome, not an error: the
//     elimination-family solvers resolve it into the Infinite or NoSolution
//     status, LU delegates the whole call to Gaussian so both always agree,
//     and only Inverse fails hard (ErrSingular). Errors are reserved for
//     caller faults such as nil inputs or shape mismatches.
//
// Gaussian and GaussJordan return a Result carrying the Status, the rank
// found, and the solution vector when it is unique. LU additionally exposes
// the factors L, U and P with P·A = L·U. SolveViaInverse composes Inverse
// with a matrix-vector product for callers that want x = A⁻¹·b directly, and
// Residual/ResidualNorm measure the quality of any candidate solution.
//
// The algorithms run in O(n³) time on O(n²) working copies and are intended
// for modest dimensions. Nothing bounds n here; a service exposing these
// routines to untrusted callers should cap the admissible dimension itself.
package solve
