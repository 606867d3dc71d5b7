// SPDX-License-Identifier: MIT
// impl_lu.go - partial-pivoted Doolittle LU factorization with permutation
// tracking.

package solve

import (
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// LU SOLVES A·x = b through a Doolittle decomposition P·A = L·U with
// partial pivoting, and exposes the three factors alongside the solution.
//
// MAIN DESCRIPTION:
//   U starts as a copy of A; L starts as the identity (Doolittle keeps L's
//   diagonal at 1); P starts as the identity permutation. For each column k
//   the row with the largest |U[row][k]| among rows ≥ k is swapped into
//   position - in U, in P, in the permuted right-hand side P·b, and in the
//   already-built block of L restricted to columns 0..k-1 (later columns of
//   L do not yet exist and need no swap). Each elimination factor is
//   recorded into L[row][k] while U[row][k] is zeroed exactly.
//
//   When even the best pivot stays below epsilon the matrix is structurally
//   singular for this method. Rather than inventing an ad-hoc recovery, the
//   whole call is delegated to Gaussian on the ORIGINAL inputs and its
//   result returned verbatim, so LU's classification of singular systems
//   always agrees with the elimination family. Gaussian never delegates
//   further, so the hand-off fires at most once per call chain.
//
// Implementation Stages:
//   - Stage 1: Validate the system shape.
//   - Stage 2: Snapshot A into U, b into P·b; L and P start as identities.
//   - Stage 3: Per column - pivot swap across all four structures, epsilon
//     check (delegate on failure), then eliminate below the diagonal.
//   - Stage 4: Forward substitution L·y = P·b (unit diagonal).
//   - Stage 5: Backward substitution U·x = y, re-checking each U[i][i]
//     against epsilon and delegating on failure.
//   - Stage 6: Package {Unique, x, L, U, P}.
//
// Behavior highlights:
//   - Inputs are never mutated; delegation therefore sees them pristine.
//   - On the non-delegated path: diag(L) is all ones, U carries exact zeros
//     below the diagonal, P is a permutation matrix and P·A = L·U holds
//     within rounding.
//   - On the delegated path the Result carries no factors (L/U/P nil).
//
// Inputs:
//   - a (matrix.Matrix): square coefficient matrix, n ≥ 1.
//   - b ([]float64): right-hand side of length n.
//   - options: WithEpsilon to override DefaultEpsilon.
//
// Returns:
//   - Result: {Unique, x, L, U, P} from the factorization path, or whatever
//     Gaussian classified on the delegated path.
//   - error: caller faults only.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension, ErrDimensionMismatch (wrapped).
//
// Determinism & Complexity:
//   - Deterministic; pivot ties keep the first maximal row.
//   - Time O(n³), memory O(n²) for U, L and P.
func LU(a matrix.Matrix, b []float64, options ...Option) (Result, error) {
	n, err := ValidateSystem(a, b)
	if err != nil {
		return Result{}, solveErrorf(opLU, err)
	}
	eps := NewSolveOptions(options...).Epsilon()

	u, err := snapshot(a, n)
	if err != nil {
		return Result{}, solveErrorf(opLU, err)
	}
	pb := snapshotVec(b)
	l := identityBuf(n)
	pm := identityBuf(n)

	var k, p, r int
	var factor float64
	for k = 0; k < n; k++ {
		p = selectPivot(u, n, n, k, k)
		if p != k {
			swapRows(u, n, k, p, pb)
			swapRows(pm, n, k, p)
			swapRowsPrefix(l, n, k, p, k)
		}
		if math.Abs(u[k*n+k]) < eps {
			// structurally singular for this method: hand the original
			// system to Gaussian and return its classification verbatim
			return Gaussian(a, b, options...)
		}
		for r = k + 1; r < n; r++ {
			factor = u[r*n+k] / u[k*n+k]
			l[r*n+k] = factor
			eliminate(u, nil, n, r, k, factor, k)
		}
	}

	// L·y = P·b, top down; L's unit diagonal needs no division.
	y := make([]float64, n)
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = pb[i]
		for j = 0; j < i; j++ {
			sum -= l[i*n+j] * y[j]
		}
		y[i] = sum
	}

	// U·x = y, bottom up, re-checking each diagonal entry.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		if math.Abs(u[i*n+i]) < eps {
			return Gaussian(a, b, options...)
		}
		sum = y[i]
		for j = i + 1; j < n; j++ {
			sum -= u[i*n+j] * x[j]
		}
		x[i] = sum / u[i*n+i]
	}

	lm, err := packDense(l, n)
	if err != nil {
		return Result{}, solveErrorf(opLU, err)
	}
	um, err := packDense(u, n)
	if err != nil {
		return Result{}, solveErrorf(opLU, err)
	}
	pmat, err := packDense(pm, n)
	if err != nil {
		return Result{}, solveErrorf(opLU, err)
	}

	return Result{Status: Unique, Rank: n, X: x, L: lm, U: um, P: pmat}, nil
}
