// SPDX-License-Identifier: MIT
// impl_gauss_jordan.go - Gauss-Jordan reduction to reduced row-echelon form.

package solve

import (
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// GaussJordan SOLVES A·x = b by reducing the augmented system to reduced
// row-echelon form, classifying the solution set exactly like Gaussian.
//
// MAIN DESCRIPTION:
//   Pivot selection and the skip-on-near-zero rule are identical to
//   Gaussian. After swapping a pivot into position the pivot row is
//   normalized (divided by the pivot so the pivot slot becomes an exact 1),
//   then the pivot column is eliminated from ALL other rows, above and
//   below. With full rank the coefficient block lands on the identity and
//   the transformed right-hand side IS the solution; there is no separate
//   back-substitution phase.
//
// Implementation Stages:
//   - Stage 1: Validate the system shape.
//   - Stage 2: Snapshot A and b.
//   - Stage 3: Per column - pivot/skip, swap, normalize, eliminate everywhere.
//   - Stage 4: Consistency check - a row whose coefficients are all below
//     epsilon while its right-hand side exceeds epsilon is inconsistent.
//   - Stage 5: Classify NoSolution / Infinite / Unique.
//
// Behavior highlights:
//   - Inputs are never mutated.
//   - Normalized pivots hold an exact 1, eliminated slots an exact 0.
//   - Agrees with Gaussian on status for every input and on the solution
//     (within rounding) for every Unique system.
//
// Inputs:
//   - a (matrix.Matrix): square coefficient matrix, n ≥ 1.
//   - b ([]float64): right-hand side of length n.
//   - options: WithEpsilon to override DefaultEpsilon.
//
// Returns:
//   - Result: Status plus X (iff Unique) and Rank. L/U/P stay nil here.
//   - error: caller faults only.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension, ErrDimensionMismatch (wrapped).
//
// Determinism & Complexity:
//   - Deterministic; pivot ties keep the first maximal row.
//   - Time O(n³), memory O(n²).
func GaussJordan(a matrix.Matrix, b []float64, options ...Option) (Result, error) {
	n, err := ValidateSystem(a, b)
	if err != nil {
		return Result{}, solveErrorf(opGaussJordan, err)
	}
	eps := NewSolveOptions(options...).Epsilon()

	m, err := snapshot(a, n)
	if err != nil {
		return Result{}, solveErrorf(opGaussJordan, err)
	}
	rhs := snapshotVec(b)

	var pivotRow, col, p, r int
	for col = 0; col < n && pivotRow < n; col++ {
		p = selectPivot(m, n, n, col, pivotRow)
		if math.Abs(m[p*n+col]) < eps {
			continue // free column: no pivot here
		}
		swapRows(m, n, pivotRow, p, rhs)
		normalizeRow(m, rhs, n, pivotRow, col)
		for r = 0; r < n; r++ {
			if r == pivotRow {
				continue
			}
			// pivot is an exact 1, so the factor is the entry itself
			eliminate(m, rhs, n, r, pivotRow, m[r*n+col], col)
		}
		pivotRow++
	}
	rank := pivotRow

	// A row reduced to (near-)zero coefficients with a nonzero right-hand
	// side demands 0 = nonzero.
	for r = 0; r < n; r++ {
		if rowAllBelow(m, n, r, eps) && math.Abs(rhs[r]) > eps {
			return Result{Status: NoSolution, Rank: rank}, nil
		}
	}
	if rank < n {
		return Result{Status: Infinite, Rank: rank}, nil
	}

	// Full rank: the coefficient block is the identity and rhs is x.
	return Result{Status: Unique, Rank: n, X: rhs}, nil
}
