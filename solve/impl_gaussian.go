// SPDX-License-Identifier: MIT
// impl_gaussian.go - Gaussian elimination with back substitution.

package solve

import (
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// Gaussian SOLVES A·x = b by forward elimination and back substitution,
// classifying the solution set as Unique, Infinite or NoSolution.
//
// MAIN DESCRIPTION:
//   The forward phase walks columns left to right with partial pivoting.
//   For each column it selects the candidate row with the largest absolute
//   value among rows not yet used as pivots; when even that candidate is
//   below epsilon the column contributes no pivot (a free variable) and is
//   skipped without advancing the pivot-row counter. Otherwise the candidate
//   is swapped into position and the column is eliminated from every row
//   below it. The number of pivots placed is the rank found so far.
//
// Implementation Stages:
//   - Stage 1: Validate the system shape (fail before any arithmetic).
//   - Stage 2: Snapshot A and b into owned buffers.
//   - Stage 3: Forward elimination with pivot/skip decisions per column.
//   - Stage 4: Consistency check - any row index ≥ rank whose transformed
//     right-hand side exceeds epsilon makes the system inconsistent.
//   - Stage 5: Classify - NoSolution, then Infinite (rank < n), then back
//     substitution into a Unique solution.
//
// Behavior highlights:
//   - Inputs are never mutated; all work happens on internal copies.
//   - Eliminated slots hold exact zeros, so the consistency check is not
//     chasing rounding residue of its own making.
//   - A pivot magnitude equal to epsilon is usable (strict < comparison).
//
// Inputs:
//   - a (matrix.Matrix): square coefficient matrix, n ≥ 1.
//   - b ([]float64): right-hand side of length n.
//   - options: WithEpsilon to override DefaultEpsilon.
//
// Returns:
//   - Result: Status plus X (iff Unique) and Rank. L/U/P stay nil here.
//   - error: caller faults only (nil matrix, bad shape); singularity is a
//     classification, never an error.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension, ErrDimensionMismatch (wrapped).
//
// Determinism & Complexity:
//   - Deterministic for fixed inputs and epsilon; ties in pivot selection
//     keep the first maximal row.
//   - Time O(n³), memory O(n²) for the working copy.
func Gaussian(a matrix.Matrix, b []float64, options ...Option) (Result, error) {
	n, err := ValidateSystem(a, b)
	if err != nil {
		return Result{}, solveErrorf(opGaussian, err)
	}
	eps := NewSolveOptions(options...).Epsilon()

	m, err := snapshot(a, n)
	if err != nil {
		return Result{}, solveErrorf(opGaussian, err)
	}
	rhs := snapshotVec(b)

	var pivotRow, col, p, r int
	var factor float64
	for col = 0; col < n && pivotRow < n; col++ {
		p = selectPivot(m, n, n, col, pivotRow)
		if math.Abs(m[p*n+col]) < eps {
			continue // free column: no pivot here
		}
		swapRows(m, n, pivotRow, p, rhs)
		for r = pivotRow + 1; r < n; r++ {
			factor = m[r*n+col] / m[pivotRow*n+col]
			eliminate(m, rhs, n, r, pivotRow, factor, col)
		}
		pivotRow++
	}
	rank := pivotRow

	// Rows without a pivot must carry a (near-)zero right-hand side,
	// otherwise the system demands 0 = nonzero.
	for r = rank; r < n; r++ {
		if math.Abs(rhs[r]) > eps {
			return Result{Status: NoSolution, Rank: rank}, nil
		}
	}
	if rank < n {
		return Result{Status: Infinite, Rank: rank}, nil
	}

	return Result{Status: Unique, Rank: n, X: backSubstitute(m, rhs, n)}, nil
}
