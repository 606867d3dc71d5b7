// SPDX-License-Identifier: MIT
// impl_inverse.go - matrix inversion via Gauss-Jordan on [A | I].

package solve

import (
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// Inverse COMPUTES A⁻¹ by running Gauss-Jordan reduction on the augmented
// block [A | I], or fails with ErrSingular when no inverse exists.
//
// MAIN DESCRIPTION:
//   The working state is a single n×2n buffer: A's copy on the left, the
//   identity on the right. For each column k the best pivot row among rows
//   ≥ k is swapped into position across the WHOLE augmented row; if the
//   pivot magnitude is then still below epsilon the matrix is singular and
//   the call fails immediately with no partial result. Otherwise row k is
//   normalized (pivot becomes an exact 1) and column k is eliminated from
//   every other row, both halves moving in lockstep. After n rounds the
//   left half is the identity and the right half is A⁻¹.
//
// Implementation Stages:
//   - Stage 1: Validate that A is square, n ≥ 1.
//   - Stage 2: Build the augmented buffer [A | I].
//   - Stage 3: Per column - pivot swap, singularity check, normalize,
//     eliminate everywhere.
//   - Stage 4: Lift the right half into a fresh Dense.
//
// Behavior highlights:
//   - A is never mutated.
//   - Unlike the solver entry points, singularity here IS an error: an
//     inverse either exists in full or not at all.
//   - Pivot slots end as exact ones and eliminated slots as exact zeros, so
//     A·A⁻¹ reproduces the identity as closely as conditioning allows.
//
// Inputs:
//   - a (matrix.Matrix): square matrix to invert, n ≥ 1.
//   - options: WithEpsilon to override DefaultEpsilon.
//
// Returns:
//   - *matrix.Dense: the inverse, freshly allocated.
//   - error: caller faults, or ErrSingular (all wrapped as "Inverse: ...").
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimension, ErrDimensionMismatch, ErrSingular.
//
// Determinism & Complexity:
//   - Deterministic; pivot ties keep the first maximal row.
//   - Time O(n³), memory O(n²) for the augmented buffer.
func Inverse(a matrix.Matrix, options ...Option) (*matrix.Dense, error) {
	n, err := ValidateSquare(a)
	if err != nil {
		return nil, solveErrorf(opInverse, err)
	}
	eps := NewSolveOptions(options...).Epsilon()

	src, err := snapshot(a, n)
	if err != nil {
		return nil, solveErrorf(opInverse, err)
	}

	// augmented working state [A | I], stride 2n
	stride := 2 * n
	w := make([]float64, n*stride)
	var i int
	for i = 0; i < n; i++ {
		copy(w[i*stride:i*stride+n], src[i*n:(i+1)*n])
		w[i*stride+n+i] = 1
	}

	var k, p, r int
	for k = 0; k < n; k++ {
		p = selectPivot(w, stride, n, k, k)
		swapRows(w, stride, k, p)
		if math.Abs(w[k*stride+k]) < eps {
			return nil, solveErrorf(opInverse, ErrSingular)
		}
		normalizeRow(w, nil, stride, k, k)
		for r = 0; r < n; r++ {
			if r == k {
				continue
			}
			eliminate(w, nil, stride, r, k, w[r*stride+k], k)
		}
	}

	// The right half now holds A⁻¹.
	rows := make([][]float64, n)
	for i = 0; i < n; i++ {
		rows[i] = w[i*stride+n : (i+1)*stride]
	}
	inv, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, solveErrorf(opInverse, err)
	}

	return inv, nil
}
