// SPDX-License-Identifier: MIT
// api.go - thin conveniences composed from the solvers and matrix kernels.

package solve

import (
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// SolveViaInverse solves A·x = b as x = A⁻¹·b.
//
// This path only ever reports a solution when the inverse exists; it offers
// no Infinite/NoSolution distinction. Use Gaussian, GaussJordan or LU when
// the classification matters.
func SolveViaInverse(a matrix.Matrix, b []float64, options ...Option) ([]float64, error) {
	if _, err := ValidateSystem(a, b); err != nil {
		return nil, solveErrorf(opSolveViaInverse, err)
	}
	inv, err := Inverse(a, options...)
	if err != nil {
		return nil, solveErrorf(opSolveViaInverse, err)
	}
	x, err := matrix.MatVec(inv, b)
	if err != nil {
		return nil, solveErrorf(opSolveViaInverse, err)
	}

	return x, nil
}

// Residual returns r = A·x − b for a candidate solution x.
func Residual(a matrix.Matrix, x, b []float64) ([]float64, error) {
	n, err := ValidateSystem(a, b)
	if err != nil {
		return nil, solveErrorf(opResidual, err)
	}
	if len(x) != n {
		return nil, solveErrorf(opResidual, ErrDimensionMismatch)
	}
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, solveErrorf(opResidual, err)
	}
	r := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		r[i] = ax[i] - b[i]
	}

	return r, nil
}

// ResidualNorm returns max_i |A·x − b|, the infinity norm of the residual.
func ResidualNorm(a matrix.Matrix, x, b []float64) (float64, error) {
	r, err := Residual(a, x, b)
	if err != nil {
		return 0, solveErrorf(opResidualNorm, err)
	}
	var norm, abs float64
	var v float64
	for _, v = range r {
		if abs = math.Abs(v); abs > norm {
			norm = abs
		}
	}

	return norm, nil
}
