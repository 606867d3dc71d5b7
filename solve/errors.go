// SPDX-License-Identifier: MIT
// errors.go - sentinel errors and operation tags of the solve package.
//
// Wrapping contract:
//   - Public entry points wrap every failure as "<Op>: ...". Validators add
//     their own "Validate*" tag, so a typical chain reads
//     "LU: ValidateSystem: solve: dimension mismatch".
//   - errors.Is against the sentinels below always works through the chain.
//
// Taxonomy:
//   - Caller faults (nil input, bad shape) abort loudly with an error.
//   - Numerical singularity is NOT an error for the elimination family; it is
//     classified into the result status. Only Inverse reports ErrSingular.

package solve

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix - the coefficient matrix is nil.
	ErrNilMatrix = errors.New("solve: nil matrix")

	// ErrInvalidDimension - the system dimension is below 1.
	ErrInvalidDimension = errors.New("solve: dimension must be >= 1")

	// ErrDimensionMismatch - non-square matrix, or right-hand side length
	// differs from the matrix size.
	ErrDimensionMismatch = errors.New("solve: dimension mismatch")

	// ErrSingular - the matrix has no inverse (pivot below epsilon).
	ErrSingular = errors.New("solve: singular matrix")
)

// Operation tags used as wrap prefixes by the public entry points.
const (
	opGaussian        = "Gaussian"
	opGaussJordan     = "GaussJordan"
	opLU              = "LU"
	opInverse         = "Inverse"
	opSolveViaInverse = "SolveViaInverse"
	opResidual        = "Residual"
	opResidualNorm    = "ResidualNorm"
)

// solveErrorf wraps err with the operation tag, preserving errors.Is/As.
func solveErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
