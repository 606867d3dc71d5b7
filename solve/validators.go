// SPDX-License-Identifier: MIT
// validators.go - centralized input validation for the solver entry points.
//
// Shape:
//   - Validate* helpers return wrapped sentinels ("<Tag>: solve: ...").
//   - Callers invoke them BEFORE any arithmetic so caller faults never
//     produce a misleading numeric result.

package solve

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// validatorErrorf wraps a sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare CHECKS that A is a usable square matrix and returns its
// dimension.
// Implementation:
//   - Stage 1: nil check -> ErrNilMatrix.
//   - Stage 2: Rows() < 1 -> ErrInvalidDimension.
//   - Stage 3: Cols() != Rows() -> ErrDimensionMismatch.
//
// Returns:
//   - int: the dimension n (valid only when err == nil).
func ValidateSquare(a matrix.Matrix) (int, error) {
	const tag = "ValidateSquare"
	if a == nil {
		return 0, validatorErrorf(tag, ErrNilMatrix)
	}
	n := a.Rows()
	if n < 1 {
		return 0, validatorErrorf(tag, ErrInvalidDimension)
	}
	if a.Cols() != n {
		return 0, validatorErrorf(tag, ErrDimensionMismatch)
	}

	return n, nil
}

// ValidateSystem CHECKS the full A·x = b contract: square A plus a
// right-hand side of matching length. Returns the dimension n.
func ValidateSystem(a matrix.Matrix, b []float64) (int, error) {
	const tag = "ValidateSystem"
	n, err := ValidateSquare(a)
	if err != nil {
		return 0, err
	}
	if len(b) != n {
		return 0, validatorErrorf(tag, ErrDimensionMismatch)
	}

	return n, nil
}
