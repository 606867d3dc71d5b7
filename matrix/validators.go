// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/numeric checks here.
//  - Return sentinel errors wrapped with the validator tag; errors.Is still
//    matches the sentinel through the wrap chain.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on the happy path.
//
// AI-Hints:
//  - Centralizing validators eliminates inconsistent guard logic across files.
//  - Use ValidateBinarySameShape before elementwise kernels to fail fast.
//  - Use ValidateVecLen for any MatVec-like operations to avoid ad hoc length code.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Inputs: Two Matrix values.
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub kernels and compatibility guards.
func ValidateSameShape(a, b Matrix) error {
	// Execute comparisons
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShape – Ensures a and b are multiplication compatible.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Inputs: Two Matrix values; requires a.Cols() == b.Rows().
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use before Mul kernels; the resulting shape is a.Rows() × b.Cols().
func ValidateMulShape(a, b Matrix) error {
	// Inner dimensions must agree for the product to exist.
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // we reuse the existing sentinel for "nil argument"
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch) // vector length must match the matrix dimension
	}

	return nil
}

// ValidateFinite ensures v is neither NaN nor ±Inf.
// Time: O(1). Space: O(1).
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf("ValidateFinite", ErrNaNInf) // numeric policy: finite values only
	}

	return nil
}

// ValidateTolerance ensures a tolerance is finite and non-negative.
//
// Inputs: tol (absolute or relative tolerance value).
// Errors: ErrInvalidTolerance on NaN/±Inf or negative input.
// Complexity: O(1).
// AI-Hints: Use for AllClose-style comparisons; zero disables that term.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return validatorErrorf("ValidateTolerance", ErrInvalidTolerance)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	return nil
}

// ValidateBinaryMulShape – Composite: NotNil(a) → NotNil(b) → MulShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinaryMulShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinaryMulShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinaryMulShape", err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return validatorErrorf("ValidateBinaryMulShape", err)
	}
	return nil
}
