// SPDX-License-Identifier: MIT
// Package matrix: thin, stable facades over constructors and kernels.
//
// Purpose:
//   - Offer convenience constructors (NewZeros/NewIdentity/...Like) with the
//     same validation semantics as NewDense.
//   - Offer short aliases (Sum/Diff/Product/T/...) so call sites can choose
//     the vocabulary that reads best in context.
//   - Host AllClose, the canonical tolerant comparison used across tests.

package matrix

import "math"

// NewZeros returns an all-zero rows×cols Dense.
// Identical to NewDense; the name documents intent at call sites.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns the n×n identity matrix I_n.
// Errors: ErrInvalidDimensions when n < 1.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Unit diagonal; everything else stays zero from allocation.
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// CloneMatrix returns a deep copy of m (nil-safe; nil yields nil).
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I_n for n = m.Rows(); m must be square.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square input).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if m.Rows() != m.Cols() {
		return nil, validatorErrorf("IdentityLike", ErrDimensionMismatch)
	}

	return NewIdentity(m.Rows())
}

// Sum is an alias of Add: element-wise a+b.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias of Sub: element-wise a-b.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias of Mul: matrix product a·b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias of Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias of Scale: alpha·m.
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// MatVecMul is an alias of MatVec: m·x.
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// AllClose reports whether a and b agree element-wise within tolerances:
// |a[i,j] - b[i,j]| ≤ atol + rtol·|b[i,j]| for every entry.
// Blueprint:
//
//	Stage 1 (Validate): non-nil operands, identical shapes, finite non-negative tolerances.
//	Stage 2 (Execute): single pass; fast-path flat loop on *Dense pairs.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrInvalidTolerance.
// Time Complexity: O(r*c); Space Complexity: O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	// Stage 1: Validate operands and tolerances.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateTolerance(rtol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateTolerance(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()

	var (
		i, j   int     // loop iterators
		av, bv float64 // current operand values
	)
	// Stage 2: Execute; detect the fast path on both operands.
	ad, okA := a.(*Dense)
	bd, okB := b.(*Dense)
	if okA && okB {
		for i = range ad.data {
			if math.Abs(ad.data[i]-bd.data[i]) > atol+rtol*math.Abs(bd.data[i]) {
				return false, nil
			}
		}

		return true, nil
	}

	// Fallback: generic interface version (indices validated above).
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
