// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling and matrix-vector products. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap failures via matrixErrorf.
//   - Every kernel fast-paths on *Dense operands and falls back to the Matrix
//     interface otherwise; both paths produce identical results.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns the element-wise sum a+b as a new Dense-backed Matrix.
// Blueprint:
//
//	Stage 1 (Validate): non-nil operands with identical shapes.
//	Stage 2 (Prepare): allocate the result Dense.
//	Stage 3 (Execute): fast-path flat loops on *Dense, interface fallback otherwise.
//
// Time Complexity: O(r*c); Space Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate operands (nil and shape checks).
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	r, c := a.Rows(), a.Cols()

	// Stage 2: Prepare the result container.
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	var (
		i, j, base int     // loop iterators and row offset
		av, bv     float64 // current operand values
	)
	// Stage 3: Execute; detect the fast path on both operands.
	ad, okA := a.(*Dense)
	bd, okB := b.(*Dense)
	if okA && okB {
		for i = range ad.data {
			res.data[i] = ad.data[i] + bd.data[i]
		}

		return res, nil
	}

	// Fallback: generic interface version (indices validated above).
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			res.data[base+j] = av + bv
		}
	}

	return res, nil
}

// Sub returns the element-wise difference a-b as a new Dense-backed Matrix.
// Blueprint:
//
//	Stage 1 (Validate): non-nil operands with identical shapes.
//	Stage 2 (Prepare): allocate the result Dense.
//	Stage 3 (Execute): fast-path flat loops on *Dense, interface fallback otherwise.
//
// Time Complexity: O(r*c); Space Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate operands (nil and shape checks).
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	r, c := a.Rows(), a.Cols()

	// Stage 2: Prepare the result container.
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	var (
		i, j, base int     // loop iterators and row offset
		av, bv     float64 // current operand values
	)
	// Stage 3: Execute; detect the fast path on both operands.
	ad, okA := a.(*Dense)
	bd, okB := b.(*Dense)
	if okA && okB {
		for i = range ad.data {
			res.data[i] = ad.data[i] - bd.data[i]
		}

		return res, nil
	}

	// Fallback: generic interface version (indices validated above).
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			res.data[base+j] = av - bv
		}
	}

	return res, nil
}

// Mul returns the matrix product a·b as a new Dense-backed Matrix.
// Blueprint:
//
//	Stage 1 (Validate): non-nil operands with a.Cols == b.Rows.
//	Stage 2 (Prepare): allocate the r×c result (r=a.Rows, c=b.Cols).
//	Stage 3 (Execute): triple loop with a running sum; fast-path flat indexing
//	                   on *Dense operands, interface fallback otherwise.
//
// Time Complexity: O(r*inner*c); Space Complexity: O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate operands (nil and inner-dimension checks).
	if err := ValidateBinaryMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, inner, c := a.Rows(), a.Cols(), b.Cols()

	// Stage 2: Prepare the result container.
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int     // loop iterators
		sum     float64 // dot-product accumulator
		av, bv  float64 // current operand values (fallback)
	)
	// Stage 3: Execute; detect the fast path on both operands.
	ad, okA := a.(*Dense)
	bd, okB := b.(*Dense)
	if okA && okB {
		var baseI int // row offset in a and res
		for i = 0; i < r; i++ {
			baseI = i * inner
			for j = 0; j < c; j++ {
				sum = ZeroSum
				for k = 0; k < inner; k++ {
					sum += ad.data[baseI+k] * bd.data[k*c+j]
				}
				res.data[i*c+j] = sum
			}
		}

		return res, nil
	}

	// Fallback: generic interface version (indices validated above).
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				av, _ = a.At(i, k)
				bv, _ = b.At(k, j)
				sum += av * bv
			}
			res.data[i*c+j] = sum
		}
	}

	return res, nil
}

// Scale returns alpha·m as a new Dense-backed Matrix.
// Blueprint:
//
//	Stage 1 (Validate): non-nil m; finite alpha (ErrNaNInf otherwise).
//	Stage 2 (Prepare): allocate the result Dense.
//	Stage 3 (Execute): fast-path flat loop on *Dense, interface fallback otherwise.
//
// Time Complexity: O(r*c); Space Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	// Stage 1: Validate the operand and the scalar.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err := ValidateFinite(alpha); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	r, c := m.Rows(), m.Cols()

	// Stage 2: Prepare the result container.
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	var (
		i, j, base int     // loop iterators and row offset
		v          float64 // current value (fallback)
	)
	// Stage 3: Execute; detect the fast path.
	if d, ok := m.(*Dense); ok {
		for i = range d.data {
			res.data[i] = alpha * d.data[i]
		}

		return res, nil
	}

	// Fallback: generic interface version (indices validated above).
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			res.data[base+j] = alpha * v
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new Dense-backed Matrix.
// Blueprint:
//
//	Stage 1 (Validate): non-nil m.
//	Stage 2 (Prepare): allocate the c×r result.
//	Stage 3 (Execute): fast-path flat indexing on *Dense, interface fallback otherwise.
//
// Time Complexity: O(r*c); Space Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	// Stage 1: Validate the operand.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	r, c := m.Rows(), m.Cols()

	// Stage 2: Prepare the transposed container.
	res, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var (
		i, j, base int     // loop iterators and row offset
		v          float64 // current value (fallback)
	)
	// Stage 3: Execute; detect the fast path.
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				res.data[j*r+i] = d.data[base+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface version (indices validated above).
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			res.data[j*r+i] = v
		}
	}

	return res, nil
}

// MatVec returns the matrix-vector product m·x as a fresh []float64.
// Blueprint:
//
//	Stage 1 (Validate): non-nil m; len(x) == m.Cols().
//	Stage 2 (Prepare): allocate the result slice of length m.Rows().
//	Stage 3 (Execute): per-row dot products; fast-path flat indexing on *Dense,
//	                   interface fallback otherwise.
//
// Time Complexity: O(r*c); Space Complexity: O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Stage 1: Validate the operand and the vector length.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	r, c := m.Rows(), m.Cols()

	// Stage 2: Prepare the result vector.
	out := make([]float64, r)

	var (
		i, j, base int     // loop iterators and row offset
		sum        float64 // dot-product accumulator
		v          float64 // current value (fallback)
	)
	// Stage 3: Execute; detect the fast path.
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			sum = ZeroSum
			for j = 0; j < c; j++ {
				sum += d.data[base+j] * x[j]
			}
			out[i] = sum
		}

		return out, nil
	}

	// Fallback: generic interface version (indices validated above).
	for i = 0; i < r; i++ {
		sum = ZeroSum
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			sum += v * x[j]
		}
		out[i] = sum
	}

	return out, nil
}
