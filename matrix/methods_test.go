// SPDX-License-Identifier: MIT
// methods_test.go - arithmetic kernels: known values, sentinel wiring and
// fast-path vs interface-fallback equivalence.
//
// Register: plain testing + package helpers. Exact comparisons are safe here:
// both execution paths accumulate in identical order, so results are bitwise
// equal for the same operands.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
)

// TestAdd - element-wise sum on small exact fixtures plus error wiring.
func TestAdd(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{10, 20, 30, 40})

	res, err := matrix.Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, res)

	// operands stay intact
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
	CompareExact(t, [][]float64{{10, 20}, {30, 40}}, b)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, b)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSub - element-wise difference mirrors Add.
func TestSub(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{10, 20, 30, 40})
	b := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	res, err := matrix.Sub(a, b)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	CompareExact(t, [][]float64{{9, 18}, {27, 36}}, res)

	_, err = matrix.Sub(a, MustDense(t, 3, 2))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul - classic 2×3 · 3×2 product plus inner-dimension guard.
func TestMul(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	res, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, res)

	_, err = matrix.Mul(a, MustDense(t, 2, 2)) // a.Cols=3 != b.Rows=2
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScale - uniform scaling plus the finite-alpha guard.
func TestScale(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, -2, 3, -4})

	res, err := matrix.Scale(a, -0.5)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	CompareExact(t, [][]float64{{-0.5, 1}, {-1.5, 2}}, res)

	_, err = matrix.Scale(a, math.NaN())
	AssertErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Scale(a, math.Inf(1))
	AssertErrorIs(t, err, matrix.ErrNaNInf)
}

// TestTranspose - rectangular transpose leaves the operand untouched.
func TestTranspose(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	res, err := matrix.Transpose(a)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, res)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a)
}

// TestMatVec - matrix-vector product with length and nil guards.
func TestMatVec(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	y, err := matrix.MatVec(m, []float64{5, 6})
	if err != nil {
		t.Fatalf("MatVec: %v", err)
	}
	sliceClose(t, y, []float64{17, 39}, 0, 0)

	_, err = matrix.MatVec(m, []float64{1, 2, 3})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(m, nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(nil, []float64{1, 2})
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKernels_FallbackMatchesFastPath wraps operands in hide{} so the kernels
// cannot type-assert *Dense, then checks both paths agree exactly.
func TestKernels_FallbackMatchesFastPath(t *testing.T) {
	a := RandFilledDense(t, 8, 8, 1)
	b := RandFilledDense(t, 8, 8, 2)
	x := onesVec(8)

	t.Run("Add", func(t *testing.T) {
		fast, err := matrix.Add(a, b)
		if err != nil {
			t.Fatalf("fast: %v", err)
		}
		slow, err := matrix.Add(hide{a}, hide{b})
		if err != nil {
			t.Fatalf("slow: %v", err)
		}
		CompareClose(t, fast, slow, 0, 0)
	})

	t.Run("Sub", func(t *testing.T) {
		fast, err := matrix.Sub(a, b)
		if err != nil {
			t.Fatalf("fast: %v", err)
		}
		slow, err := matrix.Sub(hide{a}, hide{b})
		if err != nil {
			t.Fatalf("slow: %v", err)
		}
		CompareClose(t, fast, slow, 0, 0)
	})

	t.Run("Mul", func(t *testing.T) {
		fast, err := matrix.Mul(a, b)
		if err != nil {
			t.Fatalf("fast: %v", err)
		}
		slow, err := matrix.Mul(hide{a}, hide{b})
		if err != nil {
			t.Fatalf("slow: %v", err)
		}
		CompareClose(t, fast, slow, 0, 0)
	})

	t.Run("Scale", func(t *testing.T) {
		fast, err := matrix.Scale(a, 2.5)
		if err != nil {
			t.Fatalf("fast: %v", err)
		}
		slow, err := matrix.Scale(hide{a}, 2.5)
		if err != nil {
			t.Fatalf("slow: %v", err)
		}
		CompareClose(t, fast, slow, 0, 0)
	})

	t.Run("Transpose", func(t *testing.T) {
		fast, err := matrix.Transpose(a)
		if err != nil {
			t.Fatalf("fast: %v", err)
		}
		slow, err := matrix.Transpose(hide{a})
		if err != nil {
			t.Fatalf("slow: %v", err)
		}
		CompareClose(t, fast, slow, 0, 0)
	})

	t.Run("MatVec", func(t *testing.T) {
		fast, err := matrix.MatVec(a, x)
		if err != nil {
			t.Fatalf("fast: %v", err)
		}
		slow, err := matrix.MatVec(hide{a}, x)
		if err != nil {
			t.Fatalf("slow: %v", err)
		}
		sliceClose(t, fast, slow, 0, 0)
	})
}
