// SPDX-License-Identifier: MIT
// impl_rowops.go - row-level primitives shared by all four solvers.
//
// Blueprint:
//   - Solvers never touch caller storage: snapshot/snapshotVec copy inputs
//     into flat row-major buffers on entry (stride = column count).
//   - selectPivot implements partial pivoting; every algorithm uses the same
//     rule so singularity is detected consistently across methods.
//   - Slots cleared by a row operation are written as exact zeros (and exact
//     ones on normalized pivots) instead of being left to rounding noise.

package solve

import (
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// snapshot copies A into a fresh flat row-major buffer of n*n entries.
// Fast path: *matrix.Dense row extraction; fallback: element-wise At.
// Time Complexity: O(n²); Space Complexity: O(n²).
func snapshot(a matrix.Matrix, n int) ([]float64, error) {
	buf := make([]float64, n*n)
	var i, j int // loop iterators

	if d, ok := a.(*matrix.Dense); ok {
		var row []float64
		var err error
		for i = 0; i < n; i++ {
			if row, err = d.Row(i); err != nil {
				return nil, err
			}
			copy(buf[i*n:(i+1)*n], row)
		}

		return buf, nil
	}

	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, err
			}
			buf[i*n+j] = v
		}
	}

	return buf, nil
}

// snapshotVec returns an owned copy of b.
func snapshotVec(b []float64) []float64 {
	out := make([]float64, len(b))
	copy(out, b)

	return out
}

// identityBuf returns a flat n×n identity.
func identityBuf(n int) []float64 {
	buf := make([]float64, n*n)
	for i := 0; i < n; i++ {
		buf[i*n+i] = 1
	}

	return buf
}

// selectPivot returns the row in [from, rows) holding the largest |value| in
// column col. Ties keep the first (lowest-index) row.
// Time Complexity: O(rows-from).
func selectPivot(a []float64, stride, rows, col, from int) int {
	best := from
	bestAbs := math.Abs(a[from*stride+col])
	var cand float64
	for r := from + 1; r < rows; r++ {
		if cand = math.Abs(a[r*stride+col]); cand > bestAbs {
			best, bestAbs = r, cand
		}
	}

	return best
}

// swapRows exchanges rows i and j of the buffer together with any companion
// slices indexed by row (right-hand sides, permuted vectors). Swapping a row
// without its companions would silently desynchronize the system.
func swapRows(a []float64, stride, i, j int, companions ...[]float64) {
	if i == j {
		return
	}
	ri, rj := a[i*stride:(i+1)*stride], a[j*stride:(j+1)*stride]
	var k int
	for k = range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
	var comp []float64
	for _, comp = range companions {
		comp[i], comp[j] = comp[j], comp[i]
	}
}

// swapRowsPrefix exchanges only columns 0..upto-1 of rows i and j. LU uses it
// for the already-built block of L, whose later columns do not yet exist.
func swapRowsPrefix(a []float64, stride, i, j, upto int) {
	if i == j {
		return
	}
	bi, bj := i*stride, j*stride
	var k int
	for k = 0; k < upto; k++ {
		a[bi+k], a[bj+k] = a[bj+k], a[bi+k]
	}
}

// eliminate subtracts factor·row source from row target across columns
// fromCol..stride-1, sweeping the companion rhs entry when one is supplied,
// and writes an exact zero into the eliminated slot.
// Time Complexity: O(stride-fromCol).
func eliminate(a, rhs []float64, stride, target, source int, factor float64, fromCol int) {
	if factor != 0 {
		bt, bs := target*stride, source*stride
		var k int
		for k = fromCol; k < stride; k++ {
			a[bt+k] -= factor * a[bs+k]
		}
		if rhs != nil {
			rhs[target] -= factor * rhs[source]
		}
	}
	a[target*stride+fromCol] = 0
}

// normalizeRow divides the whole row p (and its rhs entry, when supplied) by
// the pivot value at column col, then writes an exact one into the pivot slot.
func normalizeRow(a, rhs []float64, stride, p, col int) {
	pivot := a[p*stride+col]
	base := p * stride
	var k int
	for k = 0; k < stride; k++ {
		a[base+k] /= pivot
	}
	if rhs != nil {
		rhs[p] /= pivot
	}
	a[base+col] = 1
}

// rowAllBelow reports whether every entry of row r is below eps in magnitude.
func rowAllBelow(a []float64, stride, r int, eps float64) bool {
	base := r * stride
	var k int
	for k = 0; k < stride; k++ {
		if math.Abs(a[base+k]) >= eps {
			return false
		}
	}

	return true
}

// backSubstitute resolves an upper-triangular full-rank system in place:
// x[i] = (rhs[i] - Σ_{j>i} a[i][j]·x[j]) / a[i][i], from the bottom row up.
// Callers guarantee every diagonal entry passed the pivot test.
// Time Complexity: O(n²); Space Complexity: O(n).
func backSubstitute(a, rhs []float64, n int) []float64 {
	x := make([]float64, n)
	var i, j int // loop iterators
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = rhs[i]
		for j = i + 1; j < n; j++ {
			sum -= a[i*n+j] * x[j]
		}
		x[i] = sum / a[i*n+i]
	}

	return x
}

// packDense lifts a flat row-major n×n buffer into a freshly allocated Dense.
func packDense(buf []float64, n int) (*matrix.Dense, error) {
	rows := make([][]float64, n)
	var i int
	for i = 0; i < n; i++ {
		rows[i] = buf[i*n : (i+1)*n]
	}

	return matrix.NewFromRows(rows)
}
