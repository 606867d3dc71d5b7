// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a finite-only numeric policy: Set and ingestion reject NaN/±Inf, no opt-out.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see methods.go): operate on the flat data slice directly.
//   - Use Row(i) to obtain an independent copy of one row for solver-style sweeps.
//   - NewFromRows is the ergonomic entry for literal [][]float64 fixtures.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row: O(c); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Returns:
//   - error: wrapped with context
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
//
// AI-Hints:
//   - Prefer to wrap at the nearest detection site for precise coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=1 at the public surface)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Determinism:
//   - Always allocates the same layout for given (rows, cols).
//   - Fixed zero initialization; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer this ctor for public creation; NewFromRows for literal data.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:    rows,
		c:    cols,
		data: buf,
	}, nil
}

// NewFromRows builds a Dense from a [][]float64 literal, copying the data.
// MAIN DESCRIPTION:
//   - Ergonomic ingestion of row-oriented caller data with full validation.
//
// Implementation:
//   - Stage 1: validate non-empty outer slice and non-empty first row.
//   - Stage 2: validate every row has the same length (rectangular layout).
//   - Stage 3: validate every entry is finite, then copy row-major.
//
// Behavior highlights:
//   - The input slices are copied; later caller mutations do not leak in.
//   - Fails fast on the first structural or numeric violation.
//
// Inputs:
//   - rows: outer slice of equally sized rows.
//
// Returns:
//   - *Dense: independent matrix containing the copied values.
//
// Errors:
//   - ErrInvalidDimensions (no rows, or empty rows).
//   - ErrRaggedRows (rows of unequal length).
//   - ErrNaNInf (non-finite entry).
//
// Determinism:
//   - Fixed i→j copy order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Ideal for fixtures and examples; for programmatic fills prefer NewDense+Set.
func NewFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])

	// Validate rectangular layout before any allocation.
	var i, j int // loop iterators
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d: %w", i, ErrRaggedRows)
		}
	}

	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var v float64 // current entry
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = rows[i][j]
			// Finite-only policy applies at ingestion exactly as in Set.
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("NewFromRows: row %d col %d: %w", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v // direct flat write
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Behavior highlights:
//   - Returns a sentinel (ErrOutOfRange) without adding context; public
//     methods (At/Set) will wrap with coordinates and method name.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Inputs:
//   - row, col: zero-based indices.
//
// Returns:
//   - (value, nil) on success; (0, ErrOutOfRange) on invalid indices.
//
// Determinism:
//   - Stable access cost; no allocations.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer At in external code; internal hot paths may index directly.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with finite-only enforcement.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf).
//   - Stage 3: write into flat buffer.
//
// Behavior highlights:
//   - Never panics; returns sentinel errors.
//   - The finite-only policy has no opt-out; solvers rely on finite inputs.
//
// Inputs:
//   - row, col: element coordinates.
//   - v      : value to store.
//
// Returns:
//   - nil on success; errors on invalid indices or non-finite values.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: finite-only enforcement.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns an independent copy of row i.
// MAIN DESCRIPTION:
//   - Copy-out accessor for one row; the caller owns the result.
//
// Implementation:
//   - Stage 1: bounds-check the row index.
//   - Stage 2: copy the row slice out of the flat buffer.
//
// Behavior highlights:
//   - Mutating the returned slice never touches the matrix.
//   - Solver snapshots use this as the *Dense fast path.
//
// Inputs:
//   - i: zero-based row index.
//
// Returns:
//   - ([]float64, nil) on success; (nil, ErrOutOfRange) on invalid index.
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c]) // deep copy of one row

	return out, nil
}

// Clone returns a deep copy (new buffer, same shape).
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape/data.
//
// Implementation:
//   - Stage 1: allocate new buffer len==r*c.
//   - Stage 2: copy data.
//
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//
// Returns:
//   - Matrix: *Dense implementing Matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy bytes

	return &Dense{
		r:    m.r,
		c:    m.c,
		data: cp,
	}
}

// String provides a readable row-wise dump for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//
// Returns:
//   - string: multi-line representation of matrix.
//
// Determinism:
//   - Fixed traversal order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
//
// AI-Hints:
//   - For large matrices prefer printing a few rows/cols or summarize.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
