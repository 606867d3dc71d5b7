// SPDX-License-Identifier: MIT
// types.go - result taxonomy shared by every solver in the package.

package solve

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// Status classifies the solution set of a square system A·x = b.
//
// The three values form a complete partition: every well-formed call to an
// elimination-family solver terminates in exactly one of them.
type Status int

const (
	// Unique - the system has exactly one solution; Result.X carries it.
	Unique Status = iota

	// Infinite - the system is consistent but rank-deficient; infinitely
	// many solutions exist and none is materialized.
	Infinite

	// NoSolution - the system is inconsistent (a zero row meets a nonzero
	// right-hand side entry).
	NoSolution
)

// String implements fmt.Stringer for logs and test failure messages.
func (s Status) String() string {
	switch s {
	case Unique:
		return "Unique"
	case Infinite:
		return "Infinite"
	case NoSolution:
		return "NoSolution"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one solver invocation.
//
// Field contract:
//   - X is non-nil if and only if Status == Unique; its length equals the
//     system dimension.
//   - Rank is the number of pivots placed during elimination. It equals the
//     dimension exactly when Status == Unique.
//   - L, U, P are populated only by LU and only when LU itself produced the
//     answer (no delegation): L is unit lower-triangular, U upper-triangular
//     with exact zeros below the diagonal, and P a permutation matrix with
//     P·A = L·U. On every other path they remain nil.
//
// A Result is a plain value: it shares no storage with the inputs and stays
// valid after further solver calls.
type Result struct {
	Status Status
	X      []float64
	Rank   int
	L      *matrix.Dense
	U      *matrix.Dense
	P      *matrix.Dense
}
