// SPDX-License-Identifier: MIT
// Package solve_test contains test helpers
//
// Purpose:
//   • Deterministic fixtures (literal and seeded-random systems) shared by
//     the solver tests.
//   • Assertion shorthands aligned with the package tolerances.

package solve_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solve"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the solvers through the element-wise snapshot path.
type hide struct{ matrix.Matrix }

// zeroDim reports a 0×0 shape; only the validators ever see it.
type zeroDim struct{}

func (zeroDim) Rows() int                    { return 0 }
func (zeroDim) Cols() int                    { return 0 }
func (zeroDim) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (zeroDim) Set(int, int, float64) error  { return matrix.ErrOutOfRange }
func (zeroDim) Clone() matrix.Matrix         { return zeroDim{} }

// MustFromRows BUILDS a Dense from a 2D literal or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// DominantSystem RETURNS a seeded random n×n system guaranteed solvable:
// off-diagonal entries in (-1,1), diagonal bumped by n for strict diagonal
// dominance, right-hand side in (-1,1).
func DominantSystem(t *testing.T, n int, seed int64) (*matrix.Dense, []float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n)
	}
	b := make([]float64, n)
	for i = 0; i < n; i++ {
		b[i] = rng.Float64()*2 - 1
	}

	return MustFromRows(t, rows), b
}

// snapshotOf copies the current contents of m for later mutation checks.
func snapshotOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m == nil {
		t.Fatalf("CompareExact: matrix is nil")
	}
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// sliceClose ASSERTS |a[i]-b[i]| ≤ atol + rtol*|b[i]| element-wise.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("slice lengths: %d vs %d", len(a), len(b))
	}
	var diff float64
	for i := range a {
		if diff = math.Abs(a[i] - b[i]); diff > atol+rtol*math.Abs(b[i]) {
			t.Fatalf("sliceClose idx=%d: got=%g want=%g (rtol=%g atol=%g)", i, a[i], b[i], rtol, atol)
		}
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// RequireStatus ASSERTS the classification and rank of a Result, plus the
// X-presence contract (X non-nil iff Unique).
func RequireStatus(t *testing.T, res solve.Result, want solve.Status, wantRank int) {
	t.Helper()
	if res.Status != want {
		t.Fatalf("Status = %v; want %v", res.Status, want)
	}
	if res.Rank != wantRank {
		t.Fatalf("Rank = %d; want %d", res.Rank, wantRank)
	}
	if want == solve.Unique && res.X == nil {
		t.Fatalf("Unique result without a solution vector")
	}
	if want != solve.Unique && res.X != nil {
		t.Fatalf("non-Unique result carries X = %v", res.X)
	}
}

// RequireNoFactors ASSERTS that a Result carries no LU factors.
func RequireNoFactors(t *testing.T, res solve.Result) {
	t.Helper()
	if res.L != nil || res.U != nil || res.P != nil {
		t.Fatalf("unexpected factors: L=%v U=%v P=%v", res.L, res.U, res.P)
	}
}

// ExpectPanic RUNS fn and asserts it panics with exactly the given message.
func ExpectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", want)
		}
		msg, ok := r.(string)
		if !ok || msg != want {
			t.Fatalf("panic = %v; want %q", r, want)
		}
	}()
	fn()
}

// ---------- bench helpers ----------

func dominantSystemB(b *testing.B, n int, seed int64) (*matrix.Dense, []float64) {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n)
	}
	vec := make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		b.Fatalf("NewFromRows: %v", err)
	}

	return m, vec
}
