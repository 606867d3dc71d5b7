// Package linsolve is your in-memory workbench for dense square linear
// systems, from a 2×2 warm-up to full LU factorization with pivoting.
//
// 🚀 What is linsolve?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Gaussian elimination: partial pivoting + back substitution
//		• Gauss–Jordan reduction to reduced row echelon form
//		• Doolittle LU factorization with row pivoting (P·A = L·U)
//		• Matrix inversion via Gauss–Jordan on the augmented [A | I]
//		• Solution classification: Unique, Infinite or NoSolution
//
// ✨ Why choose linsolve?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same input, same output, bit for bit
//   - Honest numerics – one absolute tolerance, documented limitations
//   - Pure Go – no cgo, no hidden deps in the kernels
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — Dense storage, elementwise ops, MatVec & comparison helpers
//	solve/  — the four direct-method operations and the Result taxonomy
//
// Quick ASCII example:
//
//	⎡2 1⎤ ⎡x⎤   ⎡5⎤
//	⎣1 3⎦·⎣y⎦ = ⎣10⎦
//
//	solve.Gaussian reports Unique with x=1, y=3.
//
// Dive into the examples/ directory for full walkthroughs: the four
// methods side by side, resistor-network nodal analysis, and a Poisson
// profile solved and plotted to PNG.
//
//	go get github.com/katalvlaran/linsolve
package linsolve
