// Package poisson is a small, focused toolkit for solving the discrete
// 2D Poisson equation on rectangular grids with the stationary Jacobi
// iterative method — built for shared-memory parallelism within one process.
//
// 🚀 What is poisson?
//
//	A compact numerical library that brings together:
//		• Grid: flat, strided storage for an (N+2)×(M+2) field with a fixed
//		  zero halo on every side
//		• Jacobi: the 5-point stencil sweep, a parallel L2 convergence test,
//		  and an iteration controller with a hard cap
//		• A command-line driver that times the solve, writes a report, and
//		  dumps the solution matrix
//
// ✨ Why choose poisson?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – disjoint write partitions, barrier-ordered
//     phases, no hidden shared state
//   - Pure Go – no cgo
//   - Deterministic modulo reduction order – parallel runs match the
//     sequential baseline within floating-point tolerance
//
// Under the hood, everything is organized under two subpackages:
//
//	grid/   — the halo-grid type: row-major storage, bounds-checked access
//	jacobi/ — stencil sweep, residual reduction & the Solve controller
//
// Quick ASCII example of a 3×3 interior with its halo (·=fixed zero):
//
//	· · · · ·
//	· x x x ·
//	· x x x ·
//	· x x x ·
//	· · · · ·
//
// Dive into the package docs for full examples and the concurrency model.
//
//	go get github.com/katalvlaran/poisson
package poisson
