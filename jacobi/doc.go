// Package jacobi implements the stationary Jacobi iterative method for
// the discrete 2D Poisson equation on a grid.Grid with zero Dirichlet
// boundary conditions. It provides the 5-point stencil sweep, a parallel
// L2 convergence test, and the iteration controller that alternates
// between them under a fork-join execution model.
//
// # Algorithm
//
// Given the current iterate x and the right-hand side b (interior
// entries hold h²·f), each cycle performs three strictly ordered
// parallel phases:
//
//  1. Sweep: t[i,j] = (b[i,j] + x[i+1,j] + x[i-1,j] + x[i,j+1] + x[i,j-1]) / 4
//     for every interior point. Output points are independent, so the
//     interior is partitioned into disjoint row bands, one per worker.
//
//  2. Reduction: residual = ‖x−t‖₂ over interior points. Each worker
//     accumulates the squared distance of its own band; the partial sums
//     are combined exactly once after all workers have joined, so no
//     term is lost or double-counted. Summation order across workers is
//     unspecified; rounding differences between runs are acceptable.
//
//  3. Copy-swap: the interior of t becomes the interior of x for the
//     next cycle (skipped when the cycle converged).
//
// The controller stops when residual < Tol (Converged) or after
// MaxIterations cycles (Exhausted). Exhausted is a defined terminal
// state, not an error: the best current iterate is returned and the
// Result lets callers tell the two apart.
//
// # Concurrency model
//
// Each phase forks a fixed team of goroutines over disjoint row bands
// and joins them before the next phase begins — strict phase ordering,
// relaxed worker ordering within a phase. Correctness rests entirely on
// the disjoint write partitions; no locks are taken. The iteration
// counter and converged flag live in Solve's locals and are only
// touched between phases, on the controller goroutine — the same
// goroutine that emits the per-iteration Progress record.
//
// # API
//
// Options configures Solve:
//
//	type Options struct {
//	    Ctx           context.Context // cancellation between cycles
//	    Tol           float64         // convergence tolerance (default 1e-6)
//	    MaxIterations int             // hard cap on cycles (default 70000)
//	    Workers       int             // requested parallelism (default NumCPU)
//	    Progress      func(iteration int, residual float64)
//	}
//
// Use DefaultOptions() to obtain production-safe defaults. The core
// entry points:
//
//	func Solve(x, b *grid.Grid, opts Options) (Result, error)
//	func Step(x, b, t *grid.Grid, workers int) error
//
// Solve mutates x in place and reports the terminal Status, iteration
// count, final residual, and effective worker count in Result. Step
// exposes a single sweep for callers that drive their own iteration.
//
// # Complexity
//
//	Time:   O(k·N·M) for k cycles, each phase parallel over Workers bands.
//	Memory: O(N·M) for the scratch iterate, allocated once per Solve.
//
// # Errors
//
//	ErrNilGrid       - a required grid argument is nil.
//	ErrShapeMismatch - grids disagree on interior dimensions.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
package jacobi
