package jacobi

import (
	"github.com/katalvlaran/poisson/grid"
)

// Solve runs the Jacobi iteration on the system implied by b until the
// residual drops below opts.Tol or opts.MaxIterations cycles complete.
// The solution is computed in place: x enters as the initial iterate
// (typically all zeros) and exits as the final one.
//
// It returns:
//   - result : terminal Status (Converged or Exhausted), completed cycle
//     count, final residual, and the effective worker count
//   - err    : ErrNilGrid, ErrShapeMismatch, a scratch-allocation error,
//     or a context cancellation error
//
// Steps per cycle, given completed count k:
//  1. If k ≥ MaxIterations, stop as Exhausted with the current x (O(1)).
//  2. Check opts.Ctx for cancellation (O(1)).
//  3. Sweep x,b → t in parallel over disjoint row bands (O(N·M)).
//  4. Reduce residual = ‖x−t‖₂ via per-worker partial sums (O(N·M)).
//  5. Emit (k, residual) to opts.Progress on the controller goroutine,
//     then increment k — bookkeeping runs strictly between the parallel
//     phases, never inside one.
//  6. If residual < Tol, stop as Converged; otherwise copy t's interior
//     into x in parallel (O(N·M)) and repeat from step 1.
//
// The iteration counter and converged flag are locals of this function;
// they are invisible outside it. Exhausted is a defined terminal state,
// not an error: the best current iterate remains in x.
//
// Complexity:
//
//	Time:   O(k·N·M) for k completed cycles.
//	Memory: O(N·M) for the scratch iterate, allocated once and reused.
func Solve(x, b *grid.Grid, opts Options) (Result, error) {
	if x == nil || b == nil {
		return Result{}, ErrNilGrid
	}
	if !x.SameShape(b) {
		return Result{}, ErrShapeMismatch
	}

	opts.normalize(x.N())

	// Scratch iterate: zero halo by construction, interior fully
	// overwritten by every sweep.
	t, err := grid.New(x.N(), x.M())
	if err != nil {
		return Result{}, err
	}

	var (
		k        int
		residual float64
		status   = Running
	)
	for {
		if k >= opts.MaxIterations {
			status = Exhausted
			break
		}
		if err = opts.Ctx.Err(); err != nil {
			return Result{Status: status, Iterations: k, Residual: residual, Workers: opts.Workers}, err
		}

		step(x, b, t, opts.Workers)

		residual = residualNorm(x, t, opts.Workers)
		converged := residual < opts.Tol

		if opts.Progress != nil {
			opts.Progress(k, residual)
		}
		k++

		if converged {
			status = Converged
			break
		}

		copyInterior(x, t, opts.Workers)
	}

	return Result{Status: status, Iterations: k, Residual: residual, Workers: opts.Workers}, nil
}
