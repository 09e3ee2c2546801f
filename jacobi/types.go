// Package jacobi defines options, statuses, and sentinel errors
// for the jacobi subpackage of github.com/katalvlaran/poisson.
package jacobi

import (
	"context"
	"errors"
	"runtime"
)

// Documented defaults (single source of truth).
const (
	// DefaultTol is the convergence tolerance: the solve stops once the
	// L2 norm of the difference between successive iterates drops below it.
	DefaultTol = 1e-6

	// DefaultMaxIterations caps the number of cycles before the solver
	// gives up and returns the best current iterate.
	DefaultMaxIterations = 70000
)

// Sentinel errors for solver operations.
var (
	// ErrNilGrid indicates a required grid argument is nil.
	ErrNilGrid = errors.New("jacobi: grid arguments must be non-nil")
	// ErrShapeMismatch indicates the grids disagree on interior dimensions.
	ErrShapeMismatch = errors.New("jacobi: grids must share the same interior dimensions")
)

// Status is the controller state: Running while cycles are in flight,
// Converged or Exhausted once terminal.
type Status int

const (
	// Running means the controller has not reached a terminal state.
	// It only appears in results returned alongside a cancellation error.
	Running Status = iota
	// Converged means the residual dropped below Options.Tol.
	Converged
	// Exhausted means MaxIterations cycles completed without convergence.
	// The returned iterate is the best-effort solution, not an error.
	Exhausted
)

// String returns the state name.
func (s Status) String() string {
	switch s {
	case Converged:
		return "Converged"
	case Exhausted:
		return "Exhausted"
	default:
		return "Running"
	}
}

// Options configures Solve.
//   - Ctx: checked once per cycle; cancellation stops the solve between phases.
//   - Tol: convergence tolerance on ‖x−t‖₂ (default DefaultTol).
//   - MaxIterations: hard cap on cycles (default DefaultMaxIterations).
//   - Workers: requested parallelism; defaults to runtime.NumCPU() and is
//     capped at the number of interior rows. The effective value is
//     reported back in Result.Workers.
//   - Progress: optional per-cycle sink receiving (iteration index,
//     residual). Invoked on the controller goroutine, strictly between
//     the reduction and copy-swap phases.
type Options struct {
	Ctx           context.Context
	Tol           float64
	MaxIterations int
	Workers       int
	Progress      func(iteration int, residual float64)
}

// DefaultOptions returns production-safe defaults: background context,
// Tol=1e-6, MaxIterations=70000, Workers=runtime.NumCPU(), no Progress.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Tol:           DefaultTol,
		MaxIterations: DefaultMaxIterations,
		Workers:       runtime.NumCPU(),
	}
}

// normalize fills zero values with defaults and caps Workers at the
// number of interior rows so every worker owns at least one row.
func (o *Options) normalize(rows int) {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Tol <= 0 {
		o.Tol = DefaultTol
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Workers < 1 {
		o.Workers = runtime.NumCPU()
	}
	if o.Workers > rows {
		o.Workers = rows
	}
}

// Result reports the outcome of a Solve.
type Result struct {
	// Status is Converged or Exhausted; Running only accompanies a
	// cancellation error.
	Status Status
	// Iterations is the number of completed cycles.
	Iterations int
	// Residual is ‖x−t‖₂ from the last completed cycle.
	Residual float64
	// Workers is the effective parallelism used for every phase.
	Workers int
}
