// Package cli implements the poisson command: argument handling, solver
// wiring, timing, and the report/matrix/plot outputs.
package cli

import (
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/poisson/grid"
	"github.com/katalvlaran/poisson/jacobi"
)

// DefaultSize is the interior size used for a missing or invalid grid
// dimension argument. Both dimensions share the same fallback.
const DefaultSize = 50

// Options holds the flags of the poisson command.
type Options struct {
	Tol           float64
	MaxIterations int
	Workers       int
	Step          float64 // mesh step h
	Source        float64 // constant source term f
	Report        string
	Matrix        string
	Plot          string
	Config        string
	Verbose       bool
}

// NewRootCommand creates the poisson command.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "poisson [N [M]]",
		Short: "Solve the 2D Poisson equation with the Jacobi method",
		Long: `Solve the discrete 2D Poisson equation on an N×M interior grid with
zero Dirichlet boundary conditions, using the stationary Jacobi
iterative method with shared-memory parallelism.

N and M are optional positive integers (default 50×50); missing or
invalid values fall back to the default for either dimension. The
right-hand side holds a spatially constant source: b = h²·f.

The solve is timed and summarized in a report file; the final interior
is dumped as a space-separated text matrix, one line per row.

Example:
  poisson 100 80 --workers 8 --report output.txt --matrix matrix.txt
  poisson --config solver.yaml --plot residuals.png --verbose`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.Tol, "tol", jacobi.DefaultTol, "convergence tolerance on the L2 residual")
	f.IntVar(&opts.MaxIterations, "maxit", jacobi.DefaultMaxIterations, "hard cap on solver cycles")
	f.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "parallel workers per solver phase")
	f.Float64Var(&opts.Step, "step", 0.01, "mesh step h")
	f.Float64Var(&opts.Source, "source", 1.5, "constant source term f")
	f.StringVar(&opts.Report, "report", "output.txt", "path of the solve report")
	f.StringVar(&opts.Matrix, "matrix", "matrix_poisson.txt", "path of the solution matrix dump")
	f.StringVar(&opts.Plot, "plot", "", "path of the residual-history PNG (disabled when empty)")
	f.StringVar(&opts.Config, "config", "", "YAML file with solver settings")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "log every solver cycle")

	return cmd
}

// parseDim interprets the positional grid argument at idx. Missing,
// malformed, or non-positive values fall back to DefaultSize.
func parseDim(args []string, idx int) int {
	if idx >= len(args) {
		return DefaultSize
	}
	v, err := strconv.Atoi(args[idx])
	if err != nil || v < 1 {
		return DefaultSize
	}

	return v
}

// applyConfig overlays file-based settings onto opts, keeping any value
// the user set explicitly on the command line.
func applyConfig(flags *pflag.FlagSet, opts *Options, cfg Config) {
	if cfg.Tol > 0 && !flags.Changed("tol") {
		opts.Tol = cfg.Tol
	}
	if cfg.MaxIterations > 0 && !flags.Changed("maxit") {
		opts.MaxIterations = cfg.MaxIterations
	}
	if cfg.Workers > 0 && !flags.Changed("workers") {
		opts.Workers = cfg.Workers
	}
	if cfg.Step > 0 && !flags.Changed("step") {
		opts.Step = cfg.Step
	}
	if cfg.Source != 0 && !flags.Changed("source") {
		opts.Source = cfg.Source
	}
}

func run(cmd *cobra.Command, opts *Options, args []string) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	if opts.Config != "" {
		cfg, err := LoadConfig(opts.Config)
		if err != nil {
			return err
		}
		applyConfig(cmd.Flags(), opts, cfg)
	}

	n := parseDim(args, 0)
	m := parseDim(args, 1)

	x, err := grid.New(n, m)
	if err != nil {
		return fmt.Errorf("cli: allocate solution grid: %w", err)
	}
	b, err := grid.New(n, m)
	if err != nil {
		return fmt.Errorf("cli: allocate right-hand side: %w", err)
	}
	b.FillInterior(opts.Step * opts.Step * opts.Source)

	var residuals []float64
	solveOpts := jacobi.Options{
		Ctx:           cmd.Context(),
		Tol:           opts.Tol,
		MaxIterations: opts.MaxIterations,
		Workers:       opts.Workers,
		Progress: func(iteration int, residual float64) {
			residuals = append(residuals, residual)
			logger.Debug("cycle complete", "iteration", iteration, "residual", residual)
		},
	}

	logger.Info("starting solve",
		"n", n, "m", m, "workers", opts.Workers, "tol", opts.Tol, "maxit", opts.MaxIterations)
	start := time.Now()
	res, err := jacobi.Solve(x, b, solveOpts)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("cli: solve: %w", err)
	}
	logger.Info("solve finished",
		"status", res.Status.String(), "iterations", res.Iterations,
		"residual", res.Residual, "elapsed", elapsed)

	if err = writeReportFile(opts.Report, res, n, m, elapsed); err != nil {
		return err
	}
	if err = writeMatrixFile(opts.Matrix, x); err != nil {
		return err
	}
	if opts.Plot != "" {
		if err = writeResidualPlot(opts.Plot, residuals); err != nil {
			return err
		}
		logger.Info("residual plot written", "path", opts.Plot)
	}

	return nil
}
