package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/poisson/grid"
	"github.com/katalvlaran/poisson/jacobi"
)

// writeReport renders the human-readable solve summary.
func writeReport(w io.Writer, res jacobi.Result, n, m int, elapsed time.Duration) error {
	_, err := fmt.Fprintf(w,
		"2D Poisson solver, Jacobi method\n"+
			"solve time: %f seconds\n"+
			"size: (N,M) = (%d, %d)\n"+
			"workers: %d\n"+
			"status: %s\n"+
			"iterations: %d\n"+
			"residual: %g\n",
		elapsed.Seconds(), n, m, res.Workers, res.Status, res.Iterations, res.Residual)
	if err != nil {
		return fmt.Errorf("cli: write report: %w", err)
	}

	return nil
}

// writeMatrix dumps the interior of x as text: one line per interior
// row, every value printed with %g and followed by a single space.
func writeMatrix(w io.Writer, x *grid.Grid) error {
	m := x.M()
	for i := 1; i <= x.N(); i++ {
		row := x.Row(i)
		for j := 1; j <= m; j++ {
			if _, err := fmt.Fprintf(w, "%g ", row[j]); err != nil {
				return fmt.Errorf("cli: write matrix row %d: %w", i, err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("cli: write matrix row %d: %w", i, err)
		}
	}

	return nil
}

// writeReportFile writes the solve summary to path. A failure to open
// the file is reported the same way as for the matrix dump.
func writeReportFile(path string, res jacobi.Result, n, m int, elapsed time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cli: open report file %q: %w", path, err)
	}
	if err = writeReport(f, res, n, m, elapsed); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// writeMatrixFile dumps the final solution matrix to path.
func writeMatrixFile(path string, x *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cli: open matrix file %q: %w", path, err)
	}
	if err = writeMatrix(f, x); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
