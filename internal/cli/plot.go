package cli

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// writeResidualPlot renders the per-cycle residual history as a line
// chart and saves it to path (format inferred from the extension).
func writeResidualPlot(path string, residuals []float64) error {
	p := plot.New()
	p.Title.Text = "Jacobi residual history"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "residual (L2)"

	pts := make(plotter.XYs, len(residuals))
	for i, r := range residuals {
		pts[i].X = float64(i)
		pts[i].Y = r
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("cli: build residual line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(plotter.NewGrid(), line)

	if err = p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("cli: save residual plot %q: %w", path, err)
	}

	return nil
}
