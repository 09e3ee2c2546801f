package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWriteResidualPlot renders a small history and checks the PNG exists.
func TestWriteResidualPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "residuals.png")
	history := []float64{7.5e-5, 3.75e-5, 1.875e-5, 9.4e-6, 4.7e-6}

	require.NoError(t, writeResidualPlot(path, history))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

// TestWriteResidualPlot_BadPath verifies save failures are surfaced.
func TestWriteResidualPlot_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "residuals.png")

	err := writeResidualPlot(path, []float64{1, 0.5})
	require.Error(t, err)
	require.Contains(t, err.Error(), "save residual plot")
}
