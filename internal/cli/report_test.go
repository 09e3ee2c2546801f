package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poisson/grid"
	"github.com/katalvlaran/poisson/jacobi"
)

// TestWriteReport verifies the report carries every reported quantity.
func TestWriteReport(t *testing.T) {
	res := jacobi.Result{
		Status:     jacobi.Converged,
		Iterations: 1234,
		Residual:   9.5e-7,
		Workers:    4,
	}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, res, 50, 40, 1500*time.Millisecond))

	out := buf.String()
	require.Contains(t, out, "solve time: 1.500000 seconds")
	require.Contains(t, out, "size: (N,M) = (50, 40)")
	require.Contains(t, out, "workers: 4")
	require.Contains(t, out, "status: Converged")
	require.Contains(t, out, "iterations: 1234")
	require.Contains(t, out, "residual: 9.5e-07")
}

// TestWriteMatrix_Golden pins the matrix dump format against a golden
// file: %g values, one trailing space each, one line per interior row.
func TestWriteMatrix_Golden(t *testing.T) {
	x, err := grid.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, x.Set(1, 1, 0.5))
	require.NoError(t, x.Set(1, 3, 2.5e-5))
	require.NoError(t, x.Set(2, 2, 3))

	var buf bytes.Buffer
	require.NoError(t, writeMatrix(&buf, x))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "matrix_dump", buf.Bytes())
}

// TestWriteMatrix_RowCount checks one output line per interior row.
func TestWriteMatrix_RowCount(t *testing.T) {
	x, err := grid.New(4, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeMatrix(&buf, x))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.Equal(t, "0 0 ", line)
	}
}

// TestWriteFiles_OpenFailure verifies both writers surface an unopenable
// path as an error, so the command exits non-zero for either output.
func TestWriteFiles_OpenFailure(t *testing.T) {
	x, err := grid.New(1, 1)
	require.NoError(t, err)
	missingDir := filepath.Join(t.TempDir(), "no-such-dir", "out.txt")

	err = writeMatrixFile(missingDir, x)
	require.Error(t, err)
	require.Contains(t, err.Error(), "open matrix file")

	err = writeReportFile(missingDir, jacobi.Result{}, 1, 1, time.Second)
	require.Error(t, err)
	require.Contains(t, err.Error(), "open report file")
}
