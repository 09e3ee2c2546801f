// Package grid defines the haloed field type and sentinel errors
// for the grid subpackage of github.com/katalvlaran/poisson.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrNonPositiveDims indicates the requested interior has no rows or no columns.
	ErrNonPositiveDims = errors.New("grid: interior dimensions must be at least 1×1")
	// ErrOutOfBounds indicates a point index outside the haloed field.
	ErrOutOfBounds = errors.New("grid: point index outside the haloed field")
	// ErrBoundaryWrite indicates an attempted write to a halo point,
	// which is fixed at zero for the lifetime of the grid.
	ErrBoundaryWrite = errors.New("grid: halo points are fixed at zero and cannot be written")
)

// Grid is a rectangular N×M interior field wrapped by a one-point halo
// of fixed zeros. Storage is a single flat slice in row-major order with
// stride M+2, so point (i,j) maps to offset i*(M+2)+j. The halo holds
// the zero Dirichlet boundary condition and is never written after
// allocation; all mutating methods reject halo indices.
type Grid struct {
	n, m   int       // interior rows and columns
	stride int       // m + 2
	data   []float64 // (n+2)*(m+2) values, zero-initialized
}
