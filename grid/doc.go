// Package grid provides the haloed 2D field type used by the Jacobi
// solver: an N×M interior wrapped by a one-point margin of fixed zeros.
//
// What:
//
//   - Grid stores an (N+2)×(M+2) float64 field in one flat, row-major
//     slice with stride M+2; point (i,j) lives at offset i*(M+2)+j.
//   - Interior points are i∈[1,N], j∈[1,M]; everything else is halo.
//   - Halo entries hold the Dirichlet boundary condition (zero) and are
//     never writable through the public API.
//
// Why:
//
//   - Stencil codes read the four nearest neighbors of every interior
//     point; the halo removes all edge special-casing from the sweep.
//   - A typed grid enforces the row-major/stride invariant and the
//     fixed-zero boundary by construction instead of by convention.
//
// Complexity:
//
//   - New:            O(N×M) time and memory.
//   - At/Set/Index:   O(1).
//   - Row:            O(1) (shared backing, no copy).
//   - FillInterior:   O(N×M).
//   - Clone:          O(N×M).
//
// Errors:
//
//   - ErrNonPositiveDims: requested interior has no rows or no columns.
//   - ErrOutOfBounds: (i,j) lies outside the haloed field.
//   - ErrBoundaryWrite: attempted write to a halo point.
package grid
