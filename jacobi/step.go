package jacobi

import (
	"sync"

	"github.com/katalvlaran/poisson/grid"
)

// Step performs one Jacobi sweep: for every interior point (i,j),
//
//	t[i,j] = (b[i,j] + x[i+1,j] + x[i-1,j] + x[i,j+1] + x[i,j-1]) / 4
//
// reading only x and b and writing only t. Output points carry no data
// dependency on each other, so the interior rows are distributed over
// `workers` goroutines in disjoint bands; a non-positive worker count
// runs the sweep sequentially. The halo of t is never touched and stays
// at its fixed zero value.
//
// Returns ErrNilGrid if any grid is nil, ErrShapeMismatch if the three
// grids disagree on interior dimensions.
//
// Complexity: O(N×M) work, split across min(workers, N) goroutines.
func Step(x, b, t *grid.Grid, workers int) error {
	if x == nil || b == nil || t == nil {
		return ErrNilGrid
	}
	if !x.SameShape(b) || !x.SameShape(t) {
		return ErrShapeMismatch
	}
	step(x, b, t, workers)

	return nil
}

// step is the unvalidated sweep used by the Solve hot loop.
func step(x, b, t *grid.Grid, workers int) {
	m := x.M()

	var wg sync.WaitGroup
	for _, bd := range bands(x.N(), workers) {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				up := x.Row(i - 1)
				cur := x.Row(i)
				down := x.Row(i + 1)
				rhs := b.Row(i)
				out := t.Row(i)
				for j := 1; j <= m; j++ {
					out[j] = (rhs[j] + down[j] + up[j] + cur[j+1] + cur[j-1]) / 4
				}
			}
		}(bd[0], bd[1])
	}
	wg.Wait()
}

// copyInterior copies src's interior into dst, row band per worker.
// Writes are disjoint per worker, halo columns and rows are skipped.
// Complexity: O(N×M) work, split across min(workers, N) goroutines.
func copyInterior(dst, src *grid.Grid, workers int) {
	m := dst.M()

	var wg sync.WaitGroup
	for _, bd := range bands(dst.N(), workers) {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				copy(dst.Row(i)[1:m+1], src.Row(i)[1:m+1])
			}
		}(bd[0], bd[1])
	}
	wg.Wait()
}
