package jacobi

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/poisson/grid"
)

// residualNorm computes ‖x−t‖₂ over interior points with a fork-join
// reduction. Each worker accumulates the squared L2 distance of its own
// disjoint row band into a dedicated slot of the partials slice; the
// slots are combined exactly once after all workers have joined, so no
// term is ever lost or double-counted. The combination order across
// workers is unspecified only up to floating-point rounding.
// Complexity: O(N×M) work, split across min(workers, N) goroutines.
func residualNorm(x, t *grid.Grid, workers int) float64 {
	m := x.M()
	parts := bands(x.N(), workers)
	partials := make([]float64, len(parts))

	var wg sync.WaitGroup
	for w, bd := range parts {
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			var s float64
			for i := lo; i < hi; i++ {
				d := floats.Distance(x.Row(i)[1:m+1], t.Row(i)[1:m+1], 2)
				s += d * d
			}
			partials[w] = s
		}(w, bd[0], bd[1])
	}
	wg.Wait()

	return math.Sqrt(floats.Sum(partials))
}
