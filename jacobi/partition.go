package jacobi

// bands splits the interior rows 1..n into at most `workers` contiguous,
// non-overlapping half-open ranges [lo,hi). Every row belongs to exactly
// one band, so concurrent writers over distinct bands never overlap.
// Row counts differ by at most one across bands.
// Complexity: O(workers).
func bands(n, workers int) [][2]int {
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	out := make([][2]int, 0, workers)
	size, rem := n/workers, n%workers
	lo := 1
	for w := 0; w < workers; w++ {
		hi := lo + size
		if w < rem {
			hi++
		}
		out = append(out, [2]int{lo, hi})
		lo = hi
	}

	return out
}
