package jacobi

import "testing"

// TestBands verifies that bands covers rows 1..n exactly once with
// contiguous, near-equal ranges for a spread of worker counts.
func TestBands(t *testing.T) {
	cases := []struct {
		name       string
		n, workers int
		wantBands  int
	}{
		{"SingleRowSingleWorker", 1, 1, 1},
		{"MoreWorkersThanRows", 3, 8, 3},
		{"NonPositiveWorkers", 5, 0, 1},
		{"EvenSplit", 8, 4, 4},
		{"UnevenSplit", 10, 3, 3},
		{"OneWorkerManyRows", 100, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := bands(tc.n, tc.workers)
			if len(got) != tc.wantBands {
				t.Fatalf("bands(%d,%d) returned %d bands; want %d", tc.n, tc.workers, len(got), tc.wantBands)
			}

			lo := 1
			minSize, maxSize := tc.n, 0
			for _, bd := range got {
				if bd[0] != lo {
					t.Errorf("band starts at %d; want %d (contiguous coverage)", bd[0], lo)
				}
				size := bd[1] - bd[0]
				if size < 1 {
					t.Errorf("band [%d,%d) is empty", bd[0], bd[1])
				}
				if size < minSize {
					minSize = size
				}
				if size > maxSize {
					maxSize = size
				}
				lo = bd[1]
			}
			if lo != tc.n+1 {
				t.Errorf("bands end at row %d; want %d", lo-1, tc.n)
			}
			if maxSize-minSize > 1 {
				t.Errorf("band sizes range [%d,%d]; want spread ≤ 1", minSize, maxSize)
			}
		})
	}
}
