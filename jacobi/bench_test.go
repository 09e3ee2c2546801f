package jacobi_test

import (
	"runtime"
	"testing"

	"github.com/katalvlaran/poisson/grid"
	"github.com/katalvlaran/poisson/jacobi"
)

// BenchmarkStep measures one parallel sweep on a 512×512 interior.
// Complexity: O(N×M) per operation.
func BenchmarkStep(b *testing.B) {
	const n = 512
	x, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	rhs, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	t, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	rhs.FillInterior(0.01 * 0.01 * 1.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = jacobi.Step(x, rhs, t, runtime.NumCPU()); err != nil {
			b.Fatalf("Step failed: %v", err)
		}
	}
}

// BenchmarkStepSequential is the single-worker baseline for BenchmarkStep.
func BenchmarkStepSequential(b *testing.B) {
	const n = 512
	x, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	rhs, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	t, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	rhs.FillInterior(0.01 * 0.01 * 1.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = jacobi.Step(x, rhs, t, 1); err != nil {
			b.Fatalf("Step failed: %v", err)
		}
	}
}

// BenchmarkSolve measures a capped solve on a 64×64 interior so the
// per-iteration overhead (fork-join, reduction) dominates the timing.
func BenchmarkSolve(b *testing.B) {
	opts := jacobi.DefaultOptions()
	opts.MaxIterations = 100

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		x, err := grid.New(64, 64)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		rhs, err := grid.New(64, 64)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		rhs.FillInterior(0.01 * 0.01 * 1.5)
		b.StartTimer()

		if _, err = jacobi.Solve(x, rhs, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
