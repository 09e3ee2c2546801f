// Command poisson solves the 2D Poisson equation on a rectangular grid
// with the Jacobi method, writes a timing report, and dumps the final
// solution matrix. It exits non-zero when an output file cannot be
// opened or the solve is interrupted.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/poisson/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "poisson:", err)
		os.Exit(1)
	}
}
