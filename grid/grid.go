package grid

// New allocates a zero-initialized Grid with an n×m interior and a
// one-point halo on every side. Returns ErrNonPositiveDims if either
// dimension is smaller than 1.
// Complexity: O(n×m) time and memory.
func New(n, m int) (*Grid, error) {
	if n < 1 || m < 1 {
		return nil, ErrNonPositiveDims
	}

	return &Grid{
		n:      n,
		m:      m,
		stride: m + 2,
		data:   make([]float64, (n+2)*(m+2)),
	}, nil
}

// N returns the number of interior rows.
func (g *Grid) N() int { return g.n }

// M returns the number of interior columns.
func (g *Grid) M() int { return g.m }

// Index maps point (i,j) to its flat row-major offset i*(M+2)+j.
// Complexity: O(1).
func (g *Grid) Index(i, j int) int {
	return i*g.stride + j
}

// InBounds reports whether (i,j) lies within the haloed field,
// i.e. i∈[0,N+1] and j∈[0,M+1].
// Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i <= g.n+1 && j >= 0 && j <= g.m+1
}

// Interior reports whether (i,j) is an interior point,
// i.e. i∈[1,N] and j∈[1,M].
// Complexity: O(1).
func (g *Grid) Interior(i, j int) bool {
	return i >= 1 && i <= g.n && j >= 1 && j <= g.m
}

// At returns the value at (i,j), halo points included.
// Returns ErrOutOfBounds if (i,j) lies outside the haloed field.
// Complexity: O(1).
func (g *Grid) At(i, j int) (float64, error) {
	if !g.InBounds(i, j) {
		return 0, ErrOutOfBounds
	}

	return g.data[g.Index(i, j)], nil
}

// Set stores v at interior point (i,j).
// Returns ErrOutOfBounds if (i,j) lies outside the haloed field, and
// ErrBoundaryWrite if (i,j) addresses a halo point.
// Complexity: O(1).
func (g *Grid) Set(i, j int, v float64) error {
	if !g.InBounds(i, j) {
		return ErrOutOfBounds
	}
	if !g.Interior(i, j) {
		return ErrBoundaryWrite
	}
	g.data[g.Index(i, j)] = v

	return nil
}

// Row returns row i of the haloed field as a shared, mutable slice of
// length M+2 (columns 0..M+1). It exists for hot loops that sweep whole
// rows; callers own disjoint row ranges and must leave the halo entries
// (index 0 and M+1, and all of rows 0 and N+1) untouched.
// Complexity: O(1), no copy.
func (g *Grid) Row(i int) []float64 {
	return g.data[i*g.stride : (i+1)*g.stride]
}

// FillInterior sets every interior point to v, leaving the halo at zero.
// Complexity: O(N×M).
func (g *Grid) FillInterior(v float64) {
	for i := 1; i <= g.n; i++ {
		row := g.Row(i)
		for j := 1; j <= g.m; j++ {
			row[j] = v
		}
	}
}

// Clone returns a deep copy of g sharing no storage with the original.
// Complexity: O(N×M).
func (g *Grid) Clone() *Grid {
	dup := &Grid{
		n:      g.n,
		m:      g.m,
		stride: g.stride,
		data:   make([]float64, len(g.data)),
	}
	copy(dup.data, g.data)

	return dup
}

// SameShape reports whether g and o have identical interior dimensions.
// Complexity: O(1).
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.n == o.n && g.m == o.m
}

// InteriorValues returns a deep copy of the interior as an N×M matrix,
// row [0] holding interior row i=1. Intended for reporting and tests,
// not for hot loops.
// Complexity: O(N×M) time and memory.
func (g *Grid) InteriorValues() [][]float64 {
	out := make([][]float64, g.n)
	for i := 1; i <= g.n; i++ {
		row := make([]float64, g.m)
		copy(row, g.Row(i)[1:g.m+1])
		out[i-1] = row
	}

	return out
}
