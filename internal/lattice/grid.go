package lattice

// Grid is a triangular array indexed by (step i, up-move count j), j in 0..i.
// Indexing by up-move count collapses the binomial tree's recombining paths
// into a single node per distinct stock price.
type Grid [][]float64

// BoolGrid is a same-shaped flag array parallel to a Grid.
type BoolGrid [][]bool

// NewGrid allocates a triangular grid for a lattice with the given step
// count. Level i holds i+1 nodes.
func NewGrid(steps int) Grid {
	g := make(Grid, steps+1)
	for i := range g {
		g[i] = make([]float64, i+1)
	}
	return g
}

func NewBoolGrid(steps int) BoolGrid {
	g := make(BoolGrid, steps+1)
	for i := range g {
		g[i] = make([]bool, i+1)
	}
	return g
}

// Steps is the lattice step count N (levels minus one).
func (g Grid) Steps() int { return len(g) - 1 }

// NodeCount is the total node count for a lattice with the given step count:
// (N+1)(N+2)/2.
func NodeCount(steps int) int {
	return (steps + 1) * (steps + 2) / 2
}

// BuildStockGrid fills the stock-price lattice forward in time:
// price(i,j) = spot * up^j * down^(i-j).
//
// Each node is computed directly from the root rather than from a sibling
// recurrence, so paths that should coincide do so exactly.
func BuildStockGrid(spot, up, down float64, steps int) Grid {
	g := NewGrid(steps)
	for i := 0; i <= steps; i++ {
		for j := 0; j <= i; j++ {
			g[i][j] = spot * powInt(up, j) * powInt(down, i-j)
		}
	}
	return g
}

// powInt is x^n for small non-negative integer n. Repeated multiplication
// keeps u^j*d^(i-j) bit-identical across nodes that share factors, which
// math.Pow does not guarantee on every platform.
func powInt(x float64, n int) float64 {
	out := 1.0
	for k := 0; k < n; k++ {
		out *= x
	}
	return out
}
