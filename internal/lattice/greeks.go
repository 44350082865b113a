package lattice

// delta estimates dV/dS from the two step-1 nodes. These finite differences
// are only meaningful because the CRR lattice recombines symmetrically
// around the root.
func delta(stock, option Grid) float64 {
	if stock.Steps() < 1 {
		return 0
	}
	return (option[1][1] - option[1][0]) / (stock[1][1] - stock[1][0])
}

// gamma estimates d2V/dS2 from the three step-2 nodes: the difference of the
// up-side and down-side deltas over the half-spread of the outer prices.
func gamma(stock, option Grid) float64 {
	if stock.Steps() < 2 {
		return 0
	}
	deltaUp := (option[2][2] - option[2][1]) / (stock[2][2] - stock[2][1])
	deltaDown := (option[2][1] - option[2][0]) / (stock[2][1] - stock[2][0])
	h := 0.5 * (stock[2][2] - stock[2][0])
	return (deltaUp - deltaDown) / h
}
