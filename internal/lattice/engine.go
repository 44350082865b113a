package lattice

import (
	"option-lattice/internal/model"
)

// EarlyExercise records one interior node where exercising immediately beat
// holding. Only American-style pricing produces these.
type EarlyExercise struct {
	Step        int
	State       int
	StockPrice  float64
	OptionValue float64
}

// Result is the full output of one pricing run. It is rebuilt from scratch on
// every call; the engine retains no reference to it.
type Result struct {
	CRR CRRParams

	// Stock and Option are parallel triangular grids; Exercised marks the
	// nodes where the American exercise check replaced the hold value.
	Stock     Grid
	Option    Grid
	Exercised BoolGrid

	RootPrice float64
	Delta     float64
	Gamma     float64

	// EarlyExercises is ordered by increasing step, then state. Terminal
	// nodes never appear: exercise at maturity is just the payoff.
	EarlyExercises []EarlyExercise
}

// Engine prices vanilla options on a CRR binomial lattice.
//
// The engine performs no input validation. Out-of-range economics (negative
// volatility, up==down custom factors) flow through as NaN/Inf node values
// rather than errors; Steps < 0 is out of contract entirely.
type Engine struct{}

func New() *Engine { return &Engine{} }

// Price derives CRR parameters, builds the stock lattice forward, then runs
// backward induction from the terminal payoffs to the root.
func (e *Engine) Price(p model.MarketParams) *Result {
	crr := DeriveCRR(p)
	n := p.Steps

	stock := BuildStockGrid(p.Spot, crr.Up, crr.Down, n)
	option := NewGrid(n)
	exercised := NewBoolGrid(n)

	// Terminal payoffs. Flags stay false here: exercising at maturity and
	// collecting the payoff are the same thing, so nothing is "early".
	for j := 0; j <= n; j++ {
		option[n][j] = p.Kind.Payoff(stock[n][j], p.Strike)
	}

	// Backward induction. Each parent sees exactly two children: up
	// continuation (j+1) and down continuation (j).
	american := p.Style == model.American
	for i := n - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			hold := crr.Discount * (crr.Probability*option[i+1][j+1] + (1-crr.Probability)*option[i+1][j])
			if american {
				// Strict comparison: a tie resolves to holding. Keep it
				// that way for reproducible flag output.
				if ex := p.Kind.Payoff(stock[i][j], p.Strike); ex > hold {
					option[i][j] = ex
					exercised[i][j] = true
					continue
				}
			}
			option[i][j] = hold
		}
	}

	return &Result{
		CRR:            crr,
		Stock:          stock,
		Option:         option,
		Exercised:      exercised,
		RootPrice:      option[0][0],
		Delta:          delta(stock, option),
		Gamma:          gamma(stock, option),
		EarlyExercises: collectEarlyExercises(stock, option, exercised),
	}
}

// collectEarlyExercises walks interior levels in (step, state) order so the
// record list is deterministic for export and display.
func collectEarlyExercises(stock, option Grid, exercised BoolGrid) []EarlyExercise {
	var out []EarlyExercise
	for i := 0; i < len(exercised)-1; i++ {
		for j := 0; j <= i; j++ {
			if exercised[i][j] {
				out = append(out, EarlyExercise{
					Step:        i,
					State:       j,
					StockPrice:  stock[i][j],
					OptionValue: option[i][j],
				})
			}
		}
	}
	return out
}
