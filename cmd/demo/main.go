package main

import (
	"flag"
	"fmt"
	"strings"

	"option-lattice/internal/config"
	"option-lattice/internal/export"
	"option-lattice/internal/lattice"
	"option-lattice/internal/model"
)

// Demo:
// - Price a canonical American put on a small lattice
// - Show the CRR parameters, the tree level by level and the greeks
// - Optionally write the CSV export to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional; overrides the built-in scenario)")
	outCSV := flag.String("out", "", "Optional path to write the result CSV (e.g. results/lattice.csv)")
	flag.Parse()

	params := model.MarketParams{
		Spot:           100,
		Strike:         110,
		Rate:           0.05,
		Volatility:     0.3,
		TimeToMaturity: 1,
		Steps:          4,
		Kind:           model.Put,
		Style:          model.American,
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params, err = cfg.Scenario.ToMarketParams()
		if err != nil {
			panic(err)
		}
	}

	res := lattice.New().Price(params)

	fmt.Printf("%s %s  S=%.2f K=%.2f r=%.3f sigma=%.3f T=%.2f N=%d\n",
		params.Kind, params.Style, params.Spot, params.Strike,
		params.Rate, params.Volatility, params.TimeToMaturity, params.Steps)
	fmt.Printf("CRR: u=%.5f d=%.5f p=%.5f discount=%.5f\n\n", res.CRR.Up, res.CRR.Down, res.CRR.Probability, res.CRR.Discount)

	for i := range res.Stock {
		cells := make([]string, 0, i+1)
		for j := range res.Stock[i] {
			mark := " "
			if res.Exercised[i][j] {
				mark = "*"
			}
			cells = append(cells, fmt.Sprintf("%8.3f/%7.3f%s", res.Stock[i][j], res.Option[i][j], mark))
		}
		fmt.Printf("step %d: %s\n", i, strings.Join(cells, "  "))
	}

	fmt.Printf("\nRoot price=%.5f  Delta=%.5f  Gamma=%.5f  (* = exercised early, %d node(s))\n",
		res.RootPrice, res.Delta, res.Gamma, len(res.EarlyExercises))

	if *outCSV != "" {
		if err := export.WriteResultCSV(*outCSV, params, res); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}
