package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"option-lattice/internal/analysis"
	"option-lattice/internal/config"
	"option-lattice/internal/export"
	"option-lattice/internal/lattice"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "price":
		cmdPrice(os.Args[2:])
	case "converge":
		cmdConverge(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli price --config examples/config.yaml [--lattice] [--out results/lattice.csv]")
	fmt.Println("  cli converge --config examples/config.yaml --max-steps 200")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - price prints root price, greeks and early-exercise nodes; --lattice adds the full node table")
	fmt.Println("  - converge compares the European lattice price against Black-Scholes per step count")
}

func cmdPrice(args []string) {
	fs := flag.NewFlagSet("price", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional output CSV path (overrides config output.csv_path)")
	showLattice := fs.Bool("lattice", false, "Print the full node table")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	params, err := cfg.Scenario.ToMarketParams()
	if err != nil {
		panic(err)
	}

	res := lattice.New().Price(params)

	fmt.Printf("Scenario: %s (%s %s)\n", scenarioName(cfg), params.Kind, params.Style)
	fmt.Printf("S=%.4f K=%.4f r=%.4f sigma=%.4f T=%.4f N=%d\n",
		params.Spot, params.Strike, params.Rate, params.Volatility, params.TimeToMaturity, params.Steps)
	fmt.Printf("CRR: dt=%.6f u=%.6f d=%.6f p=%.6f discount=%.6f\n",
		res.CRR.Dt, res.CRR.Up, res.CRR.Down, res.CRR.Probability, res.CRR.Discount)
	fmt.Printf("\nRoot price = %.6f\n", res.RootPrice)
	fmt.Printf("Delta      = %.6f\n", res.Delta)
	fmt.Printf("Gamma      = %.6f\n", res.Gamma)
	fmt.Printf("BlackScholes (European reference) = %.6f\n", lattice.BlackScholes(params))

	if len(res.EarlyExercises) > 0 {
		fmt.Printf("\nEarly exercise at %d node(s):\n", len(res.EarlyExercises))
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Step", "State", "Stock", "Value"})
		for _, ex := range res.EarlyExercises {
			table.Append([]string{
				strconv.Itoa(ex.Step),
				strconv.Itoa(ex.State),
				fmt.Sprintf("%.4f", ex.StockPrice),
				fmt.Sprintf("%.4f", ex.OptionValue),
			})
		}
		table.Render()
	}

	if *showLattice {
		fmt.Println()
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Step", "State", "Stock", "Value", "Exercised"})
		for _, row := range export.NodeRows(res) {
			table.Append([]string{
				strconv.Itoa(row.Step),
				strconv.Itoa(row.State),
				fmt.Sprintf("%.4f", row.StockPrice),
				fmt.Sprintf("%.4f", row.OptionValue),
				strconv.FormatBool(row.ExercisedEarly),
			})
		}
		table.Render()
	}

	csvPath := *outPath
	if csvPath == "" {
		csvPath = cfg.Output.CSVPath
	}
	if csvPath != "" {
		if err := os.MkdirAll(filepath.Dir(csvPath), 0o755); err != nil {
			panic(err)
		}
		if err := export.WriteResultCSV(csvPath, params, res); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote %d node rows to %s\n", lattice.NodeCount(params.Steps), csvPath)
	}
}

func cmdConverge(args []string) {
	fs := flag.NewFlagSet("converge", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	maxSteps := fs.Int("max-steps", 200, "Largest step count to price")
	tolerance := fs.Float64("tolerance", 0.05, "Absolute error band for the converged-at marker")
	every := fs.Int("every", 10, "Print every k-th step count")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	params, err := cfg.Scenario.ToMarketParams()
	if err != nil {
		panic(err)
	}

	report := analysis.Convergence(params, *maxSteps, *tolerance)

	fmt.Printf("Black-Scholes reference = %.6f\n\n", report.BlackScholes)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"N", "Lattice", "AbsError"})
	for _, pt := range report.Points {
		if *every > 1 && pt.Steps%*every != 0 && pt.Steps != 1 {
			continue
		}
		table.Append([]string{
			strconv.Itoa(pt.Steps),
			fmt.Sprintf("%.6f", pt.LatticePrice),
			fmt.Sprintf("%.6f", pt.AbsError),
		})
	}
	table.Render()

	fmt.Printf("\nmean abs error = %.6f  max = %.6f  final = %.6f\n",
		report.MeanAbsError, report.MaxAbsError, report.FinalError)
	if report.ConvergedAt > 0 {
		fmt.Printf("within %.4f from N=%d onward\n", report.Tolerance, report.ConvergedAt)
	} else {
		fmt.Printf("never stayed within %.4f up to N=%d\n", report.Tolerance, *maxSteps)
	}
}

func scenarioName(cfg *config.Config) string {
	if cfg.Scenario.Name != "" {
		return cfg.Scenario.Name
	}
	return "unnamed"
}
