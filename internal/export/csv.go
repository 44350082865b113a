package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"

	"option-lattice/internal/lattice"
	"option-lattice/internal/model"
)

// NodeRow is one lattice node in the export table. Rows are emitted in
// (step, state) order so repeated exports of the same result are identical.
type NodeRow struct {
	Step           int     `csv:"step"`
	State          int     `csv:"state"`
	StockPrice     float64 `csv:"stock_price"`
	OptionValue    float64 `csv:"option_value"`
	ExercisedEarly bool    `csv:"exercised_early"`
}

// NodeRows flattens a pricing result into the export table.
func NodeRows(res *lattice.Result) []NodeRow {
	rows := make([]NodeRow, 0, lattice.NodeCount(res.Stock.Steps()))
	for i := range res.Stock {
		for j := range res.Stock[i] {
			rows = append(rows, NodeRow{
				Step:           i,
				State:          j,
				StockPrice:     res.Stock[i][j],
				OptionValue:    res.Option[i][j],
				ExercisedEarly: res.Exercised[i][j],
			})
		}
	}
	return rows
}

// MarshalResultCSV writes a settings/summary block, a blank line, then the
// node table. The single-file layout is what the front end downloads.
func MarshalResultCSV(w io.Writer, p model.MarketParams, res *lattice.Result) error {
	cw := csv.NewWriter(w)

	summary := [][]string{
		{"spot", fmtFloat(p.Spot)},
		{"strike", fmtFloat(p.Strike)},
		{"rate", fmtFloat(p.Rate)},
		{"volatility", fmtFloat(p.Volatility)},
		{"time_to_maturity", fmtFloat(p.TimeToMaturity)},
		{"steps", strconv.Itoa(p.Steps)},
		{"kind", string(p.Kind)},
		{"style", string(p.Style)},
		{"dt", fmtFloat(res.CRR.Dt)},
		{"up", fmtFloat(res.CRR.Up)},
		{"down", fmtFloat(res.CRR.Down)},
		{"probability", fmtFloat(res.CRR.Probability)},
		{"discount", fmtFloat(res.CRR.Discount)},
		{"root_price", fmtFloat(res.RootPrice)},
		{"delta", fmtFloat(res.Delta)},
		{"gamma", fmtFloat(res.Gamma)},
		{"early_exercise_count", strconv.Itoa(len(res.EarlyExercises))},
	}
	if p.CustomUp != nil && p.CustomDown != nil {
		summary = append(summary,
			[]string{"custom_up", fmtFloat(*p.CustomUp)},
			[]string{"custom_down", fmtFloat(*p.CustomDown)},
		)
	}
	for _, row := range summary {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	rows := NodeRows(res)
	return gocsv.Marshal(&rows, w)
}

// WriteResultCSV is the file-path convenience wrapper around MarshalResultCSV.
func WriteResultCSV(path string, p model.MarketParams, res *lattice.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return MarshalResultCSV(f, p, res)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
