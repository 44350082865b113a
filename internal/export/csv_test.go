package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"option-lattice/internal/lattice"
	"option-lattice/internal/model"
)

func putParams() model.MarketParams {
	return model.MarketParams{
		Spot:           100,
		Strike:         110,
		Rate:           0.05,
		Volatility:     0.3,
		TimeToMaturity: 1,
		Steps:          3,
		Kind:           model.Put,
		Style:          model.American,
	}
}

func TestNodeRowsOrderAndShape(t *testing.T) {
	res := lattice.New().Price(putParams())
	rows := NodeRows(res)

	require.Len(t, rows, lattice.NodeCount(3))
	assert.Equal(t, NodeRow{Step: 0, State: 0, StockPrice: 100, OptionValue: res.RootPrice, ExercisedEarly: res.Exercised[0][0]}, rows[0])

	// Strictly increasing (step, state).
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if cur.Step == prev.Step {
			assert.Equal(t, prev.State+1, cur.State)
		} else {
			assert.Equal(t, prev.Step+1, cur.Step)
			assert.Equal(t, 0, cur.State)
		}
	}
}

func TestMarshalResultCSV(t *testing.T) {
	p := putParams()
	res := lattice.New().Price(p)

	var buf bytes.Buffer
	require.NoError(t, MarshalResultCSV(&buf, p, res))
	out := buf.String()

	assert.Contains(t, out, "spot,100.000000")
	assert.Contains(t, out, "strike,110.000000")
	assert.Contains(t, out, "kind,PUT")
	assert.Contains(t, out, "style,AMERICAN")
	assert.Contains(t, out, "step,state,stock_price,option_value,exercised_early")

	// Summary block, blank separator line, then one line per node plus the
	// table header.
	sections := strings.SplitN(out, "\n\n", 2)
	require.Len(t, sections, 2)
	table := strings.Split(strings.TrimRight(sections[1], "\n"), "\n")
	assert.Len(t, table, 1+lattice.NodeCount(p.Steps))
}

func TestMarshalResultCSVDeterministic(t *testing.T) {
	p := putParams()
	res := lattice.New().Price(p)

	var a, b bytes.Buffer
	require.NoError(t, MarshalResultCSV(&a, p, res))
	require.NoError(t, MarshalResultCSV(&b, p, res))
	assert.Equal(t, a.String(), b.String())
}
