package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"option-lattice/internal/model"
)

func TestConvergence(t *testing.T) {
	p := model.MarketParams{
		Spot:           100,
		Strike:         100,
		Rate:           0.05,
		Volatility:     0.2,
		TimeToMaturity: 1,
		Kind:           model.Call,
		Style:          model.American, // forced to European internally
	}

	report := Convergence(p, 200, 0.05)

	require.Len(t, report.Points, 200)
	assert.InDelta(t, 10.4506, report.BlackScholes, 1e-3)

	assert.Equal(t, 1, report.Points[0].Steps)
	assert.Equal(t, 200, report.Points[199].Steps)
	assert.Equal(t, report.Points[199].AbsError, report.FinalError)

	assert.Greater(t, report.MaxAbsError, report.MeanAbsError)
	assert.Less(t, report.FinalError, report.Points[0].AbsError)

	// A 5-cent band is comfortably reached within 200 steps for these inputs.
	assert.Greater(t, report.ConvergedAt, 0)
	assert.LessOrEqual(t, report.ConvergedAt, 200)
	for _, pt := range report.Points[report.ConvergedAt-1:] {
		assert.LessOrEqual(t, pt.AbsError, report.Tolerance)
	}
}

func TestConvergenceNoSteps(t *testing.T) {
	p := model.MarketParams{
		Spot:           100,
		Strike:         100,
		Rate:           0.05,
		Volatility:     0.2,
		TimeToMaturity: 1,
		Kind:           model.Call,
		Style:          model.European,
	}
	report := Convergence(p, 0, 0.05)
	assert.Empty(t, report.Points)
	assert.Equal(t, 0, report.ConvergedAt)
}
