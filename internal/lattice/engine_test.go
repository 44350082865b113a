package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"option-lattice/internal/model"
)

func TestPriceEuropeanCallTwoSteps(t *testing.T) {
	// S=100 K=100 r=0.05 sigma=0.2 T=1 N=2. With up*down=1 the middle
	// terminal node sits exactly at the spot, so only the top node pays off.
	p := baseParams()
	res := New().Price(p)

	crr := res.CRR
	assert.InDelta(t, 0.0, res.Option[2][0], 1e-12)
	assert.InDelta(t, 0.0, res.Option[2][1], 1e-12)
	assert.InDelta(t, 100*crr.Up*crr.Up-100, res.Option[2][2], 1e-9)

	// Independent check via the two-step binomial expansion.
	q := crr.Probability
	expected := crr.Discount * crr.Discount * q * q * (100*crr.Up*crr.Up - 100)
	assert.InDelta(t, expected, res.RootPrice, 1e-9)
	assert.InDelta(t, 9.5404, res.RootPrice, 1e-3)

	// European pricing never sets exercise flags.
	for _, level := range res.Exercised {
		for _, f := range level {
			assert.False(t, f)
		}
	}
	assert.Empty(t, res.EarlyExercises)
}

func TestPriceAmericanAtLeastEuropean(t *testing.T) {
	cases := []struct {
		name string
		kind model.OptionKind
		k    float64
	}{
		{"atm call", model.Call, 100},
		{"itm put", model.Put, 110},
		{"otm put", model.Put, 85},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := baseParams()
			p.Kind = tc.kind
			p.Strike = tc.k
			p.Steps = 25

			euro := New().Price(p)
			p.Style = model.American
			amer := New().Price(p)

			assert.GreaterOrEqual(t, amer.RootPrice, euro.RootPrice)
		})
	}
}

func TestPriceAmericanPutExercisesEarly(t *testing.T) {
	p := model.MarketParams{
		Spot:           100,
		Strike:         110,
		Rate:           0.05,
		Volatility:     0.3,
		TimeToMaturity: 1,
		Steps:          3,
		Kind:           model.Put,
		Style:          model.American,
	}
	res := New().Price(p)

	require.NotEmpty(t, res.EarlyExercises)

	n := p.Steps
	for _, f := range res.Exercised[n] {
		assert.False(t, f, "terminal nodes are never flagged")
	}

	// Records are ordered by (step, state), flagged nodes carry the
	// exercise value, and none sit on the terminal level.
	prevStep, prevState := -1, -1
	for _, ex := range res.EarlyExercises {
		assert.Less(t, ex.Step, n)
		if ex.Step == prevStep {
			assert.Greater(t, ex.State, prevState)
		} else {
			assert.Greater(t, ex.Step, prevStep)
		}
		assert.True(t, res.Exercised[ex.Step][ex.State])
		assert.Equal(t, res.Stock[ex.Step][ex.State], ex.StockPrice)
		assert.InDelta(t, p.Kind.Payoff(ex.StockPrice, p.Strike), ex.OptionValue, 1e-12)
		prevStep, prevState = ex.Step, ex.State
	}
}

func TestPriceIdempotent(t *testing.T) {
	p := model.MarketParams{
		Spot:           100,
		Strike:         110,
		Rate:           0.05,
		Volatility:     0.3,
		TimeToMaturity: 1,
		Steps:          12,
		Kind:           model.Put,
		Style:          model.American,
	}
	a := New().Price(p)
	b := New().Price(p)
	assert.Equal(t, a, b)
}

func TestPriceLatticeShape(t *testing.T) {
	p := baseParams()
	p.Steps = 9
	res := New().Price(p)

	assert.Equal(t, 9, res.Stock.Steps())
	assert.Equal(t, 9, res.Option.Steps())
	total := 0
	for i := range res.Option {
		require.Len(t, res.Option[i], i+1)
		require.Len(t, res.Stock[i], i+1)
		require.Len(t, res.Exercised[i], i+1)
		total += i + 1
	}
	assert.Equal(t, NodeCount(9), total)
}

func TestPriceDegenerateStepCounts(t *testing.T) {
	p := baseParams()

	p.Steps = 1
	res := New().Price(p)
	assert.False(t, res.Delta == 0 && res.RootPrice == 0, "one step still prices")
	assert.Equal(t, 0.0, res.Gamma, "gamma needs two levels")
	assert.False(t, res.Delta != res.Delta, "delta must not be NaN")

	// N=0 is out of contract for pricing but must not panic, and the
	// greeks fall back to zero.
	p.Steps = 0
	res = New().Price(p)
	assert.Equal(t, 0.0, res.Delta)
	assert.Equal(t, 0.0, res.Gamma)
	assert.Equal(t, p.Kind.Payoff(p.Spot, p.Strike), res.RootPrice)
}

func TestPriceGreeksSigns(t *testing.T) {
	p := baseParams()
	p.Steps = 50

	call := New().Price(p)
	assert.Greater(t, call.Delta, 0.0)
	assert.Less(t, call.Delta, 1.0)
	assert.Greater(t, call.Gamma, 0.0)

	p.Kind = model.Put
	put := New().Price(p)
	assert.Less(t, put.Delta, 0.0)
	assert.Greater(t, put.Delta, -1.0)
	assert.Greater(t, put.Gamma, 0.0)
}
