package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validParams() MarketParams {
	return MarketParams{
		Spot:           100,
		Strike:         100,
		Rate:           0.05,
		Volatility:     0.2,
		TimeToMaturity: 1,
		Steps:          10,
		Kind:           Call,
		Style:          European,
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validParams().Validate())

	mutate := func(f func(*MarketParams)) MarketParams {
		p := validParams()
		f(&p)
		return p
	}

	cases := []struct {
		name string
		p    MarketParams
		msg  string
	}{
		{"zero spot", mutate(func(p *MarketParams) { p.Spot = 0 }), "spot"},
		{"nan spot", mutate(func(p *MarketParams) { p.Spot = math.NaN() }), "spot"},
		{"negative strike", mutate(func(p *MarketParams) { p.Strike = -5 }), "strike"},
		{"inf rate", mutate(func(p *MarketParams) { p.Rate = math.Inf(1) }), "rate"},
		{"negative vol", mutate(func(p *MarketParams) { p.Volatility = -0.1 }), "volatility"},
		{"zero maturity", mutate(func(p *MarketParams) { p.TimeToMaturity = 0 }), "time_to_maturity"},
		{"zero steps", mutate(func(p *MarketParams) { p.Steps = 0 }), "steps"},
		{"bad kind", mutate(func(p *MarketParams) { p.Kind = "STRADDLE" }), "kind"},
		{"bad style", mutate(func(p *MarketParams) { p.Style = "BERMUDAN" }), "style"},
		{"half custom pair", mutate(func(p *MarketParams) { v := 1.2; p.CustomUp = &v }), "custom_up"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			assert.ErrorContains(t, err, tc.msg)
		})
	}
}

func TestClampSteps(t *testing.T) {
	p := validParams()

	p.Steps = 500
	assert.Equal(t, 20, p.ClampSteps(20).Steps)

	p.Steps = 5
	assert.Equal(t, 5, p.ClampSteps(20).Steps)

	p.Steps = -3
	assert.Equal(t, 1, p.ClampSteps(20).Steps)

	// max <= 0 means no upper bound.
	p.Steps = 500
	assert.Equal(t, 500, p.ClampSteps(0).Steps)
}
