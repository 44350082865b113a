package model

import (
	"errors"
	"math"
)

// MarketParams defines one pricing request. Units:
// - Spot/Strike: currency
// - Rate: continuously-compounded annual risk-free rate
// - Volatility: annualized, fraction (0.2 = 20%)
// - TimeToMaturity: years
// - Steps: lattice step count N (the tree has N+1 levels)
//
// CustomUp/CustomDown, when both set, replace the CRR-derived per-step
// factors. They must be set together.
type MarketParams struct {
	Spot           float64
	Strike         float64
	Rate           float64
	Volatility     float64
	TimeToMaturity float64
	Steps          int

	Kind  OptionKind
	Style ExerciseStyle

	CustomUp   *float64
	CustomDown *float64
}

// Validate is for callers (API, CLI, config loading). The pricing engine
// itself accepts anything and propagates NaN/Inf; see internal/lattice.
func (p MarketParams) Validate() error {
	if !(p.Spot > 0) {
		return errors.New("spot must be > 0")
	}
	if !(p.Strike > 0) {
		return errors.New("strike must be > 0")
	}
	if math.IsNaN(p.Rate) || math.IsInf(p.Rate, 0) {
		return errors.New("rate must be finite")
	}
	if !(p.Volatility >= 0) {
		return errors.New("volatility must be >= 0")
	}
	if !(p.TimeToMaturity > 0) {
		return errors.New("time_to_maturity must be > 0")
	}
	if p.Steps < 1 {
		return errors.New("steps must be >= 1")
	}
	if p.Kind != Call && p.Kind != Put {
		return errors.New("kind must be CALL or PUT")
	}
	if p.Style != European && p.Style != American {
		return errors.New("style must be EUROPEAN or AMERICAN")
	}
	if (p.CustomUp == nil) != (p.CustomDown == nil) {
		return errors.New("custom_up and custom_down must be set together")
	}
	return nil
}

// ClampSteps bounds the step count to [1, max]. Interactive surfaces use
// this before pricing so a fat-fingered N cannot blow up the response size.
func (p MarketParams) ClampSteps(max int) MarketParams {
	out := p
	if out.Steps < 1 {
		out.Steps = 1
	}
	if max > 0 && out.Steps > max {
		out.Steps = max
	}
	return out
}
