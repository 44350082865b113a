package lattice

import (
	"math"

	"option-lattice/internal/model"
)

// CRRParams are the derived Cox-Ross-Rubinstein lattice parameters.
type CRRParams struct {
	Dt          float64 // step length in years, T/N
	Up          float64 // multiplicative up factor per step
	Down        float64 // multiplicative down factor per step
	Probability float64 // risk-neutral up-probability
	Discount    float64 // per-step discount factor, exp(-r*dt)
}

// DeriveCRR computes lattice parameters from market inputs. With derived
// factors, up = exp(sigma*sqrt(dt)) and down = 1/up, so up*down = 1 and the
// lattice recombines around the spot. Custom factors bypass that derivation
// and carry no such guarantee.
//
// Deliberately total: no range checks. Degenerate inputs (sigma=0 and r=0,
// or custom up==down) produce NaN/Inf probability, which propagates into the
// result for the caller to detect.
func DeriveCRR(p model.MarketParams) CRRParams {
	dt := p.TimeToMaturity / float64(p.Steps)

	var up, down float64
	if p.CustomUp != nil && p.CustomDown != nil {
		up = *p.CustomUp
		down = *p.CustomDown
	} else {
		up = math.Exp(p.Volatility * math.Sqrt(dt))
		down = 1 / up
	}

	return CRRParams{
		Dt:          dt,
		Up:          up,
		Down:        down,
		Probability: (math.Exp(p.Rate*dt) - down) / (up - down),
		Discount:    math.Exp(-p.Rate * dt),
	}
}
