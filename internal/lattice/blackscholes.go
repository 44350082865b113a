package lattice

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"option-lattice/internal/model"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// BlackScholes is the closed-form European price for the same market inputs.
// It ignores Steps, Style and any custom factors; the lattice price converges
// to this value as the step count grows, which makes it the natural reference
// for display alongside the lattice result and for convergence checks.
func BlackScholes(p model.MarketParams) float64 {
	s, k, r, sigma, t := p.Spot, p.Strike, p.Rate, p.Volatility, p.TimeToMaturity

	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	d2 := d1 - sigma*math.Sqrt(t)

	if p.Kind == model.Put {
		return k*math.Exp(-r*t)*stdNormal.CDF(-d2) - s*stdNormal.CDF(-d1)
	}
	return s*stdNormal.CDF(d1) - k*math.Exp(-r*t)*stdNormal.CDF(d2)
}
