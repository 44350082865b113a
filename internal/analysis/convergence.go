package analysis

import (
	"math"

	"github.com/montanaflynn/stats"

	"option-lattice/internal/lattice"
	"option-lattice/internal/model"
)

// ConvergencePoint is the lattice price at one step count against the
// Black-Scholes closed form.
type ConvergencePoint struct {
	Steps        int
	LatticePrice float64
	AbsError     float64
}

// ConvergenceReport summarizes how the European lattice price approaches the
// closed-form value as the step count grows.
type ConvergenceReport struct {
	BlackScholes float64
	Points       []ConvergencePoint

	MeanAbsError float64
	MaxAbsError  float64
	FinalError   float64

	// ConvergedAt is the smallest step count whose error stays within
	// tolerance, or 0 if none qualifies.
	ConvergedAt int
	Tolerance   float64
}

// Convergence prices the European contract at every step count 1..maxSteps.
// Exercise style is forced to European; the closed form does not cover early
// exercise.
func Convergence(p model.MarketParams, maxSteps int, tolerance float64) ConvergenceReport {
	p.Style = model.European
	bs := lattice.BlackScholes(p)
	engine := lattice.New()

	report := ConvergenceReport{
		BlackScholes: bs,
		Points:       make([]ConvergencePoint, 0, maxSteps),
		Tolerance:    tolerance,
	}

	errs := make([]float64, 0, maxSteps)
	for n := 1; n <= maxSteps; n++ {
		q := p
		q.Steps = n
		price := engine.Price(q).RootPrice
		e := math.Abs(price - bs)
		report.Points = append(report.Points, ConvergencePoint{
			Steps:        n,
			LatticePrice: price,
			AbsError:     e,
		})
		errs = append(errs, e)
	}
	if len(errs) == 0 {
		return report
	}

	report.FinalError = errs[len(errs)-1]
	// The stats calls only fail on empty input, which is excluded above.
	report.MeanAbsError, _ = stats.Mean(errs)
	report.MaxAbsError, _ = stats.Max(errs)

	// First N from which the error never leaves the tolerance band again.
	for n := len(errs); n >= 1; n-- {
		if errs[n-1] > tolerance {
			break
		}
		report.ConvergedAt = n
	}
	return report
}
