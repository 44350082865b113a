package models

// ScenarioParams is the JSON shape of one pricing scenario. Zero-valued
// fields are treated as "not set" when merged onto a preset.
type ScenarioParams struct {
	Name           string   `json:"name,omitempty"`
	Spot           float64  `json:"spot"`
	Strike         float64  `json:"strike"`
	Rate           float64  `json:"rate"`
	Volatility     float64  `json:"volatility"`
	TimeToMaturity float64  `json:"time_to_maturity"`
	Steps          int      `json:"steps"`
	Kind           string   `json:"kind"`  // "CALL" | "PUT"
	Style          string   `json:"style"` // "EUROPEAN" | "AMERICAN"
	CustomUp       *float64 `json:"custom_up,omitempty"`
	CustomDown     *float64 `json:"custom_down,omitempty"`
}

// PriceRequest represents the request body for a pricing run
type PriceRequest struct {
	ScenarioFile string         `json:"scenario_file,omitempty"`
	Scenario     ScenarioParams `json:"scenario"`
	Options      PriceOptions   `json:"options,omitempty"`
}

// PriceOptions contains optional pricing parameters
type PriceOptions struct {
	// IncludeLattice adds the full node payload to the response so the
	// canvas renderer can draw the tree. Default: summary only.
	IncludeLattice bool `json:"include_lattice,omitempty"`
	// MaxSteps raises the interactive step-count clamp (default 20,
	// hard-capped server side).
	MaxSteps int `json:"max_steps,omitempty"`
}

// CompareRequest represents a request to price multiple scenario variations
type CompareRequest struct {
	BaseScenario ScenarioParams   `json:"base_scenario" binding:"required"`
	Variations   []PriceVariation `json:"variations" binding:"required"`
	Options      PriceOptions     `json:"options,omitempty"`
}

// PriceVariation defines a variation to price
type PriceVariation struct {
	Name     string         `json:"name" binding:"required"`
	Scenario ScenarioParams `json:"scenario"`
}

// ConvergenceRequest represents query parameters for a convergence report
type ConvergenceRequest struct {
	Spot           float64 `form:"spot" binding:"required"`
	Strike         float64 `form:"strike" binding:"required"`
	Rate           float64 `form:"rate"`
	Volatility     float64 `form:"volatility" binding:"required"`
	TimeToMaturity float64 `form:"time_to_maturity" binding:"required"`
	Kind           string  `form:"kind" binding:"required"`
	MaxSteps       int     `form:"max_steps,omitempty"` // default: 100
	Tolerance      float64 `form:"tolerance,omitempty"` // default: 0.05
}
