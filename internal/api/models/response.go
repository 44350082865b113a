package models

// PriceResponse represents the response from a pricing run
type PriceResponse struct {
	Status  string          `json:"status"`
	Summary PriceSummary    `json:"summary"`
	Lattice *LatticePayload `json:"lattice,omitempty"`
}

// PriceSummary contains the aggregated pricing result
type PriceSummary struct {
	RootPrice          float64 `json:"root_price"`
	Delta              float64 `json:"delta"`
	Gamma              float64 `json:"gamma"`
	BlackScholes       float64 `json:"black_scholes"`
	EarlyExerciseCount int     `json:"early_exercise_count"`
	Steps              int     `json:"steps"`
	NodeCount          int     `json:"node_count"`
	CRR                CRRInfo `json:"crr"`
}

// CRRInfo echoes the derived lattice parameters
type CRRInfo struct {
	Dt          float64 `json:"dt"`
	Up          float64 `json:"up"`
	Down        float64 `json:"down"`
	Probability float64 `json:"probability"`
	Discount    float64 `json:"discount"`
}

// LatticePayload carries the full tree for the canvas renderer
type LatticePayload struct {
	Steps          int             `json:"steps"`
	Nodes          []LatticeNode   `json:"nodes"`
	EarlyExercises []EarlyExercise `json:"early_exercises"`
}

// LatticeNode is one node of the tree, ordered by (step, state)
type LatticeNode struct {
	Step           int     `json:"step"`
	State          int     `json:"state"`
	StockPrice     float64 `json:"stock_price"`
	OptionValue    float64 `json:"option_value"`
	ExercisedEarly bool    `json:"exercised_early"`
}

// EarlyExercise is one interior node where exercise beat holding
type EarlyExercise struct {
	Step        int     `json:"step"`
	State       int     `json:"state"`
	StockPrice  float64 `json:"stock_price"`
	OptionValue float64 `json:"option_value"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name    string       `json:"name"`
	Summary PriceSummary `json:"summary"`
}

// ConvergenceResponse represents a convergence report
type ConvergenceResponse struct {
	BlackScholes float64            `json:"black_scholes"`
	MeanAbsError float64            `json:"mean_abs_error"`
	MaxAbsError  float64            `json:"max_abs_error"`
	FinalError   float64            `json:"final_error"`
	ConvergedAt  int                `json:"converged_at"`
	Tolerance    float64            `json:"tolerance"`
	Points       []ConvergencePoint `json:"points"`
}

// ConvergencePoint is one lattice price vs the closed form
type ConvergencePoint struct {
	Steps        int     `json:"steps"`
	LatticePrice float64 `json:"lattice_price"`
	AbsError     float64 `json:"abs_error"`
}

// ScenarioInfo represents information about a scenario preset
type ScenarioInfo struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	File     string         `json:"file"`
	Scenario ScenarioParams `json:"scenario"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
