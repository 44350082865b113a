package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"option-lattice/internal/api/models"
	"option-lattice/internal/config"
	"option-lattice/internal/export"
	"option-lattice/internal/lattice"
	"option-lattice/internal/model"
)

const (
	// defaultMaxSteps bounds interactive requests; the front end redraws on
	// every input change and a runaway N would bloat each response.
	defaultMaxSteps = 20
	// hardMaxSteps is the server-side ceiling regardless of request options.
	hardMaxSteps = 1000
)

// PriceHandler handles pricing requests
type PriceHandler struct {
	engine      *lattice.Engine
	scenarioDir string
}

// NewPriceHandler creates a new price handler
func NewPriceHandler() *PriceHandler {
	return &PriceHandler{
		engine:      lattice.New(),
		scenarioDir: resolveScenarioDir(),
	}
}

// RunPrice handles POST /api/v1/price
func (h *PriceHandler) RunPrice(c *gin.Context) {
	var req models.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params, err := h.buildParams(req.ScenarioFile, req.Scenario, req.Options)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	result := h.engine.Price(params)

	response := models.PriceResponse{
		Status:  "completed",
		Summary: buildSummary(params, result),
	}
	if req.Options.IncludeLattice {
		response.Lattice = buildLatticePayload(result)
	}
	c.JSON(http.StatusOK, response)
}

// ComparePrices handles POST /api/v1/price/compare
func (h *PriceHandler) ComparePrices(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := config.MergeScenario(toScenarioConfig(req.BaseScenario), toScenarioConfig(variation.Scenario))
		params, err := merged.ToMarketParams()
		if err != nil {
			log.Warnf("compare: skipping variation %q: %v", variation.Name, err)
			continue
		}
		if err := params.Validate(); err != nil {
			log.Warnf("compare: skipping variation %q: %v", variation.Name, err)
			continue
		}
		params = params.ClampSteps(stepCap(req.Options))

		result := h.engine.Price(params)
		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: buildSummary(params, result),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// ExportCSV handles POST /api/v1/price/csv and streams the result as a
// downloadable CSV (summary block + node table).
func (h *PriceHandler) ExportCSV(c *gin.Context) {
	var req models.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params, err := h.buildParams(req.ScenarioFile, req.Scenario, req.Options)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	result := h.engine.Price(params)

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="lattice.csv"`)
	if err := export.MarshalResultCSV(c.Writer, params, result); err != nil {
		log.Errorf("csv export failed: %v", err)
	}
}

// buildParams resolves an optional scenario preset, merges the inline
// scenario on top, validates, and clamps the step count. Validation lives
// here because the pricing core accepts anything (spec of the engine: total
// numeric function).
func (h *PriceHandler) buildParams(scenarioFile string, scenario models.ScenarioParams, opts models.PriceOptions) (model.MarketParams, error) {
	sc := toScenarioConfig(scenario)

	if scenarioFile != "" {
		path := filepath.Join(h.scenarioDir, scenarioFile+".yaml")
		loaded, err := config.LoadScenarioFile(path)
		if err != nil {
			return model.MarketParams{}, fmt.Errorf("load scenario %q: %w", scenarioFile, err)
		}
		sc = config.MergeScenario(loaded, sc)
	}

	params, err := sc.ToMarketParams()
	if err != nil {
		return model.MarketParams{}, err
	}
	if err := params.Validate(); err != nil {
		return model.MarketParams{}, err
	}
	return params.ClampSteps(stepCap(opts)), nil
}

func stepCap(opts models.PriceOptions) int {
	limit := defaultMaxSteps
	if opts.MaxSteps > 0 {
		limit = opts.MaxSteps
	}
	if limit > hardMaxSteps {
		limit = hardMaxSteps
	}
	return limit
}

func toScenarioConfig(s models.ScenarioParams) config.ScenarioConfig {
	return config.ScenarioConfig{
		Name:           s.Name,
		Spot:           s.Spot,
		Strike:         s.Strike,
		Rate:           s.Rate,
		Volatility:     s.Volatility,
		TimeToMaturity: s.TimeToMaturity,
		Steps:          s.Steps,
		Kind:           s.Kind,
		Style:          s.Style,
		CustomUp:       s.CustomUp,
		CustomDown:     s.CustomDown,
	}
}

func buildSummary(params model.MarketParams, result *lattice.Result) models.PriceSummary {
	return models.PriceSummary{
		RootPrice:          result.RootPrice,
		Delta:              result.Delta,
		Gamma:              result.Gamma,
		BlackScholes:       lattice.BlackScholes(params),
		EarlyExerciseCount: len(result.EarlyExercises),
		Steps:              params.Steps,
		NodeCount:          lattice.NodeCount(params.Steps),
		CRR: models.CRRInfo{
			Dt:          result.CRR.Dt,
			Up:          result.CRR.Up,
			Down:        result.CRR.Down,
			Probability: result.CRR.Probability,
			Discount:    result.CRR.Discount,
		},
	}
}

func buildLatticePayload(result *lattice.Result) *models.LatticePayload {
	rows := export.NodeRows(result)
	nodes := make([]models.LatticeNode, len(rows))
	for i, r := range rows {
		nodes[i] = models.LatticeNode{
			Step:           r.Step,
			State:          r.State,
			StockPrice:     r.StockPrice,
			OptionValue:    r.OptionValue,
			ExercisedEarly: r.ExercisedEarly,
		}
	}
	exercises := make([]models.EarlyExercise, len(result.EarlyExercises))
	for i, ex := range result.EarlyExercises {
		exercises[i] = models.EarlyExercise{
			Step:        ex.Step,
			State:       ex.State,
			StockPrice:  ex.StockPrice,
			OptionValue: ex.OptionValue,
		}
	}
	return &models.LatticePayload{
		Steps:          result.Stock.Steps(),
		Nodes:          nodes,
		EarlyExercises: exercises,
	}
}
