package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"option-lattice/internal/analysis"
	"option-lattice/internal/api/models"
	"option-lattice/internal/model"
)

const (
	defaultConvergenceSteps = 100
	maxConvergenceSteps     = 1000
	defaultTolerance        = 0.05
)

// ConvergenceHandler serves lattice-vs-closed-form convergence reports
type ConvergenceHandler struct{}

// NewConvergenceHandler creates a new convergence handler
func NewConvergenceHandler() *ConvergenceHandler {
	return &ConvergenceHandler{}
}

// GetConvergence handles GET /api/v1/convergence
func (h *ConvergenceHandler) GetConvergence(c *gin.Context) {
	var req models.ConvergenceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	kind, err := model.ParseOptionKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	params := model.MarketParams{
		Spot:           req.Spot,
		Strike:         req.Strike,
		Rate:           req.Rate,
		Volatility:     req.Volatility,
		TimeToMaturity: req.TimeToMaturity,
		Steps:          1,
		Kind:           kind,
		Style:          model.European,
	}
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	maxSteps := req.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultConvergenceSteps
	}
	if maxSteps > maxConvergenceSteps {
		maxSteps = maxConvergenceSteps
	}
	tolerance := req.Tolerance
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}

	report := analysis.Convergence(params, maxSteps, tolerance)

	points := make([]models.ConvergencePoint, len(report.Points))
	for i, pt := range report.Points {
		points[i] = models.ConvergencePoint{
			Steps:        pt.Steps,
			LatticePrice: pt.LatticePrice,
			AbsError:     pt.AbsError,
		}
	}
	c.JSON(http.StatusOK, models.ConvergenceResponse{
		BlackScholes: report.BlackScholes,
		MeanAbsError: report.MeanAbsError,
		MaxAbsError:  report.MaxAbsError,
		FinalError:   report.FinalError,
		ConvergedAt:  report.ConvergedAt,
		Tolerance:    report.Tolerance,
		Points:       points,
	})
}
