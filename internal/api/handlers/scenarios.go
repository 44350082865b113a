package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"option-lattice/internal/api/models"
	"option-lattice/internal/config"
)

// ScenarioHandler handles scenario preset requests
type ScenarioHandler struct {
	scenarioDir string
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler() *ScenarioHandler {
	return &ScenarioHandler{scenarioDir: resolveScenarioDir()}
}

// resolveScenarioDir locates the preset directory: SCENARIO_DIR env var,
// falling back to examples/scenarios under the working directory.
func resolveScenarioDir() string {
	dir := os.Getenv("SCENARIO_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "scenarios")
		} else {
			dir = "./examples/scenarios"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	entries, err := os.ReadDir(h.scenarioDir)
	if err != nil {
		log.Warnf("scenario directory %s unreadable: %v", h.scenarioDir, err)
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.scenarioDir, entry.Name())
		sc, err := config.LoadScenarioFile(path)
		if err != nil {
			log.Warnf("skipping scenario file %s: %v", path, err)
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".yaml")
		name := sc.Name
		if name == "" {
			name = id
		}
		scenarios = append(scenarios, models.ScenarioInfo{
			ID:   id,
			Name: name,
			File: path,
			Scenario: models.ScenarioParams{
				Name:           sc.Name,
				Spot:           sc.Spot,
				Strike:         sc.Strike,
				Rate:           sc.Rate,
				Volatility:     sc.Volatility,
				TimeToMaturity: sc.TimeToMaturity,
				Steps:          sc.Steps,
				Kind:           sc.Kind,
				Style:          sc.Style,
				CustomUp:       sc.CustomUp,
				CustomDown:     sc.CustomDown,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
