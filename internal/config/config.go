package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"option-lattice/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load scenario parameters from a separate YAML preset
	// (e.g. examples/scenarios/*.yaml). Inline Scenario fields override
	// the preset.
	ScenarioFile string         `yaml:"scenario_file"`
	Scenario     ScenarioConfig `yaml:"scenario"`
	Output       OutputConfig   `yaml:"output"`
}

type ScenarioConfig struct {
	Name           string   `yaml:"name"`
	Spot           float64  `yaml:"spot"`
	Strike         float64  `yaml:"strike"`
	Rate           float64  `yaml:"rate"`
	Volatility     float64  `yaml:"volatility"`
	TimeToMaturity float64  `yaml:"time_to_maturity"`
	Steps          int      `yaml:"steps"`
	Kind           string   `yaml:"kind"`
	Style          string   `yaml:"style"`
	CustomUp       *float64 `yaml:"custom_up"`
	CustomDown     *float64 `yaml:"custom_down"`
}

type OutputConfig struct {
	CSVPath string `yaml:"csv_path"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If scenario_file is set, load it and merge in any explicit overrides
	// from c.Scenario.
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	params, err := c.Scenario.ToMarketParams()
	if err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	return nil
}

// ToMarketParams converts the YAML shape into the engine's input type.
func (s ScenarioConfig) ToMarketParams() (model.MarketParams, error) {
	kind, err := model.ParseOptionKind(s.Kind)
	if err != nil {
		return model.MarketParams{}, err
	}
	style, err := model.ParseExerciseStyle(s.Style)
	if err != nil {
		return model.MarketParams{}, err
	}
	return model.MarketParams{
		Spot:           s.Spot,
		Strike:         s.Strike,
		Rate:           s.Rate,
		Volatility:     s.Volatility,
		TimeToMaturity: s.TimeToMaturity,
		Steps:          s.Steps,
		Kind:           kind,
		Style:          style,
		CustomUp:       s.CustomUp,
		CustomDown:     s.CustomDown,
	}, nil
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

// LoadScenarioFile reads a preset file of the shape used under
// examples/scenarios/.
func LoadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base.
// This is used when loading a scenario preset and then applying overrides
// from the config file or an API request.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Spot != 0 {
		out.Spot = override.Spot
	}
	if override.Strike != 0 {
		out.Strike = override.Strike
	}
	// Rate 0 cannot be distinguished from "not set" under the zero-value
	// merge convention; presets carry the rate instead.
	if override.Rate != 0 {
		out.Rate = override.Rate
	}
	if override.Volatility != 0 {
		out.Volatility = override.Volatility
	}
	if override.TimeToMaturity != 0 {
		out.TimeToMaturity = override.TimeToMaturity
	}
	if override.Steps != 0 {
		out.Steps = override.Steps
	}
	if override.Kind != "" {
		out.Kind = override.Kind
	}
	if override.Style != "" {
		out.Style = override.Style
	}
	if override.CustomUp != nil {
		out.CustomUp = override.CustomUp
	}
	if override.CustomDown != nil {
		out.CustomDown = override.CustomDown
	}
	return out
}
