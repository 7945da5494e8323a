package config

import (
	"fmt"
	"os"

	"github.com/paisacalc/paisa/internal/domain"
	"gopkg.in/yaml.v3"
)

// SchemeConfig carries the published scheme rates and statutory figures the
// presentation layers seed calculators with. Values track government
// notifications, so deployments override them from a YAML file instead of
// waiting for a rebuild.
type SchemeConfig struct {
	PPFRatePct float64 `yaml:"ppf_rate_pct"`
	NSCRatePct float64 `yaml:"nsc_rate_pct"`
	SSYRatePct float64 `yaml:"ssy_rate_pct"`
	EPFRatePct float64 `yaml:"epf_rate_pct"`

	GratuityCap float64 `yaml:"gratuity_cap"`

	// Opt-in empirical SSY rate correction; see domain.SSYCalibrationOffsetPct.
	SSYCalibration bool `yaml:"ssy_calibration"`

	// Optional per-field limit overrides keyed by field name.
	Limits map[string]domain.FieldLimit `yaml:"limits,omitempty"`
}

// Default returns the built-in published rates and statutory figures.
func Default() *SchemeConfig {
	return &SchemeConfig{
		PPFRatePct:  domain.PPFDefaultRatePct,
		NSCRatePct:  domain.NSCDefaultRatePct,
		SSYRatePct:  domain.SSYDefaultRatePct,
		EPFRatePct:  domain.EPFDefaultRatePct,
		GratuityCap: domain.GratuityCeiling,
	}
}

// InputParser handles parsing of scheme configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scheme configuration from a YAML file, layered over
// the built-in defaults.
func (ip *InputParser) LoadFromFile(filename string) (*SchemeConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks a scheme configuration for values no notification could
// plausibly publish.
func (ip *InputParser) Validate(cfg *SchemeConfig) error {
	rates := map[string]float64{
		"ppf_rate_pct": cfg.PPFRatePct,
		"nsc_rate_pct": cfg.NSCRatePct,
		"ssy_rate_pct": cfg.SSYRatePct,
		"epf_rate_pct": cfg.EPFRatePct,
	}
	for name, rate := range rates {
		if rate <= 0 || rate > 20 {
			return fmt.Errorf("%s must be between 0 and 20, got %v", name, rate)
		}
	}

	if cfg.GratuityCap <= 0 {
		return fmt.Errorf("gratuity_cap must be positive, got %v", cfg.GratuityCap)
	}

	for field, lim := range cfg.Limits {
		if lim.Min < 0 {
			return fmt.Errorf("limit %s: min cannot be negative", field)
		}
		if lim.Max != 0 && lim.Max < lim.Min {
			return fmt.Errorf("limit %s: max %v is below min %v", field, lim.Max, lim.Min)
		}
		if lim.Default != 0 && (lim.Default < lim.Min || (lim.Max != 0 && lim.Default > lim.Max)) {
			return fmt.Errorf("limit %s: default %v is outside [%v, %v]", field, lim.Default, lim.Min, lim.Max)
		}
	}

	return nil
}
