package config

import (
	"fmt"
	"os"

	"github.com/lifesim/scenario-engine/internal/calculation"
	"github.com/lifesim/scenario-engine/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

/// Config is the full input configuration: the financial profile, the
// default projection horizon, and the recommendation policy bands.
type Config struct {
	Profile       domain.UserFinancialProfile `yaml:"profile" json:"profile"`
	HorizonMonths int                         `yaml:"horizon_months" json:"horizon_months"`
	// Recommendation is nil when the file omits the section, so an explicit
	// all-zero override is distinguishable from an absent one.
	Recommendation *calculation.RecommendationPolicy `yaml:"recommendation,omitempty" json:"recommendation,omitempty"`
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&cfg)
	if err := ip.ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills in the horizon and policy bands when the file omits
// them.
func (ip *InputParser) applyDefaults(cfg *Config) {
	if cfg.HorizonMonths == 0 {
		cfg.HorizonMonths = 60
	}
	if cfg.Recommendation == nil {
		policy := calculation.DefaultRecommendationPolicy()
		cfg.Recommendation = &policy
	}
}

// ValidateConfig validates the loaded configuration.
func (ip *InputParser) ValidateConfig(cfg *Config) error {
	if err := cfg.Profile.Validate(); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if cfg.HorizonMonths <= 0 || cfg.HorizonMonths > 600 {
		return fmt.Errorf("horizon months must be between 1 and 600")
	}
	if cfg.Profile.TargetRetirementAge != 0 && cfg.Profile.TargetRetirementAge <= cfg.Profile.CurrentAge {
		return fmt.Errorf("target retirement age must be after current age")
	}
	if cfg.Recommendation != nil {
		if cfg.Recommendation.StrongPositive.LessThan(cfg.Recommendation.Positive) {
			return fmt.Errorf("strong positive band cannot be below the positive band")
		}
		if cfg.Recommendation.MildNegative.IsPositive() {
			return fmt.Errorf("mild negative band must be zero or negative")
		}
	}
	return nil
}

// CreateExampleConfig creates an example configuration with a plausible
// mid-career profile.
func (ip *InputParser) CreateExampleConfig() *Config {
	policy := calculation.DefaultRecommendationPolicy()
	return &Config{
		Profile: domain.UserFinancialProfile{
			MonthlyIncome:        decimal.NewFromInt(6000),
			MonthlyExpenses:      decimal.NewFromInt(4000),
			CurrentSavings:       decimal.NewFromInt(20000),
			CurrentInvestments:   decimal.NewFromInt(50000),
			CurrentDebt:          decimal.NewFromInt(10000),
			DebtInterestRate:     decimal.NewFromFloat(0.07),
			InvestmentReturnRate: decimal.NewFromFloat(0.07),
			SavingsRate:          decimal.NewFromFloat(0.15),
			CurrentAge:           35,
			TargetRetirementAge:  65,
		},
		HorizonMonths:  60,
		Recommendation: &policy,
	}
}

// WriteExampleConfig writes the example configuration as YAML.
func (ip *InputParser) WriteExampleConfig(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
