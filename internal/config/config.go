package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/analytics"
)

// Config represents the top-level cashflow.yaml configuration.
type Config struct {
	Business   BusinessConfig   `yaml:"business"`
	Data       DataConfig       `yaml:"data"`
	Windows    WindowsConfig    `yaml:"windows"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
}

// BusinessConfig identifies the business under review.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// DataConfig locates the statement CSVs, relative to the project root.
type DataConfig struct {
	Transactions string `yaml:"transactions"`
	Balances     string `yaml:"balances"`
}

// WindowsConfig sets the trailing window lengths in days.
type WindowsConfig struct {
	ShortDays   int `yaml:"short_days"`
	MediumDays  int `yaml:"medium_days"`
	LongDays    int `yaml:"long_days"`
	BalanceDays int `yaml:"balance_days"`
	NSFDays     int `yaml:"nsf_days"`
}

// AnalysisConfig tunes trend and volatility behavior.
type AnalysisConfig struct {
	VolatilityLookbackMonths int     `yaml:"volatility_lookback_months"`
	TrendTolerance           float64 `yaml:"trend_tolerance"`
}

// ThresholdsConfig controls when red flags and warnings fire.
type ThresholdsConfig struct {
	MaxNSFEvents         int     `yaml:"max_nsf_events"`
	HighVolatilityCV     float64 `yaml:"high_volatility_cv"`
	MinAverageBalance    float64 `yaml:"min_average_balance"`
	BalanceFloor         float64 `yaml:"balance_floor"`
	LargeDepositSharePct float64 `yaml:"large_deposit_share_pct"`
	BalanceDropPct       float64 `yaml:"balance_drop_pct"`
}

// Load reads a cashflow.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config mirroring the engine's standard settings.
func Default(businessName string) *Config {
	a := analytics.DefaultConfig()
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Data: DataConfig{
			Transactions: "data/transactions.csv",
			Balances:     "data/balances.csv",
		},
		Windows: WindowsConfig{
			ShortDays:   a.ShortWindowDays,
			MediumDays:  a.MediumWindowDays,
			LongDays:    a.LongWindowDays,
			BalanceDays: a.BalanceWindowDays,
			NSFDays:     a.NSFWindowDays,
		},
		Analysis: AnalysisConfig{
			VolatilityLookbackMonths: a.VolatilityLookbackMonths,
			TrendTolerance:           a.TrendTolerance.InexactFloat64(),
		},
		Thresholds: ThresholdsConfig{
			MaxNSFEvents:         a.Flags.MaxNSFEvents,
			HighVolatilityCV:     a.Flags.HighVolatilityCV,
			MinAverageBalance:    a.Flags.MinAverageBalance.InexactFloat64(),
			BalanceFloor:         a.Flags.BalanceFloor.InexactFloat64(),
			LargeDepositSharePct: a.Flags.LargeDepositSharePct,
			BalanceDropPct:       a.Flags.BalanceDropPct,
		},
	}
}

// Analytics converts the file representation into the engine's configuration.
// Money thresholds cross from YAML floats into decimals here; the engine
// never sees a float threshold.
func (c *Config) Analytics() analytics.Config {
	return analytics.Config{
		ShortWindowDays:          c.Windows.ShortDays,
		MediumWindowDays:         c.Windows.MediumDays,
		LongWindowDays:           c.Windows.LongDays,
		BalanceWindowDays:        c.Windows.BalanceDays,
		NSFWindowDays:            c.Windows.NSFDays,
		VolatilityLookbackMonths: c.Analysis.VolatilityLookbackMonths,
		TrendTolerance:           decimal.NewFromFloat(c.Analysis.TrendTolerance),
		Flags: analytics.FlagThresholds{
			MaxNSFEvents:         c.Thresholds.MaxNSFEvents,
			HighVolatilityCV:     c.Thresholds.HighVolatilityCV,
			MinAverageBalance:    decimal.NewFromFloat(c.Thresholds.MinAverageBalance),
			BalanceFloor:         decimal.NewFromFloat(c.Thresholds.BalanceFloor),
			LargeDepositSharePct: c.Thresholds.LargeDepositSharePct,
			BalanceDropPct:       c.Thresholds.BalanceDropPct,
		},
	}
}
