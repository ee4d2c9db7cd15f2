package analytics

import "github.com/shopspring/decimal"

// Default window lengths, in calendar days unless noted.
const (
	DefaultShortWindowDays          = 30
	DefaultMediumWindowDays         = 90
	DefaultLongWindowDays           = 180
	DefaultBalanceWindowDays        = 30
	DefaultNSFWindowDays            = 90
	DefaultVolatilityLookbackMonths = 6
)

// Default flag thresholds with no exact-decimal requirement.
const (
	DefaultMaxNSFEvents         = 5
	DefaultHighVolatilityCV     = 0.30
	DefaultLargeDepositSharePct = 30.0
	DefaultBalanceDropPct       = 20.0
)

// Default decimal thresholds.
var (
	DefaultTrendTolerance    = decimal.RequireFromString("0.10")
	DefaultMinAverageBalance = decimal.RequireFromString("1000.00")
	DefaultBalanceFloor      = decimal.RequireFromString("100.00")
)

// FlagThresholds parameterizes the red-flag rules. Tuning a threshold
// changes only data, never control flow.
type FlagThresholds struct {
	// MaxNSFEvents is the NSF count above which activity is a red flag
	// rather than a warning.
	MaxNSFEvents int

	// HighVolatilityCV is the coefficient-of-variation ratio above which
	// deposit volatility is flagged.
	HighVolatilityCV float64

	// MinAverageBalance is the average daily balance below which the
	// account is flagged.
	MinAverageBalance decimal.Decimal

	// BalanceFloor marks days the balance dipped below an operating
	// minimum without going negative.
	BalanceFloor decimal.Decimal

	// LargeDepositSharePct is the percentage of total deposits carried by
	// statistical outliers above which concentration is flagged.
	LargeDepositSharePct float64

	// BalanceDropPct is the absolute percentage decline between the first
	// and last balance of the window above which the drop is flagged.
	BalanceDropPct float64
}

// Config carries every window length and threshold an analysis uses.
type Config struct {
	ShortWindowDays          int
	MediumWindowDays         int
	LongWindowDays           int
	BalanceWindowDays        int
	NSFWindowDays            int
	VolatilityLookbackMonths int

	// TrendTolerance is the relative band around the baseline within which
	// the short-window average still classifies as stable.
	TrendTolerance decimal.Decimal

	Flags FlagThresholds
}

// DefaultConfig returns the standard underwriting configuration.
func DefaultConfig() Config {
	return Config{
		ShortWindowDays:          DefaultShortWindowDays,
		MediumWindowDays:         DefaultMediumWindowDays,
		LongWindowDays:           DefaultLongWindowDays,
		BalanceWindowDays:        DefaultBalanceWindowDays,
		NSFWindowDays:            DefaultNSFWindowDays,
		VolatilityLookbackMonths: DefaultVolatilityLookbackMonths,
		TrendTolerance:           DefaultTrendTolerance,
		Flags: FlagThresholds{
			MaxNSFEvents:         DefaultMaxNSFEvents,
			HighVolatilityCV:     DefaultHighVolatilityCV,
			MinAverageBalance:    DefaultMinAverageBalance,
			BalanceFloor:         DefaultBalanceFloor,
			LargeDepositSharePct: DefaultLargeDepositSharePct,
			BalanceDropPct:       DefaultBalanceDropPct,
		},
	}
}

// Validate reports the first malformed field. Analyze calls this before any
// metric runs.
func (c Config) Validate() error {
	windows := []struct {
		field string
		days  int
	}{
		{"short_window_days", c.ShortWindowDays},
		{"medium_window_days", c.MediumWindowDays},
		{"long_window_days", c.LongWindowDays},
		{"balance_window_days", c.BalanceWindowDays},
		{"nsf_window_days", c.NSFWindowDays},
	}
	for _, w := range windows {
		if w.days <= 0 {
			return InvalidConfigurationError{Field: w.field, Reason: "window length must be positive"}
		}
	}
	if c.VolatilityLookbackMonths < 2 {
		return InvalidConfigurationError{Field: "volatility_lookback_months", Reason: "dispersion needs at least 2 months"}
	}
	if c.TrendTolerance.IsNegative() {
		return InvalidConfigurationError{Field: "trend_tolerance", Reason: "must not be negative"}
	}
	if c.Flags.MaxNSFEvents < 0 {
		return InvalidConfigurationError{Field: "max_nsf_events", Reason: "must not be negative"}
	}
	if c.Flags.HighVolatilityCV <= 0 {
		return InvalidConfigurationError{Field: "high_volatility_cv", Reason: "must be positive"}
	}
	if c.Flags.MinAverageBalance.IsNegative() {
		return InvalidConfigurationError{Field: "min_average_balance", Reason: "must not be negative"}
	}
	if c.Flags.LargeDepositSharePct <= 0 {
		return InvalidConfigurationError{Field: "large_deposit_share_pct", Reason: "must be positive"}
	}
	if c.Flags.BalanceDropPct <= 0 {
		return InvalidConfigurationError{Field: "balance_drop_pct", Reason: "must be positive"}
	}
	return nil
}
