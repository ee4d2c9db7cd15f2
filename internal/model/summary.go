package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trend labels the direction of a metric compared against its baseline.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendStable     Trend = "stable"
	TrendDeclining  Trend = "declining"
)

// MonthlyTotal is one calendar month's deposit aggregate.
type MonthlyTotal struct {
	Month string          `json:"month"` // "YYYY-MM"
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// CategorySummary aggregates windowed deposits for one transaction type.
type CategorySummary struct {
	Type     TransactionType `json:"type"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
	SharePct float64         `json:"share_pct"` // share of all deposits, 0-100
}

// LargeDepositStats describes outlier deposits above mean + 2 std devs.
type LargeDepositStats struct {
	Threshold decimal.Decimal `json:"threshold"`
	Count     int             `json:"count"`
	Total     decimal.Decimal `json:"total"`
	SharePct  float64         `json:"share_pct"` // share of total deposits, 0-100
	Largest   decimal.Decimal `json:"largest"`
}

// BalanceMetrics tracks balance health over a trailing window.
type BalanceMetrics struct {
	AverageDailyBalance decimal.Decimal `json:"average_daily_balance"`
	MinBalance          decimal.Decimal `json:"min_balance"`
	MaxBalance          decimal.Decimal `json:"max_balance"`
	NegativeDays        int             `json:"negative_days"`
	BelowFloorDays      int             `json:"below_floor_days"`
	Trend               Trend           `json:"trend"`
	ChangePct           float64         `json:"change_pct"` // first-to-last record, percent
}

// CashFlowSummary is the immutable result of one analysis. It is fully
// populated on success and owned by the caller; the engine keeps no
// reference to it or to the inputs it was computed from.
type CashFlowSummary struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	// Trailing TRUE_REVENUE averages, normalized per calendar day of the
	// window rather than per matching transaction.
	RevenueDailyAvg30  decimal.Decimal `json:"revenue_daily_avg_30"`
	RevenueDailyAvg90  decimal.Decimal `json:"revenue_daily_avg_90"`
	RevenueDailyAvg180 decimal.Decimal `json:"revenue_daily_avg_180"`

	TrueRevenue90d     decimal.Decimal `json:"true_revenue_90d"`
	MonthlyTrueRevenue decimal.Decimal `json:"monthly_true_revenue"`
	AnnualizedRevenue  decimal.Decimal `json:"annualized_revenue"`

	TotalDeposits90d    decimal.Decimal `json:"total_deposits_90d"`
	TotalWithdrawals90d decimal.Decimal `json:"total_withdrawals_90d"`
	MCAPaymentTotal90d  decimal.Decimal `json:"mca_payment_total_90d"`

	Trend                Trend          `json:"trend"`
	VolatilityCV         float64        `json:"volatility_cv"` // ratio, not percent
	AvgMonthOverMonthPct float64        `json:"avg_mom_change_pct"`
	Months               []MonthlyTotal `json:"months"`

	NSFCount int            `json:"nsf_count"` // negative days in the NSF window
	Balance  BalanceMetrics `json:"balance"`

	Categories    []CategorySummary `json:"categories"`
	LargeDeposits LargeDepositStats `json:"large_deposits"`

	RedFlags []string `json:"red_flags"`
	Warnings []string `json:"warnings"`
}

// NetCashFlow90d is deposits minus withdrawals over the 90-day window.
func (s CashFlowSummary) NetCashFlow90d() decimal.Decimal {
	return s.TotalDeposits90d.Sub(s.TotalWithdrawals90d)
}

// CoverageRatio is the cash flow coverage ratio:
// (deposits - withdrawals - MCA payments) / deposits.
// Zero when there were no deposits.
func (s CashFlowSummary) CoverageRatio() decimal.Decimal {
	if !s.TotalDeposits90d.IsPositive() {
		return decimal.Zero
	}
	available := s.TotalDeposits90d.Sub(s.TotalWithdrawals90d).Sub(s.MCAPaymentTotal90d)
	return available.Div(s.TotalDeposits90d)
}

// HasRedFlags reports whether any red flag fired.
func (s CashFlowSummary) HasRedFlags() bool {
	return len(s.RedFlags) > 0
}

// IsHealthy reports whether the balance picture is clean: no negative days
// in the balance window and a positive average daily balance.
func (s CashFlowSummary) IsHealthy() bool {
	return s.Balance.NegativeDays == 0 && s.Balance.AverageDailyBalance.IsPositive()
}
