package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
)

// balanceScan is one pass over the balance records inside [start, end].
// Records are assumed sorted by date, so first and last are the window's
// endpoints.
type balanceScan struct {
	present   int
	negatives int
	sum       decimal.Decimal
	min       decimal.Decimal
	max       decimal.Decimal
	first     decimal.Decimal
	last      decimal.Decimal
}

func scanBalances(balances []model.DailyBalance, start, end time.Time) balanceScan {
	s := balanceScan{sum: decimal.Zero}
	for _, b := range balances {
		if !inWindow(b.Date, start, end) {
			continue
		}
		if s.present == 0 {
			s.min, s.max, s.first = b.Balance, b.Balance, b.Balance
		}
		s.present++
		s.last = b.Balance
		s.sum = s.sum.Add(b.Balance)
		if b.Balance.IsNegative() {
			s.negatives++
		}
		if b.Balance.LessThan(s.min) {
			s.min = b.Balance
		}
		if b.Balance.GreaterThan(s.max) {
			s.max = b.Balance
		}
	}
	return s
}

// NegativeDayCount counts records with a strictly negative end-of-day balance
// inside the trailing window. A window with no balance records at all returns
// InsufficientDataError: zero negative days and no evidence are different
// answers.
func NegativeDayCount(balances []model.DailyBalance, days int, asOf time.Time) (int, error) {
	if err := validateDays(days); err != nil {
		return 0, err
	}
	start, end := windowBounds(days, asOf)
	s := scanBalances(balances, start, end)
	if s.present == 0 {
		return 0, InsufficientDataError{Metric: "negative_day_count", Reason: "no balance records in window"}
	}
	return s.negatives, nil
}

// AverageDailyBalance returns the mean of the end-of-day balances recorded in
// the window. The divisor is the record count, not the window length; days
// with no record are never treated as zero-balance days.
func AverageDailyBalance(balances []model.DailyBalance, days int, asOf time.Time) (decimal.Decimal, error) {
	if err := validateDays(days); err != nil {
		return decimal.Zero, err
	}
	start, end := windowBounds(days, asOf)
	s := scanBalances(balances, start, end)
	if s.present == 0 {
		return decimal.Zero, InsufficientDataError{Metric: "average_daily_balance", Reason: "no balance records in window"}
	}
	return s.sum.Div(decimal.NewFromInt(int64(s.present))), nil
}

// BalanceStats computes the full balance-health block in a single pass:
// average, extremes, negative days, days under the operating floor, and the
// first-to-last trend of the window.
func BalanceStats(balances []model.DailyBalance, days int, asOf time.Time, floor, tolerance decimal.Decimal) (model.BalanceMetrics, error) {
	if err := validateDays(days); err != nil {
		return model.BalanceMetrics{}, err
	}
	start, end := windowBounds(days, asOf)
	s := scanBalances(balances, start, end)
	if s.present == 0 {
		return model.BalanceMetrics{}, InsufficientDataError{Metric: "balance_stats", Reason: "no balance records in window"}
	}

	belowFloor := 0
	for _, b := range balances {
		if inWindow(b.Date, start, end) && b.Balance.LessThan(floor) {
			belowFloor++
		}
	}

	m := model.BalanceMetrics{
		AverageDailyBalance: s.sum.Div(decimal.NewFromInt(int64(s.present))),
		MinBalance:          s.min,
		MaxBalance:          s.max,
		NegativeDays:        s.negatives,
		BelowFloorDays:      belowFloor,
		Trend:               classifyChange(s.last, s.first, tolerance),
	}
	if !s.first.IsZero() {
		pct := s.last.Sub(s.first).Div(s.first).Mul(decimal.NewFromInt(100))
		m.ChangePct, _ = pct.Float64()
	}
	return m, nil
}
