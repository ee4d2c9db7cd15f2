package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
)

// dateOnly truncates t to its calendar date at UTC midnight. All window math
// runs on calendar days; time-of-day and zone on input records are ignored.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// windowBounds returns the inclusive [start, end] of a trailing window ending
// at asOf's calendar date.
func windowBounds(days int, asOf time.Time) (start, end time.Time) {
	end = dateOnly(asOf)
	start = end.AddDate(0, 0, -days)
	return start, end
}

func inWindow(t, start, end time.Time) bool {
	d := dateOnly(t)
	return !d.Before(start) && !d.After(end)
}

func validateDays(days int) error {
	if days <= 0 {
		return InvalidConfigurationError{Field: "days", Reason: "window length must be positive"}
	}
	return nil
}

// TrailingSum returns the exact sum of transactions of the given type dated
// within the trailing window of the given length ending at asOf, both ends
// inclusive. An empty window sums to zero.
func TrailingSum(txns []model.Transaction, typ model.TransactionType, days int, asOf time.Time) (decimal.Decimal, error) {
	if err := validateDays(days); err != nil {
		return decimal.Zero, err
	}
	start, end := windowBounds(days, asOf)
	sum := decimal.Zero
	for _, txn := range txns {
		if txn.Type != typ || !inWindow(txn.Date, start, end) {
			continue
		}
		sum = sum.Add(txn.Amount)
	}
	return sum, nil
}

// TrailingAverage returns TrailingSum normalized per calendar day of the
// window. The divisor is the window length, not the match count. No matches
// average to zero.
func TrailingAverage(txns []model.Transaction, typ model.TransactionType, days int, asOf time.Time) (decimal.Decimal, error) {
	sum, err := TrailingSum(txns, typ, days, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	return sum.Div(decimal.NewFromInt(int64(days))), nil
}

// TrailingTotals returns gross inflows and gross outflows across all
// transaction types within the window. Withdrawals are reported as a positive
// magnitude. Zero-amount records count toward neither side.
func TrailingTotals(txns []model.Transaction, days int, asOf time.Time) (deposits, withdrawals decimal.Decimal, err error) {
	if err := validateDays(days); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	start, end := windowBounds(days, asOf)
	deposits, withdrawals = decimal.Zero, decimal.Zero
	for _, txn := range txns {
		if !inWindow(txn.Date, start, end) {
			continue
		}
		switch {
		case txn.Amount.IsPositive():
			deposits = deposits.Add(txn.Amount)
		case txn.Amount.IsNegative():
			withdrawals = withdrawals.Add(txn.Amount.Neg())
		}
	}
	return deposits, withdrawals, nil
}
