package analytics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
)

// LargeDeposits reports statistical outliers among the window's inflows:
// deposits strictly above mean + 2 population standard deviations, together
// with the share of total inflow they carry. With no inflows in the window
// the stats are all zero; that is a real answer, not missing data.
func LargeDeposits(txns []model.Transaction, days int, asOf time.Time) (model.LargeDepositStats, error) {
	if err := validateDays(days); err != nil {
		return model.LargeDepositStats{}, err
	}
	start, end := windowBounds(days, asOf)

	var amounts []decimal.Decimal
	total := decimal.Zero
	for _, txn := range txns {
		if !txn.Amount.IsPositive() || !inWindow(txn.Date, start, end) {
			continue
		}
		amounts = append(amounts, txn.Amount)
		total = total.Add(txn.Amount)
	}
	if len(amounts) == 0 {
		return model.LargeDepositStats{}, nil
	}

	n := decimal.NewFromInt(int64(len(amounts)))
	mean := total.Div(n)
	ss := decimal.Zero
	for _, a := range amounts {
		d := a.Sub(mean)
		ss = ss.Add(d.Mul(d))
	}
	variance, _ := ss.Div(n).Float64()
	// The cut comes back into decimal; per-deposit comparisons stay exact.
	threshold := mean.Add(decimal.NewFromFloat(2 * math.Sqrt(variance)))

	stats := model.LargeDepositStats{Threshold: threshold}
	largeTotal := decimal.Zero
	for _, a := range amounts {
		if !a.GreaterThan(threshold) {
			continue
		}
		stats.Count++
		largeTotal = largeTotal.Add(a)
		if a.GreaterThan(stats.Largest) {
			stats.Largest = a
		}
	}
	stats.Total = largeTotal
	if stats.Count > 0 {
		share, _ := largeTotal.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		stats.SharePct = share
	}
	return stats, nil
}

// CategoryBreakdown sums the window's inflows per transaction type, in the
// type enum's declared order. Every type gets a row, zero or not, so callers
// can rely on position and presence.
func CategoryBreakdown(txns []model.Transaction, days int, asOf time.Time) ([]model.CategorySummary, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}
	start, end := windowBounds(days, asOf)

	totals := make(map[model.TransactionType]decimal.Decimal)
	counts := make(map[model.TransactionType]int)
	grand := decimal.Zero
	for _, txn := range txns {
		if !txn.Amount.IsPositive() || !inWindow(txn.Date, start, end) {
			continue
		}
		totals[txn.Type] = totals[txn.Type].Add(txn.Amount)
		counts[txn.Type]++
		grand = grand.Add(txn.Amount)
	}

	out := make([]model.CategorySummary, 0, len(model.TransactionTypes))
	for _, typ := range model.TransactionTypes {
		cs := model.CategorySummary{
			Type:  typ,
			Total: totals[typ],
			Count: counts[typ],
		}
		if grand.IsPositive() {
			share, _ := totals[typ].Div(grand).Mul(decimal.NewFromInt(100)).Float64()
			cs.SharePct = share
		}
		out = append(out, cs)
	}
	return out, nil
}
