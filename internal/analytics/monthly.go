package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/period"
)

// MonthlyDepositTotals buckets inflows by calendar month over the last
// `months` complete months before asOf's own month; the partial current
// month is never counted. Months with no inflows are omitted rather than
// zero-filled. The result is in chronological order.
func MonthlyDepositTotals(txns []model.Transaction, months int, asOf time.Time) ([]model.MonthlyTotal, error) {
	if months <= 0 {
		return nil, InvalidConfigurationError{Field: "months", Reason: "lookback must be positive"}
	}
	end := dateOnly(asOf)
	firstOfMonth := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := firstOfMonth.AddDate(0, -months, 0)
	to := firstOfMonth.AddDate(0, 0, -1)

	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, txn := range txns {
		if !txn.Amount.IsPositive() || !inWindow(txn.Date, from, to) {
			continue
		}
		key := period.Of(txn.Date)
		sums[key] = sums[key].Add(txn.Amount)
		counts[key]++
	}

	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	totals := make([]model.MonthlyTotal, 0, len(keys))
	for _, key := range keys {
		totals = append(totals, model.MonthlyTotal{
			Month: key,
			Total: sums[key],
			Count: counts[key],
		})
	}
	return totals, nil
}

// AverageMonthOverMonthChange returns the mean percent change between
// consecutive monthly totals. Pairs whose earlier month is not positive are
// skipped; with no usable pairs the average is zero.
func AverageMonthOverMonthChange(totals []model.MonthlyTotal) float64 {
	hundred := decimal.NewFromInt(100)
	var sum float64
	var pairs int
	for i := 1; i < len(totals); i++ {
		prev := totals[i-1].Total
		if !prev.IsPositive() {
			continue
		}
		change := totals[i].Total.Sub(prev).Div(prev).Mul(hundred)
		f, _ := change.Float64()
		sum += f
		pairs++
	}
	if pairs == 0 {
		return 0
	}
	return sum / float64(pairs)
}
