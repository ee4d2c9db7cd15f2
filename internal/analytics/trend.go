package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
)

// ClassifyTrend labels the direction of the short-window daily average
// against a baseline formed from the mean of the medium- and long-window
// averages.
func ClassifyTrend(avg30, avg90, avg180, tolerance decimal.Decimal) model.Trend {
	baseline := avg90.Add(avg180).Div(decimal.NewFromInt(2))
	return classifyChange(avg30, baseline, tolerance)
}

// classifyChange compares current against baseline with a relative band:
// within baseline +/- |baseline|*tolerance is stable. The band is exact
// decimal multiplication; a current exactly at the baseline is always
// stable. A zero baseline classifies as stable.
func classifyChange(current, baseline, tolerance decimal.Decimal) model.Trend {
	if baseline.IsZero() {
		return model.TrendStable
	}
	band := baseline.Abs().Mul(tolerance)
	switch {
	case current.GreaterThan(baseline.Add(band)):
		return model.TrendIncreasing
	case current.LessThan(baseline.Sub(band)):
		return model.TrendDeclining
	default:
		return model.TrendStable
	}
}
