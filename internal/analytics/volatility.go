package analytics

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// CoefficientOfVariation returns the population standard deviation of the
// series divided by its mean. The moments accumulate in exact decimals; only
// the final scale-free ratio is a float. Fewer than two points or a zero
// mean return InsufficientDataError, never a fake zero or infinity.
func CoefficientOfVariation(totals []decimal.Decimal) (float64, error) {
	if len(totals) < 2 {
		return 0, InsufficientDataError{
			Metric: "coefficient_of_variation",
			Reason: fmt.Sprintf("need at least 2 periods, got %d", len(totals)),
		}
	}
	n := decimal.NewFromInt(int64(len(totals)))
	sum := decimal.Zero
	for _, v := range totals {
		sum = sum.Add(v)
	}
	mean := sum.Div(n)
	if mean.IsZero() {
		return 0, InsufficientDataError{
			Metric: "coefficient_of_variation",
			Reason: "mean of periodic totals is zero",
		}
	}
	ss := decimal.Zero
	for _, v := range totals {
		d := v.Sub(mean)
		ss = ss.Add(d.Mul(d))
	}
	variance, _ := ss.Div(n).Float64()
	meanF, _ := mean.Float64()
	return math.Sqrt(variance) / meanF, nil
}
