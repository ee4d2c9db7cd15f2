package analytics

import (
	"time"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
)

// CountNSFEvents counts days whose end-of-day balance is strictly negative
// within the trailing window, approximating NSF/overdraft incidents from
// balance data alone. The scan is shared with the balance tracker; the
// metric is separate and reads its own, typically longer, window. A window
// with no records returns InsufficientDataError.
func CountNSFEvents(balances []model.DailyBalance, days int, asOf time.Time) (int, error) {
	if err := validateDays(days); err != nil {
		return 0, err
	}
	start, end := windowBounds(days, asOf)
	s := scanBalances(balances, start, end)
	if s.present == 0 {
		return 0, InsufficientDataError{Metric: "nsf_count", Reason: "no balance records in window"}
	}
	return s.negatives, nil
}
