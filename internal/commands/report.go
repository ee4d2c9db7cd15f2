package commands

import (
	"fmt"
	"io"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/period"
)

const reportDateFormat = "2006-01-02"

// renderText writes the human-readable analysis report.
func renderText(w io.Writer, s model.CashFlowSummary) {
	fmt.Fprintf(w, "Cash flow analysis as of %s\n", s.PeriodEnd.Format(reportDateFormat))
	fmt.Fprintf(w, "Period: %s to %s\n", s.PeriodStart.Format(reportDateFormat), s.PeriodEnd.Format(reportDateFormat))

	fmt.Fprintf(w, "\nRevenue\n")
	fmt.Fprintf(w, "  Daily avg 30d:     %s\n", s.RevenueDailyAvg30.StringFixed(2))
	fmt.Fprintf(w, "  Daily avg 90d:     %s\n", s.RevenueDailyAvg90.StringFixed(2))
	fmt.Fprintf(w, "  Daily avg 180d:    %s\n", s.RevenueDailyAvg180.StringFixed(2))
	fmt.Fprintf(w, "  True revenue 90d:  %s\n", s.TrueRevenue90d.StringFixed(2))
	fmt.Fprintf(w, "  Monthly run rate:  %s\n", s.MonthlyTrueRevenue.StringFixed(2))
	fmt.Fprintf(w, "  Annualized:        %s\n", s.AnnualizedRevenue.StringFixed(2))

	fmt.Fprintf(w, "\nCash flow 90d\n")
	fmt.Fprintf(w, "  Deposits:          %s\n", s.TotalDeposits90d.StringFixed(2))
	fmt.Fprintf(w, "  Withdrawals:       %s\n", s.TotalWithdrawals90d.StringFixed(2))
	fmt.Fprintf(w, "  Net:               %s\n", s.NetCashFlow90d().StringFixed(2))
	fmt.Fprintf(w, "  MCA payments:      %s\n", s.MCAPaymentTotal90d.StringFixed(2))
	fmt.Fprintf(w, "  Coverage ratio:    %s\n", s.CoverageRatio().StringFixed(2))

	fmt.Fprintf(w, "\nTrend\n")
	fmt.Fprintf(w, "  Deposit trend:     %s\n", s.Trend)
	fmt.Fprintf(w, "  Volatility (CV):   %.2f\n", s.VolatilityCV)
	fmt.Fprintf(w, "  Avg MoM change:    %.1f%%\n", s.AvgMonthOverMonthPct)
	fmt.Fprintf(w, "  Monthly deposits:\n")
	renderMonths(w, s.Months)

	fmt.Fprintf(w, "\nBalance\n")
	fmt.Fprintf(w, "  Average daily:     %s\n", s.Balance.AverageDailyBalance.StringFixed(2))
	fmt.Fprintf(w, "  Min / max:         %s / %s\n", s.Balance.MinBalance.StringFixed(2), s.Balance.MaxBalance.StringFixed(2))
	fmt.Fprintf(w, "  Negative days:     %d\n", s.Balance.NegativeDays)
	fmt.Fprintf(w, "  Below floor days:  %d\n", s.Balance.BelowFloorDays)
	fmt.Fprintf(w, "  Balance trend:     %s (%.1f%%)\n", s.Balance.Trend, s.Balance.ChangePct)
	fmt.Fprintf(w, "  NSF incidents:     %d\n", s.NSFCount)

	fmt.Fprintf(w, "\nDeposit mix 90d\n")
	for _, c := range s.Categories {
		fmt.Fprintf(w, "  %-14s %12s  %5.1f%%  (%d)\n", c.Type, c.Total.StringFixed(2), c.SharePct, c.Count)
	}

	if s.LargeDeposits.Count > 0 {
		fmt.Fprintf(w, "\nLarge deposits (above %s)\n", s.LargeDeposits.Threshold.StringFixed(2))
		fmt.Fprintf(w, "  Count:             %d\n", s.LargeDeposits.Count)
		fmt.Fprintf(w, "  Total:             %s (%.1f%% of inflows)\n", s.LargeDeposits.Total.StringFixed(2), s.LargeDeposits.SharePct)
		fmt.Fprintf(w, "  Largest:           %s\n", s.LargeDeposits.Largest.StringFixed(2))
	}

	fmt.Fprintf(w, "\nRed flags: %d\n", len(s.RedFlags))
	for _, f := range s.RedFlags {
		fmt.Fprintf(w, "  ! %s\n", f)
	}
	fmt.Fprintf(w, "Warnings: %d\n", len(s.Warnings))
	for _, f := range s.Warnings {
		fmt.Fprintf(w, "  - %s\n", f)
	}
}

// renderMonths prints the monthly series and marks calendar months the
// series skips.
func renderMonths(w io.Writer, months []model.MonthlyTotal) {
	for i, m := range months {
		if i > 0 {
			expected, err := period.Next(months[i-1].Month)
			for err == nil && expected < m.Month {
				fmt.Fprintf(w, "    %s  %12s\n", expected, "no deposits")
				expected, err = period.Next(expected)
			}
		}
		fmt.Fprintf(w, "    %s  %12s  (%d deposits)\n", m.Month, m.Total.StringFixed(2), m.Count)
	}
}
