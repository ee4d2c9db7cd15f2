package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
)

// Analyze computes every cash-flow metric from the supplied transactions and
// daily balances as of a reference date and returns a fully populated
// summary. Inputs are never mutated and nothing is read from the clock or
// the environment past the one asOf default, so equal inputs produce
// field-for-field equal summaries.
//
// A zero asOf means today. Errors propagate: when a required metric lacks
// data the whole analysis fails rather than returning a partial summary with
// fabricated zeroes.
func Analyze(txns []model.Transaction, balances []model.DailyBalance, asOf time.Time, cfg Config) (model.CashFlowSummary, error) {
	if err := cfg.Validate(); err != nil {
		return model.CashFlowSummary{}, err
	}
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	asOf = dateOnly(asOf)

	avg30, err := TrailingAverage(txns, model.TypeTrueRevenue, cfg.ShortWindowDays, asOf)
	if err != nil {
		return model.CashFlowSummary{}, err
	}
	avg90, err := TrailingAverage(txns, model.TypeTrueRevenue, cfg.MediumWindowDays, asOf)
	if err != nil {
		return model.CashFlowSummary{}, err
	}
	avg180, err := TrailingAverage(txns, model.TypeTrueRevenue, cfg.LongWindowDays, asOf)
	if err != nil {
		return model.CashFlowSummary{}, err
	}
	rev90, err := TrailingSum(txns, model.TypeTrueRevenue, cfg.MediumWindowDays, asOf)
	if err != nil {
		return model.CashFlowSummary{}, err
	}
	deposits, withdrawals, err := TrailingTotals(txns, cfg.MediumWindowDays, asOf)
	if err != nil {
		return model.CashFlowSummary{}, err
	}
	mca, err := TrailingSum(txns, model.TypeMCAPayment, cfg.MediumWindowDays, asOf)
	if err != nil {
		return model.CashFlowSummary{}, err
	}

	months, err := MonthlyDepositTotals(txns, cfg.VolatilityLookbackMonths, asOf)
	if err != nil {
		return model.CashFlowSummary{}, err
	}
	series := make([]decimal.Decimal, len(months))
	for i, m := range months {
		series[i] = m.Total
	}
	cv, err := CoefficientOfVariation(series)
	if err != nil {
		return model.CashFlowSummary{}, err
	}

	bal, err := BalanceStats(balances, cfg.BalanceWindowDays, asOf, cfg.Flags.BalanceFloor, cfg.TrendTolerance)
	if err != nil {
		return model.CashFlowSummary{}, err
	}
	nsf, err := CountNSFEvents(balances, cfg.NSFWindowDays, asOf)
	if err != nil {
		return model.CashFlowSummary{}, err
	}

	cats, err := CategoryBreakdown(txns, cfg.MediumWindowDays, asOf)
	if err != nil {
		return model.CashFlowSummary{}, err
	}
	large, err := LargeDeposits(txns, cfg.MediumWindowDays, asOf)
	if err != nil {
		return model.CashFlowSummary{}, err
	}

	summary := model.CashFlowSummary{
		PeriodStart:          asOf.AddDate(0, 0, -cfg.LongWindowDays),
		PeriodEnd:            asOf,
		RevenueDailyAvg30:    avg30,
		RevenueDailyAvg90:    avg90,
		RevenueDailyAvg180:   avg180,
		TrueRevenue90d:       rev90,
		MonthlyTrueRevenue:   avg90.Mul(decimal.NewFromInt(30)),
		AnnualizedRevenue:    avg180.Mul(decimal.NewFromInt(365)),
		TotalDeposits90d:     deposits,
		TotalWithdrawals90d:  withdrawals,
		MCAPaymentTotal90d:   mca.Abs(),
		Trend:                ClassifyTrend(avg30, avg90, avg180, cfg.TrendTolerance),
		VolatilityCV:         cv,
		AvgMonthOverMonthPct: AverageMonthOverMonthChange(months),
		Months:               months,
		NSFCount:             nsf,
		Balance:              bal,
		Categories:           cats,
		LargeDeposits:        large,
	}
	summary.RedFlags, summary.Warnings = GenerateFlags(summary, cfg.Flags)
	return summary, nil
}
