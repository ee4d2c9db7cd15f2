package analytics

import (
	"fmt"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
)

// flagRule inspects a computed summary and either fires with a label or
// stays silent. Red rules land in RedFlags, the rest in Warnings.
type flagRule struct {
	red  bool
	eval func(s model.CashFlowSummary, t FlagThresholds) (bool, string)
}

// flagRules is the fixed rule list, evaluated in order on every analysis.
// Rules fire independently: the same underlying condition may produce both a
// red flag and a milder warning, and suppressing one never suppresses
// another.
var flagRules = []flagRule{
	{
		red: true,
		eval: func(s model.CashFlowSummary, t FlagThresholds) (bool, string) {
			if s.NSFCount > t.MaxNSFEvents {
				return true, fmt.Sprintf("High NSF activity: %d items", s.NSFCount)
			}
			return false, ""
		},
	},
	{
		eval: func(s model.CashFlowSummary, t FlagThresholds) (bool, string) {
			if s.NSFCount > 0 && s.NSFCount <= t.MaxNSFEvents {
				return true, fmt.Sprintf("NSF activity present: %d items", s.NSFCount)
			}
			return false, ""
		},
	},
	{
		red: true,
		eval: func(s model.CashFlowSummary, t FlagThresholds) (bool, string) {
			if s.Trend == model.TrendDeclining && s.VolatilityCV > t.HighVolatilityCV {
				return true, fmt.Sprintf("Declining revenue with high volatility (CV %.2f)", s.VolatilityCV)
			}
			return false, ""
		},
	},
	{
		eval: func(s model.CashFlowSummary, t FlagThresholds) (bool, string) {
			if s.Trend == model.TrendDeclining {
				return true, "Declining deposit trend"
			}
			return false, ""
		},
	},
	{
		eval: func(s model.CashFlowSummary, t FlagThresholds) (bool, string) {
			if s.VolatilityCV > t.HighVolatilityCV {
				return true, fmt.Sprintf("High deposit volatility (CV %.2f)", s.VolatilityCV)
			}
			return false, ""
		},
	},
	{
		red: true,
		eval: func(s model.CashFlowSummary, t FlagThresholds) (bool, string) {
			if s.Balance.AverageDailyBalance.LessThan(t.MinAverageBalance) {
				return true, fmt.Sprintf("Average daily balance %s below minimum %s",
					s.Balance.AverageDailyBalance.StringFixed(2), t.MinAverageBalance.StringFixed(2))
			}
			return false, ""
		},
	},
	{
		eval: func(s model.CashFlowSummary, t FlagThresholds) (bool, string) {
			if s.Balance.NegativeDays > 0 {
				return true, fmt.Sprintf("Negative balance days: %d", s.Balance.NegativeDays)
			}
			return false, ""
		},
	},
	{
		eval: func(s model.CashFlowSummary, t FlagThresholds) (bool, string) {
			if s.LargeDeposits.SharePct > t.LargeDepositSharePct {
				return true, fmt.Sprintf("Large deposits carry %.1f%% of inflows", s.LargeDeposits.SharePct)
			}
			return false, ""
		},
	},
	{
		eval: func(s model.CashFlowSummary, t FlagThresholds) (bool, string) {
			if s.Balance.ChangePct < -t.BalanceDropPct {
				return true, fmt.Sprintf("Balance dropped %.1f%% over the window", -s.Balance.ChangePct)
			}
			return false, ""
		},
	},
}

// GenerateFlags evaluates every rule against the computed metrics and returns
// red flags and warnings in rule order. Thresholds come in as data; no rule
// carries its own constant.
func GenerateFlags(s model.CashFlowSummary, t FlagThresholds) (redFlags, warnings []string) {
	for _, rule := range flagRules {
		fired, label := rule.eval(s, t)
		if !fired {
			continue
		}
		if rule.red {
			redFlags = append(redFlags, label)
		} else {
			warnings = append(warnings, label)
		}
	}
	return redFlags, warnings
}
