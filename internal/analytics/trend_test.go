package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
)

func TestClassifyTrend(t *testing.T) {
	tol := dec("0.10")
	tests := []struct {
		name                 string
		avg30, avg90, avg180 string
		want                 model.Trend
	}{
		{"flat", "100", "100", "100", model.TrendStable},
		{"exactly at baseline", "150", "100", "200", model.TrendStable},
		{"just inside upper band", "110", "100", "100", model.TrendStable},
		{"just inside lower band", "90", "100", "100", model.TrendStable},
		{"above band", "110.01", "100", "100", model.TrendIncreasing},
		{"below band", "89.99", "100", "100", model.TrendDeclining},
		{"blended baseline increasing", "170", "100", "200", model.TrendIncreasing},
		{"blended baseline declining", "130", "100", "200", model.TrendDeclining},
		{"zero baseline is stable", "50", "0", "0", model.TrendStable},
		{"zero everywhere is stable", "0", "0", "0", model.TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTrend(dec(tt.avg30), dec(tt.avg90), dec(tt.avg180), tol)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyChange_NegativeBaseline(t *testing.T) {
	// Band edges must stay ordered when the baseline is negative.
	tol := dec("0.10")
	assert.Equal(t, model.TrendStable, classifyChange(dec("-100"), dec("-100"), tol))
	assert.Equal(t, model.TrendIncreasing, classifyChange(dec("-80"), dec("-100"), tol))
	assert.Equal(t, model.TrendDeclining, classifyChange(dec("-120"), dec("-100"), tol))
}

func TestClassifyTrend_ZeroToleranceIsExact(t *testing.T) {
	zero := decimal.Zero
	assert.Equal(t, model.TrendStable, ClassifyTrend(dec("100"), dec("100"), dec("100"), zero))
	assert.Equal(t, model.TrendIncreasing, ClassifyTrend(dec("100.01"), dec("100"), dec("100"), zero))
	assert.Equal(t, model.TrendDeclining, ClassifyTrend(dec("99.99"), dec("100"), dec("100"), zero))
}
