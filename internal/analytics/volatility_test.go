package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoefficientOfVariation_KnownSeries(t *testing.T) {
	// mean 10500, population stddev ~1080.12
	cv, err := CoefficientOfVariation([]decimal.Decimal{dec("10000"), dec("12000"), dec("9500")})
	require.NoError(t, err)
	assert.Greater(t, cv, 0.10)
	assert.Less(t, cv, 0.20)
	assert.InDelta(t, 0.1029, cv, 0.0005)
}

func TestCoefficientOfVariation_IdenticalSeriesIsZero(t *testing.T) {
	cv, err := CoefficientOfVariation([]decimal.Decimal{dec("5000"), dec("5000"), dec("5000")})
	require.NoError(t, err)
	assert.Zero(t, cv)
}

func TestCoefficientOfVariation_ScaleFree(t *testing.T) {
	base := []decimal.Decimal{dec("1000"), dec("1500"), dec("800"), dec("1200")}
	scaled := make([]decimal.Decimal, len(base))
	for i, v := range base {
		scaled[i] = v.Mul(decimal.NewFromInt(7))
	}
	cv1, err := CoefficientOfVariation(base)
	require.NoError(t, err)
	cv2, err := CoefficientOfVariation(scaled)
	require.NoError(t, err)
	assert.InDelta(t, cv1, cv2, 1e-12)
}

func TestCoefficientOfVariation_TooFewPoints(t *testing.T) {
	for _, series := range [][]decimal.Decimal{nil, {dec("100")}} {
		_, err := CoefficientOfVariation(series)
		var dataErr InsufficientDataError
		require.ErrorAs(t, err, &dataErr)
		assert.Equal(t, "coefficient_of_variation", dataErr.Metric)
	}
}

func TestCoefficientOfVariation_ZeroMean(t *testing.T) {
	_, err := CoefficientOfVariation([]decimal.Decimal{dec("1000"), dec("-1000")})
	var dataErr InsufficientDataError
	require.ErrorAs(t, err, &dataErr)
	assert.Contains(t, dataErr.Reason, "zero")
}
