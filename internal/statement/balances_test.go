package statement

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
)

func TestBalancesRoundTrip(t *testing.T) {
	balances := []model.DailyBalance{
		{Date: date(2024, 3, 5), Balance: dec("5000.00")},
		{Date: date(2024, 3, 6), Balance: dec("-50.25")},
		{Date: date(2024, 3, 7), Balance: dec("0.00")},
	}

	var buf bytes.Buffer
	err := WriteBalances(&buf, balances)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, BalancesHeader, lines[0])
	assert.Equal(t, "2024-03-06,-50.25", lines[2])

	got, err := ReadBalances(&buf)
	require.NoError(t, err)
	assert.Equal(t, balances, got)
}

func TestReadBalancesTestdata(t *testing.T) {
	f, err := os.Open("../../testdata/balances.csv")
	require.NoError(t, err)
	defer f.Close()

	balances, err := ReadBalances(f)
	require.NoError(t, err)
	require.Len(t, balances, 15)

	assert.Equal(t, date(2024, 6, 1), balances[0].Date)
	assert.True(t, dec("4250.00").Equal(balances[0].Balance))

	negatives := 0
	for _, b := range balances {
		if b.Balance.IsNegative() {
			negatives++
		}
	}
	assert.Equal(t, 1, negatives)

	assert.Empty(t, ValidateBalances(balances))
}

func TestReadBalances_EmptyInput(t *testing.T) {
	got, err := ReadBalances(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadBalances_BadBalance(t *testing.T) {
	in := BalancesHeader + "\n2024-03-05,five thousand\n"
	_, err := ReadBalances(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing balance")
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadBalances_WrongFieldCount(t *testing.T) {
	in := BalancesHeader + "\n2024-03-05,100.00,extra\n"
	_, err := ReadBalances(strings.NewReader(in))
	require.Error(t, err)
}
