package statement

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestTransactionsRoundTrip(t *testing.T) {
	txns := []model.Transaction{
		{
			Date:        date(2024, 3, 5),
			Description: "STRIPE PAYOUT 7X91",
			Amount:      dec("1250.00"),
			Type:        model.TypeTrueRevenue,
		},
		{
			Date:        date(2024, 3, 6),
			Description: "DAILY ACH MCA FUNDING",
			Amount:      dec("-499.00"),
			Type:        model.TypeMCAPayment,
		},
		{
			Date:        date(2024, 3, 7),
			Description: "TRANSFER FROM SAVINGS, REF 99",
			Amount:      dec("2000.00"),
			Type:        model.TypeTransfer,
		},
	}

	var buf bytes.Buffer
	err := WriteTransactions(&buf, txns)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, TransactionsHeader, lines[0])
	require.Len(t, lines, 4)

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	assert.Equal(t, txns, got)
}

func TestTransactionsRoundTrip_QuotedDescription(t *testing.T) {
	txns := []model.Transaction{
		{
			Date:        date(2024, 3, 7),
			Description: `CHECK DEPOSIT, "MEMO: RENT"`,
			Amount:      dec("900.00"),
			Type:        model.TypeOther,
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txns))
	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	assert.Equal(t, txns, got)
}

func TestReadTransactions_EmptyInput(t *testing.T) {
	got, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadTransactions_HeaderOnly(t *testing.T) {
	got, err := ReadTransactions(strings.NewReader(TransactionsHeader + "\n"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadTransactions_UnknownType(t *testing.T) {
	in := TransactionsHeader + "\n2024-03-05,payout,100.00,REVENUE\n"
	_, err := ReadTransactions(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transaction type")
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadTransactions_BadDate(t *testing.T) {
	in := TransactionsHeader + "\n03/05/2024,payout,100.00,TRUE_REVENUE\n"
	_, err := ReadTransactions(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestReadTransactions_BadAmount(t *testing.T) {
	in := TransactionsHeader + "\n2024-03-05,payout,$100.00,TRUE_REVENUE\n"
	_, err := ReadTransactions(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestReadTransactions_WrongFieldCount(t *testing.T) {
	in := TransactionsHeader + "\n2024-03-05,payout,100.00\n"
	_, err := ReadTransactions(strings.NewReader(in))
	require.Error(t, err)
}

func TestReadTransactionsTestdata(t *testing.T) {
	f, err := os.Open("../../testdata/transactions.csv")
	require.NoError(t, err)
	defer f.Close()

	txns, err := ReadTransactions(f)
	require.NoError(t, err)
	require.Len(t, txns, 20)

	assert.Equal(t, date(2024, 3, 5), txns[0].Date)
	assert.Equal(t, "STRIPE PAYOUT 88421", txns[0].Description)
	assert.True(t, dec("1250.00").Equal(txns[0].Amount))
	assert.Equal(t, model.TypeTrueRevenue, txns[0].Type)

	// Quoted description with an embedded comma survives parsing.
	assert.Equal(t, "CHECK DEPOSIT, BRANCH", txns[9].Description)

	assert.Empty(t, ValidateTransactions(txns))
}

func TestParsedAmountsAddExactly(t *testing.T) {
	in := TransactionsHeader + "\n" +
		"2024-03-05,a,0.10,TRUE_REVENUE\n" +
		"2024-03-06,b,0.20,TRUE_REVENUE\n"
	txns, err := ReadTransactions(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txns, 2)
	sum := txns[0].Amount.Add(txns[1].Amount)
	assert.True(t, dec("0.30").Equal(sum), "got %s", sum)
}
