package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
)

// BalancesHeader is the CSV header for balances.csv.
const BalancesHeader = "date,balance"

const (
	numBalFields  = 2
	colBalDate    = 0
	colBalBalance = 1
)

// ReadBalances reads all daily balances from a balances.csv reader.
func ReadBalances(r io.Reader) ([]model.DailyBalance, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numBalFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading balances CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var balances []model.DailyBalance
	for i, rec := range records[1:] {
		b, err := UnmarshalBalance(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		balances = append(balances, b)
	}
	return balances, nil
}

// WriteBalances writes daily balances to a balances.csv writer (including
// header).
func WriteBalances(w io.Writer, balances []model.DailyBalance) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(BalancesHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, b := range balances {
		if err := cw.Write(MarshalBalance(b)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalBalance converts a DailyBalance to a CSV row ([]string).
func MarshalBalance(b model.DailyBalance) []string {
	row := make([]string, numBalFields)
	row[colBalDate] = b.Date.Format(dateFormat)
	row[colBalBalance] = b.Balance.StringFixed(2)
	return row
}

// UnmarshalBalance converts a CSV row to a DailyBalance.
func UnmarshalBalance(record []string) (model.DailyBalance, error) {
	if len(record) != numBalFields {
		return model.DailyBalance{}, fmt.Errorf("expected %d fields, got %d", numBalFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colBalDate])
	if err != nil {
		return model.DailyBalance{}, fmt.Errorf("parsing date %q: %w", record[colBalDate], err)
	}

	balance, err := decimal.NewFromString(record[colBalBalance])
	if err != nil {
		return model.DailyBalance{}, fmt.Errorf("parsing balance %q: %w", record[colBalBalance], err)
	}

	return model.DailyBalance{Date: date, Balance: balance}, nil
}
