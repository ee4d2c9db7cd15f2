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

// TransactionsHeader is the CSV header for transactions.csv.
const TransactionsHeader = "date,description,amount,type"

const (
	numTxnFields = 4
	dateFormat   = "2006-01-02"
	colTxnDate   = 0
	colTxnDesc   = 1
	colTxnAmount = 2
	colTxnType   = 3
)

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numTxnFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a transactions.csv writer
// (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numTxnFields)
	row[colTxnDate] = txn.Date.Format(dateFormat)
	row[colTxnDesc] = txn.Description
	row[colTxnAmount] = txn.Amount.StringFixed(2)
	row[colTxnType] = string(txn.Type)
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction. Unknown type
// labels are an error, not a passthrough.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numTxnFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numTxnFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colTxnDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colTxnDate], err)
	}

	amount, err := decimal.NewFromString(record[colTxnAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colTxnAmount], err)
	}

	typ, err := model.ParseTransactionType(record[colTxnType])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Date:        date,
		Description: record[colTxnDesc],
		Amount:      amount,
		Type:        typ,
	}, nil
}
