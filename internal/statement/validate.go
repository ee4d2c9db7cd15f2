package statement

import (
	"fmt"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
)

// ValidationError describes a single bad record.
type ValidationError struct {
	Row         int // 1-based data row, header excluded
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("row %d %s: %s", e.Row, e.Field, e.Description)
}

// ValidateTransactions checks parsed transactions before analysis: dates
// present, amounts at cent precision, types inside the closed set. All
// violations are reported, not just the first.
func ValidateTransactions(txns []model.Transaction) []ValidationError {
	var errs []ValidationError
	for i, txn := range txns {
		row := i + 1

		if txn.Date.IsZero() {
			errs = append(errs, ValidationError{
				Row:         row,
				Field:       "date",
				Description: "missing date",
			})
		}

		if !txn.Amount.Equal(txn.Amount.Round(2)) {
			errs = append(errs, ValidationError{
				Row:         row,
				Field:       "amount",
				Description: fmt.Sprintf("amount %s has sub-cent precision", txn.Amount),
			})
		}

		if !txn.Type.Valid() {
			errs = append(errs, ValidationError{
				Row:         row,
				Field:       "type",
				Description: fmt.Sprintf("unknown transaction type %q", txn.Type),
			})
		}
	}
	return errs
}

// ValidateBalances checks that the balance series is usable: cent precision
// and strictly ascending dates (one record per day, sorted).
func ValidateBalances(balances []model.DailyBalance) []ValidationError {
	var errs []ValidationError
	for i, b := range balances {
		row := i + 1

		if b.Date.IsZero() {
			errs = append(errs, ValidationError{
				Row:         row,
				Field:       "date",
				Description: "missing date",
			})
		}

		if !b.Balance.Equal(b.Balance.Round(2)) {
			errs = append(errs, ValidationError{
				Row:         row,
				Field:       "balance",
				Description: fmt.Sprintf("balance %s has sub-cent precision", b.Balance),
			})
		}

		if i == 0 {
			continue
		}
		prev := balances[i-1]
		switch {
		case b.Date.Equal(prev.Date):
			errs = append(errs, ValidationError{
				Row:         row,
				Field:       "date",
				Description: fmt.Sprintf("duplicate date %s", b.Date.Format(dateFormat)),
			})
		case b.Date.Before(prev.Date):
			errs = append(errs, ValidationError{
				Row:         row,
				Field:       "date",
				Description: fmt.Sprintf("date %s out of order", b.Date.Format(dateFormat)),
			})
		}
	}
	return errs
}
