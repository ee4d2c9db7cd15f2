package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a bank transaction. The set is closed; the
// statement codec rejects any other label.
type TransactionType string

const (
	TypeTrueRevenue TransactionType = "TRUE_REVENUE"
	TypeTransfer    TransactionType = "TRANSFER"
	TypeMCAPayment  TransactionType = "MCA_PAYMENT"
	TypeFee         TransactionType = "FEE"
	TypeOther       TransactionType = "OTHER"
)

// TransactionTypes lists every member of the closed set in canonical order.
var TransactionTypes = []TransactionType{
	TypeTrueRevenue,
	TypeTransfer,
	TypeMCAPayment,
	TypeFee,
	TypeOther,
}

// Valid reports whether t is a member of the closed set.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeTrueRevenue, TypeTransfer, TypeMCAPayment, TypeFee, TypeOther:
		return true
	}
	return false
}

// ParseTransactionType converts a label into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
	return t, nil
}

// Transaction is a single classified bank transaction. Classification
// happens upstream; the analytics engine consumes these as-is.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // positive = inflow, negative = outflow
	Type        TransactionType
}
