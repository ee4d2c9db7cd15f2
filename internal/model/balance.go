package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBalance is the account's end-of-day balance for one calendar day.
// A series is sorted by date; missing days are gaps, never interpolated.
type DailyBalance struct {
	Date    time.Time
	Balance decimal.Decimal
}
