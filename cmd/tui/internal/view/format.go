package view

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const dbTimeout = 5 * time.Second

// FormatAmount renders a rand amount with two decimals.
func FormatAmount(d decimal.Decimal) string {
	return "R " + d.StringFixed(2)
}

// FormatOptionalAmount renders "-" for a missing amount.
func FormatOptionalAmount(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}

	return FormatAmount(*d)
}

func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
