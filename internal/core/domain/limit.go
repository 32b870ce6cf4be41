package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLimitSum is the monthly limit applied to a category before an
// operator has configured one (1000.00 USD).
var DefaultLimitSum = decimal.NewFromInt(1000)

// Limit is a monthly spending cap for one expense category. Limits are
// versioned: several rows may exist per category, and the one applicable to a
// transaction is the most recent with EffectiveDatetime <= the transaction time.
type Limit struct {
	LimitID           string          `json:"limitID"`
	Category          ExpenseCategory `json:"category"`
	LimitSum          decimal.Decimal `json:"limitSum"`     // >= 0.01
	CurrencyCode      string          `json:"currencyCode"` // always "USD"
	EffectiveDatetime time.Time       `json:"effectiveDatetime"`
	CreatedAt         time.Time       `json:"createdAt"`
}
