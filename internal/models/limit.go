package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Limit mirrors a row of the limits table.
type Limit struct {
	LimitID           string          `json:"limitID"`
	Category          string          `json:"category"`
	LimitSum          decimal.Decimal `json:"limitSum"`
	CurrencyCode      string          `json:"currencyCode"`
	EffectiveDatetime time.Time       `json:"effectiveDatetime"`
	CreatedAt         time.Time       `json:"createdAt"`
}
