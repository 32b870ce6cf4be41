package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate mirrors a row of the exchange_rates table.
type Rate struct {
	CurrencyPair string          `json:"currencyPair"`
	RateDate     time.Time       `json:"rateDate"`
	CloseRate    decimal.Decimal `json:"closeRate"`
	CreatedAt    time.Time       `json:"createdAt"`
}
