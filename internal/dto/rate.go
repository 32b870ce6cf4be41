package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateResponse defines the structure for API responses containing a
// resolved USD-relative exchange rate.
type ExchangeRateResponse struct {
	Currency  string          `json:"currency"`
	RateDate  time.Time       `json:"rateDate"`
	CloseRate decimal.Decimal `json:"closeRate"`
}
