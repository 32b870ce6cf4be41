package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyUSD is the settlement currency every rate is quoted against.
const CurrencyUSD = "USD"

// Rate is a cached closing exchange rate for one currency pair on one date.
// CloseRate is the price of one unit of the foreign currency in USD, so
// multiplying a foreign-currency sum by CloseRate yields USD.
// Rows are immutable once stored; uniqueness is (CurrencyPair, RateDate).
type Rate struct {
	CurrencyPair string          `json:"currencyPair"` // e.g. "KZT/USD"
	RateDate     time.Time       `json:"rateDate"`     // calendar date, midnight UTC
	CloseRate    decimal.Decimal `json:"closeRate"`    // > 0
	CreatedAt    time.Time       `json:"createdAt"`
}

// Currency returns the foreign leg of the pair ("KZT" for "KZT/USD").
func (r Rate) Currency() string {
	code, _, _ := strings.Cut(r.CurrencyPair, "/")
	return code
}

// CurrencyPairUSD builds the canonical pair string for a currency code.
func CurrencyPairUSD(code string) string {
	return strings.ToUpper(code) + "/" + CurrencyUSD
}

// InvertQuote converts a provider quote (units of foreign currency per USD)
// into the stored close rate (USD per unit), rounded to 4 decimal places
// half-up.
func InvertQuote(quote decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).DivRound(quote, 4)
}
