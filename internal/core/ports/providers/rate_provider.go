package providers

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateProvider is the external source of exchange rate quotes.
// FetchRates returns, for each requested currency code, the quote for the
// given date expressed as units of that currency per 1 USD.
type RateProvider interface {
	FetchRates(ctx context.Context, currencies []string, date time.Time) (map[string]decimal.Decimal, error)
}
