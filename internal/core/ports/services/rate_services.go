package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateResolverSvcFacade exposes USD-relative rate resolution with
// fetch-on-miss caching. Both operations derive the calendar date of their
// date argument in the market's reference timezone, so a bare YYYY-MM-DD
// must be constructed in that zone.
type RateResolverSvcFacade interface {
	// GetRate returns the USD-relative close rate for a currency on a date.
	// Returns exactly 1 for USD with no I/O.
	GetRate(ctx context.Context, currency string, date time.Time) (decimal.Decimal, error)

	// FetchRatesForDate fetches and caches rates covering the given currency
	// and date, batching popular currencies after market close. A no-op when
	// everything needed is already cached.
	FetchRatesForDate(ctx context.Context, currency string, date time.Time) error
}
