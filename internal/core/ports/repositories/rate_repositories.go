package repositories

import (
	"context"
	"time"

	"github.com/bankcore/txn_limit_app/internal/core/domain"
)

// RateReader defines read operations for cached exchange rates
type RateReader interface {
	// FindLatestRate retrieves the most recent stored rate for a currency pair
	// with a rate date on or before the given date. Returns apperrors.ErrNotFound
	// when no such rate exists.
	FindLatestRate(ctx context.Context, currencyPair string, onOrBefore time.Time) (*domain.Rate, error)

	// ListCurrencyPairsByDate returns the distinct currency pairs already cached
	// for the given rate date.
	ListCurrencyPairsByDate(ctx context.Context, rateDate time.Time) ([]string, error)
}

// RateWriter defines write operations for cached exchange rates
type RateWriter interface {
	// SaveRates persists a batch of rates as a single atomic insert. Rows that
	// collide with an existing (currency_pair, rate_date) are skipped.
	SaveRates(ctx context.Context, rates []domain.Rate) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}

// RateRepositoryWithTx extends RateRepositoryFacade with transaction capabilities
type RateRepositoryWithTx interface {
	RateRepositoryFacade
	TransactionManager
}
