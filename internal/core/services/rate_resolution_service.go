package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bankcore/txn_limit_app/internal/apperrors"
	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/core/ports"
	"github.com/bankcore/txn_limit_app/internal/core/ports/providers"
	portsrepo "github.com/bankcore/txn_limit_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// DefaultPopularCurrencies is the fixed set of majors batched eagerly once the
// market has closed for the day.
func DefaultPopularCurrencies() []string {
	return []string{"KZT", "RUB", "BYN", "CNY", "JPY", "EUR", "GBP"}
}

// RateResolutionService resolves USD-relative exchange rates, serving from the
// persisted cache and fetching from the external provider on a miss.
type RateResolutionService struct {
	rateRepo portsrepo.RateRepositoryFacade
	provider providers.RateProvider
	clock    ports.Clock
	calendar domain.MarketCalendar
	popular  []string
}

// NewRateResolutionService creates a new RateResolutionService.
func NewRateResolutionService(
	rateRepo portsrepo.RateRepositoryFacade,
	provider providers.RateProvider,
	clock ports.Clock,
	calendar domain.MarketCalendar,
	popular []string,
) *RateResolutionService {
	return &RateResolutionService{
		rateRepo: rateRepo,
		provider: provider,
		clock:    clock,
		calendar: calendar,
		popular:  popular,
	}
}

// GetRate returns the close rate (USD per unit of currency) for the given
// currency on the given date. USD always resolves to exactly 1 with no I/O.
// On a cache miss the service fetches rates once and retries the lookup.
// The calendar date of date is taken in the market calendar's reference
// timezone; callers holding a bare YYYY-MM-DD construct it there.
func (s *RateResolutionService) GetRate(ctx context.Context, currency string, date time.Time) (decimal.Decimal, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return decimal.Zero, fmt.Errorf("%w: currency code must not be empty", apperrors.ErrValidation)
	}
	if currency == domain.CurrencyUSD {
		return decimal.NewFromInt(1), nil
	}

	rateDate := domain.DateOf(date, s.calendar.Location)
	today := domain.DateOf(s.clock.Now(), s.calendar.Location)
	if rateDate.After(today) {
		return decimal.Zero, fmt.Errorf("%w: cannot fetch rate for future date %s",
			apperrors.ErrValidation, rateDate.Format("2006-01-02"))
	}

	pair := domain.CurrencyPairUSD(currency)
	rate, err := s.rateRepo.FindLatestRate(ctx, pair, rateDate)
	if err == nil {
		return rate.CloseRate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, fmt.Errorf("failed to look up rate for %s: %w", pair, err)
	}

	if err := s.FetchRatesForDate(ctx, currency, date); err != nil {
		return decimal.Zero, err
	}

	rate, err = s.rateRepo.FindLatestRate(ctx, pair, rateDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: no rate for %s on %s",
				apperrors.ErrRateUnavailable, pair, rateDate.Format("2006-01-02"))
		}
		return decimal.Zero, fmt.Errorf("failed to look up rate for %s after fetch: %w", pair, err)
	}
	return rate.CloseRate, nil
}

// FetchRatesForDate fetches and caches close rates covering the requested
// currency and date. After market close the fixed popular-currency set is
// batched alongside the requested currency; currencies already cached for the
// adjusted fetch date are skipped, and an empty remainder is a no-op.
// The calendar date of date is taken in the reference timezone, same as GetRate.
func (s *RateResolutionService) FetchRatesForDate(ctx context.Context, currency string, date time.Time) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return fmt.Errorf("%w: currency code must not be empty", apperrors.ErrValidation)
	}

	now := s.clock.Now().In(s.calendar.Location)
	today := domain.DateOf(now, s.calendar.Location)
	requested := domain.DateOf(date, s.calendar.Location)
	if requested.After(today) {
		return fmt.Errorf("%w: cannot fetch rates for future date %s",
			apperrors.ErrValidation, requested.Format("2006-01-02"))
	}
	fetchDate := s.determineFetchDate(requested, now, today)

	var batch []string
	if currency != domain.CurrencyUSD && !slices.Contains(s.popular, currency) {
		batch = append(batch, currency)
	}
	if fetchDate.Equal(today) && s.calendar.IsAfterClose(now) {
		batch = append(batch, s.popular...)
	} else if !slices.Contains(batch, currency) {
		batch = append(batch, currency)
	}

	cachedPairs, err := s.rateRepo.ListCurrencyPairsByDate(ctx, fetchDate)
	if err != nil {
		return fmt.Errorf("failed to list cached pairs for %s: %w", fetchDate.Format("2006-01-02"), err)
	}
	cached := make(map[string]struct{}, len(cachedPairs))
	for _, pair := range cachedPairs {
		code, _, _ := strings.Cut(pair, "/")
		cached[code] = struct{}{}
	}
	batch = slices.DeleteFunc(batch, func(code string) bool {
		_, ok := cached[code]
		return ok
	})

	if len(batch) == 0 {
		return nil
	}

	quotes, err := s.provider.FetchRates(ctx, batch, fetchDate)
	if err != nil {
		return fmt.Errorf("%w: failed to fetch rates for %s: %w",
			apperrors.ErrRateProvider, fetchDate.Format("2006-01-02"), err)
	}
	if quotes == nil {
		return fmt.Errorf("%w: provider returned no rates for %s",
			apperrors.ErrRateProvider, fetchDate.Format("2006-01-02"))
	}

	createdAt := s.clock.Now()
	rates := make([]domain.Rate, 0, len(batch))
	for _, code := range batch {
		quote, ok := quotes[code]
		if !ok || quote.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: invalid rate for %s on %s",
				apperrors.ErrRateProvider, code, fetchDate.Format("2006-01-02"))
		}
		rates = append(rates, domain.Rate{
			CurrencyPair: domain.CurrencyPairUSD(code),
			RateDate:     fetchDate,
			CloseRate:    domain.InvertQuote(quote),
			CreatedAt:    createdAt,
		})
	}
	if len(rates) == 0 {
		return fmt.Errorf("%w: no valid rates for date %s",
			apperrors.ErrRateProvider, fetchDate.Format("2006-01-02"))
	}

	if err := s.rateRepo.SaveRates(ctx, rates); err != nil {
		return fmt.Errorf("failed to save fetched rates: %w", err)
	}
	return nil
}

// determineFetchDate adjusts the requested date for the market close cutoff,
// weekends, and holidays. Requesting today before close yields the previous
// working day; a non-working date walks back to the last working day.
func (s *RateResolutionService) determineFetchDate(date, now, today time.Time) time.Time {
	if date.Equal(today) && !s.calendar.IsAfterClose(now) {
		return s.calendar.PreviousWorkingDay(today)
	}
	if s.calendar.IsNonWorkingDay(date) {
		return s.calendar.PreviousWorkingDay(date)
	}
	return date
}
