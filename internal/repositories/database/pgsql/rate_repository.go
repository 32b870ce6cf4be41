package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/bankcore/txn_limit_app/internal/apperrors"
	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/models"
	"github.com/bankcore/txn_limit_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateRepository implements the rate repository ports using pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

// NewPgxRateRepository creates a new PgxRateRepository.
func NewPgxRateRepository(db *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindLatestRate retrieves the most recent rate for a currency pair with a
// rate date on or before the given date.
func (r *PgxRateRepository) FindLatestRate(ctx context.Context, currencyPair string, onOrBefore time.Time) (*domain.Rate, error) {
	query := `
		SELECT currency_pair, rate_date, close_rate, created_at
		FROM exchange_rates
		WHERE currency_pair = $1 AND rate_date <= $2
		ORDER BY rate_date DESC
		LIMIT 1;
	`

	var modelRate models.Rate
	err := r.Pool.QueryRow(ctx, query, currencyPair, onOrBefore).Scan(
		&modelRate.CurrencyPair, &modelRate.RateDate, &modelRate.CloseRate, &modelRate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate for pair " + currencyPair)
		}
		return nil, apperrors.NewAppError(500, "failed to find rate", err)
	}

	domainRate := mapping.ToDomainRate(modelRate)
	return &domainRate, nil
}

// ListCurrencyPairsByDate returns the distinct currency pairs cached for a rate date.
func (r *PgxRateRepository) ListCurrencyPairsByDate(ctx context.Context, rateDate time.Time) ([]string, error) {
	query := `SELECT DISTINCT currency_pair FROM exchange_rates WHERE rate_date = $1;`

	rows, err := r.Pool.Query(ctx, query, rateDate)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list currency pairs", err)
	}
	defer rows.Close()

	var pairs []string
	for rows.Next() {
		var pair string
		if err := rows.Scan(&pair); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency pair", err)
		}
		pairs = append(pairs, pair)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency pairs", err)
	}
	return pairs, nil
}

// SaveRates inserts a batch of rates inside one transaction so readers never
// observe a partially populated batch. Rows colliding with an existing
// (currency_pair, rate_date) are skipped; concurrent fetchers may race to
// insert the same pair and the unique constraint settles it.
func (r *PgxRateRepository) SaveRates(ctx context.Context, rates []domain.Rate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO exchange_rates (currency_pair, rate_date, close_rate, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (currency_pair, rate_date) DO NOTHING;
	`
	for _, rate := range rates {
		modelRate := mapping.ToModelRate(rate)
		if _, err := tx.Exec(ctx, query,
			modelRate.CurrencyPair, modelRate.RateDate, modelRate.CloseRate, modelRate.CreatedAt,
		); err != nil {
			_ = r.Rollback(ctx, tx)
			return apperrors.NewAppError(500, "failed to save rates", err)
		}
	}

	return r.Commit(ctx, tx)
}
