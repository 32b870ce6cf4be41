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

// PgxLimitRepository implements the limit repository ports using pgxpool.
type PgxLimitRepository struct {
	BaseRepository
}

// NewPgxLimitRepository creates a new PgxLimitRepository.
func NewPgxLimitRepository(db *pgxpool.Pool) *PgxLimitRepository {
	return &PgxLimitRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindLatestLimit retrieves the most recent limit for a category effective on
// or before asOf.
func (r *PgxLimitRepository) FindLatestLimit(ctx context.Context, category domain.ExpenseCategory, asOf time.Time) (*domain.Limit, error) {
	query := `
		SELECT limit_id, category, limit_sum, currency_code, effective_datetime, created_at
		FROM limits
		WHERE category = $1 AND effective_datetime <= $2
		ORDER BY effective_datetime DESC
		LIMIT 1;
	`

	var modelLimit models.Limit
	err := r.Pool.QueryRow(ctx, query, string(category), asOf).Scan(
		&modelLimit.LimitID, &modelLimit.Category, &modelLimit.LimitSum,
		&modelLimit.CurrencyCode, &modelLimit.EffectiveDatetime, &modelLimit.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no limit for category " + string(category))
		}
		return nil, apperrors.NewAppError(500, "failed to find limit", err)
	}

	domainLimit := mapping.ToDomainLimit(modelLimit)
	return &domainLimit, nil
}

// ListLimits returns all limits, newest first.
func (r *PgxLimitRepository) ListLimits(ctx context.Context) ([]domain.Limit, error) {
	query := `
		SELECT limit_id, category, limit_sum, currency_code, effective_datetime, created_at
		FROM limits
		ORDER BY effective_datetime DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list limits", err)
	}
	defer rows.Close()

	var modelLimits []models.Limit
	for rows.Next() {
		var m models.Limit
		if err := rows.Scan(
			&m.LimitID, &m.Category, &m.LimitSum,
			&m.CurrencyCode, &m.EffectiveDatetime, &m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan limit", err)
		}
		modelLimits = append(modelLimits, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating limits", err)
	}
	return mapping.ToDomainLimitSlice(modelLimits), nil
}

// SaveLimit persists a new limit version.
func (r *PgxLimitRepository) SaveLimit(ctx context.Context, limit domain.Limit) error {
	modelLimit := mapping.ToModelLimit(limit)

	query := `
		INSERT INTO limits (limit_id, category, limit_sum, currency_code, effective_datetime, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelLimit.LimitID, modelLimit.Category, modelLimit.LimitSum,
		modelLimit.CurrencyCode, modelLimit.EffectiveDatetime, modelLimit.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save limit", err)
	}
	return nil
}
