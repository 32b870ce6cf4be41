package repositories

import (
	"context"
	"time"

	"github.com/bankcore/txn_limit_app/internal/core/domain"
)

// LimitReader defines read operations for spending limits
type LimitReader interface {
	// FindLatestLimit retrieves the most recent limit for a category with an
	// effective datetime on or before asOf. Returns apperrors.ErrNotFound when
	// no limit has ever been set for the category.
	FindLatestLimit(ctx context.Context, category domain.ExpenseCategory, asOf time.Time) (*domain.Limit, error)

	// ListLimits returns all limits, newest first.
	ListLimits(ctx context.Context) ([]domain.Limit, error)
}

// LimitWriter defines write operations for spending limits
type LimitWriter interface {
	// SaveLimit persists a new limit version.
	SaveLimit(ctx context.Context, limit domain.Limit) error
}

// LimitRepositoryFacade combines all limit-related repository interfaces
type LimitRepositoryFacade interface {
	LimitReader
	LimitWriter
}
