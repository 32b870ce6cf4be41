package services

import (
	"context"

	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/dto"
)

// LimitSvcFacade exposes operator management of category spending limits.
type LimitSvcFacade interface {
	// SetLimit creates a new limit version for a category, effective now.
	SetLimit(ctx context.Context, req dto.CreateLimitRequest) (*domain.Limit, error)

	// ListLimits returns all configured limits, newest first.
	ListLimits(ctx context.Context) ([]domain.Limit, error)
}
