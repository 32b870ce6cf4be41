package services

import (
	"context"
	"fmt"

	"github.com/bankcore/txn_limit_app/internal/apperrors"
	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/core/ports"
	portsrepo "github.com/bankcore/txn_limit_app/internal/core/ports/repositories"
	"github.com/bankcore/txn_limit_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// minLimitSum is the smallest allowed limit amount.
var minLimitSum = decimal.NewFromFloat(0.01)

// LimitService provides operator management of category spending limits.
type LimitService struct {
	limitRepo portsrepo.LimitRepositoryFacade
	clock     ports.Clock
}

// NewLimitService creates a new LimitService.
func NewLimitService(limitRepo portsrepo.LimitRepositoryFacade, clock ports.Clock) *LimitService {
	return &LimitService{limitRepo: limitRepo, clock: clock}
}

// SetLimit creates a new limit version for a category. Limits are always
// denominated in USD and become effective immediately.
func (s *LimitService) SetLimit(ctx context.Context, req dto.CreateLimitRequest) (*domain.Limit, error) {
	category, err := domain.ParseExpenseCategory(req.ExpenseCategory)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if req.LimitSum.LessThan(minLimitSum) {
		return nil, fmt.Errorf("%w: limit sum must be at least %s", apperrors.ErrValidation, minLimitSum)
	}

	now := s.clock.Now()
	limit := domain.Limit{
		LimitID:           uuid.NewString(),
		Category:          category,
		LimitSum:          req.LimitSum,
		CurrencyCode:      domain.CurrencyUSD,
		EffectiveDatetime: now,
		CreatedAt:         now,
	}
	if err := s.limitRepo.SaveLimit(ctx, limit); err != nil {
		return nil, fmt.Errorf("failed to save limit in service: %w", err)
	}
	return &limit, nil
}

// ListLimits returns all configured limits, newest first.
func (s *LimitService) ListLimits(ctx context.Context) ([]domain.Limit, error) {
	limits, err := s.limitRepo.ListLimits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list limits in service: %w", err)
	}
	if limits == nil {
		return []domain.Limit{}, nil
	}
	return limits, nil
}
