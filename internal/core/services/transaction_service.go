package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bankcore/txn_limit_app/internal/apperrors"
	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/core/ports"
	portsrepo "github.com/bankcore/txn_limit_app/internal/core/ports/repositories"
	portssvc "github.com/bankcore/txn_limit_app/internal/core/ports/services"
	"github.com/bankcore/txn_limit_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// usdSignificantDigits is the precision applied to converted USD amounts.
const usdSignificantDigits = 4

// TransactionService processes bank transactions: USD conversion, monthly
// limit exceedance flagging, and persistence.
type TransactionService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	limitRepo    portsrepo.LimitRepositoryFacade
	rateResolver portssvc.RateResolverSvcFacade
	clock        ports.Clock
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	limitRepo portsrepo.LimitRepositoryFacade,
	rateResolver portssvc.RateResolverSvcFacade,
	clock ports.Clock,
) *TransactionService {
	return &TransactionService{
		txnRepo:      txnRepo,
		limitRepo:    limitRepo,
		rateResolver: rateResolver,
		clock:        clock,
	}
}

// ProcessTransaction converts the requested sum to USD via the rate resolver,
// sums the prior spend for the category in the same calendar month, flags
// exceedance against the applicable limit (strict greater-than), and persists
// the transaction together with the flag.
func (s *TransactionService) ProcessTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	category, err := domain.ParseExpenseCategory(req.ExpenseCategory)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if req.Sum.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transaction sum must be positive", apperrors.ErrValidation)
	}
	now := s.clock.Now()
	if req.Datetime.After(now) {
		return nil, fmt.Errorf("%w: transaction datetime must not be in the future", apperrors.ErrValidation)
	}

	limit, err := s.resolveLimit(ctx, category, req.Datetime)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateResolver.GetRate(ctx, req.CurrencyShortname, req.Datetime)
	if err != nil {
		return nil, err
	}
	sumInUsd := domain.RoundSignificant(req.Sum.Mul(rate), usdSignificantDigits)

	spentInMonth, err := s.txnRepo.SumSpentInMonth(ctx, category, req.Datetime)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly spend: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountFrom:   req.AccountFrom,
		AccountTo:     req.AccountTo,
		CurrencyCode:  req.CurrencyShortname,
		Sum:           req.Sum,
		Category:      category,
		Datetime:      req.Datetime,
		LimitExceeded: spentInMonth.Add(sumInUsd).GreaterThan(limit.LimitSum),
		CreatedAt:     now,
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	resp := dto.ToTransactionResponse(txn, limit)
	return &resp, nil
}

// GetExceededTransactions returns all transactions flagged as exceeded, each
// paired with the limit applicable at its datetime. A flagged transaction with
// no resolvable limit is a data anomaly: it is returned without a limit
// snapshot rather than backfilled with a default.
func (s *TransactionService) GetExceededTransactions(ctx context.Context) ([]dto.TransactionResponse, error) {
	txns, err := s.txnRepo.FindExceededTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exceeded transactions: %w", err)
	}

	responses := make([]dto.TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		limit, err := s.limitRepo.FindLatestLimit(ctx, txn.Category, txn.Datetime)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("failed to resolve limit for transaction %s: %w", txn.TransactionID, err)
			}
			slog.Warn("exceeded transaction has no applicable limit",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("category", string(txn.Category)))
			limit = nil
		}
		responses = append(responses, dto.ToTransactionResponse(txn, limit))
	}
	return responses, nil
}

// resolveLimit finds the most recent limit effective at the transaction time,
// creating and persisting the 1000.00 USD default on first use of a category.
func (s *TransactionService) resolveLimit(ctx context.Context, category domain.ExpenseCategory, asOf time.Time) (*domain.Limit, error) {
	limit, err := s.limitRepo.FindLatestLimit(ctx, category, asOf)
	if err == nil {
		return limit, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve limit for category %s: %w", category, err)
	}

	now := s.clock.Now()
	created := domain.Limit{
		LimitID:           uuid.NewString(),
		Category:          category,
		LimitSum:          domain.DefaultLimitSum,
		CurrencyCode:      domain.CurrencyUSD,
		EffectiveDatetime: now,
		CreatedAt:         now,
	}
	if err := s.limitRepo.SaveLimit(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create default limit for category %s: %w", category, err)
	}
	return &created, nil
}
