package dto

import (
	"time"

	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLimitRequest defines the structure for setting a new category limit.
type CreateLimitRequest struct {
	LimitSum        decimal.Decimal `json:"limitSum" binding:"required"`
	ExpenseCategory string          `json:"expenseCategory" binding:"required,expensecategory"`
}

// LimitResponse defines the structure for API responses containing limit details.
type LimitResponse struct {
	LimitID           string          `json:"limitID"`
	ExpenseCategory   string          `json:"expenseCategory"`
	LimitSum          decimal.Decimal `json:"limitSum"`
	CurrencyCode      string          `json:"currencyCode"`
	EffectiveDatetime time.Time       `json:"effectiveDatetime"`
}

// ToLimitResponse converts a domain.Limit to a LimitResponse DTO
func ToLimitResponse(limit *domain.Limit) LimitResponse {
	return LimitResponse{
		LimitID:           limit.LimitID,
		ExpenseCategory:   string(limit.Category),
		LimitSum:          limit.LimitSum,
		CurrencyCode:      limit.CurrencyCode,
		EffectiveDatetime: limit.EffectiveDatetime,
	}
}

// ToListLimitResponse converts a slice of domain.Limit to LimitResponse DTOs.
func ToListLimitResponse(limits []domain.Limit) []LimitResponse {
	responses := make([]LimitResponse, len(limits))
	for i := range limits {
		responses[i] = ToLimitResponse(&limits[i])
	}
	return responses
}
