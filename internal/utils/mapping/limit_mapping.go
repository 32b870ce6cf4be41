package mapping

import (
	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/models"
)

// ToModelLimit converts a domain Limit to a model Limit
func ToModelLimit(d domain.Limit) models.Limit {
	return models.Limit{
		LimitID:           d.LimitID,
		Category:          string(d.Category),
		LimitSum:          d.LimitSum,
		CurrencyCode:      d.CurrencyCode,
		EffectiveDatetime: d.EffectiveDatetime,
		CreatedAt:         d.CreatedAt,
	}
}

// ToDomainLimit converts a model Limit to a domain Limit
func ToDomainLimit(m models.Limit) domain.Limit {
	return domain.Limit{
		LimitID:           m.LimitID,
		Category:          domain.ExpenseCategory(m.Category),
		LimitSum:          m.LimitSum,
		CurrencyCode:      m.CurrencyCode,
		EffectiveDatetime: m.EffectiveDatetime,
		CreatedAt:         m.CreatedAt,
	}
}

// ToDomainLimitSlice converts a slice of model Limits to domain Limits
func ToDomainLimitSlice(ms []models.Limit) []domain.Limit {
	ds := make([]domain.Limit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLimit(m)
	}
	return ds
}
