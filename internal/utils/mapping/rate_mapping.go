package mapping

import (
	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/models"
)

// ToModelRate converts a domain Rate to a model Rate
func ToModelRate(d domain.Rate) models.Rate {
	return models.Rate{
		CurrencyPair: d.CurrencyPair,
		RateDate:     d.RateDate,
		CloseRate:    d.CloseRate,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainRate converts a model Rate to a domain Rate
func ToDomainRate(m models.Rate) domain.Rate {
	return domain.Rate{
		CurrencyPair: m.CurrencyPair,
		RateDate:     m.RateDate,
		CloseRate:    m.CloseRate,
		CreatedAt:    m.CreatedAt,
	}
}
