package mapping

import (
	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		AccountFrom:   d.AccountFrom,
		AccountTo:     d.AccountTo,
		CurrencyCode:  d.CurrencyCode,
		Sum:           d.Sum,
		Category:      string(d.Category),
		Datetime:      d.Datetime,
		LimitExceeded: d.LimitExceeded,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountFrom:   m.AccountFrom,
		AccountTo:     m.AccountTo,
		CurrencyCode:  m.CurrencyCode,
		Sum:           m.Sum,
		Category:      domain.ExpenseCategory(m.Category),
		Datetime:      m.Datetime,
		LimitExceeded: m.LimitExceeded,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
