package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a recorded bank transaction. Immutable once created.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	AccountFrom   string          `json:"accountFrom"` // 10-digit account number
	AccountTo     string          `json:"accountTo"`   // 10-digit account number
	CurrencyCode  string          `json:"currencyCode"`
	Sum           decimal.Decimal `json:"sum"` // > 0, in CurrencyCode
	Category      ExpenseCategory `json:"category"`
	Datetime      time.Time       `json:"datetime"` // must not be in the future
	LimitExceeded bool            `json:"limitExceeded"`
	CreatedAt     time.Time       `json:"createdAt"`
}
