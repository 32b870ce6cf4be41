package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of the transactions table.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	AccountFrom   string          `json:"accountFrom"`
	AccountTo     string          `json:"accountTo"`
	CurrencyCode  string          `json:"currencyCode"`
	Sum           decimal.Decimal `json:"sum"`
	Category      string          `json:"category"`
	Datetime      time.Time       `json:"datetime"`
	LimitExceeded bool            `json:"limitExceeded"`
	CreatedAt     time.Time       `json:"createdAt"`
}
