package dto

import (
	"time"

	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the structure for recording a new transaction.
type CreateTransactionRequest struct {
	AccountFrom       string          `json:"accountFrom" binding:"required,len=10,numeric"`
	AccountTo         string          `json:"accountTo" binding:"required,len=10,numeric"`
	CurrencyShortname string          `json:"currencyShortname" binding:"required,len=3,uppercase"`
	Sum               decimal.Decimal `json:"sum" binding:"required"`
	ExpenseCategory   string          `json:"expenseCategory" binding:"required,expensecategory"`
	Datetime          time.Time       `json:"datetime" binding:"required"`
}

// TransactionResponse returns a processed transaction together with the limit
// snapshot that was applicable at its datetime. The limit fields are nil when
// no limit ever existed for the category (a data-consistency anomaly surfaced
// by the exceeded-transactions report).
type TransactionResponse struct {
	TransactionID          string           `json:"transactionID"`
	AccountFrom            string           `json:"accountFrom"`
	AccountTo              string           `json:"accountTo"`
	CurrencyShortname      string           `json:"currencyShortname"`
	Sum                    decimal.Decimal  `json:"sum"`
	ExpenseCategory        string           `json:"expenseCategory"`
	Datetime               time.Time        `json:"datetime"`
	LimitExceeded          bool             `json:"limitExceeded"`
	LimitSum               *decimal.Decimal `json:"limitSum,omitempty"`
	LimitDatetime          *time.Time       `json:"limitDatetime,omitempty"`
	LimitCurrencyShortname string           `json:"limitCurrencyShortname,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction plus its applicable
// limit (may be nil) to a TransactionResponse DTO.
func ToTransactionResponse(txn domain.Transaction, limit *domain.Limit) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:     txn.TransactionID,
		AccountFrom:       txn.AccountFrom,
		AccountTo:         txn.AccountTo,
		CurrencyShortname: txn.CurrencyCode,
		Sum:               txn.Sum,
		ExpenseCategory:   string(txn.Category),
		Datetime:          txn.Datetime,
		LimitExceeded:     txn.LimitExceeded,
	}
	if limit != nil {
		resp.LimitSum = &limit.LimitSum
		resp.LimitDatetime = &limit.EffectiveDatetime
		resp.LimitCurrencyShortname = limit.CurrencyCode
	}
	return resp
}
