package services

import (
	"context"

	"github.com/bankcore/txn_limit_app/internal/dto"
)

// TransactionSvcFacade exposes transaction processing and reporting.
type TransactionSvcFacade interface {
	// ProcessTransaction converts the transaction to USD, flags limit
	// exceedance against the rolling monthly spend, and persists it.
	ProcessTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)

	// GetExceededTransactions returns all persisted transactions that exceeded
	// their limit, each paired with the limit applicable at its datetime.
	GetExceededTransactions(ctx context.Context) ([]dto.TransactionResponse, error)
}
