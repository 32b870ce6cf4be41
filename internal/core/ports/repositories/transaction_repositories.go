package repositories

import (
	"context"
	"time"

	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transactions
type TransactionReader interface {
	// FindExceededTransactions returns all transactions flagged as having
	// exceeded their limit, oldest first.
	FindExceededTransactions(ctx context.Context) ([]domain.Transaction, error)

	// SumSpentInMonth computes the total USD value of transactions in the given
	// category within the calendar month of upTo, evaluated in UTC, whose
	// datetime is strictly before upTo. Each transaction's sum is converted via
	// the stored close rate matching its own currency pair and date; USD
	// transactions count at face value. Returns zero when no transactions
	// match.
	SumSpentInMonth(ctx context.Context, category domain.ExpenseCategory, upTo time.Time) (decimal.Decimal, error)
}

// TransactionWriter defines write operations for transactions
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
