package pgsql

import (
	portsrepo "github.com/bankcore/txn_limit_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo:        NewPgxRateRepository(dbPool),
		LimitRepo:       NewPgxLimitRepository(dbPool),
		TransactionRepo: NewPgxTransactionRepository(dbPool),
	}
}
