package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bankcore/txn_limit_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository carries the shared pgx pool and transaction helpers embedded
// by the rate, limit and transaction repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin opens a database transaction, e.g. for an atomic rate batch save.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit finalizes a transaction started with Begin.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback aborts a transaction. An already-finished transaction is not an
// error, so deferred rollbacks after a successful commit stay silent.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}
