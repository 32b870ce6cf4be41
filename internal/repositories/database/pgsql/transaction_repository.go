package pgsql

import (
	"context"
	"time"

	"github.com/bankcore/txn_limit_app/internal/apperrors"
	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/models"
	"github.com/bankcore/txn_limit_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxTransactionRepository implements the transaction repository ports using pgxpool.
type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new PgxTransactionRepository.
func NewPgxTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveTransaction persists a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (
			transaction_id, account_from, account_to, currency_code, sum,
			category, datetime, limit_exceeded, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID, modelTxn.AccountFrom, modelTxn.AccountTo,
		modelTxn.CurrencyCode, modelTxn.Sum, modelTxn.Category,
		modelTxn.Datetime, modelTxn.LimitExceeded, modelTxn.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save transaction", err)
	}
	return nil
}

// FindExceededTransactions returns all transactions flagged as exceeded, oldest first.
func (r *PgxTransactionRepository) FindExceededTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_from, account_to, currency_code, sum,
			category, datetime, limit_exceeded, created_at
		FROM transactions
		WHERE limit_exceeded = TRUE
		ORDER BY datetime;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exceeded transactions", err)
	}
	defer rows.Close()

	var modelTxns []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID, &m.AccountFrom, &m.AccountTo, &m.CurrencyCode,
			&m.Sum, &m.Category, &m.Datetime, &m.LimitExceeded, &m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transactions", err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// SumSpentInMonth aggregates the USD value of a category's transactions in the
// calendar month of upTo with datetime strictly before upTo. The month is
// evaluated in UTC on both sides of the query, so the result does not depend
// on the zone of the caller's timestamp or the database session. Each
// transaction converts through the close rate stored for its own currency
// pair and date; USD transactions count at face value.
func (r *PgxTransactionRepository) SumSpentInMonth(ctx context.Context, category domain.ExpenseCategory, upTo time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE WHEN t.currency_code = 'USD' THEN t.sum
			     ELSE t.sum * er.close_rate END
		), 0)
		FROM transactions t
		LEFT JOIN LATERAL (
			SELECT e.close_rate
			FROM exchange_rates e
			WHERE e.currency_pair = t.currency_code || '/USD'
				AND e.rate_date <= (t.datetime AT TIME ZONE 'UTC')::date
			ORDER BY e.rate_date DESC
			LIMIT 1
		) er ON TRUE
		WHERE t.category = $1
			AND EXTRACT(YEAR FROM t.datetime AT TIME ZONE 'UTC') = $2
			AND EXTRACT(MONTH FROM t.datetime AT TIME ZONE 'UTC') = $3
			AND t.datetime < $4;
	`

	year, month := monthOfUTC(upTo)

	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, string(category), year, month, upTo).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum monthly spend", err)
	}
	return total, nil
}

// monthOfUTC reports the calendar year and month of t in UTC, matching the
// AT TIME ZONE 'UTC' bucketing used by SumSpentInMonth.
func monthOfUTC(t time.Time) (int, int) {
	year, month, _ := t.In(time.UTC).Date()
	return year, int(month)
}
