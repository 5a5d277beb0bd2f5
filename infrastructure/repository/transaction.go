package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/verity-api/infrastructure/database/postgres"
	"github.com/vfg2006/verity-api/internal/domain"
)

const transactionsTable = "transactions"

var transactionColumns = []string{"id", "business_id", "invoice_id", "direction", "amount", "currency", "method", "category", "date", "raw_text", "source", "created_at"}

// Transactions have no update path.
//
//go:generate mockgen -source=transaction.go -destination=mocks/transaction_mock.go -package=mocks
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, businessID int64) ([]*domain.Transaction, error)
	ListRecentTransactions(ctx context.Context, businessID int64, limit uint64) ([]*domain.Transaction, error)
	WithTx(tx *sql.Tx) TransactionRepository
}

type transactionRepository struct {
	conn postgres.Queryer
}

func NewTransactionRepository(conn postgres.Queryer) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) WithTx(tx *sql.Tx) TransactionRepository {
	return &transactionRepository{conn: tx}
}

func (r *transactionRepository) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query, args, err := squirrel.
		Insert(transactionsTable).
		Columns("business_id", "invoice_id", "direction", "amount", "currency", "method", "category", "date", "raw_text", "source").
		Values(
			tx.BusinessID,
			tx.InvoiceID,
			tx.Direction,
			tx.Amount,
			tx.Currency,
			tx.Method,
			tx.Category,
			tx.Date,
			tx.RawText,
			tx.Source,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&tx.ID, &tx.CreatedAt); err != nil {
		return nil, wrapError("create transaction", err)
	}

	return tx, nil
}

// ListTransactions returns the full history, oldest first. No time filter is applied.
func (r *transactionRepository) ListTransactions(ctx context.Context, businessID int64) ([]*domain.Transaction, error) {
	return r.listTransactions(ctx, squirrel.
		Select(transactionColumns...).
		From(transactionsTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("date", "id").
		PlaceholderFormat(squirrel.Dollar))
}

func (r *transactionRepository) ListRecentTransactions(ctx context.Context, businessID int64, limit uint64) ([]*domain.Transaction, error) {
	return r.listTransactions(ctx, squirrel.
		Select(transactionColumns...).
		From(transactionsTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("date DESC", "id DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar))
}

func (r *transactionRepository) listTransactions(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.Transaction, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapError("list transactions", err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(
			&tx.ID,
			&tx.BusinessID,
			&tx.InvoiceID,
			&tx.Direction,
			&tx.Amount,
			&tx.Currency,
			&tx.Method,
			&tx.Category,
			&tx.Date,
			&tx.RawText,
			&tx.Source,
			&tx.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError("list transactions", err)
	}

	return transactions, nil
}
