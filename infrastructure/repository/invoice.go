package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/verity-api/infrastructure/database/postgres"
	"github.com/vfg2006/verity-api/internal/domain"
)

const invoicesTable = "invoices"

var invoiceColumns = []string{"id", "business_id", "contact_id", "number", "amount", "kind", "status", "due_date", "description", "created_at"}

//go:generate mockgen -source=invoice.go -destination=mocks/invoice_mock.go -package=mocks
type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, businessID, invoiceID int64) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, businessID int64, statuses ...domain.InvoiceStatus) ([]*domain.Invoice, error)
	ListInvoicesDueBefore(ctx context.Context, status domain.InvoiceStatus, before time.Time) ([]*domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, businessID, invoiceID int64, status domain.InvoiceStatus) error
	WithTx(tx *sql.Tx) InvoiceRepository
}

type invoiceRepository struct {
	conn postgres.Queryer
}

func NewInvoiceRepository(conn postgres.Queryer) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

func (r *invoiceRepository) WithTx(tx *sql.Tx) InvoiceRepository {
	return &invoiceRepository{conn: tx}
}

func (r *invoiceRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	query, args, err := squirrel.
		Insert(invoicesTable).
		Columns("business_id", "contact_id", "number", "amount", "kind", "status", "due_date", "description").
		Values(
			invoice.BusinessID,
			invoice.ContactID,
			invoice.Number,
			invoice.Amount,
			invoice.Kind,
			invoice.Status,
			invoice.DueDate,
			invoice.Description,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&invoice.ID, &invoice.CreatedAt); err != nil {
		return nil, wrapError("create invoice", err)
	}

	return invoice, nil
}

func (r *invoiceRepository) GetInvoiceByID(ctx context.Context, businessID, invoiceID int64) (*domain.Invoice, error) {
	query, args, err := squirrel.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(squirrel.Eq{"business_id": businessID, "id": invoiceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	invoice, err := scanInvoice(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapError("get invoice", err)
	}

	return invoice, nil
}

// ListInvoices returns the business's invoices, optionally filtered by status.
func (r *invoiceRepository) ListInvoices(ctx context.Context, businessID int64, statuses ...domain.InvoiceStatus) ([]*domain.Invoice, error) {
	queryBuilder := squirrel.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": statusStrings(statuses)})
	}

	return r.listInvoices(ctx, queryBuilder)
}

// ListInvoicesDueBefore is used by the overdue sweep and spans every business.
func (r *invoiceRepository) ListInvoicesDueBefore(ctx context.Context, status domain.InvoiceStatus, before time.Time) ([]*domain.Invoice, error) {
	queryBuilder := squirrel.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(squirrel.Eq{"status": string(status)}).
		Where(squirrel.Lt{"due_date": before}).
		OrderBy("business_id", "id").
		PlaceholderFormat(squirrel.Dollar)

	return r.listInvoices(ctx, queryBuilder)
}

func (r *invoiceRepository) UpdateInvoiceStatus(ctx context.Context, businessID, invoiceID int64, status domain.InvoiceStatus) error {
	query, args, err := squirrel.
		Update(invoicesTable).
		Set("status", string(status)).
		Where(squirrel.Eq{"business_id": businessID, "id": invoiceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapError("update invoice status", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *invoiceRepository) listInvoices(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.Invoice, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapError("list invoices", err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError("list invoices", err)
	}

	return invoices, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row scanner) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := row.Scan(
		&invoice.ID,
		&invoice.BusinessID,
		&invoice.ContactID,
		&invoice.Number,
		&invoice.Amount,
		&invoice.Kind,
		&invoice.Status,
		&invoice.DueDate,
		&invoice.Description,
		&invoice.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func statusStrings(statuses []domain.InvoiceStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
