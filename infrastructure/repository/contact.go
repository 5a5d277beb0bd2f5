package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/verity-api/infrastructure/database/postgres"
	"github.com/vfg2006/verity-api/internal/domain"
)

const contactsTable = "contacts"

var contactColumns = []string{"id", "business_id", "name", "kind", "phone", "created_at"}

//go:generate mockgen -source=contact.go -destination=mocks/contact_mock.go -package=mocks
type ContactRepository interface {
	CreateContact(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	GetContactByName(ctx context.Context, businessID int64, name string) (*domain.Contact, error)
	ListContacts(ctx context.Context, businessID int64) ([]*domain.Contact, error)
	LockContactName(ctx context.Context, businessID int64, name string) error
	WithTx(tx *sql.Tx) ContactRepository
}

type contactRepository struct {
	conn postgres.Queryer
}

func NewContactRepository(conn postgres.Queryer) ContactRepository {
	return &contactRepository{
		conn: conn,
	}
}

func (r *contactRepository) WithTx(tx *sql.Tx) ContactRepository {
	return &contactRepository{conn: tx}
}

func (r *contactRepository) CreateContact(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	query, args, err := squirrel.
		Insert(contactsTable).
		Columns("business_id", "name", "kind", "phone").
		Values(contact.BusinessID, contact.Name, contact.Kind, contact.Phone).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&contact.ID, &contact.CreatedAt); err != nil {
		return nil, wrapError("create contact", err)
	}

	return contact, nil
}

// GetContactByName is an exact, case-sensitive match; the oldest contact wins when
// several share the name.
func (r *contactRepository) GetContactByName(ctx context.Context, businessID int64, name string) (*domain.Contact, error) {
	query, args, err := squirrel.
		Select(contactColumns...).
		From(contactsTable).
		Where(squirrel.Eq{"business_id": businessID, "name": name}).
		OrderBy("id").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var contact domain.Contact
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&contact.ID,
		&contact.BusinessID,
		&contact.Name,
		&contact.Kind,
		&contact.Phone,
		&contact.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapError("get contact", err)
	}

	return &contact, nil
}

func (r *contactRepository) ListContacts(ctx context.Context, businessID int64) ([]*domain.Contact, error) {
	query, args, err := squirrel.
		Select(contactColumns...).
		From(contactsTable).
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("name", "id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapError("list contacts", err)
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		var contact domain.Contact
		if err := rows.Scan(
			&contact.ID,
			&contact.BusinessID,
			&contact.Name,
			&contact.Kind,
			&contact.Phone,
			&contact.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, &contact)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError("list contacts", err)
	}

	return contacts, nil
}

// LockContactName takes a transaction scoped advisory lock on (business, normalized name).
// It only serializes callers that run inside a transaction.
func (r *contactRepository) LockContactName(ctx context.Context, businessID int64, name string) error {
	key := fmt.Sprintf("contact:%d:%s", businessID, strings.ToLower(strings.TrimSpace(name)))

	if _, err := r.conn.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return wrapError("lock contact name", err)
	}

	return nil
}
