package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/verity-api/infrastructure/database/postgres"
	"github.com/vfg2006/verity-api/internal/domain"
)

const businessesTable = "businesses"

var businessColumns = []string{"id", "name", "username", "password_hash", "owner_name", "industry", "location", "created_at"}

//go:generate mockgen -source=business.go -destination=mocks/business_mock.go -package=mocks
type BusinessRepository interface {
	CreateBusiness(ctx context.Context, business *domain.Business) (*domain.Business, error)
	UpdateBusiness(ctx context.Context, req *domain.UpdateBusinessRequest) error
	GetBusinessByID(ctx context.Context, businessID int64) (*domain.Business, error)
	GetBusinessByUsername(ctx context.Context, username string) (*domain.Business, error)
}

type businessRepository struct {
	conn postgres.Queryer
}

func NewBusinessRepository(conn postgres.Queryer) BusinessRepository {
	return &businessRepository{
		conn: conn,
	}
}

func (r *businessRepository) CreateBusiness(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	query, args, err := squirrel.
		Insert(businessesTable).
		Columns("name", "username", "password_hash", "owner_name", "industry", "location").
		Values(business.Name, business.Username, business.PasswordHash, business.OwnerName, business.Industry, business.Location).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&business.ID, &business.CreatedAt); err != nil {
		return nil, wrapError("create business", err)
	}

	return business, nil
}

func (r *businessRepository) UpdateBusiness(ctx context.Context, req *domain.UpdateBusinessRequest) error {
	queryBuilder := squirrel.
		Update(businessesTable).
		Where(squirrel.Eq{"id": req.ID}).
		PlaceholderFormat(squirrel.Dollar)

	changed := false
	if req.Name != nil && *req.Name != "" {
		queryBuilder = queryBuilder.Set("name", *req.Name)
		changed = true
	}
	if req.OwnerName != nil {
		queryBuilder = queryBuilder.Set("owner_name", req.OwnerName)
		changed = true
	}
	if req.Industry != nil {
		queryBuilder = queryBuilder.Set("industry", req.Industry)
		changed = true
	}
	if req.Location != nil {
		queryBuilder = queryBuilder.Set("location", req.Location)
		changed = true
	}
	if !changed {
		return nil
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapError("update business", err)
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

func (r *businessRepository) GetBusinessByID(ctx context.Context, businessID int64) (*domain.Business, error) {
	return r.getBusiness(ctx, squirrel.Eq{"id": businessID})
}

func (r *businessRepository) GetBusinessByUsername(ctx context.Context, username string) (*domain.Business, error) {
	return r.getBusiness(ctx, squirrel.Eq{"username": username})
}

func (r *businessRepository) getBusiness(ctx context.Context, where squirrel.Eq) (*domain.Business, error) {
	query, args, err := squirrel.
		Select(businessColumns...).
		From(businessesTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var business domain.Business
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&business.ID,
		&business.Name,
		&business.Username,
		&business.PasswordHash,
		&business.OwnerName,
		&business.Industry,
		&business.Location,
		&business.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapError("get business", err)
	}

	return &business, nil
}
