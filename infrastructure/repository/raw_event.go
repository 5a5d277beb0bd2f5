package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/verity-api/infrastructure/database/postgres"
	"github.com/vfg2006/verity-api/internal/domain"
)

const rawEventsTable = "raw_events"

//go:generate mockgen -source=raw_event.go -destination=mocks/raw_event_mock.go -package=mocks
type RawEventRepository interface {
	CreateRawEvent(ctx context.Context, event *domain.RawEvent) (*domain.RawEvent, error)
}

type rawEventRepository struct {
	conn postgres.Queryer
}

func NewRawEventRepository(conn postgres.Queryer) RawEventRepository {
	return &rawEventRepository{
		conn: conn,
	}
}

func (r *rawEventRepository) CreateRawEvent(ctx context.Context, event *domain.RawEvent) (*domain.RawEvent, error) {
	query, args, err := squirrel.
		Insert(rawEventsTable).
		Columns("business_id", "source", "raw_text").
		Values(event.BusinessID, event.Source, event.RawText).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&event.ID, &event.CreatedAt); err != nil {
		return nil, wrapError("create raw event", err)
	}

	return event, nil
}
