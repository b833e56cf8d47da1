package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"eventroca/internal/domain"
	"eventroca/internal/domain/entities"
	"eventroca/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	q *Queries
}

func NewEventRepository(q *Queries) *EventRepository {
	return &EventRepository{q: q}
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	row, err := r.q.GetEventByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	e := eventToDomain(row)
	return &e, nil
}
