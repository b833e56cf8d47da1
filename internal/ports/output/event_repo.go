package output

import (
	"context"

	"eventroca/internal/domain/entities"
)

// EventRepository reads the event catalog. FindByID returns
// domain.ErrEventNotFound when no event has the given id.
type EventRepository interface {
	FindByID(ctx context.Context, id int64) (*entities.Event, error)
}
