package input

import (
	"context"

	"eventroca/internal/domain/entities"
)

type EventUseCase interface {
	GetEvent(ctx context.Context, id int64) (*entities.EventDetail, error)
}
