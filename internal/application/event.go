package application

import (
	"context"

	"github.com/rs/zerolog"

	"eventroca/internal/domain"
	"eventroca/internal/domain/entities"
	"eventroca/internal/ports/output"
)

type EventService struct {
	repo   output.Repository
	logger zerolog.Logger
}

func NewEventService(repo output.Repository, logger zerolog.Logger) *EventService {
	return &EventService{
		repo:   repo,
		logger: logger.With().Str("component", "event_service").Logger(),
	}
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (*entities.EventDetail, error) {
	event, err := s.repo.Events().FindByID(ctx, id)
	if err != nil {
		return nil, s.wrap("get_event", err)
	}
	count, err := s.repo.Enrollments().CountByEventID(ctx, id)
	if err != nil {
		return nil, s.wrap("get_event", err)
	}
	return &entities.EventDetail{Event: *event, EnrolledCount: count}, nil
}

func (s *EventService) wrap(op string, err error) error {
	if domain.IsBusiness(err) {
		return err
	}
	s.logger.Error().Err(err).Str("op", op).Msg("storage failure")
	return domain.NewStorageError(op, err)
}
