package application

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"eventroca/internal/domain"
	"eventroca/internal/domain/entities"
	"eventroca/internal/metrics"
	"eventroca/internal/ports/output"
	"eventroca/internal/telemetry"
)

const tracerName = "eventroca/internal/application"

// EnrollmentService is the only writer of the enrollment ledger.
type EnrollmentService struct {
	repo   output.Repository
	clock  output.Clock
	logger zerolog.Logger
	tracer trace.Tracer
}

func NewEnrollmentService(repo output.Repository, clock output.Clock, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		repo:   repo,
		clock:  clock,
		logger: logger.With().Str("component", "enrollment_service").Logger(),
		tracer: telemetry.Tracer(tracerName),
	}
}

// Enroll registers userID in eventID. The checks run in a fixed order and the
// first failing one decides the error: unknown event, already enrolled, event
// full, event not in the future, enrollment disabled.
func (s *EnrollmentService) Enroll(ctx context.Context, eventID, userID int64) (*entities.Enrollment, error) {
	return s.EnrollWithDescription(ctx, eventID, userID, "")
}

// EnrollWithDescription is Enroll with an optional note stored on the
// enrollment.
func (s *EnrollmentService) EnrollWithDescription(ctx context.Context, eventID, userID int64, description string) (_ *entities.Enrollment, err error) {
	ctx, done := s.start(ctx, "enroll", attribute.Int64("event.id", eventID), attribute.Int64("user.id", userID))
	defer func() { done(err) }()

	var enrollment *entities.Enrollment
	err = s.repo.WithEventLock(ctx, eventID, func(ctx context.Context, tx output.Repository) error {
		event, err := tx.Events().FindByID(ctx, eventID)
		if err != nil {
			return err
		}

		enrolled, err := tx.Enrollments().Exists(ctx, eventID, userID)
		if err != nil {
			return err
		}
		if enrolled {
			return domain.ErrAlreadyEnrolled
		}

		count, err := tx.Enrollments().CountByEventID(ctx, eventID)
		if err != nil {
			return err
		}
		if !event.HasCapacity(count) {
			return domain.ErrCapacityExceeded
		}

		now := s.clock.Now()
		if !event.OpenFor(now) {
			return domain.ErrEventNotFuture
		}
		if !event.EnabledForEnrollment {
			return domain.ErrEnrollmentDisabled
		}

		e := &entities.Enrollment{EventID: eventID, UserID: userID, Description: description, RegisteredAt: now}
		if err := tx.Enrollments().Create(ctx, e); err != nil {
			return err
		}
		enrollment = e
		return nil
	})
	if err != nil {
		return nil, s.classify("enroll", err)
	}

	s.logger.Info().Int64("event_id", eventID).Int64("user_id", userID).Msg("user enrolled")
	return enrollment, nil
}

// Unenroll removes userID from eventID while the event is still in the future.
func (s *EnrollmentService) Unenroll(ctx context.Context, eventID, userID int64) (err error) {
	ctx, done := s.start(ctx, "unenroll", attribute.Int64("event.id", eventID), attribute.Int64("user.id", userID))
	defer func() { done(err) }()

	err = s.repo.WithEventLock(ctx, eventID, func(ctx context.Context, tx output.Repository) error {
		event, err := tx.Events().FindByID(ctx, eventID)
		if err != nil {
			return err
		}

		enrolled, err := tx.Enrollments().Exists(ctx, eventID, userID)
		if err != nil {
			return err
		}
		if !enrolled {
			return domain.ErrNotEnrolled
		}

		if !event.OpenFor(s.clock.Now()) {
			return domain.ErrEventNotFuture
		}

		return tx.Enrollments().Delete(ctx, eventID, userID)
	})
	if err != nil {
		return s.classify("unenroll", err)
	}

	s.logger.Info().Int64("event_id", eventID).Int64("user_id", userID).Msg("user unenrolled")
	return nil
}

// CountEnrollments returns the number of ledger rows for eventID. Unknown
// events count 0.
func (s *EnrollmentService) CountEnrollments(ctx context.Context, eventID int64) (_ int64, err error) {
	ctx, done := s.start(ctx, "count_enrollments", attribute.Int64("event.id", eventID))
	defer func() { done(err) }()

	count, err := s.repo.Enrollments().CountByEventID(ctx, eventID)
	if err != nil {
		return 0, s.classify("count_enrollments", err)
	}
	return count, nil
}

// ListParticipants returns the enrolled users of eventID, earliest first.
func (s *EnrollmentService) ListParticipants(ctx context.Context, eventID int64) (_ []entities.Participant, err error) {
	ctx, done := s.start(ctx, "list_participants", attribute.Int64("event.id", eventID))
	defer func() { done(err) }()

	participants, err := s.repo.Enrollments().FindParticipantsByEventID(ctx, eventID)
	if err != nil {
		return nil, s.classify("list_participants", err)
	}
	return participants, nil
}

func (s *EnrollmentService) ListUserEnrollments(ctx context.Context, userID int64) (_ []entities.UserEnrollment, err error) {
	ctx, done := s.start(ctx, "list_user_enrollments", attribute.Int64("user.id", userID))
	defer func() { done(err) }()

	enrollments, err := s.repo.Enrollments().FindByUserID(ctx, userID)
	if err != nil {
		return nil, s.classify("list_user_enrollments", err)
	}
	return enrollments, nil
}

// start opens a span for operation and returns the function that records its
// outcome in the span and in the operation metrics.
func (s *EnrollmentService) start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	begin := time.Now()
	ctx, span := s.tracer.Start(ctx, "EnrollmentService."+operation, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		outcome := "success"
		if err != nil {
			outcome = domain.Code(err)
			span.SetAttributes(attribute.String("error.code", outcome))
			if !domain.IsBusiness(err) {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
		}
		metrics.ObserveEnrollment(operation, outcome, time.Since(begin))
		span.End()
	}
}

// classify passes business errors through and wraps everything else as a
// StorageError.
func (s *EnrollmentService) classify(op string, err error) error {
	if domain.IsBusiness(err) {
		s.logger.Debug().Str("op", op).Str("code", domain.Code(err)).Msg("request rejected")
		return err
	}
	s.logger.Error().Err(err).Str("op", op).Msg("storage failure")
	return domain.NewStorageError(op, err)
}
