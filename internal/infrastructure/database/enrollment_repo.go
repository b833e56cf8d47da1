package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"eventroca/internal/domain"
	"eventroca/internal/domain/entities"
	"eventroca/internal/ports/output"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"

	enrollmentUserFK  = "event_enrollments_id_user_fkey"
	enrollmentEventFK = "event_enrollments_id_event_fkey"
)

var _ output.EnrollmentRepository = (*EnrollmentRepository)(nil)

// EnrollmentRepository implements output.EnrollmentRepository on the
// event_enrollments table.
type EnrollmentRepository struct {
	q *Queries
}

func NewEnrollmentRepository(q *Queries) *EnrollmentRepository {
	return &EnrollmentRepository{q: q}
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *entities.Enrollment) error {
	err := r.q.CreateEnrollment(ctx, enrollment.EventID, enrollment.UserID, enrollment.Description,
		timeToPgtypeTimestamptz(enrollment.RegisteredAt))
	if domainErr := classifyInsertError(err); domainErr != nil {
		return domainErr
	}
	if err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// classifyInsertError maps constraint violations of event_enrollments to
// domain errors. It returns nil for anything else.
func classifyInsertError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch {
	case pgErr.Code == uniqueViolation:
		return domain.ErrAlreadyEnrolled
	case pgErr.Code == foreignKeyViolation && pgErr.ConstraintName == enrollmentUserFK:
		return domain.ErrUserNotFound
	case pgErr.Code == foreignKeyViolation && pgErr.ConstraintName == enrollmentEventFK:
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EnrollmentRepository) Exists(ctx context.Context, eventID, userID int64) (bool, error) {
	exists, err := r.q.EnrollmentExists(ctx, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("enrollment exists: %w", err)
	}
	return exists, nil
}

func (r *EnrollmentRepository) CountByEventID(ctx context.Context, eventID int64) (int64, error) {
	count, err := r.q.CountEnrollmentsByEvent(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return count, nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, eventID, userID int64) error {
	deleted, err := r.q.DeleteEnrollment(ctx, eventID, userID)
	if err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	if deleted == 0 {
		return domain.ErrNotEnrolled
	}
	return nil
}

func (r *EnrollmentRepository) FindParticipantsByEventID(ctx context.Context, eventID int64) ([]entities.Participant, error) {
	rows, err := r.q.ListEventParticipants(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event participants: %w", err)
	}
	out := make([]entities.Participant, len(rows))
	for i := range rows {
		out[i] = participantToDomain(rows[i])
	}
	return out, nil
}

func (r *EnrollmentRepository) FindByUserID(ctx context.Context, userID int64) ([]entities.UserEnrollment, error) {
	rows, err := r.q.ListUserEnrollments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user enrollments: %w", err)
	}
	out := make([]entities.UserEnrollment, len(rows))
	for i := range rows {
		out[i] = userEnrollmentToDomain(rows[i])
	}
	return out, nil
}
