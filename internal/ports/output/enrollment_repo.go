package output

import (
	"context"

	"eventroca/internal/domain/entities"
)

// EnrollmentRepository reads and writes the enrollment ledger.
//
// Create returns domain.ErrAlreadyEnrolled when the pair already exists and
// Delete returns domain.ErrNotEnrolled when it does not.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entities.Enrollment) error
	Exists(ctx context.Context, eventID, userID int64) (bool, error)
	CountByEventID(ctx context.Context, eventID int64) (int64, error)
	Delete(ctx context.Context, eventID, userID int64) error
	FindParticipantsByEventID(ctx context.Context, eventID int64) ([]entities.Participant, error)
	FindByUserID(ctx context.Context, userID int64) ([]entities.UserEnrollment, error)
}
