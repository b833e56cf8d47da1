package input

import (
	"context"

	"eventroca/internal/domain/entities"
)

type EnrollmentUseCase interface {
	Enroll(ctx context.Context, eventID, userID int64) (*entities.Enrollment, error)
	EnrollWithDescription(ctx context.Context, eventID, userID int64, description string) (*entities.Enrollment, error)
	Unenroll(ctx context.Context, eventID, userID int64) error
	CountEnrollments(ctx context.Context, eventID int64) (int64, error)
	ListParticipants(ctx context.Context, eventID int64) ([]entities.Participant, error)
	ListUserEnrollments(ctx context.Context, userID int64) ([]entities.UserEnrollment, error)
}
