package output

import (
	"context"
	"time"
)

// Repository groups the stores used by the services.
type Repository interface {
	Events() EventRepository
	Enrollments() EnrollmentRepository

	// WithEventLock runs fn in a single transaction that holds an exclusive
	// lock on eventID's enrollments until it commits or rolls back. The
	// Repository passed to fn is bound to that transaction. An error from fn
	// rolls the transaction back and is returned unchanged.
	WithEventLock(ctx context.Context, eventID int64, fn func(ctx context.Context, tx Repository) error) error
}

type Clock interface {
	Now() time.Time
}
