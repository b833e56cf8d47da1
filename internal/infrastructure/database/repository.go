package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"eventroca/internal/ports/output"
)

var _ output.Repository = (*Repository)(nil)

// Repository implements output.Repository with PostgreSQL. A Repository
// returned inside WithEventLock is bound to that transaction.
type Repository struct {
	pool *pgxpool.Pool
	tx   pgx.Tx

	events      *EventRepository
	enrollments *EnrollmentRepository
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	q := NewQueries(pool)
	return &Repository{
		pool:        pool,
		events:      NewEventRepository(q),
		enrollments: NewEnrollmentRepository(q),
	}
}

func (r *Repository) Events() output.EventRepository {
	return r.events
}

func (r *Repository) Enrollments() output.EnrollmentRepository {
	return r.enrollments
}

// WithEventLock takes pg_advisory_xact_lock on eventID inside a read
// committed transaction. Statements after the lock see every enrollment
// committed by the previous holder.
func (r *Repository) WithEventLock(ctx context.Context, eventID int64, fn func(context.Context, output.Repository) error) error {
	if r.tx != nil {
		if err := NewQueries(r.tx).LockEventEnrollments(ctx, eventID); err != nil {
			return fmt.Errorf("lock event %d: %w", eventID, err)
		}
		return fn(ctx, r)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	q := NewQueries(tx)
	txRepo := &Repository{
		pool:        r.pool,
		tx:          tx,
		events:      NewEventRepository(q),
		enrollments: NewEnrollmentRepository(q),
	}

	if err := q.LockEventEnrollments(ctx, eventID); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("lock event %d: %w", eventID, err)
	}

	if err := fn(ctx, txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
