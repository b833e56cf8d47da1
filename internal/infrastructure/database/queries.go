package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries holds the SQL used by the repositories.
type Queries struct {
	db DBTX
}

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

type eventRow struct {
	ID                   int64
	Name                 string
	Description          string
	StartDate            pgtype.Timestamptz
	DurationInMinutes    int32
	Price                float64
	EnabledForEnrollment bool
	MaxAssistance        int32
	IDCreatorUser        pgtype.Int8
}

type participantRow struct {
	UserID       int64
	FirstName    string
	LastName     string
	Username     string
	RegisteredAt pgtype.Timestamptz
}

type userEnrollmentRow struct {
	eventRow
	Description  string
	RegisteredAt pgtype.Timestamptz
}

const eventColumns = `e.id, e.name, e.description, e.start_date, e.duration_in_minutes,
       e.price, e.enabled_for_enrollment, e.max_assistance, e.id_creator_user`

func (r *eventRow) dest() []any {
	return []any{
		&r.ID, &r.Name, &r.Description, &r.StartDate, &r.DurationInMinutes,
		&r.Price, &r.EnabledForEnrollment, &r.MaxAssistance, &r.IDCreatorUser,
	}
}

const getEventByID = `SELECT ` + eventColumns + `
  FROM events e
 WHERE e.id = $1`

func (q *Queries) GetEventByID(ctx context.Context, id int64) (eventRow, error) {
	var row eventRow
	err := q.db.QueryRow(ctx, getEventByID, id).Scan(row.dest()...)
	return row, err
}

// The lock key is the event id itself; nothing else in the schema takes
// single-key advisory locks.
const lockEventEnrollments = `SELECT pg_advisory_xact_lock($1)`

func (q *Queries) LockEventEnrollments(ctx context.Context, eventID int64) error {
	_, err := q.db.Exec(ctx, lockEventEnrollments, eventID)
	return err
}

const enrollmentExists = `SELECT EXISTS (
    SELECT 1 FROM event_enrollments WHERE id_event = $1 AND id_user = $2
)`

func (q *Queries) EnrollmentExists(ctx context.Context, eventID, userID int64) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, enrollmentExists, eventID, userID).Scan(&exists)
	return exists, err
}

const countEnrollmentsByEvent = `SELECT count(*) FROM event_enrollments WHERE id_event = $1`

func (q *Queries) CountEnrollmentsByEvent(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countEnrollmentsByEvent, eventID).Scan(&count)
	return count, err
}

const createEnrollment = `INSERT INTO event_enrollments (id_event, id_user, description, registered_at)
VALUES ($1, $2, $3, $4)`

func (q *Queries) CreateEnrollment(ctx context.Context, eventID, userID int64, description string, registeredAt pgtype.Timestamptz) error {
	_, err := q.db.Exec(ctx, createEnrollment, eventID, userID, description, registeredAt)
	return err
}

const deleteEnrollment = `DELETE FROM event_enrollments WHERE id_event = $1 AND id_user = $2`

func (q *Queries) DeleteEnrollment(ctx context.Context, eventID, userID int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteEnrollment, eventID, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listEventParticipants = `SELECT u.id, u.first_name, u.last_name, u.username, ee.registered_at
  FROM event_enrollments ee
  JOIN users u ON u.id = ee.id_user
 WHERE ee.id_event = $1
 ORDER BY ee.registered_at ASC, u.id ASC`

func (q *Queries) ListEventParticipants(ctx context.Context, eventID int64) ([]participantRow, error) {
	rows, err := q.db.Query(ctx, listEventParticipants, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []participantRow
	for rows.Next() {
		var p participantRow
		if err := rows.Scan(&p.UserID, &p.FirstName, &p.LastName, &p.Username, &p.RegisteredAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const listUserEnrollments = `SELECT ` + eventColumns + `, ee.description, ee.registered_at
  FROM event_enrollments ee
  JOIN events e ON e.id = ee.id_event
 WHERE ee.id_user = $1
 ORDER BY e.start_date ASC, e.id ASC`

func (q *Queries) ListUserEnrollments(ctx context.Context, userID int64) ([]userEnrollmentRow, error) {
	rows, err := q.db.Query(ctx, listUserEnrollments, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []userEnrollmentRow
	for rows.Next() {
		var r userEnrollmentRow
		if err := rows.Scan(append(r.dest(), &r.Description, &r.RegisteredAt)...); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
