package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"eventroca/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time in UTC when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time.UTC()
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

func eventToDomain(e eventRow) entities.Event {
	return entities.Event{
		ID:                   e.ID,
		Name:                 e.Name,
		Description:          e.Description,
		StartDate:            pgtypeTimestamptzToTime(e.StartDate),
		DurationInMinutes:    int(e.DurationInMinutes),
		Price:                e.Price,
		EnabledForEnrollment: e.EnabledForEnrollment,
		MaxAssistance:        int(e.MaxAssistance),
		CreatorUserID:        e.IDCreatorUser.Int64,
	}
}

func participantToDomain(p participantRow) entities.Participant {
	return entities.Participant{
		UserID:       p.UserID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Username:     p.Username,
		RegisteredAt: pgtypeTimestamptzToTime(p.RegisteredAt),
	}
}

func userEnrollmentToDomain(r userEnrollmentRow) entities.UserEnrollment {
	return entities.UserEnrollment{
		Event:        eventToDomain(r.eventRow),
		Description:  r.Description,
		RegisteredAt: pgtypeTimestamptzToTime(r.RegisteredAt),
	}
}
