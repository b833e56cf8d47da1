package entities

import (
	"time"

	"eventroca/pkg/tz"
)

// OpenFor reports whether the event still accepts enrollment changes at now:
// its start date must fall on a calendar day strictly after today.
func (e *Event) OpenFor(now time.Time) bool {
	return tz.AfterToday(e.StartDate, now)
}

// HasCapacity reports whether one more enrollment fits given the current count.
func (e *Event) HasCapacity(enrolled int64) bool {
	return enrolled < int64(e.MaxAssistance)
}

type Event struct {
	ID                   int64
	Name                 string
	Description          string
	StartDate            time.Time
	DurationInMinutes    int
	Price                float64
	EnabledForEnrollment bool
	MaxAssistance        int
	CreatorUserID        int64 // 0 = unknown creator
}

// EventDetail is an event together with its current enrollment count.
type EventDetail struct {
	Event
	EnrolledCount int64
}

func (d *EventDetail) AvailableSpots() int64 {
	spots := int64(d.MaxAssistance) - d.EnrolledCount
	if spots < 0 {
		return 0
	}
	return spots
}
