package entities

import "time"

// Enrollment records that a user holds a place in an event.
type Enrollment struct {
	EventID      int64
	UserID       int64
	Description  string // optional note left by the user when enrolling
	RegisteredAt time.Time
}

// Participant is an enrolled user as shown on an event's participant list.
type Participant struct {
	UserID       int64
	FirstName    string
	LastName     string
	Username     string
	RegisteredAt time.Time
}

// UserEnrollment is one of a user's enrolled events.
type UserEnrollment struct {
	Event        Event
	Description  string
	RegisteredAt time.Time
}
