package rest

import (
	"time"

	"eventroca/internal/domain/entities"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type enrollmentJSON struct {
	EventID      int64     `json:"id_event"`
	UserID       int64     `json:"id_user"`
	Description  string    `json:"description"`
	RegisteredAt time.Time `json:"registered_at"`
}

type enrollmentResponse struct {
	Message    string         `json:"message"`
	Enrollment enrollmentJSON `json:"enrollment"`
}

type countResponse struct {
	EventID int64 `json:"id_event"`
	Count   int64 `json:"count"`
}

type participantJSON struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Username     string    `json:"username"`
	RegisteredAt time.Time `json:"registered_at"`
}

type participantsResponse struct {
	Count        int64             `json:"count"`
	Participants []participantJSON `json:"participants"`
}

type eventJSON struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	StartDate            time.Time `json:"start_date"`
	DurationInMinutes    int       `json:"duration_in_minutes"`
	Price                float64   `json:"price"`
	EnabledForEnrollment bool      `json:"enabled_for_enrollment"`
	MaxAssistance        int       `json:"max_assistance"`
	CreatorUserID        int64     `json:"id_creator_user,omitempty"`
}

type eventDetailJSON struct {
	eventJSON
	EnrolledCount  int64 `json:"enrolled_count"`
	AvailableSpots int64 `json:"available_spots"`
}

type userEnrollmentJSON struct {
	Event        eventJSON `json:"event"`
	Description  string    `json:"description"`
	RegisteredAt time.Time `json:"registered_at"`
}

func toEventJSON(e entities.Event) eventJSON {
	return eventJSON{
		ID:                   e.ID,
		Name:                 e.Name,
		Description:          e.Description,
		StartDate:            e.StartDate,
		DurationInMinutes:    e.DurationInMinutes,
		Price:                e.Price,
		EnabledForEnrollment: e.EnabledForEnrollment,
		MaxAssistance:        e.MaxAssistance,
		CreatorUserID:        e.CreatorUserID,
	}
}

func toEventDetailJSON(d *entities.EventDetail) eventDetailJSON {
	return eventDetailJSON{
		eventJSON:      toEventJSON(d.Event),
		EnrolledCount:  d.EnrolledCount,
		AvailableSpots: d.AvailableSpots(),
	}
}

func toParticipantsJSON(ps []entities.Participant) []participantJSON {
	out := make([]participantJSON, len(ps))
	for i, p := range ps {
		out[i] = participantJSON{
			ID:           p.UserID,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Username:     p.Username,
			RegisteredAt: p.RegisteredAt,
		}
	}
	return out
}

func toUserEnrollmentsJSON(ues []entities.UserEnrollment) []userEnrollmentJSON {
	out := make([]userEnrollmentJSON, len(ues))
	for i, ue := range ues {
		out[i] = userEnrollmentJSON{
			Event:        toEventJSON(ue.Event),
			Description:  ue.Description,
			RegisteredAt: ue.RegisteredAt,
		}
	}
	return out
}
