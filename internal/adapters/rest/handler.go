package rest

import (
	"context"

	"eventroca/internal/ports/input"
	"eventroca/internal/ports/output"
)

// Pinger reports whether the backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves HTTP requests using use cases.
type Handler struct {
	eventUseCase      input.EventUseCase
	enrollmentUseCase input.EnrollmentUseCase
	translator        output.T
	pinger            Pinger
}

// NewHandler creates a Handler.
func NewHandler(
	eventUseCase input.EventUseCase,
	enrollmentUseCase input.EnrollmentUseCase,
	translator output.T,
	pinger Pinger,
) *Handler {
	return &Handler{
		eventUseCase:      eventUseCase,
		enrollmentUseCase: enrollmentUseCase,
		translator:        translator,
		pinger:            pinger,
	}
}
