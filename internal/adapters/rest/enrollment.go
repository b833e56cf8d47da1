package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	opEnroll              = "enroll"
	opUnenroll            = "unenroll"
	opCountEnrollments    = "count_enrollments"
	opListParticipants    = "list_participants"
	opListUserEnrollments = "list_user_enrollments"
)

// Enroll handles POST /api/event/:id/enrollment. The body may carry an
// optional {"description": "..."}.
func (h *Handler) Enroll(c echo.Context) error {
	req, err := bindEnroll(c)
	if err != nil {
		return h.respondValidation(c, err)
	}
	user := userFrom(c)

	enrollment, err := h.enrollmentUseCase.EnrollWithDescription(c.Request().Context(), req.EventID, user.UserID, req.Description)
	if err != nil {
		return h.respondError(c, opEnroll, err)
	}

	return c.JSON(http.StatusCreated, enrollmentResponse{
		Message: h.t(c, "enrollment.created", nil),
		Enrollment: enrollmentJSON{
			EventID:      enrollment.EventID,
			UserID:       enrollment.UserID,
			Description:  enrollment.Description,
			RegisteredAt: enrollment.RegisteredAt,
		},
	})
}

// Unenroll handles DELETE /api/event/:id/enrollment.
func (h *Handler) Unenroll(c echo.Context) error {
	req, err := bindEvent(c)
	if err != nil {
		return h.respondValidation(c, err)
	}
	user := userFrom(c)

	if err := h.enrollmentUseCase.Unenroll(c.Request().Context(), req.EventID, user.UserID); err != nil {
		return h.respondError(c, opUnenroll, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: h.t(c, "enrollment.removed", nil)})
}

// ListParticipants handles GET /api/event/:id/enrollment. count is the
// length of the returned list.
func (h *Handler) ListParticipants(c echo.Context) error {
	req, err := bindEvent(c)
	if err != nil {
		return h.respondValidation(c, err)
	}

	participants, err := h.enrollmentUseCase.ListParticipants(c.Request().Context(), req.EventID)
	if err != nil {
		return h.respondError(c, opListParticipants, err)
	}

	return c.JSON(http.StatusOK, participantsResponse{
		Count:        int64(len(participants)),
		Participants: toParticipantsJSON(participants),
	})
}

// CountEnrollments handles GET /api/event/:id/enrollment/count.
func (h *Handler) CountEnrollments(c echo.Context) error {
	req, err := bindEvent(c)
	if err != nil {
		return h.respondValidation(c, err)
	}

	count, err := h.enrollmentUseCase.CountEnrollments(c.Request().Context(), req.EventID)
	if err != nil {
		return h.respondError(c, opCountEnrollments, err)
	}

	return c.JSON(http.StatusOK, countResponse{EventID: req.EventID, Count: count})
}

// ListUserEnrollments handles GET /api/user/enrollment for the caller.
func (h *Handler) ListUserEnrollments(c echo.Context) error {
	user := userFrom(c)

	enrollments, err := h.enrollmentUseCase.ListUserEnrollments(c.Request().Context(), user.UserID)
	if err != nil {
		return h.respondError(c, opListUserEnrollments, err)
	}

	return c.JSON(http.StatusOK, toUserEnrollmentsJSON(enrollments))
}

func (h *Handler) respondValidation(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Code:    codeValidationFailed,
		Message: h.t(c, "error.validation_failed", map[string]any{"Details": validationDetails(err)}),
	})
}
