package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const opGetEvent = "get_event"

// GetEvent handles GET /api/event/:id.
func (h *Handler) GetEvent(c echo.Context) error {
	req, err := bindEvent(c)
	if err != nil {
		return h.respondValidation(c, err)
	}

	detail, err := h.eventUseCase.GetEvent(c.Request().Context(), req.EventID)
	if err != nil {
		return h.respondError(c, opGetEvent, err)
	}

	return c.JSON(http.StatusOK, toEventDetailJSON(detail))
}

// Healthz reports 200 while the database answers.
func (h *Handler) Healthz(c echo.Context) error {
	if err := h.pinger.Ping(c.Request().Context()); err != nil {
		zerolog.Ctx(c.Request().Context()).Warn().Err(err).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
