package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"eventroca/internal/domain"
)

// echo has no constant for it.
const headerAcceptLanguage = "Accept-Language"

const (
	codeUnauthorized     = "unauthorized"
	codeValidationFailed = "validation_failed"
	codeRouteNotFound    = "route_not_found"
	codeMethodNotAllowed = "method_not_allowed"
	codeBadRequest       = "bad_request"
	codeInternal         = "internal_error"
)

// statusFor maps a domain error code to its HTTP status.
func statusFor(code string) int {
	switch code {
	case domain.CodeEventNotFound, domain.CodeUserNotFound:
		return http.StatusNotFound
	case domain.CodeAlreadyEnrolled,
		domain.CodeCapacityExceeded,
		domain.CodeEventNotFuture,
		domain.CodeEnrollmentDisabled,
		domain.CodeNotEnrolled:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageKey picks the catalog entry for code. Leaving an event that already
// started has its own wording.
func messageKey(op, code string) string {
	if op == opUnenroll && code == domain.CodeEventNotFuture {
		return "unenroll.event_not_future"
	}
	return "error." + code
}

// respondError writes err as a localized {code, message} body. Anything that
// is not a rule violation is reported as a generic server error.
func (h *Handler) respondError(c echo.Context, op string, err error) error {
	code := domain.Code(err)
	if code == "" {
		code = codeInternal
	}
	status := statusFor(code)

	logger := zerolog.Ctx(c.Request().Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("op", op).Msg("request failed")
	} else {
		logger.Debug().Str("op", op).Str("code", code).Msg("request rejected")
	}

	return c.JSON(status, errorResponse{Code: code, Message: h.t(c, messageKey(op, code), nil)})
}

// HTTPErrorHandler renders errors raised by echo itself (unknown routes,
// wrong methods, recovered panics) in the same shape as handler errors.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
	}

	var body errorResponse
	switch status {
	case http.StatusNotFound:
		body = errorResponse{Code: codeRouteNotFound, Message: h.t(c, "error.route_not_found", nil)}
	case http.StatusMethodNotAllowed:
		body = errorResponse{Code: codeMethodNotAllowed, Message: h.t(c, "error.method_not_allowed", nil)}
	default:
		if status < http.StatusInternalServerError {
			body = errorResponse{Code: codeBadRequest, Message: h.t(c, "error.bad_request", nil)}
			break
		}
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("unhandled error")
		body = errorResponse{Code: codeInternal, Message: h.t(c, "error.internal_error", nil)}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, body)
}

// t localizes key for the request's Accept-Language.
func (h *Handler) t(c echo.Context, key string, data map[string]any) string {
	return h.translator.T(c.Request().Header.Get(headerAcceptLanguage), key, data)
}
