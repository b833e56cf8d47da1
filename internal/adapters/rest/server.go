package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"eventroca/internal/application"
	"eventroca/internal/config"
	"eventroca/internal/metrics"
	"eventroca/internal/ports/output"
	"eventroca/pkg/tz"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP adapter.
type Server struct {
	echo   *echo.Echo
	config *config.Config
	logger zerolog.Logger
}

// NewServer creates a Server and wires ports: output adapters -> application (use cases) -> handler.
func NewServer(cfg *config.Config, logger zerolog.Logger, repo output.Repository, pinger Pinger, translator output.T) *Server {
	eventUC := application.NewEventService(repo, logger)
	enrollmentUC := application.NewEnrollmentService(repo, tz.SystemClock{}, logger)

	handler := NewHandler(eventUC, enrollmentUC, translator, pinger)
	auth := NewAuthenticator(cfg.JWTSecret)

	return &Server{
		echo:   NewRouter(handler, auth, logger, cfg.CORSAllowedOrigins),
		config: cfg,
		logger: logger,
	}
}

// NewRouter builds the echo instance with middleware and routes.
func NewRouter(h *Handler, auth *Authenticator, logger zerolog.Logger, corsOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = h.HTTPErrorHandler

	e.Use(requestID(logger))
	e.Use(accessLog())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, headerAcceptLanguage},
	}))

	Register(e, h, auth)
	return e
}

// Register wires up all routes on the provided Echo instance.
func Register(e *echo.Echo, h *Handler, auth *Authenticator) {
	requireAuth := h.RequireAuth(auth)

	e.GET("/healthz", h.Healthz)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api")
	api.GET("/event/:id", h.GetEvent)
	api.GET("/event/:id/enrollment", h.ListParticipants)
	api.GET("/event/:id/enrollment/count", h.CountEnrollments)
	api.POST("/event/:id/enrollment", h.Enroll, requireAuth)
	api.DELETE("/event/:id/enrollment", h.Unenroll, requireAuth)
	api.GET("/user/enrollment", h.ListUserEnrollments, requireAuth)
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.HTTPAddr,
		Handler:           s.echo,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("shutdown error")
		return err
	}

	s.logger.Info().Msg("server stopped")
	return nil
}
