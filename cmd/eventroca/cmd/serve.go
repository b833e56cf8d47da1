package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"eventroca/internal/adapters/rest"
	"eventroca/internal/config"
	"eventroca/internal/infrastructure/database"
	"eventroca/internal/infrastructure/i18n"
	"eventroca/internal/metrics"
	"eventroca/internal/telemetry"
)

func newServeCommand(flags *globalFlags) *cobra.Command {
	var addr string
	var migrateOnStart bool

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the enrollment HTTP API.

Configuration comes from environment variables (and an optional .env file):
  DATABASE_URL          PostgreSQL connection string
  JWT_SECRET            HMAC secret used to validate bearer tokens
  HTTP_ADDR             listen address (default :3000)
  DEFAULT_LOCALE        message locale when Accept-Language is absent (default es)
  MIGRATE_ON_START      apply pending migrations before serving`,
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	serve.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")

	serve.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(flags)
		if err != nil {
			return err
		}
		if addr != "" {
			cfg.HTTPAddr = addr
		}
		if migrateOnStart {
			cfg.MigrateOnStart = true
		}
		return runServer(cfg)
	}
	return serve
}

func runServer(cfg *config.Config) error {
	logger := config.NewLogger(cfg.Logging)
	metrics.Init(Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.Tracing, Version)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn().Err(err).Msg("tracing shutdown failed")
		}
	}()

	if cfg.MigrateOnStart {
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return err
		}
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	translator, err := i18n.NewTranslator(cfg.DefaultLocale, logger)
	if err != nil {
		return err
	}

	logger.Info().
		Str("version", Version).
		Str("environment", cfg.Environment).
		Msg("starting eventroca")

	server := rest.NewServer(cfg, logger, database.NewRepository(pool), pool, translator)
	return server.Start(ctx)
}
