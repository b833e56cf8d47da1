package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"eventroca/internal/config"
	"eventroca/internal/infrastructure/database"
)

func newMigrateCommand(flags *globalFlags) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return database.RunMigrations(cfg.DatabaseURL, config.NewLogger(cfg.Logging))
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive, got %d", steps)
			}
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return database.RollbackMigrations(cfg.DatabaseURL, steps, config.NewLogger(cfg.Logging))
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	migrate.AddCommand(down)

	return migrate
}
