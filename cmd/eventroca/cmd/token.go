package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"eventroca/internal/adapters/rest"
)

// newTokenCommand mints a bearer token for local development.
func newTokenCommand(flags *globalFlags) *cobra.Command {
	var (
		claims rest.Claims
		ttl    time.Duration
	)

	token := &cobra.Command{
		Use:   "token",
		Short: "Issue a development bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if claims.UserID <= 0 {
				return errors.New("--user-id is required")
			}
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			signed, err := rest.NewAuthenticator(cfg.JWTSecret).Sign(claims, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	token.Flags().Int64Var(&claims.UserID, "user-id", 0, "user id carried by the token")
	token.Flags().StringVar(&claims.Username, "username", "", "username claim")
	token.Flags().StringVar(&claims.FirstName, "first-name", "", "first name claim")
	token.Flags().StringVar(&claims.LastName, "last-name", "", "last name claim")
	token.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return token
}
