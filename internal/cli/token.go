package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gdugdh24/rentscore-backend/internal/usecase/auth"
)

type tokenOutput struct {
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// newTokenCommand issues bearer tokens for local testing of the
// authenticated routes
func newTokenCommand(opts *options) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret := v.GetString("secret")
			if len(secret) < 32 {
				return errors.New("secret must be at least 32 characters (flag --secret or JWT_ACCESS_SECRET)")
			}

			userID := uuid.New()
			if raw := v.GetString("user-id"); raw != "" {
				id, err := uuid.Parse(raw)
				if err != nil {
					return fmt.Errorf("invalid user id: %w", err)
				}
				userID = id
			}

			ttl := v.GetDuration("ttl")
			if ttl <= 0 {
				return errors.New("ttl must be positive")
			}

			token, expiresAt, err := auth.NewTokenUseCase(secret).IssueToken(userID, ttl)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}
			opts.log.Debug("token issued", zap.String("user_id", userID.String()), zap.Time("expires_at", expiresAt))

			return printJSON(cmd.OutOrStdout(), tokenOutput{UserID: userID, Token: token, ExpiresAt: expiresAt})
		},
	}

	cmd.Flags().String("secret", "", "HS256 signing secret")
	cmd.Flags().String("user-id", "", "user id to put in the token (default is a random uuid)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")

	_ = v.BindPFlag("secret", cmd.Flags().Lookup("secret"))
	_ = v.BindPFlag("user-id", cmd.Flags().Lookup("user-id"))
	_ = v.BindPFlag("ttl", cmd.Flags().Lookup("ttl"))
	_ = v.BindEnv("secret", "JWT_ACCESS_SECRET")

	return cmd
}
