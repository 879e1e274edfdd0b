package main

import (
	"fmt"
	"time"

	"smartbus/internal/domain/user"
	"smartbus/internal/pkg/jwt"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var (
		subject  string
		role     string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for a gate terminal or rider",
		Long: `Mint a bearer token signed with JWT_SECRET.

Examples:
  farectl token --subject gate-12
  farectl token --subject 42 --role rider --duration 1h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := user.NewRole(role)
			if err != nil {
				return fmt.Errorf("unknown role %q", role)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if duration <= 0 {
				duration, err = time.ParseDuration(cfg.JWT.Duration)
				if err != nil {
					return fmt.Errorf("invalid JWT_DURATION: %w", err)
				}
			}

			token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(subject, r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "terminal id or rider id")
	cmd.Flags().StringVar(&role, "role", string(user.RoleInspector), "rider, inspector or admin")
	cmd.Flags().DurationVar(&duration, "duration", 0, "token lifetime (defaults to JWT_DURATION)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
