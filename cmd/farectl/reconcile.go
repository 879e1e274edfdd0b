package main

import (
	"encoding/json"
	"fmt"

	"smartbus/internal/domain/payment"
	resdto "smartbus/internal/handler/dto/response"
	"smartbus/internal/handler/httperr"
	"smartbus/internal/infra/gateway/payos"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/infra/uow"
	"smartbus/internal/pkg/clock"
	"smartbus/internal/usecase/commands"

	"github.com/spf13/cobra"
)

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile [orderCode]",
		Short: "Re-run settlement for an order",
		Long: `Re-run settlement for an order whose payment succeeded but whose
tickets were not all issued. Items already fulfilled are skipped, so
running this twice is harmless.

Prints the ticket confirmations as JSON on success.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := payment.ParseOrderCode(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pool, cleanup, err := connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			settlement := commands.NewSettlementCommands(
				uow.NewPostgresUoW(pool, sqlc.New()),
				payos.NewClient(cfg.PayOS, nil),
				clock.NewRealClock(),
			)

			res, err := settlement.HandleSettlement(cmd.Context(), code)
			if err != nil {
				_, msg, retryable := httperr.Status(err)
				return fmt.Errorf("order %s: %s (retryable=%t): %w", code, msg, retryable, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resdto.FromConfirmations(res.Confirmations))
		},
	}
}
