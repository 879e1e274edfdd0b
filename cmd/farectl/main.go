// Command farectl is the operator CLI for the fare service: schema
// migrations, fare catalog imports, stuck order reconciliation and
// terminal token minting.
package main

import (
	"context"
	"fmt"
	"os"

	"smartbus/internal/handler/middleware"
	"smartbus/internal/infra/db"
	"smartbus/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "farectl",
		Short:         "SmartBus fare service operator tool",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the same environment as the API server and installs
// its logger.
func loadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	middleware.NewLogger(cfg.Log)
	return cfg, nil
}

func connect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, func(), error) {
	return db.Connect(ctx, cfg.DB)
}
