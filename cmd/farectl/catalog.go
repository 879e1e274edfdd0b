package main

import (
	"fmt"
	"os"

	"smartbus/internal/infra/catalog"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/usecase/shared"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the fare catalog",
	}
	cmd.AddCommand(catalogImportCmd())
	return cmd
}

func catalogImportCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Upsert routes, ticket types, prices and riders from a YAML file",
		Long: `Upsert the fare catalog from a YAML file in a single transaction.

Rows missing from the file are left untouched; set "inactive: true" on a
price to stop selling it.

Example:
  farectl catalog import catalog.yaml --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open catalog: %w", err)
			}
			defer f.Close()

			c, err := catalog.Parse(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintf(out, "Catalog is valid: %d routes, %d ticket types, %d prices, %d riders\n",
					len(c.Routes), len(c.TicketTypes), len(c.Prices), len(c.Riders))
				return nil
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

			importer := catalog.NewImporter(sqlc.New())
			s, err := shared.RunInTx(cmd.Context(), pool, func(tx sqlc.DBTX) (catalog.Summary, error) {
				return importer.Import(cmd.Context(), tx, c)
			})
			if err != nil {
				return fmt.Errorf("failed to import catalog: %w", err)
			}

			fmt.Fprintf(out, "Imported %d routes, %d ticket types, %d prices, %d riders\n",
				s.Routes, s.TicketTypes, s.Prices, s.Riders)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without touching the database")
	return cmd
}
