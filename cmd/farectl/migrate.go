package main

import (
	"fmt"
	"os"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var (
		dir    string
		dryRun bool
		binary string
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations with Atlas",
		Long: `Apply pending migrations from the migrations directory to the database
configured by DB_* environment variables.

The directory must contain an atlas.sum file; regenerate it with
"atlas migrate hash" after editing a migration.

Examples:
  farectl migrate
  farectl migrate --dir ./migrations --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
			if err != nil {
				return fmt.Errorf("failed to load migrations from %s: %w", dir, err)
			}
			defer workdir.Close()

			client, err := atlasexec.NewClient(workdir.Path(), binary)
			if err != nil {
				return fmt.Errorf("failed to start atlas client: %w", err)
			}

			res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
				URL:    cfg.DB.BuildDSN(),
				DryRun: dryRun,
			})
			if err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(res.Applied) == 0 {
				fmt.Fprintf(out, "Schema is up to date at version %s\n", res.Current)
				return nil
			}
			for _, f := range res.Applied {
				fmt.Fprintf(out, "  applied %s\n", f.Name)
			}
			verb := "Migrated"
			if dryRun {
				verb = "Would migrate"
			}
			fmt.Fprintf(out, "%s from %q to %q (%d files)\n", verb, res.Current, res.Target, len(res.Applied))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "migrations", "migrations directory")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the migrations that would run without applying them")
	cmd.Flags().StringVar(&binary, "atlas", "atlas", "path to the atlas binary")

	return cmd
}
