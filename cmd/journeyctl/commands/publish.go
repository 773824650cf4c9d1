package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"journey-backend/internal/journey"
	"journey-backend/internal/shared/config"
	"journey-backend/internal/shared/storage/db"
)

func publishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Save the catalog as a new Postgres snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if strings.TrimSpace(cfg.DatabaseURL) == "" {
				return fmt.Errorf("DATABASE_URL is required to publish")
			}
			ctx := cmd.Context()

			sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
			if err != nil {
				return err
			}
			defer sqlDB.Close()
			if err := db.RunMigrations(ctx, sqlDB); err != nil {
				return err
			}

			svc := journey.NewService(&journey.PGRepo{DB: sqlDB})
			snap, created, err := svc.Publish(ctx, catalog)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "catalog unchanged; latest snapshot %s (%s)\n", snap.ID, snap.Checksum)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published snapshot %s (%s)\n", snap.ID, snap.Checksum)
			return nil
		},
	}
	return cmd
}
