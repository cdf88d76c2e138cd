package main

import (
	"context"

	"cosmic"
	"cosmic/internal/config"
	"cosmic/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			db, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			if err := cosmic.Migrate(ctx, db.sqlDB, db.dialect); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.String("dialect", db.dialect), zap.Error(err))
			}
			logger.Info(ctx, "database is up to date", zap.String("dialect", db.dialect))
		},
	}

	return cmd
}
